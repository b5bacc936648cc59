package system

import (
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/physics"
)

// PhysicsSystem steps the space, publishes its contacts, and copies body
// positions back into transforms.
type PhysicsSystem struct {
	Physics *physics.World
	// DT is the step in seconds. Zero freezes the space.
	DT float64
}

func NewPhysicsSystem(pw *physics.World) *PhysicsSystem {
	return &PhysicsSystem{Physics: pw}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || s.Physics == nil {
		return
	}
	if s.DT <= 0 {
		publishContacts(w, nil)
		return
	}
	publishContacts(w, s.Physics.Step(s.DT))

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Kind != component.BodyDynamic {
			return
		}
		pos, ok := s.Physics.Position(uint64(e))
		if !ok {
			return
		}
		t.X, t.Y = pos.X, pos.Y
	})
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform) {
		if p.Controller == nil {
			return
		}
		p.Controller.Pos.X, p.Controller.Pos.Y = t.X, t.Y
		t.FacingLeft = !p.Controller.FacingRight()
	})
}
