package system

import (
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/physics"
)

// EnemySystem runs per-frame enemy behavior and moves bodies and detectors
// along with their enemy.
type EnemySystem struct {
	Physics *physics.World
}

func NewEnemySystem(pw *physics.World) *EnemySystem {
	return &EnemySystem{Physics: pw}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform) {
		b := en.Behavior
		if b == nil || b.Destroyed() {
			return
		}
		b.Update()
		t.X, t.Y = b.Pos.X, b.Pos.Y
		t.FacingLeft = !b.FacingRight()
		if s.Physics != nil {
			s.Physics.SetPosition(uint64(e), b.Pos)
		}
	})
	ecs.ForEach2(w, component.DetectorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, d *component.Detector, t *component.Transform) {
		owner, ok := ecs.Get(w, ecs.Entity(d.Owner), component.TransformComponent.Kind())
		if !ok {
			return
		}
		t.X, t.Y = owner.X, owner.Y
		if s.Physics != nil {
			s.Physics.SetPosition(uint64(e), common.V(t.X, t.Y))
		}
	})
}
