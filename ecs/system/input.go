package system

import (
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/physics"
	"github.com/milk9111/wastesorter/player"
)

// InputSystem feeds the frame's intent to the player controller and applies
// the velocity it asks for.
type InputSystem struct {
	Physics *physics.World
	Input   player.Input
}

func NewInputSystem(pw *physics.World) *InputSystem {
	return &InputSystem{Physics: pw}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil || s.Physics == nil {
		return
	}
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if p.Controller == nil {
			return
		}
		if pos, ok := s.Physics.Position(uint64(e)); ok {
			p.Controller.Pos = pos
		}
		vel := s.Physics.Velocity(uint64(e))
		next := p.Controller.Handle(s.Input, vel)
		if next != vel {
			s.Physics.SetVelocity(uint64(e), next)
		}
	})
	s.Input = player.Input{}
}
