package system

import (
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
)

// ParticleSystem drifts particles and raises popups.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem { return &ParticleSystem{} }

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform) {
		t.X += p.VX
		t.Y += p.VY
		p.VY -= 0.01
	})
	ecs.ForEach2(w, component.PopupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Popup, t *component.Transform) {
		t.Y += p.Rise
	})
}
