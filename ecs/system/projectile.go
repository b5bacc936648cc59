package system

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/physics"
)

// ProjectileSystem steps projectile motion and flags spent projectiles for
// removal.
type ProjectileSystem struct {
	Physics *physics.World
	DT      time.Duration
}

func NewProjectileSystem(pw *physics.World) *ProjectileSystem {
	return &ProjectileSystem{Physics: pw}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pc *component.Projectile, t *component.Transform) {
		p := pc.Projectile
		if p == nil {
			return
		}
		if !p.Spent() && s.DT > 0 {
			p.Advance(s.DT)
		}
		if p.Spent() {
			if !ecs.Has(w, e, component.DestroyedComponent.Kind()) {
				log.Debug("projectile: expired", "tag", p.Tag, "x", p.Pos.X, "y", p.Pos.Y)
				_ = ecs.Add(w, e, component.DestroyedComponent.Kind(), &component.Destroyed{})
			}
			return
		}
		t.X, t.Y = p.Pos.X, p.Pos.Y
		if s.Physics != nil {
			s.Physics.SetPosition(uint64(e), p.Pos)
		}
	})
}
