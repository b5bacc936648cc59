package system

import (
	"time"

	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
)

// LifetimeSystem counts effect lifetimes down by DT and removes what has
// expired.
type LifetimeSystem struct {
	DT time.Duration
}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World) {
	if w == nil || s.DT <= 0 {
		return
	}

	ecs.ForEach(w, component.LifetimeComponent.Kind(), func(e ecs.Entity, l *component.Lifetime) {
		l.Left -= s.DT
		if l.Left <= 0 {
			MarkDestroyed(w, e)
		}
	})
}
