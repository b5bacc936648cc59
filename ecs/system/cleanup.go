package system

import (
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/physics"
)

// CleanupSystem removes every entity flagged Destroyed along with its collider.
type CleanupSystem struct {
	Physics *physics.World
}

func NewCleanupSystem(pw *physics.World) *CleanupSystem {
	return &CleanupSystem{Physics: pw}
}

func (s *CleanupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.DestroyedComponent.Kind()) {
		if s.Physics != nil {
			s.Physics.Remove(uint64(e))
		}
		ecs.DestroyEntity(w, e)
	}
}
