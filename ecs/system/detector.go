package system

import (
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/physics"
)

// DetectorSystem relays trigger events on enemy detectors to their behaviors.
type DetectorSystem struct{}

func NewDetectorSystem() *DetectorSystem {
	return &DetectorSystem{}
}

func (s *DetectorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range Contacts(w) {
		self := ecs.Entity(evt.Self)
		d, ok := ecs.Get(w, self, component.DetectorComponent.Kind())
		if !ok || d.Detector == nil || ecs.Has(w, self, component.DestroyedComponent.Kind()) {
			continue
		}
		switch evt.Kind {
		case physics.Enter:
			d.Detector.Enter(evt.OtherTag, evt.OtherPos)
		case physics.Stay:
			d.Detector.Stay(evt.OtherTag, evt.OtherPos)
		case physics.Exit:
			d.Detector.Exit(evt.OtherTag)
		}
	}
}
