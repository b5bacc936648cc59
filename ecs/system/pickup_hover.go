package system

import (
	"math"

	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
)

const (
	hoverAmplitude = 0.15
	// radians per second
	hoverSpeed = 4.8
)

// PickupHoverSystem bobs power-ups around their spawn height. The collider
// stays put; only the drawn position moves.
type PickupHoverSystem struct {
	// DT is the scaled frame time in seconds.
	DT float64
}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
		if !p.Initialized {
			p.BaseY = t.Y
			p.Initialized = true
			if p.BobAmplitude == 0 {
				p.BobAmplitude = hoverAmplitude
			}
			if p.BobSpeed == 0 {
				p.BobSpeed = hoverSpeed
			}
		}

		p.BobPhase = math.Mod(p.BobPhase+p.BobSpeed*s.DT, 2*math.Pi)
		t.Y = p.BaseY + math.Sin(p.BobPhase)*p.BobAmplitude
	})
}
