package entity

import (
	"image/color"
	"math/rand"
	"time"

	"golang.org/x/image/colornames"

	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
)

var (
	floorFallback       color.Color = colornames.Royalblue
	endPointFallback    color.Color = colornames.Violet
	powerUpDmgFallback  color.Color = colornames.Darkorange
	powerUpLifeFallback color.Color = colornames.Crimson
)

const (
	sparkLife = 300 * time.Millisecond
	burstLife = 500 * time.Millisecond
	popupLife = 750 * time.Millisecond
)

// NewSparks emits a short fan of particles from a powered shot's muzzle.
func NewSparks(w *ecs.World, rng *rand.Rand, pos common.Vec, facingRight bool, col color.Color) {
	dir := 1.0
	if !facingRight {
		dir = -1
	}
	for i := 0; i < 6; i++ {
		newParticle(w, pos, component.Particle{
			VX: dir * (0.08 + rng.Float64()*0.12),
			VY: (rng.Float64() - 0.5) * 0.12,
		}, col, 0.15, sparkLife)
	}
}

// NewBurst scatters particles where an enemy was destroyed.
func NewBurst(w *ecs.World, rng *rand.Rand, pos common.Vec, col color.Color) {
	for i := 0; i < 12; i++ {
		newParticle(w, pos, component.Particle{
			VX: (rng.Float64() - 0.5) * 0.3,
			VY: rng.Float64() * 0.25,
		}, col, 0.25, burstLife)
	}
}

func newParticle(w *ecs.World, pos common.Vec, p component.Particle, col color.Color, size float64, life time.Duration) {
	entity := ecs.CreateEntity(w)
	_ = ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y})
	_ = ecs.Add(w, entity, component.ParticleComponent.Kind(), &p)
	_ = ecs.Add(w, entity, component.RenderComponent.Kind(), &component.Render{Color: col, Width: size, Height: size, Layer: 30})
	_ = ecs.Add(w, entity, component.LifetimeComponent.Kind(), &component.Lifetime{Left: life, Total: life})
}

// NewPopup floats text such as a score delta above pos.
func NewPopup(w *ecs.World, pos common.Vec, text string, col color.Color) ecs.Entity {
	entity := ecs.CreateEntity(w)
	_ = ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y + 1.5})
	_ = ecs.Add(w, entity, component.PopupComponent.Kind(), &component.Popup{Text: text, Color: col, Rise: 0.03})
	_ = ecs.Add(w, entity, component.LifetimeComponent.Kind(), &component.Lifetime{Left: popupLife, Total: popupLife})
	return entity
}
