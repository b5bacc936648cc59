package sim

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"golang.org/x/image/colornames"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/ecs/entity"
	"github.com/milk9111/wastesorter/ecs/system"
	"github.com/milk9111/wastesorter/enemy"
)

// playerHost is the session side of the player controller.
type playerHost struct {
	s *Session
}

func (h *playerHost) Launch(p *combat.Projectile) {
	col := color.Color(colornames.White)
	if c, ok := p.Category(); ok {
		col = h.s.visuals.CategoryColor(c)
	}
	if _, err := entity.NewProjectile(h.s.world, h.s.physics, p, col); err != nil {
		log.Error("spawn player shot", "err", err)
	}
}

func (h *playerHost) Sparks(pos common.Vec, facingRight bool) {
	entity.NewSparks(h.s.world, h.s.rng, pos, facingRight, h.s.visuals.PowerUpDmg.Or(colornames.Orange))
}

func (h *playerHost) SetVisible(on bool) {
	if r, ok := ecs.Get(h.s.world, h.s.player, component.RenderComponent.Kind()); ok {
		r.Hidden = !on
	}
}

func (h *playerHost) SetVelocity(v common.Vec) {
	h.s.physics.SetVelocity(uint64(h.s.player), v)
}

func (h *playerHost) Died() {
	h.s.restart = true
}

func (h *playerHost) ReachedEnd() {
	h.s.advance = true
}

// enemyHost is the session side of every enemy.
type enemyHost struct {
	s *Session
}

func (h *enemyHost) Launch(from *enemy.Behavior, p *combat.Projectile) {
	if _, err := entity.NewProjectile(h.s.world, h.s.physics, p, h.s.visuals.Bullet.Or(colornames.Tomato)); err != nil {
		log.Error("spawn enemy bullet", "category", from.Category(), "err", err)
	}
}

func (h *enemyHost) Flash(b *enemy.Behavior, on bool) {
	e, ok := b.UserData.(ecs.Entity)
	if !ok {
		return
	}
	if flash, ok := ecs.Get(h.s.world, e, component.WhiteFlashComponent.Kind()); ok {
		flash.On = on
	}
}

// Destroyed removes the enemy together with its detector.
func (h *enemyHost) Destroyed(b *enemy.Behavior) {
	e, ok := b.UserData.(ecs.Entity)
	if !ok {
		return
	}
	w := h.s.world
	system.MarkDestroyed(w, e)
	ecs.ForEach(w, component.DetectorComponent.Kind(), func(d ecs.Entity, det *component.Detector) {
		if det.Owner == uint64(e) {
			system.MarkDestroyed(w, d)
		}
	})
	entity.NewBurst(w, h.s.rng, b.Pos, h.s.visuals.CategoryColor(b.Category()))
}

// popup turns scoring events into floating text.
func (s *Session) popup(evt combat.Event) {
	var text string
	pos := evt.Pos
	col := color.Color(colornames.White)
	switch evt.Type {
	case combat.EventHit, combat.EventKilled:
		text = fmt.Sprintf("+%d", evt.ScoreDelta)
		col = s.visuals.CategoryColor(evt.Category)
	case combat.EventMismatch:
		text = fmt.Sprintf("%d", evt.ScoreDelta)
		col = colornames.Red
	case combat.EventPlayerHealed:
		text = "+1"
		pos = s.ctrl.Pos
		col = s.visuals.PowerUpHP.Or(colornames.Crimson)
	default:
		return
	}
	entity.NewPopup(s.world, pos, text, col)
}
