package enemy

import (
	"time"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/kinematics"
	"github.com/milk9111/wastesorter/timer"
)

// paper slides sideways when the player gets close and fires aimed shots
// while standing still. Losing the player stops the loop at once.
type paper struct {
	cfg PaperConfig

	sliding    bool
	slideStart time.Duration
	from, to   common.Vec
}

func (p *paper) cycle(b *Behavior, r *timer.Routine) {
	if !p.sliding && b.fireReady && b.hasPlayer {
		origin := b.Pos.Add(p.cfg.Emit)
		dir := b.player.Sub(origin).Normalize()
		b.launch(&combat.Projectile{
			Pos:    origin,
			Motion: kinematics.NewLinear(dir, p.cfg.Speed),
			TTL:    p.cfg.TTL,
		})
		b.startCooldown(p.cfg.Cooldown, true)
	}
	r.Wait(p.cfg.Period, func(r *timer.Routine) { p.cycle(b, r) })
}

func (p *paper) lost(b *Behavior) {
	b.stopCycles()
}

// moved starts a slide of SlideOffset toward the player's side when the
// player is within SlideRange.
func (p *paper) moved(b *Behavior, pos common.Vec) {
	if p.sliding || pos.Dist(b.Pos) > p.cfg.SlideRange {
		return
	}
	p.sliding = true
	p.slideStart = b.sched.Now()
	p.from = b.Pos
	p.to = b.Pos
	switch {
	case pos.X < b.Pos.X:
		p.to.X -= p.cfg.SlideOffset
	case pos.X > b.Pos.X:
		p.to.X += p.cfg.SlideOffset
	}
}

func (p *paper) update(b *Behavior) {
	if !p.sliding {
		return
	}
	elapsed := b.sched.Now() - p.slideStart
	if elapsed >= p.cfg.SlideTime || p.cfg.SlideTime <= 0 {
		b.Pos = p.to
		p.sliding = false
		return
	}
	b.Pos = common.LerpVec(p.from, p.to, float64(elapsed)/float64(p.cfg.SlideTime))
}

// Sliding reports whether b is a paper-cardboard enemy mid-slide.
func (b *Behavior) Sliding() bool {
	p, ok := b.pattern.(*paper)
	return ok && p.sliding
}
