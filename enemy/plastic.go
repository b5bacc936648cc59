package enemy

import (
	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/kinematics"
	"github.com/milk9111/wastesorter/timer"
)

// plastic lobs an arc at where the player was when it fired. The target is
// captured at launch and never updated in flight. Losing the player stops
// the loop at once; the cooldown does not look at the attacking flag.
type plastic struct {
	cfg PlasticConfig
}

func (p *plastic) cycle(b *Behavior, r *timer.Routine) {
	if b.fireReady && b.hasPlayer {
		b.launch(&combat.Projectile{
			Pos:    b.Pos,
			Motion: kinematics.NewArc(b.Pos, b.player, p.cfg.Arc),
			TTL:    p.cfg.TTL,
		})
		b.startCooldown(p.cfg.Cooldown, false)
	}
	r.Wait(p.cfg.Period, func(r *timer.Routine) { p.cycle(b, r) })
}

func (p *plastic) lost(b *Behavior) {
	b.stopCycles()
}

func (p *plastic) moved(b *Behavior, pos common.Vec) {}
func (p *plastic) update(b *Behavior)                {}
