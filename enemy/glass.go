package enemy

import (
	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/kinematics"
	"github.com/milk9111/wastesorter/timer"
)

// glass drops a volley of shards from distinct launch points above itself.
// Losing the player only clears the attacking flag; the loop ends when the
// next cooldown elapses.
type glass struct {
	cfg GlassConfig
}

func (g *glass) cycle(b *Behavior, r *timer.Routine) {
	if b.fireReady {
		for _, idx := range g.pick(b) {
			b.launch(&combat.Projectile{
				Pos:    b.Pos.Add(g.cfg.LaunchPoints[idx]),
				Motion: kinematics.NewLinear(common.V(0, -1), g.cfg.FallSpeed),
				TTL:    g.cfg.TTL,
			})
		}
		b.startCooldown(g.cfg.Cooldown, true)
	}
	r.Wait(g.cfg.Period, func(r *timer.Routine) { g.cycle(b, r) })
}

// pick samples launch point indices without replacement.
func (g *glass) pick(b *Behavior) []int {
	n := g.cfg.Shots
	if n > len(g.cfg.LaunchPoints) {
		n = len(g.cfg.LaunchPoints)
	}
	return b.rng.Perm(len(g.cfg.LaunchPoints))[:n]
}

func (g *glass) lost(b *Behavior)                  {}
func (g *glass) moved(b *Behavior, pos common.Vec) {}
func (g *glass) update(b *Behavior)                {}
