package enemy

import (
	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/kinematics"
	"github.com/milk9111/wastesorter/timer"
)

// organic fires a three shot burst, alternating between its two emitters.
// The cooldown starts with the burst, so it overlaps it. Like glass it
// stops lazily: a burst in progress always completes.
type organic struct {
	cfg OrganicConfig
}

func (o *organic) cycle(b *Behavior, r *timer.Routine) {
	loop := func(r *timer.Routine) { o.cycle(b, r) }
	if !b.fireReady {
		r.Wait(o.cfg.Rest, loop)
		return
	}

	b.startCooldown(o.cfg.Cooldown, true)
	o.fire(b, o.cfg.EmitA)
	r.Wait(o.cfg.Gap, func(r *timer.Routine) {
		o.fire(b, o.cfg.EmitB)
		r.Wait(o.cfg.Gap, func(r *timer.Routine) {
			o.fire(b, o.cfg.EmitA)
			r.Wait(o.cfg.Rest, loop)
		})
	})
}

func (o *organic) fire(b *Behavior, emit common.Vec) {
	dir := common.V(-1, 0)
	if b.facingRight {
		dir = common.V(1, 0)
	}
	b.launch(&combat.Projectile{
		Pos:    b.offset(emit),
		Motion: kinematics.NewLinear(dir, o.cfg.Speed),
		TTL:    o.cfg.TTL,
	})
}

func (o *organic) lost(b *Behavior)                  {}
func (o *organic) moved(b *Behavior, pos common.Vec) {}
func (o *organic) update(b *Behavior)                {}
