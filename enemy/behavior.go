// Package enemy implements the combat state machine shared by the four
// enemy variants and the trigger relay that feeds it.
package enemy

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/timer"
)

// Host is the engine side of an enemy: it spawns what the enemy fires,
// draws the damage tint, and removes the enemy once destroyed.
type Host interface {
	Launch(from *Behavior, p *combat.Projectile)
	Flash(b *Behavior, on bool)
	Destroyed(b *Behavior)
}

// Deps are the collaborators shared by every enemy in a level.
type Deps struct {
	Scheduler *timer.Scheduler
	Resolver  *combat.Resolver
	Host      Host
	Rand      *rand.Rand
}

// State is the coarse state of a behavior.
type State int

const (
	Idle State = iota
	Attacking
	Cooldown
	Destroyed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Attacking:
		return "attacking"
	case Cooldown:
		return "cooldown"
	case Destroyed:
		return "destroyed"
	}
	return "unknown"
}

// pattern is the variant-specific part of the state machine.
type pattern interface {
	// cycle is one pass of the attack loop. It must re-arm itself with
	// r.Wait.
	cycle(b *Behavior, r *timer.Routine)
	// lost runs when the player leaves the detector, after attacking has
	// been cleared.
	lost(b *Behavior)
	moved(b *Behavior, pos common.Vec)
	update(b *Behavior)
}

// Behavior is one enemy.
type Behavior struct {
	Pos common.Vec
	// UserData is owned by the host, typically the entity id.
	UserData any

	target  *combat.Target
	cfg     Config
	pattern pattern

	sched    *timer.Scheduler
	resolver *combat.Resolver
	host     Host
	rng      *rand.Rand

	attacking   bool
	fireReady   bool
	facingRight bool

	hasPlayer bool
	player    common.Vec

	cycles   []*timer.Routine
	cooldown timer.Token
	flash    timer.Token
}

// New returns an idle enemy of category c at pos, facing left.
func New(c combat.Category, pos common.Vec, cfg Config, deps Deps) *Behavior {
	health := cfg.Health
	if health <= 0 {
		health = 2
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	b := &Behavior{
		Pos:       pos,
		target:    combat.NewTarget(c, health),
		cfg:       cfg,
		sched:     deps.Scheduler,
		resolver:  deps.Resolver,
		host:      deps.Host,
		rng:       rng,
		fireReady: true,
	}
	switch c {
	case combat.Glass:
		b.pattern = &glass{cfg: cfg.Glass}
	case combat.Organic:
		b.pattern = &organic{cfg: cfg.Organic}
	case combat.PaperCardboard:
		b.pattern = &paper{cfg: cfg.Paper}
	default:
		b.pattern = &plastic{cfg: cfg.Plastic}
	}
	return b
}

func (b *Behavior) Category() combat.Category { return b.target.Category }
func (b *Behavior) Health() int               { return b.target.Health }
func (b *Behavior) Destroyed() bool           { return b.target.Destroyed() }
func (b *Behavior) Attacking() bool           { return b.attacking }
func (b *Behavior) FireReady() bool           { return b.fireReady }
func (b *Behavior) FacingRight() bool         { return b.facingRight }

// LastKnownPlayer returns the last position the detector reported.
func (b *Behavior) LastKnownPlayer() (common.Vec, bool) {
	return b.player, b.hasPlayer
}

// State summarises the flags for debugging and the host HUD.
func (b *Behavior) State() State {
	switch {
	case b.Destroyed():
		return Destroyed
	case b.attacking && !b.fireReady:
		return Cooldown
	case b.attacking:
		return Attacking
	}
	return Idle
}

// ActiveCycles counts attack loops still scheduled.
func (b *Behavior) ActiveCycles() int {
	n := 0
	for _, r := range b.cycles {
		if !r.Done() {
			n++
		}
	}
	return n
}

// PlayerDetected starts the attack cycle unless one is already running.
func (b *Behavior) PlayerDetected(pos common.Vec) {
	if b.Destroyed() || b.attacking {
		return
	}
	b.player, b.hasPlayer = pos, true
	b.attacking = true
	b.startCycle()
}

// PlayerLost clears the attacking flag. Whether the running cycle stops now
// or at its next cooldown depends on the variant.
func (b *Behavior) PlayerLost() {
	if b.Destroyed() {
		return
	}
	b.attacking = false
	b.pattern.lost(b)
}

// PlayerMoved caches the player position and turns to face it.
func (b *Behavior) PlayerMoved(pos common.Vec) {
	if b.Destroyed() {
		return
	}
	b.player, b.hasPlayer = pos, true
	b.face(pos)
	b.pattern.moved(b, pos)
}

// Update runs per-frame movement. Call it after the scheduler has advanced.
func (b *Behavior) Update() {
	if b.Destroyed() {
		return
	}
	b.pattern.update(b)
}

// Hit handles a projectile touching the enemy. Enemy bullets pass through.
func (b *Behavior) Hit(p *combat.Projectile) combat.Outcome {
	if b.Destroyed() || p == nil || !p.Tag.IsPlayerShot() {
		return combat.OutcomeIgnored
	}
	outcome := b.resolver.Resolve(b.target, p)
	switch outcome {
	case combat.OutcomeWounded:
		b.startFlash()
	case combat.OutcomeKilled:
		b.destroy()
	}
	return outcome
}

func (b *Behavior) face(pos common.Vec) {
	if pos.X > b.Pos.X && !b.facingRight {
		b.facingRight = true
	}
	if pos.X < b.Pos.X && b.facingRight {
		b.facingRight = false
	}
}

func (b *Behavior) startCycle() {
	live := b.cycles[:0]
	for _, r := range b.cycles {
		if !r.Done() {
			live = append(live, r)
		}
	}
	b.cycles = live
	r := timer.Start(b.sched, func(r *timer.Routine) { b.pattern.cycle(b, r) })
	if !r.Done() {
		b.cycles = append(b.cycles, r)
	}
}

func (b *Behavior) stopCycles() {
	for _, r := range b.cycles {
		r.Stop()
	}
	b.cycles = b.cycles[:0]
}

// startCooldown clears fire-ready for d. With checkAttacking the cooldown
// also ends every cycle if the player was lost meanwhile.
func (b *Behavior) startCooldown(d time.Duration, checkAttacking bool) {
	b.fireReady = false
	b.cooldown = b.sched.After(d, func() {
		b.cooldown = 0
		b.fireReady = true
		if checkAttacking && !b.attacking {
			b.stopCycles()
		}
	})
}

func (b *Behavior) startFlash() {
	if b.host == nil {
		return
	}
	if b.flash != 0 {
		b.sched.Cancel(b.flash)
	}
	b.host.Flash(b, true)
	b.flash = b.sched.After(b.cfg.FlashDuration, func() {
		b.flash = 0
		b.host.Flash(b, false)
	})
}

func (b *Behavior) destroy() {
	b.attacking = false
	b.stopCycles()
	if b.cooldown != 0 {
		b.sched.Cancel(b.cooldown)
		b.cooldown = 0
	}
	if b.flash != 0 {
		b.sched.Cancel(b.flash)
		b.flash = 0
	}
	log.Debug("enemy: destroyed", "category", b.Category(), "x", b.Pos.X, "y", b.Pos.Y)
	if b.host != nil {
		b.host.Destroyed(b)
	}
}

func (b *Behavior) launch(p *combat.Projectile) {
	p.Tag = combat.TagEnemyBullet
	if b.host != nil {
		b.host.Launch(b, p)
	}
}

// offset mirrors a right-facing offset to the current facing.
func (b *Behavior) offset(o common.Vec) common.Vec {
	if !b.facingRight {
		o.X = -o.X
	}
	return b.Pos.Add(o)
}
