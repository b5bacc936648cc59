package combat

import (
	"github.com/charmbracelet/log"

	"github.com/milk9111/wastesorter/common"
)

// Ledger receives the scoring side effects of combat. score.Accumulator
// implements it. The returned ints are the score deltas applied.
type Ledger interface {
	RecordHit(c Category, lethal bool) int
	RecordMismatch(c Category) int
	RecordHurt()
	RecordDeath()
}

// Resolver applies the category-matching rule. It is the only writer of
// enemy and player health.
type Resolver struct {
	ledger Ledger
	events *Emitter
}

// NewResolver returns a resolver that records into ledger and reports to
// events. Either may be nil.
func NewResolver(ledger Ledger, events *Emitter) *Resolver {
	return &Resolver{ledger: ledger, events: events}
}

// Events returns the emitter the resolver reports to, creating one on first
// use.
func (r *Resolver) Events() *Emitter {
	if r.events == nil {
		r.events = &Emitter{}
	}
	return r.events
}

// Classify is the pure matching rule: it reports the outcome a hit would
// have on a target of the given category and health without applying it.
func Classify(target Category, health int, shot Category, powered bool) Outcome {
	if shot != target || !shot.Valid() {
		return OutcomeMismatched
	}
	if powered || health-1 <= 0 {
		return OutcomeKilled
	}
	return OutcomeWounded
}

// ResolveHit applies a player shot of category shot to t.
func (r *Resolver) ResolveHit(t *Target, shot Category, powered bool, at common.Vec) Outcome {
	if t.Destroyed() {
		return OutcomeIgnored
	}

	outcome := Classify(t.Category, t.Health, shot, powered)
	evt := Event{Category: t.Category, Powered: powered, Pos: at}

	switch outcome {
	case OutcomeMismatched:
		evt.Type = EventMismatch
		evt.ScoreDelta = r.recordMismatch(t.Category)
	case OutcomeWounded:
		t.Health--
		evt.Type = EventHit
		evt.ScoreDelta = r.recordHit(t.Category, false)
	case OutcomeKilled:
		t.Health = 0
		t.destroyed = true
		evt.Type = EventKilled
		evt.ScoreDelta = r.recordHit(t.Category, true)
		log.Debug("combat: target destroyed", "category", t.Category, "powered", powered)
	}
	evt.Health = t.Health
	r.Events().Emit(evt)
	return outcome
}

// Resolve applies an incoming projectile to t. Projectiles that carry no
// player category (enemy bullets, unknown tags) count as mismatches.
func (r *Resolver) Resolve(t *Target, p *Projectile) Outcome {
	if p == nil {
		return OutcomeIgnored
	}
	c, ok := p.Category()
	if !ok {
		c = invalidCategory
	}
	return r.ResolveHit(t, c, p.Powered, p.Pos)
}

// RecordMismatch scores a wrong-category hit against a target without
// touching its health.
func (r *Resolver) RecordMismatch(c Category, at common.Vec) {
	delta := r.recordMismatch(c)
	r.Events().Emit(Event{Type: EventMismatch, Category: c, ScoreDelta: delta, Pos: at})
}

// HurtPlayer removes one health point from v. It reports whether the hit
// was lethal. Callers gate invulnerability.
func (r *Resolver) HurtPlayer(v *Vitals, at common.Vec) (dead bool) {
	if v == nil || v.Dead() {
		return false
	}
	v.Health--
	if r.ledger != nil {
		r.ledger.RecordHurt()
	}
	evt := Event{Type: EventPlayerHurt, Health: v.Health, Pos: at}
	if v.Dead() {
		if r.ledger != nil {
			r.ledger.RecordDeath()
		}
		evt.Type = EventPlayerDied
		log.Debug("combat: player died")
	}
	r.Events().Emit(evt)
	return v.Dead()
}

// HealPlayer adds one health point when below max.
func (r *Resolver) HealPlayer(v *Vitals) bool {
	if v == nil || v.Dead() || v.Full() {
		return false
	}
	v.Health++
	r.Events().Emit(Event{Type: EventPlayerHealed, Health: v.Health})
	return true
}

func (r *Resolver) recordHit(c Category, lethal bool) int {
	if r.ledger == nil {
		return 0
	}
	return r.ledger.RecordHit(c, lethal)
}

func (r *Resolver) recordMismatch(c Category) int {
	if r.ledger == nil {
		return 0
	}
	return r.ledger.RecordMismatch(c)
}

const invalidCategory Category = -1
