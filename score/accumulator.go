// Package score tallies shots, hits and the running score of a play
// session, per level and across level restarts.
package score

import (
	"math"
	"time"

	"github.com/milk9111/wastesorter/combat"
)

// Rules are the fixed score deltas.
type Rules struct {
	Kill     int `yaml:"kill"`
	Wound    int `yaml:"wound"`
	Mismatch int `yaml:"mismatch"`
}

// DefaultRules returns +150 kill, +100 wound, -50 mismatch.
func DefaultRules() Rules {
	return Rules{Kill: 150, Wound: 100, Mismatch: -50}
}

// Tally is one set of per-category and shot counters.
type Tally struct {
	Attempts [len(combat.Categories)]int
	Hits     [len(combat.Categories)]int

	ShotsFired int
	ShotsHit   int
}

func (t *Tally) add(o Tally) {
	for i := range t.Attempts {
		t.Attempts[i] += o.Attempts[i]
		t.Hits[i] += o.Hits[i]
	}
	t.ShotsFired += o.ShotsFired
	t.ShotsHit += o.ShotsHit
}

// Accumulator is the session's score keeper. It is not safe for concurrent
// use; all writers run on the simulation thread.
type Accumulator struct {
	rules Rules
	clock func() time.Duration

	level  Tally
	totals Tally
	score  int

	hurt   int
	deaths int

	started   time.Duration
	ended     time.Duration
	completed bool

	Survey       Survey
	Satisfaction float64
}

// New returns an accumulator that reads game time from clock. A nil clock
// reads zero.
func New(rules Rules, clock func() time.Duration) *Accumulator {
	if clock == nil {
		clock = func() time.Duration { return 0 }
	}
	a := &Accumulator{rules: rules, clock: clock}
	a.started = clock()
	a.ended = a.started
	return a
}

// SetRules swaps the deltas applied from now on.
func (a *Accumulator) SetRules(r Rules) { a.rules = r }

// RecordShotFired counts a player shot.
func (a *Accumulator) RecordShotFired() {
	a.level.ShotsFired++
}

// RecordHit counts a category-matched hit and returns the score delta.
func (a *Accumulator) RecordHit(c combat.Category, lethal bool) int {
	if c.Valid() {
		a.level.Attempts[c]++
		a.level.Hits[c]++
	}
	a.level.ShotsHit++
	delta := a.rules.Wound
	if lethal {
		delta = a.rules.Kill
	}
	a.score += delta
	return delta
}

// RecordMismatch counts a wrong-category hit on an enemy of category c and
// returns the score delta. The score is not clamped.
func (a *Accumulator) RecordMismatch(c combat.Category) int {
	if c.Valid() {
		a.level.Attempts[c]++
	}
	a.score += a.rules.Mismatch
	return a.rules.Mismatch
}

func (a *Accumulator) RecordHurt()  { a.hurt++ }
func (a *Accumulator) RecordDeath() { a.deaths++ }

func (a *Accumulator) Score() int      { return a.score }
func (a *Accumulator) Hurt() int       { return a.hurt }
func (a *Accumulator) Deaths() int     { return a.deaths }
func (a *Accumulator) Level() Tally    { return a.level }
func (a *Accumulator) Totals() Tally   { return a.totals }
func (a *Accumulator) Completed() bool { return a.completed }

// Attempts returns the current level's attempts against category c.
func (a *Accumulator) Attempts(c combat.Category) int {
	if !c.Valid() {
		return 0
	}
	return a.level.Attempts[c]
}

// Hits returns the current level's hits against category c.
func (a *Accumulator) Hits(c combat.Category) int {
	if !c.Valid() {
		return 0
	}
	return a.level.Hits[c]
}

// FinalGrade is shots hit over shots fired on a 0..10 scale, truncated to
// two decimals. It is 0 when nothing was fired.
func (a *Accumulator) FinalGrade() float64 {
	if a.level.ShotsFired == 0 {
		return 0
	}
	ratio := float64(a.level.ShotsHit) / float64(a.level.ShotsFired)
	return math.Trunc(ratio*1000) / 100
}

// ResetLevel clears the current level's counters and score and restarts the
// level timer.
func (a *Accumulator) ResetLevel() {
	a.level = Tally{}
	a.score = 0
	a.started = a.clock()
	a.ended = a.started
}

// AccumulateTotals folds the current level into the totals. Call it before
// ResetLevel when a level is restarted.
func (a *Accumulator) AccumulateTotals() {
	a.totals.add(a.level)
}

// Restart is AccumulateTotals followed by ResetLevel.
func (a *Accumulator) Restart() {
	a.AccumulateTotals()
	a.ResetLevel()
}

// DiscardTutorial drops everything counted while playing the tutorial. The
// score is left for the results panel.
func (a *Accumulator) DiscardTutorial() {
	a.level = Tally{}
	a.totals = Tally{}
	a.hurt = 0
	a.deaths = 0
}

// MarkCompleted stamps the end time and sets the completion flag. Only the
// end of a real level calls it.
func (a *Accumulator) MarkCompleted() {
	a.ended = a.clock()
	a.completed = true
}

// Elapsed is the time between the last level start and completion.
func (a *Accumulator) Elapsed() time.Duration {
	return a.ended - a.started
}

var _ combat.Ledger = (*Accumulator)(nil)
