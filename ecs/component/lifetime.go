package component

import "time"

// Lifetime removes short-lived effects (particles, popups) once Left runs
// out. It counts scaled game time, so effects freeze with the game.
type Lifetime struct {
	Left  time.Duration
	Total time.Duration
}

// Fraction is the share of the lifetime still remaining, in [0, 1].
func (l *Lifetime) Fraction() float64 {
	if l.Total <= 0 {
		return 0
	}
	f := float64(l.Left) / float64(l.Total)
	if f < 0 {
		return 0
	}
	return f
}

var LifetimeComponent = NewComponent[Lifetime]()
