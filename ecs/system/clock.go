package system

import (
	"time"

	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/timer"
)

// ClockSystem advances the game clock, running every due continuation.
type ClockSystem struct {
	Clock *timer.Scheduler
	DT    time.Duration
}

func NewClockSystem(clock *timer.Scheduler) *ClockSystem {
	return &ClockSystem{Clock: clock}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if s.Clock == nil {
		return
	}
	s.Clock.Advance(s.DT)
}
