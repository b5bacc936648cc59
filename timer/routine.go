package timer

import "time"

// Routine is a coroutine-style chain of delayed steps. Each step decides
// whether to wait and what runs next; Stop cancels the pending wait so no
// further step runs.
type Routine struct {
	s       *Scheduler
	pending Token
	done    bool
}

// Start runs body immediately and returns the routine handle. The routine is
// finished as soon as a step returns without calling Wait.
func Start(s *Scheduler, body func(r *Routine)) *Routine {
	r := &Routine{s: s}
	r.step(body)
	return r
}

func (r *Routine) step(body func(r *Routine)) {
	body(r)
	if r.pending == 0 {
		r.done = true
	}
}

// Wait schedules next after d. Only one wait may be pending at a time; a
// second call replaces the first.
func (r *Routine) Wait(d time.Duration, next func(r *Routine)) {
	if r == nil || r.done || next == nil {
		return
	}
	if r.pending != 0 {
		r.s.Cancel(r.pending)
	}
	r.pending = r.s.After(d, func() {
		r.pending = 0
		if r.done {
			return
		}
		r.step(next)
	})
}

// Stop ends the routine. Stopping twice is a no-op.
func (r *Routine) Stop() {
	if r == nil || r.done {
		return
	}
	r.done = true
	if r.pending != 0 {
		r.s.Cancel(r.pending)
		r.pending = 0
	}
}

// Done reports whether the routine finished or was stopped.
func (r *Routine) Done() bool {
	return r == nil || r.done
}
