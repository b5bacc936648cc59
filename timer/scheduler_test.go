package timer

import (
	"testing"
	"time"
)

func TestSchedulerOrdering(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.After(2*time.Second, func() { got = append(got, "b") })
	s.After(time.Second, func() { got = append(got, "a") })
	s.After(2*time.Second, func() { got = append(got, "c") })

	if ran := s.Advance(1500 * time.Millisecond); ran != 1 {
		t.Fatalf("expected 1 task to run, got %d", ran)
	}
	s.Advance(time.Second)

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if s.Now() != 2500*time.Millisecond {
		t.Fatalf("expected clock at 2.5s, got %v", s.Now())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	tok := s.After(time.Second, func() { ran = true })
	if !s.Pending(tok) {
		t.Fatal("expected task pending")
	}
	if !s.Cancel(tok) {
		t.Fatal("cancel should succeed once")
	}
	if s.Cancel(tok) {
		t.Fatal("second cancel should be a no-op")
	}
	s.Advance(2 * time.Second)
	if ran {
		t.Fatal("cancelled task ran")
	}
}

func TestSchedulerNestedUsesDueTime(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration
	s.After(time.Second, func() {
		at = append(at, s.Now())
		s.After(500*time.Millisecond, func() { at = append(at, s.Now()) })
	})
	s.Advance(3 * time.Second)
	if len(at) != 2 || at[0] != time.Second || at[1] != 1500*time.Millisecond {
		t.Fatalf("unexpected run times %v", at)
	}
}

func TestSchedulerPauseAndScale(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(s *Scheduler)
		advance time.Duration
		wantRun bool
	}{
		{"paused", func(s *Scheduler) { s.Pause() }, 5 * time.Second, false},
		{"zero_scale", func(s *Scheduler) { s.SetTimeScale(0) }, 5 * time.Second, false},
		{"double_speed", func(s *Scheduler) { s.SetTimeScale(2) }, 500 * time.Millisecond, true},
		{"half_speed", func(s *Scheduler) { s.SetTimeScale(0.5) }, 1500 * time.Millisecond, false},
		{"resumed", func(s *Scheduler) { s.Pause(); s.Resume() }, time.Second, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewScheduler()
			ran := false
			s.After(time.Second, func() { ran = true })
			c.setup(s)
			s.Advance(c.advance)
			if ran != c.wantRun {
				t.Fatalf("ran=%v want %v", ran, c.wantRun)
			}
		})
	}
}

func TestRoutineStop(t *testing.T) {
	s := NewScheduler()
	count := 0
	var loop func(r *Routine)
	loop = func(r *Routine) {
		count++
		r.Wait(time.Second, loop)
	}
	r := Start(s, loop)
	if count != 1 {
		t.Fatalf("body should run immediately, count=%d", count)
	}
	s.Advance(2500 * time.Millisecond)
	if count != 3 {
		t.Fatalf("expected 3 iterations, got %d", count)
	}
	r.Stop()
	r.Stop()
	s.Advance(5 * time.Second)
	if count != 3 {
		t.Fatalf("stopped routine kept running, count=%d", count)
	}
	if !r.Done() {
		t.Fatal("expected routine done")
	}
}

func TestRoutineFinishesWithoutWait(t *testing.T) {
	s := NewScheduler()
	r := Start(s, func(r *Routine) {
		r.Wait(time.Second, func(r *Routine) {})
	})
	if r.Done() {
		t.Fatal("routine with a pending wait should not be done")
	}
	s.Advance(time.Second)
	if !r.Done() {
		t.Fatal("routine should finish after its last step")
	}
}
