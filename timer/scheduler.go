package timer

import (
	"container/heap"
	"time"
)

// Token identifies a scheduled task. The zero Token never refers to a task.
type Token uint64

type task struct {
	at    time.Duration
	seq   uint64
	token Token
	fn    func()
	index int
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].at == h[j].at {
		return h[i].seq < h[j].seq
	}
	return h[i].at < h[j].at
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler runs delayed callbacks against a game clock on a single logical
// thread. Game time only advances through Advance, so a paused scheduler
// suspends every pending continuation.
type Scheduler struct {
	now    time.Duration
	scale  float64
	paused bool
	seq    uint64

	queue   taskHeap
	byToken map[Token]*task
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		scale:   1,
		byToken: make(map[Token]*task),
	}
}

// Now returns elapsed game time.
func (s *Scheduler) Now() time.Duration {
	if s == nil {
		return 0
	}
	return s.now
}

// After schedules fn to run once d of game time has elapsed. Negative delays
// are treated as zero.
func (s *Scheduler) After(d time.Duration, fn func()) Token {
	if s == nil || fn == nil {
		return 0
	}
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &task{at: s.now + d, seq: s.seq, token: Token(s.seq), fn: fn}
	heap.Push(&s.queue, t)
	s.byToken[t.token] = t
	return t.token
}

// Cancel removes a pending task. It reports false when the task already ran
// or was cancelled before.
func (s *Scheduler) Cancel(tok Token) bool {
	if s == nil || tok == 0 {
		return false
	}
	t, ok := s.byToken[tok]
	if !ok {
		return false
	}
	delete(s.byToken, tok)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Pending reports whether tok is still waiting to run.
func (s *Scheduler) Pending(tok Token) bool {
	if s == nil {
		return false
	}
	_, ok := s.byToken[tok]
	return ok
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.queue)
}

// Advance moves game time forward by dt scaled by the time scale and runs
// every task that becomes due, in due-time order. Ties run in scheduling
// order. The clock is set to each task's due time before it runs so that
// follow-up tasks are scheduled relative to it.
func (s *Scheduler) Advance(dt time.Duration) int {
	if s == nil || s.paused || dt <= 0 || s.scale <= 0 {
		return 0
	}
	target := s.now + time.Duration(float64(dt)*s.scale)
	ran := 0
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.at > target {
			break
		}
		heap.Pop(&s.queue)
		delete(s.byToken, next.token)
		if next.at > s.now {
			s.now = next.at
		}
		next.fn()
		ran++
	}
	s.now = target
	return ran
}

func (s *Scheduler) Pause() {
	if s != nil {
		s.paused = true
	}
}

func (s *Scheduler) Resume() {
	if s != nil {
		s.paused = false
	}
}

func (s *Scheduler) Paused() bool {
	return s != nil && s.paused
}

// SetTimeScale sets the multiplier applied to Advance. Zero freezes time
// the same way Pause does.
func (s *Scheduler) SetTimeScale(scale float64) {
	if s == nil {
		return
	}
	if scale < 0 {
		scale = 0
	}
	s.scale = scale
}

func (s *Scheduler) TimeScale() float64 {
	if s == nil {
		return 0
	}
	return s.scale
}

// Seconds converts a float number of seconds, as found in tuning data, to a
// duration.
func Seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
