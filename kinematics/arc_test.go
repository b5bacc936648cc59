package kinematics

import (
	"math"
	"testing"

	"github.com/milk9111/wastesorter/common"
)

const eps = 1e-9

func TestArcHeightShape(t *testing.T) {
	cases := []struct {
		name  string
		start common.Vec
		end   common.Vec
		scale float64
	}{
		{"rightward", common.V(0, 0), common.V(10, 0), 1},
		{"leftward", common.V(4, 2), common.V(-6, -1), 2.5},
		{"short", common.V(0, 0), common.V(3, 5), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultArcConfig
			cfg.Scale = c.scale
			a := NewArc(c.start, c.end, cfg)
			mid := (c.start.X + c.end.X) / 2
			if h := a.Height(mid); math.Abs(h-c.scale) > eps {
				t.Fatalf("midpoint height %v want %v", h, c.scale)
			}
			if h := a.Height(c.start.X); math.Abs(h) > eps {
				t.Fatalf("start height %v want 0", h)
			}
			if h := a.Height(c.end.X); math.Abs(h) > eps {
				t.Fatalf("end height %v want 0", h)
			}
		})
	}
}

func TestArcSpeedSelection(t *testing.T) {
	cases := []struct {
		dx   float64
		want float64
	}{
		{4, 8.5},
		{-4, 8.5},
		{6.5, 8.5},
		{10, 12.5},
		{-10, 12.5},
	}
	for _, c := range cases {
		a := NewArc(common.V(0, 0), common.V(c.dx, 0), DefaultArcConfig)
		if a.Speed != c.want {
			t.Fatalf("dx=%v speed %v want %v", c.dx, a.Speed, c.want)
		}
	}
}

func TestArcStepReachesTarget(t *testing.T) {
	start := common.V(0, 1)
	target := common.V(10, -2)
	a := NewArc(start, target, DefaultArcConfig)
	pos := start
	dt := 1.0 / 60
	steps := 0
	for {
		next, done := a.Step(pos, dt)
		if next.X < pos.X {
			t.Fatalf("x moved backwards: %v -> %v", pos.X, next.X)
		}
		pos = next
		steps++
		if done {
			break
		}
		if steps > 1000 {
			t.Fatal("arc never arrived")
		}
	}
	if pos != target {
		t.Fatalf("final position %v want %v", pos, target)
	}
	// 10 units at 12.5 u/s takes 0.8s, about 48 frames.
	if steps < 47 || steps > 49 {
		t.Fatalf("expected about 48 steps, got %d", steps)
	}
}

func TestArcHeadingFollowsVelocity(t *testing.T) {
	a := NewArc(common.V(0, 0), common.V(10, 0), DefaultArcConfig)
	next, _ := a.Step(common.V(0, 0), 0.1)
	if a.Heading() <= 0 || a.Heading() >= math.Pi/2 {
		t.Fatalf("rising lob should head up-right, got %v (pos %v)", a.Heading(), next)
	}
}

func TestArcDegenerateDropsOnTarget(t *testing.T) {
	a := NewArc(common.V(2, 5), common.V(2, 0), DefaultArcConfig)
	if !a.Degenerate() {
		t.Fatal("expected degenerate arc")
	}
	if h := a.Height(2); h != 0 || math.IsNaN(h) {
		t.Fatalf("degenerate height should be 0, got %v", h)
	}
	next, done := a.Step(common.V(2, 5), 1.0/60)
	if !done || next != a.Target {
		t.Fatalf("expected immediate drop to target, got %v done=%v", next, done)
	}
	if math.Abs(a.Heading()+math.Pi/2) > eps {
		t.Fatalf("expected downward heading, got %v", a.Heading())
	}
}

func TestLinearStep(t *testing.T) {
	l := NewLinear(common.V(1, 0), 10)
	next, done := l.Step(common.V(0, 0), 0.5)
	if done || next != common.V(5, 0) {
		t.Fatalf("unexpected step %v done=%v", next, done)
	}
	if l.Heading() != 0 {
		t.Fatalf("expected heading 0, got %v", l.Heading())
	}
}
