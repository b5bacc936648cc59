package scenario

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/milk9111/wastesorter/enemy"
	"github.com/milk9111/wastesorter/levels"
	"github.com/milk9111/wastesorter/player"
	"github.com/milk9111/wastesorter/prefabs"
	"github.com/milk9111/wastesorter/score"
	"github.com/milk9111/wastesorter/sim"
)

func newRunner(t *testing.T) *Runner {
	t.Helper()
	tuning := prefabs.Tuning{
		Player:  player.DefaultConfig(),
		Enemies: enemy.DefaultConfig(),
		Scoring: score.DefaultRules(),
	}
	s, err := sim.New(sim.Options{Level: levels.Tutorial, Tuning: &tuning, Visuals: &prefabs.VisualsSpec{}, Seed: 7})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return NewRunner(s)
}

func TestSmokeScript(t *testing.T) {
	r := newRunner(t)
	res, err := r.RunScript(context.Background(), "smoke")
	if err != nil {
		t.Fatalf("run smoke: %v", err)
	}
	if res.Frames != 120 {
		t.Fatalf("expected 120 frames, got %d", res.Frames)
	}
	if res.Played != 90*(time.Second/60) {
		t.Fatalf("expected the paused frames not to count, played %v", res.Played)
	}
	if res.Score != 100 {
		t.Fatalf("expected the organic shot to wound for 100, got %d", res.Score)
	}
	if res.Level != levels.Tutorial {
		t.Fatalf("expected to still be in the tutorial, got %q", res.Level)
	}
}

func TestScriptFunctions(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr bool
		check   func(t *testing.T, r Result)
	}{
		{
			name: "wait advances frames",
			src:  `n := wait(30)`,
			check: func(t *testing.T, r Result) {
				if r.Frames != 30 || r.Vars["n"] != int64(30) {
					t.Fatalf("expected 30 frames, got %d (%v)", r.Frames, r.Vars["n"])
				}
			},
		},
		{
			name: "move walks right",
			src:  `move(1, 30)`,
			check: func(t *testing.T, r Result) {
				if r.Frames != 30 {
					t.Fatalf("expected 30 frames, got %d", r.Frames)
				}
			},
		},
		{
			name: "unknown category is rejected",
			src: `ok := fire("metal")
wait(1)`,
			check: func(t *testing.T, r Result) {
				if r.Vars["ok"] != false {
					t.Fatalf("expected fire to refuse an unknown category, got %v", r.Vars["ok"])
				}
			},
		},
		{
			name: "queries return current values",
			src: `h := health()
s := score()
g := grade()
l := level()
e := enemies()
f := finished()`,
			check: func(t *testing.T, r Result) {
				want := map[string]any{
					"h": int64(5),
					"s": int64(0),
					"g": float64(0),
					"l": "tutorial",
					"e": int64(2),
					"f": false,
				}
				for k, v := range want {
					if r.Vars[k] != v {
						t.Errorf("%s: expected %v (%T), got %v (%T)", k, v, v, r.Vars[k], r.Vars[k])
					}
				}
			},
		},
		{
			name: "pause stops game time",
			src: `pause()
wait(30)
resume()
wait(30)`,
			check: func(t *testing.T, r Result) {
				if r.Frames != 60 {
					t.Fatalf("expected 60 frames, got %d", r.Frames)
				}
				if r.Played != 30*(time.Second/60) {
					t.Fatalf("expected 30 frames of game time, got %v", r.Played)
				}
			},
		},
		{
			name:    "wait needs an argument",
			src:     `wait()`,
			wantErr: true,
		},
		{
			name:    "compile error",
			src:     `wait(`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRunner(t)
			res, err := r.Run(context.Background(), []byte(tc.src))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if tc.check != nil {
				tc.check(t, res)
			}
		})
	}
}

func TestRunHonoursContext(t *testing.T) {
	r := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Run(ctx, []byte(`for { wait(1) }`))
	if err == nil {
		t.Fatal("expected the cancelled context to stop the script")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNilSession(t *testing.T) {
	var r *Runner
	if _, err := r.Run(context.Background(), []byte(`wait(1)`)); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}
