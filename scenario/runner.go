// Package scenario drives a headless session from a tengo script. Scripts
// are linear play-tests: each call queues input or advances the game, and
// the script reads the score back to decide what to do next.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/player"
	"github.com/milk9111/wastesorter/prefabs"
	"github.com/milk9111/wastesorter/sim"
)

// MaxFrames bounds a single wait so a typo cannot hang a run.
const MaxFrames = 60 * 60 * common.TPS

var ErrNoSession = errors.New("scenario: nil session")

// Result summarises a finished run.
type Result struct {
	Level    string
	Frames   int
	Played   time.Duration
	Score    int
	Grade    float64
	Health   int
	Finished bool
	// Vars holds the script's globals after the run, by name.
	Vars map[string]any
}

// Runner binds one session to the script API.
type Runner struct {
	s  *sim.Session
	dt time.Duration

	move float64
	next player.Input

	frames int
}

func NewRunner(s *sim.Session) *Runner {
	return &Runner{s: s, dt: time.Second / common.TPS}
}

// RunScript loads a script through prefabs and runs it.
func (r *Runner) RunScript(ctx context.Context, name string) (Result, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return Result{}, fmt.Errorf("scenario: load %s: %w", name, err)
	}
	return r.Run(ctx, src)
}

// Run compiles and runs src to completion or until ctx is done.
func (r *Runner) Run(ctx context.Context, src []byte) (Result, error) {
	if r == nil || r.s == nil {
		return Result{}, ErrNoSession
	}
	script := tengo.NewScript(src)
	fns := r.functions()
	for name, fn := range fns {
		if err := script.Add(name, fn); err != nil {
			return Result{}, err
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return Result{}, fmt.Errorf("scenario: compile: %w", err)
	}
	runErr := compiled.RunContext(ctx)
	res := r.result()
	res.Vars = make(map[string]any)
	for _, v := range compiled.GetAll() {
		if _, builtin := fns[v.Name()]; builtin {
			continue
		}
		res.Vars[v.Name()] = v.Value()
	}
	if runErr != nil {
		return res, fmt.Errorf("scenario: run: %w", runErr)
	}
	return res, nil
}

func (r *Runner) result() Result {
	acc := r.s.Accumulator()
	return Result{
		Level:    r.s.LevelName(),
		Frames:   r.frames,
		Played:   r.s.Played(),
		Score:    acc.Score(),
		Grade:    acc.FinalGrade(),
		Health:   r.s.Player().Health(),
		Finished: r.s.Finished(),
	}
}

// step runs n frames with the held movement. One-shot inputs go out with
// the first frame only. It stops early once the session is over.
func (r *Runner) step(n int) int {
	ran := 0
	for ; ran < n && !r.s.Finished(); ran++ {
		in := r.next
		in.Move = r.move
		r.next = player.Input{}
		r.s.Tick(in, r.dt)
		r.frames++
	}
	return ran
}

func (r *Runner) functions() map[string]*tengo.UserFunction {
	fns := map[string]*tengo.UserFunction{}
	add := func(name string, fn tengo.CallableFunc) {
		fns[name] = &tengo.UserFunction{Name: name, Value: fn}
	}

	add("fire", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		c, err := combat.ParseCategory(objectAsString(args[0]))
		if err != nil {
			log.Warn("scenario: fire", "err", err)
			return tengo.FalseValue, nil
		}
		r.next.Fire = true
		r.next.Shot = c
		return tengo.TrueValue, nil
	})

	// move(dir) holds a direction; move(dir, frames) holds it for that many
	// frames and then stops.
	add("move", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		dir, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "dir", Expected: "float", Found: args[0].TypeName()}
		}
		r.move = common.Clamp(dir, -1, 1)
		if len(args) == 1 {
			return tengo.TrueValue, nil
		}
		n, err := frameArg(args[1])
		if err != nil {
			return nil, err
		}
		ran := r.step(n)
		r.move = 0
		return &tengo.Int{Value: int64(ran)}, nil
	})

	add("jump", func(args ...tengo.Object) (tengo.Object, error) {
		r.next.Jump = true
		return tengo.TrueValue, nil
	})

	add("wait", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		n, err := frameArg(args[0])
		if err != nil {
			return nil, err
		}
		return &tengo.Int{Value: int64(r.step(n))}, nil
	})

	add("pause", func(args ...tengo.Object) (tengo.Object, error) {
		r.s.Pause()
		return tengo.TrueValue, nil
	})
	add("resume", func(args ...tengo.Object) (tengo.Object, error) {
		r.s.Resume()
		return tengo.TrueValue, nil
	})

	add("score", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(r.s.Accumulator().Score())}, nil
	})
	add("grade", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: r.s.Accumulator().FinalGrade()}, nil
	})
	add("health", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(r.s.Player().Health())}, nil
	})

	add("level", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: r.s.LevelName()}, nil
	})
	add("finished", func(args ...tengo.Object) (tengo.Object, error) {
		return tengo.FromInterface(r.s.Finished())
	})
	add("enemies", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(r.s.Enemies())}, nil
	})
	add("position", func(args ...tengo.Object) (tengo.Object, error) {
		pos := r.s.Player().Pos
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: pos.X}, &tengo.Float{Value: pos.Y}}}, nil
	})
	add("ready", func(args ...tengo.Object) (tengo.Object, error) {
		return tengo.FromInterface(r.s.Player().FireReady())
	})
	return fns
}

func frameArg(obj tengo.Object) (int, error) {
	n, ok := tengo.ToInt(obj)
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: "frames", Expected: "int", Found: obj.TypeName()}
	}
	if n < 0 {
		n = 0
	}
	if n > MaxFrames {
		n = MaxFrames
	}
	return n, nil
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	if s, ok := obj.(*tengo.String); ok {
		return s.Value
	}
	return strings.Trim(obj.String(), "\"")
}
