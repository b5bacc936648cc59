// Package sim runs one play session without a window: it owns the world,
// the physics space, the game clock and the score, and steps them in a
// fixed order each frame.
package sim

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/ecs/system"
	"github.com/milk9111/wastesorter/levels"
	"github.com/milk9111/wastesorter/physics"
	"github.com/milk9111/wastesorter/player"
	"github.com/milk9111/wastesorter/prefabs"
	"github.com/milk9111/wastesorter/score"
	"github.com/milk9111/wastesorter/session"
	"github.com/milk9111/wastesorter/timer"
)

// Options configure a session. Zero values fall back to the embedded specs.
type Options struct {
	// Level is the first level to load. Empty starts with the tutorial.
	Level   string
	Tuning  *prefabs.Tuning
	Visuals *prefabs.VisualsSpec
	Seed    int64
	Gravity float64
}

// Session is a running game.
type Session struct {
	tuning  prefabs.Tuning
	visuals prefabs.VisualsSpec
	gravity float64
	rng     *rand.Rand

	acc    *score.Accumulator
	played time.Duration

	paused    bool
	timeScale float64

	// Everything below is rebuilt by load.
	level     *levels.Level
	levelName string
	world     *ecs.World
	physics   *physics.World
	clock     *timer.Scheduler
	resolver  *combat.Resolver
	ctrl      *player.Controller
	player    ecs.Entity

	inputSys    *system.InputSystem
	physicsSys  *system.PhysicsSystem
	clockSys    *system.ClockSystem
	projectiles *system.ProjectileSystem
	hover       *system.PickupHoverSystem
	lifetimes   *system.LifetimeSystem
	systems     *ecs.Scheduler

	restart  bool
	advance  bool
	finished bool
	frame    int
}

// New loads the first level and returns a session ready to tick.
func New(opts Options) (*Session, error) {
	s := &Session{
		gravity:   opts.Gravity,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		timeScale: 1,
	}
	if s.gravity <= 0 {
		s.gravity = common.Gravity
	}
	if opts.Tuning != nil {
		s.tuning = *opts.Tuning
	} else {
		t, err := prefabs.LoadTuning()
		if err != nil {
			return nil, err
		}
		s.tuning = t
	}
	if opts.Visuals != nil {
		s.visuals = *opts.Visuals
	} else {
		v, err := prefabs.LoadVisuals()
		if err != nil {
			return nil, err
		}
		s.visuals = v
	}

	s.acc = score.New(s.tuning.Scoring, func() time.Duration { return s.played })

	name := opts.Level
	if name == "" {
		name = levels.Tutorial
	}
	if err := s.load(name); err != nil {
		return nil, err
	}
	return s, nil
}

// Tick runs one frame of dt with the given player intent.
func (s *Session) Tick(in player.Input, dt time.Duration) {
	if s.finished {
		return
	}
	scaled := time.Duration(float64(dt) * s.timeScale)
	if s.paused {
		scaled = 0
	}
	s.played += scaled

	if s.paused {
		s.inputSys.Input = player.Input{}
	} else {
		s.inputSys.Input = in
	}
	s.physicsSys.DT = scaled.Seconds()
	s.clockSys.DT = dt
	s.projectiles.DT = scaled
	s.hover.DT = scaled.Seconds()
	s.lifetimes.DT = scaled

	if scaled > 0 {
		s.systems.Update(s.world)
		s.frame++
	}

	switch {
	case s.advance:
		s.advance = false
		s.completeLevel()
	case s.restart:
		s.restart = false
		s.restartLevel()
	}
}

// Pause freezes the clock, physics and projectiles. Input is dropped while
// paused.
func (s *Session) Pause() {
	s.paused = true
	s.clock.Pause()
}

func (s *Session) Resume() {
	s.paused = false
	s.clock.Resume()
}

func (s *Session) Paused() bool { return s.paused }

// SetTimeScale scales every following frame. Zero freezes the game the
// way Pause does.
func (s *Session) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	s.timeScale = scale
	s.clock.SetTimeScale(scale)
}

// SetTuning swaps the gameplay tuning. Scoring rules apply at once; player
// and enemy tuning apply from the next level load.
func (s *Session) SetTuning(t prefabs.Tuning) {
	s.tuning = t
	s.acc.SetRules(t.Scoring)
}

func (s *Session) SetVisuals(v prefabs.VisualsSpec) { s.visuals = v }

// Reload rebuilds the current level without touching the score.
func (s *Session) Reload() error {
	return s.load(s.levelName)
}

func (s *Session) World() *ecs.World               { return s.world }
func (s *Session) Physics() *physics.World         { return s.physics }
func (s *Session) Clock() *timer.Scheduler         { return s.clock }
func (s *Session) Accumulator() *score.Accumulator { return s.acc }
func (s *Session) Player() *player.Controller      { return s.ctrl }
func (s *Session) Level() *levels.Level            { return s.level }
func (s *Session) LevelName() string               { return s.levelName }
func (s *Session) Finished() bool                  { return s.finished }
func (s *Session) Frame() int                      { return s.frame }
func (s *Session) Played() time.Duration           { return s.played }
func (s *Session) PlayerEntity() ecs.Entity        { return s.player }
func (s *Session) TimeScale() float64              { return s.timeScale }
func (s *Session) Survey() *score.Survey           { return &s.acc.Survey }
func (s *Session) SetSatisfaction(v float64)       { s.acc.Satisfaction = v }

// Record snapshots the session for the CSV export.
func (s *Session) Record(device string, ts time.Time) session.Record {
	return session.FromAccumulator(device, ts, s.acc)
}

// Enemies returns the live enemy count.
func (s *Session) Enemies() int {
	n := 0
	ecs.ForEach(s.world, component.EnemyComponent.Kind(), func(e ecs.Entity, en *component.Enemy) {
		if en.Behavior != nil && !en.Behavior.Destroyed() {
			n++
		}
	})
	return n
}

// completeLevel moves on from the tutorial, or ends the session after any
// other level.
func (s *Session) completeLevel() {
	if s.level != nil && s.level.Tutorial {
		log.Info("tutorial complete", "score", s.acc.Score())
		s.acc.DiscardTutorial()
		s.acc.ResetLevel()
		if err := s.load(levels.First); err != nil {
			log.Error("load level", "level", levels.First, "err", err)
			s.finished = true
		}
		return
	}
	s.acc.MarkCompleted()
	s.finished = true
	log.Info("level complete", "level", s.levelName, "score", s.acc.Score(), "grade", s.acc.FinalGrade(), "elapsed", s.acc.Elapsed())
}

// restartLevel folds the failed attempt into the totals and starts over.
func (s *Session) restartLevel() {
	log.Info("restarting level", "level", s.levelName, "deaths", s.acc.Deaths())
	s.acc.Restart()
	if err := s.load(s.levelName); err != nil {
		log.Error("reload level", "level", s.levelName, "err", err)
		s.finished = true
	}
}
