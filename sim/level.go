package sim

import (
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/image/colornames"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/ecs/entity"
	"github.com/milk9111/wastesorter/ecs/system"
	"github.com/milk9111/wastesorter/enemy"
	"github.com/milk9111/wastesorter/levels"
	"github.com/milk9111/wastesorter/physics"
	"github.com/milk9111/wastesorter/player"
	"github.com/milk9111/wastesorter/timer"
)

const cameraSmoothing = 0.1

// load throws away the current world and builds level name from scratch.
// The accumulator is left alone.
func (s *Session) load(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	pw := physics.NewWorld(s.gravity)
	clock := timer.NewScheduler()
	clock.SetTimeScale(s.timeScale)
	if s.paused {
		clock.Pause()
	}

	events := &combat.Emitter{}
	resolver := combat.NewResolver(s.acc, events)

	if err := entity.NewLevel(w, pw, lvl, s.visuals); err != nil {
		return fmt.Errorf("sim: build %s: %w", name, err)
	}

	s.level = lvl
	s.levelName = name
	s.world = w
	s.physics = pw
	s.clock = clock
	s.resolver = resolver
	s.restart = false
	s.advance = false
	events.Subscribe(s.popup)

	cfg := s.tuning.Player
	spawn := entity.StandOn(lvl.Spawn(), cfg.Size.Y)
	s.ctrl = player.New(spawn, cfg, clock, resolver, s.acc, &playerHost{s: s})
	s.player, err = entity.NewPlayer(w, pw, s.ctrl, cfg.Size, s.visuals.Player.Or(colornames.Lightskyblue))
	if err != nil {
		return err
	}

	deps := enemy.Deps{Scheduler: clock, Resolver: resolver, Host: &enemyHost{s: s}, Rand: s.rng}
	ecfg := s.tuning.Enemies
	for _, p := range lvl.Placements() {
		if p.Type != levels.TypeEnemy {
			continue
		}
		b := enemy.New(p.Category, entity.StandOn(p.Pos, ecfg.BodySize.Y), ecfg, deps)
		look := entity.EnemyLook{
			Body:     s.visuals.CategoryColor(p.Category),
			Detector: s.visuals.Detector.Or(colornames.Lightgoldenrodyellow),
		}
		if _, _, err := entity.NewEnemy(w, pw, b, ecfg, look); err != nil {
			return err
		}
	}

	s.newCamera(lvl, spawn)
	s.buildSystems()

	log.Debug("level loaded", "level", name, "entities", w.Len(), "bodies", pw.Len())
	return nil
}

func (s *Session) newCamera(lvl *levels.Level, focus common.Vec) {
	bounds := lvl.Bounds()
	halfView := common.BaseWidth / 2 / common.PixelsPerUnit
	cam := ecs.CreateEntity(s.world)
	_ = ecs.Add(s.world, cam, component.TransformComponent.Kind(), &component.Transform{X: focus.X, Y: bounds.Y})
	_ = ecs.Add(s.world, cam, component.CameraComponent.Kind(), &component.Camera{
		Zoom:      common.PixelsPerUnit,
		Smoothing: cameraSmoothing,
		MinX:      bounds.X - bounds.Width/2 + halfView,
		MaxX:      bounds.X + bounds.Width/2 - halfView,
	})
}

// buildSystems wires the per-frame pipeline. Detector events and the
// resulting facing updates run before the clock so that a fire cycle due
// this frame aims at where the player is now.
func (s *Session) buildSystems() {
	s.inputSys = system.NewInputSystem(s.physics)
	s.physicsSys = system.NewPhysicsSystem(s.physics)
	s.clockSys = system.NewClockSystem(s.clock)
	s.projectiles = system.NewProjectileSystem(s.physics)
	s.hover = system.NewPickupHoverSystem()
	s.lifetimes = system.NewLifetimeSystem()

	s.systems = ecs.NewScheduler(
		s.inputSys,
		s.physicsSys,
		system.NewDetectorSystem(),
		s.clockSys,
		system.NewEnemySystem(s.physics),
		s.projectiles,
		system.NewCollisionSystem(s.physics),
		s.hover,
		s.lifetimes,
		system.NewParticleSystem(),
		system.NewCameraSystem(),
		system.NewCleanupSystem(s.physics),
	)
}
