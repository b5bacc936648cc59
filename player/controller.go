// Package player implements the player's combat state machine: shooting
// with its movement lock and cooldown, damage with its invulnerability
// window, pickups, and the death sequence.
package player

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/kinematics"
	"github.com/milk9111/wastesorter/timer"
)

// Host is the engine side of the player.
type Host interface {
	Launch(p *combat.Projectile)
	// Sparks marks a powered shot leaving the muzzle.
	Sparks(pos common.Vec, facingRight bool)
	SetVisible(on bool)
	SetVelocity(v common.Vec)
	// Died runs DeathDelay after the lethal hit.
	Died()
	ReachedEnd()
}

// ShotCounter counts fired shots. score.Accumulator implements it.
type ShotCounter interface {
	RecordShotFired()
}

// Input is one frame of player intent.
type Input struct {
	// Move is -1, 0 or 1.
	Move float64
	Jump bool
	Fire bool
	Shot combat.Category
}

// Controller is the player.
type Controller struct {
	Pos common.Vec

	cfg      Config
	vitals   *combat.Vitals
	resolver *combat.Resolver
	shots    ShotCounter
	sched    *timer.Scheduler
	host     Host

	facingRight  bool
	grounded     bool
	hurt         bool
	dead         bool
	finished     bool
	shooting     bool
	fireReady    bool
	powered      bool
	invulnerable bool

	pending  combat.Category
	shooter  *timer.Routine
	flicker  *timer.Routine
	hurtDone timer.Token
}

func New(pos common.Vec, cfg Config, sched *timer.Scheduler, resolver *combat.Resolver, shots ShotCounter, host Host) *Controller {
	health := cfg.Health
	if health <= 0 {
		health = 5
	}
	return &Controller{
		Pos:         pos,
		cfg:         cfg,
		vitals:      combat.NewVitals(health),
		resolver:    resolver,
		shots:       shots,
		sched:       sched,
		host:        host,
		facingRight: true,
		grounded:    true,
		fireReady:   true,
	}
}

func (c *Controller) Health() int                   { return c.vitals.Health }
func (c *Controller) MaxHealth() int                { return c.vitals.Max }
func (c *Controller) Dead() bool                    { return c.dead }
func (c *Controller) Finished() bool                { return c.finished }
func (c *Controller) Shooting() bool                { return c.shooting }
func (c *Controller) FireReady() bool               { return c.fireReady }
func (c *Controller) Powered() bool                 { return c.powered }
func (c *Controller) Invulnerable() bool            { return c.invulnerable }
func (c *Controller) Grounded() bool                { return c.grounded }
func (c *Controller) Hurt() bool                    { return c.hurt }
func (c *Controller) FacingRight() bool             { return c.facingRight }
func (c *Controller) ShotCategory() combat.Category { return c.pending }

// ConfigureShot sets the one-shot powered flag.
func (c *Controller) ConfigureShot(powered bool) { c.powered = powered }

// Handle applies one frame of input and returns the velocity to give the
// body. vel is the body's current velocity.
func (c *Controller) Handle(in Input, vel common.Vec) common.Vec {
	if c.dead || c.finished {
		return vel
	}

	if in.Fire && c.fireReady && in.Shot.Valid() {
		c.startShot(in.Shot)
	}

	if in.Jump && c.grounded && !c.hurt && !c.shooting {
		vel.Y = c.cfg.JumpSpeed
		c.grounded = false
	}

	if c.shooting {
		vel.X = 0
	} else {
		vel.X = in.Move * c.cfg.MoveSpeed
	}

	switch {
	case in.Move > 0:
		c.facingRight = true
	case in.Move < 0:
		c.facingRight = false
	}
	return vel
}

func (c *Controller) startShot(cat combat.Category) {
	c.fireReady = false
	c.shooting = true
	c.pending = cat
	c.shooter = timer.Start(c.sched, func(r *timer.Routine) {
		r.Wait(c.cfg.ShotDelay, func(r *timer.Routine) {
			c.spawnShot()
			r.Wait(c.cfg.ShootLock, func(r *timer.Routine) {
				c.shooting = false
				r.Wait(c.cfg.ShotCooldown, func(r *timer.Routine) {
					c.fireReady = true
				})
			})
		})
	})
}

func (c *Controller) spawnShot() {
	if c.shots != nil {
		c.shots.RecordShotFired()
	}
	dir := common.V(1, 0)
	muzzle := c.cfg.Muzzle
	if !c.facingRight {
		dir.X = -1
		muzzle.X = -muzzle.X
	}
	p := &combat.Projectile{
		Tag:        c.pending.ShotTag(),
		Powered:    c.powered,
		Pos:        c.Pos.Add(muzzle),
		Motion:     kinematics.NewLinear(dir, c.cfg.ShotSpeed),
		TTL:        c.cfg.ShotTTL,
		FromPlayer: true,
	}
	if c.host != nil {
		c.host.Launch(p)
		if c.powered {
			c.host.Sparks(p.Pos, c.facingRight)
		}
	}
	c.powered = false
}

// Collide handles the start of a contact with something tagged tag at from.
// It reports whether the other body is a pickup that should be removed.
func (c *Controller) Collide(tag combat.Tag, from common.Vec, vel common.Vec) (consume bool) {
	if tag.HurtsPlayer() {
		c.damage(from)
		return false
	}
	switch tag {
	case combat.TagFloor:
		if c.dead {
			if c.host != nil {
				c.host.SetVelocity(common.V(0, vel.Y))
			}
			return false
		}
		c.grounded = true
	case combat.TagEndPoint:
		if c.finished {
			return false
		}
		c.finished = true
		if c.host != nil {
			c.host.ReachedEnd()
		}
	case combat.TagPowerUpDamage:
		c.powered = true
		return true
	case combat.TagPowerUpLife:
		c.resolver.HealPlayer(c.vitals)
		return true
	}
	return false
}

// Separate handles the end of a contact.
func (c *Controller) Separate(tag combat.Tag) {
	if tag == combat.TagFloor && c.grounded && !c.dead {
		c.grounded = false
	}
}

func (c *Controller) damage(from common.Vec) {
	if c.invulnerable || c.dead || c.finished {
		return
	}
	if !c.resolver.HurtPlayer(c.vitals, c.Pos) {
		c.hurt = true
		c.invulnerable = true
		c.startFlicker()
		if c.hurtDone != 0 {
			c.sched.Cancel(c.hurtDone)
		}
		c.hurtDone = c.sched.After(c.cfg.HurtTime, func() {
			c.hurtDone = 0
			c.hurt = false
		})
		return
	}
	c.die(from)
}

// startFlicker toggles visibility once per frame for the invulnerability
// window, so the toggle count depends on the frame rate.
func (c *Controller) startFlicker() {
	frame := time.Duration(float64(time.Second) / c.cfg.FrameRate)
	toggles := int(math.Ceil(c.cfg.Invulnerability.Seconds() * c.cfg.FrameRate))
	visible := true
	i := 0
	var step func(r *timer.Routine)
	step = func(r *timer.Routine) {
		if i >= toggles {
			c.invulnerable = false
			if c.host != nil {
				c.host.SetVisible(true)
			}
			return
		}
		i++
		visible = !visible
		if c.host != nil {
			c.host.SetVisible(visible)
		}
		r.Wait(frame, step)
	}
	c.flicker.Stop()
	c.flicker = timer.Start(c.sched, step)
}

func (c *Controller) die(from common.Vec) {
	c.dead = true
	if from.X < c.Pos.X && c.facingRight {
		c.facingRight = false
	}
	if from.X > c.Pos.X && !c.facingRight {
		c.facingRight = true
	}
	c.shooter.Stop()
	c.shooting = false

	launch := c.cfg.DeathLaunch
	if c.facingRight {
		launch.X = -launch.X
	}
	log.Debug("player: died", "x", c.Pos.X, "y", c.Pos.Y)
	if c.host == nil {
		return
	}
	c.host.SetVelocity(launch)
	c.sched.After(c.cfg.DeathDelay, c.host.Died)
}
