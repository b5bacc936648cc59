package player

import (
	"time"

	"github.com/milk9111/wastesorter/common"
)

// Config tunes the player. It is loaded from player.yaml.
type Config struct {
	Health    int        `yaml:"health"`
	Size      common.Vec `yaml:"size"`
	MoveSpeed float64    `yaml:"move_speed"`
	JumpSpeed float64    `yaml:"jump_speed"`

	// ShotDelay is the wind-up between a fire input and the projectile.
	ShotDelay    time.Duration `yaml:"shot_delay"`
	ShootLock    time.Duration `yaml:"shoot_lock"`
	ShotCooldown time.Duration `yaml:"shot_cooldown"`
	Muzzle       common.Vec    `yaml:"muzzle"`
	ShotSpeed    float64       `yaml:"shot_speed"`
	ShotTTL      time.Duration `yaml:"shot_ttl"`

	Invulnerability time.Duration `yaml:"invulnerability"`
	// FrameRate sets the flicker toggle interval during invulnerability.
	FrameRate float64       `yaml:"frame_rate"`
	HurtTime  time.Duration `yaml:"hurt_time"`

	DeathDelay  time.Duration `yaml:"death_delay"`
	DeathLaunch common.Vec    `yaml:"death_launch"`
}

// DefaultConfig matches the shipped player.yaml.
func DefaultConfig() Config {
	return Config{
		Health:          5,
		Size:            common.V(1, 2),
		MoveSpeed:       10,
		JumpSpeed:       12.5,
		ShotDelay:       250 * time.Millisecond,
		ShootLock:       100 * time.Millisecond,
		ShotCooldown:    1200 * time.Millisecond,
		Muzzle:          common.V(0.9, 0.3),
		ShotSpeed:       15,
		ShotTTL:         800 * time.Millisecond,
		Invulnerability: time.Second,
		FrameRate:       60,
		HurtTime:        400 * time.Millisecond,
		DeathDelay:      200 * time.Millisecond,
		DeathLaunch:     common.V(5, -10),
	}
}
