package enemy

import (
	"time"

	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/kinematics"
)

// Config tunes every enemy variant. It is loaded from enemies.yaml.
type Config struct {
	Health        int           `yaml:"health"`
	FlashDuration time.Duration `yaml:"flash_duration"`
	// DetectorSize is the trigger box, centred on the enemy, that reports
	// the player.
	DetectorSize common.Vec `yaml:"detector_size"`
	BodySize     common.Vec `yaml:"body_size"`

	Glass   GlassConfig   `yaml:"glass"`
	Organic OrganicConfig `yaml:"organic"`
	Paper   PaperConfig   `yaml:"paper_cardboard"`
	Plastic PlasticConfig `yaml:"plastic_brick_can"`
}

type GlassConfig struct {
	Period   time.Duration `yaml:"period"`
	Cooldown time.Duration `yaml:"cooldown"`
	Shots    int           `yaml:"shots"`
	// LaunchPoints are offsets from the enemy; each volley uses Shots of
	// them, never the same one twice.
	LaunchPoints []common.Vec  `yaml:"launch_points"`
	FallSpeed    float64       `yaml:"fall_speed"`
	TTL          time.Duration `yaml:"ttl"`
}

type OrganicConfig struct {
	Rest     time.Duration `yaml:"rest"`
	Cooldown time.Duration `yaml:"cooldown"`
	Gap      time.Duration `yaml:"gap"`
	// EmitA and EmitB are offsets for an enemy facing right; they are
	// mirrored when facing left.
	EmitA common.Vec    `yaml:"emit_a"`
	EmitB common.Vec    `yaml:"emit_b"`
	Speed float64       `yaml:"speed"`
	TTL   time.Duration `yaml:"ttl"`
}

type PaperConfig struct {
	Period      time.Duration `yaml:"period"`
	Cooldown    time.Duration `yaml:"cooldown"`
	Emit        common.Vec    `yaml:"emit"`
	Speed       float64       `yaml:"speed"`
	TTL         time.Duration `yaml:"ttl"`
	SlideRange  float64       `yaml:"slide_range"`
	SlideOffset float64       `yaml:"slide_offset"`
	SlideTime   time.Duration `yaml:"slide_time"`
}

type PlasticConfig struct {
	Period   time.Duration        `yaml:"period"`
	Cooldown time.Duration        `yaml:"cooldown"`
	Arc      kinematics.ArcConfig `yaml:"arc"`
	TTL      time.Duration        `yaml:"ttl"`
}

// DefaultConfig matches the shipped enemies.yaml.
func DefaultConfig() Config {
	return Config{
		Health:        2,
		FlashDuration: 500 * time.Millisecond,
		DetectorSize:  common.V(24, 10),
		BodySize:      common.V(1.5, 2),
		Glass: GlassConfig{
			Period:   1500 * time.Millisecond,
			Cooldown: 1500 * time.Millisecond,
			Shots:    4,
			LaunchPoints: []common.Vec{
				{X: -6, Y: 7}, {X: -4, Y: 7}, {X: -2, Y: 7},
				{X: 2, Y: 7}, {X: 4, Y: 7}, {X: 6, Y: 7},
			},
			FallSpeed: 6,
			TTL:       3 * time.Second,
		},
		Organic: OrganicConfig{
			Rest:     1500 * time.Millisecond,
			Cooldown: 3 * time.Second,
			Gap:      750 * time.Millisecond,
			EmitA:    common.V(1, 0.4),
			EmitB:    common.V(1, -0.4),
			Speed:    10,
			TTL:      1750 * time.Millisecond,
		},
		Paper: PaperConfig{
			Period:      1650 * time.Millisecond,
			Cooldown:    1650 * time.Millisecond,
			Emit:        common.V(0, 0.5),
			Speed:       6,
			TTL:         3 * time.Second,
			SlideRange:  5,
			SlideOffset: 25,
			SlideTime:   1500 * time.Millisecond,
		},
		Plastic: PlasticConfig{
			Period:   1250 * time.Millisecond,
			Cooldown: 1250 * time.Millisecond,
			Arc:      kinematics.DefaultArcConfig,
			TTL:      3 * time.Second,
		},
	}
}
