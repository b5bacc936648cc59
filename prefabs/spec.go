package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/wastesorter/enemy"
	"github.com/milk9111/wastesorter/player"
	"github.com/milk9111/wastesorter/score"
)

const (
	PlayerFile  = "player.yaml"
	EnemiesFile = "enemies.yaml"
	ScoringFile = "scoring.yaml"
	VisualsFile = "visuals.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// loadOver decodes filename on top of base, so keys missing from the file
// keep their defaults.
func loadOver[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

func LoadPlayerConfig() (player.Config, error) {
	return loadOver(PlayerFile, player.DefaultConfig())
}

func LoadEnemyConfig() (enemy.Config, error) {
	cfg, err := loadOver(EnemiesFile, enemy.DefaultConfig())
	if err != nil {
		return cfg, err
	}
	if cfg.Glass.Shots > len(cfg.Glass.LaunchPoints) {
		return cfg, fmt.Errorf("prefabs: %s: glass fires %d shots from %d launch points", EnemiesFile, cfg.Glass.Shots, len(cfg.Glass.LaunchPoints))
	}
	return cfg, nil
}

func LoadScoringRules() (score.Rules, error) {
	return loadOver(ScoringFile, score.DefaultRules())
}

// Tuning is every gameplay config the host reloads together.
type Tuning struct {
	Player  player.Config
	Enemies enemy.Config
	Scoring score.Rules
}

func LoadTuning() (Tuning, error) {
	var t Tuning
	var err error
	if t.Player, err = LoadPlayerConfig(); err != nil {
		return t, err
	}
	if t.Enemies, err = LoadEnemyConfig(); err != nil {
		return t, err
	}
	if t.Scoring, err = LoadScoringRules(); err != nil {
		return t, err
	}
	return t, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
