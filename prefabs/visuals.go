package prefabs

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/milk9111/wastesorter/combat"
)

// VisualsSpec colours the debug renderer.
type VisualsSpec struct {
	Background YAMLColor            `yaml:"background"`
	Player     YAMLColor            `yaml:"player"`
	Floor      YAMLColor            `yaml:"floor"`
	EndPoint   YAMLColor            `yaml:"end_point"`
	Detector   YAMLColor            `yaml:"detector"`
	Flash      YAMLColor            `yaml:"flash"`
	Bullet     YAMLColor            `yaml:"enemy_bullet"`
	PowerUpDmg YAMLColor            `yaml:"power_up_damage"`
	PowerUpHP  YAMLColor            `yaml:"power_up_life"`
	Categories map[string]YAMLColor `yaml:"categories"`
}

// CategoryColor returns the colour for c, falling back to a named colour
// when visuals.yaml leaves it out.
func (v VisualsSpec) CategoryColor(c combat.Category) color.Color {
	if yc, ok := v.Categories[c.String()]; ok && yc.Color != nil {
		return yc.Color
	}
	switch c {
	case combat.Glass:
		return colornames.Mediumseagreen
	case combat.Organic:
		return colornames.Saddlebrown
	case combat.PaperCardboard:
		return colornames.Royalblue
	case combat.PlasticBrickCan:
		return colornames.Gold
	}
	return colornames.White
}

// Or returns c, or fallback when c was not set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}

func LoadVisuals() (VisualsSpec, error) {
	return LoadSpec[VisualsSpec](VisualsFile)
}
