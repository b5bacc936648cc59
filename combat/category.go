package combat

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is a waste type. Every enemy is vulnerable to exactly one.
type Category int

const (
	Glass Category = iota
	Organic
	PaperCardboard
	PlasticBrickCan
)

// Categories lists every category in column order.
var Categories = [...]Category{Glass, Organic, PaperCardboard, PlasticBrickCan}

var ErrUnknownCategory = errors.New("combat: unknown category")

func (c Category) String() string {
	switch c {
	case Glass:
		return "glass"
	case Organic:
		return "organic"
	case PaperCardboard:
		return "paper_cardboard"
	case PlasticBrickCan:
		return "plastic_brick_can"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

func (c Category) Valid() bool {
	return c >= Glass && c <= PlasticBrickCan
}

// ShotTag is the collision tag carried by player shots of this category.
func (c Category) ShotTag() Tag {
	switch c {
	case Glass:
		return TagGlassShot
	case Organic:
		return TagOrganicShot
	case PaperCardboard:
		return TagPaperShot
	case PlasticBrickCan:
		return TagPlasticShot
	}
	return ""
}

// ParseCategory accepts the names produced by String plus a few short forms
// used in scripts and level files.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "glass", "vidrio":
		return Glass, nil
	case "organic", "organica":
		return Organic, nil
	case "paper", "paper_cardboard", "papercardboard", "papel_carton":
		return PaperCardboard, nil
	case "plastic", "plastic_brick_can", "plasticbrickcan", "pbl":
		return PlasticBrickCan, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// UnmarshalYAML lets tuning and level data name categories as strings.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a string", ErrUnknownCategory)
	}
	parsed, err := ParseCategory(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalText lets JSON level files name categories as strings.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
