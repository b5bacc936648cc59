package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
)

// Entity types understood in level documents.
const (
	TypeSpawn       = "spawn"
	TypeEnemy       = "enemy"
	TypePowerUpDmg  = "powerup_damage"
	TypePowerUpLife = "powerup_life"
	TypeEndPoint    = "end_point"
)

// Level is a tile grid plus placed entities. Row 0 is the top row; world
// coordinates are y up with the bottom-left corner of the grid at the origin.
type Level struct {
	Name      string      `json:"name,omitempty"`
	Tutorial  bool        `json:"tutorial,omitempty"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	TileSize  float64     `json:"tile_size,omitempty"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Placement is an entity resolved to world space. Pos is the centre of the
// bottom edge of its tile, so bodies placed there stand on the tile below.
type Placement struct {
	Type     string
	Pos      common.Vec
	Category combat.Category
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("layer %d has %d tiles, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	spawns := 0
	for _, e := range l.Entities {
		switch e.Type {
		case TypeSpawn:
			spawns++
		case TypeEnemy:
			if _, err := enemyCategory(e); err != nil {
				return err
			}
		case TypePowerUpDmg, TypePowerUpLife, TypeEndPoint:
		default:
			return fmt.Errorf("unknown entity type %q", e.Type)
		}
	}
	if spawns != 1 {
		return errors.New("level needs exactly one spawn")
	}
	return nil
}

func enemyCategory(e Entity) (combat.Category, error) {
	raw, _ := e.Props["category"].(string)
	c, err := combat.ParseCategory(raw)
	if err != nil {
		return c, fmt.Errorf("enemy at %d,%d: %w", e.X, e.Y, err)
	}
	return c, nil
}

func (l *Level) tile() float64 {
	if l.TileSize <= 0 {
		return 1
	}
	return l.TileSize
}

// Bounds is the world-space rectangle covered by the grid.
func (l *Level) Bounds() common.Rect {
	ts := l.tile()
	w, h := float64(l.Width)*ts, float64(l.Height)*ts
	return common.Rect{X: w / 2, Y: h / 2, Width: w, Height: h}
}

// Placements resolves every entity to world space in document order.
func (l *Level) Placements() []Placement {
	ts := l.tile()
	out := make([]Placement, 0, len(l.Entities))
	for _, e := range l.Entities {
		p := Placement{
			Type: e.Type,
			Pos: common.Vec{
				X: (float64(e.X) + 0.5) * ts,
				Y: float64(l.Height-1-e.Y) * ts,
			},
		}
		if e.Type == TypeEnemy {
			p.Category, _ = enemyCategory(e)
		}
		out = append(out, p)
	}
	return out
}

// Spawn returns the player start.
func (l *Level) Spawn() common.Vec {
	for _, p := range l.Placements() {
		if p.Type == TypeSpawn {
			return p.Pos
		}
	}
	return common.Vec{}
}

// Solids merges the solid tiles of every physics layer into as few
// rectangles as possible, scanning rows left to right and growing each run
// downwards while the full run stays solid.
func (l *Level) Solids() []common.Rect {
	var out []common.Rect
	for i, layer := range l.Layers {
		if len(l.LayerMeta) > i && !l.LayerMeta[i].Physics {
			continue
		}
		out = append(out, l.mergeTiles(layer)...)
	}
	return out
}

func (l *Level) mergeTiles(layer []int) []common.Rect {
	ts := l.tile()
	processed := make([]bool, l.Width*l.Height)
	var out []common.Rect
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			idx := y*l.Width + x
			if processed[idx] || layer[idx] == 0 {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < l.Width {
				idx2 := y*l.Width + (x + w)
				if processed[idx2] || layer[idx2] == 0 {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < l.Height {
				for xi := x; xi < x+w; xi++ {
					idx2 := (y+h)*l.Width + xi
					if processed[idx2] || layer[idx2] == 0 {
						break heightLoop
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*l.Width+xx] = true
				}
			}

			top := float64(l.Height-y) * ts
			out = append(out, common.Rect{
				X:      (float64(x) + float64(w)/2) * ts,
				Y:      top - float64(h)*ts/2,
				Width:  float64(w) * ts,
				Height: float64(h) * ts,
			})
		}
	}
	return out
}
