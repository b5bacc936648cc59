package levels

import (
	"errors"
	"testing"

	"github.com/milk9111/wastesorter/combat"
)

func TestLoadEmbedded(t *testing.T) {
	for _, name := range []string{Tutorial, First} {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if lvl.Tutorial != (name == Tutorial) {
				t.Fatalf("tutorial flag = %v", lvl.Tutorial)
			}
			if len(lvl.Solids()) == 0 {
				t.Fatal("expected solid ground")
			}
			ends := 0
			for _, p := range lvl.Placements() {
				if p.Type == TypeEndPoint {
					ends++
				}
			}
			if ends != 1 {
				t.Fatalf("expected one end point, got %d", ends)
			}
		})
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("nope"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != First || names[1] != Tutorial {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestSolidsMerge(t *testing.T) {
	lvl := &Level{
		Width:  4,
		Height: 3,
		Layers: [][]int{{
			0, 0, 0, 1,
			1, 1, 0, 1,
			1, 1, 0, 0,
		}},
	}
	got := lvl.Solids()
	if len(got) != 2 {
		t.Fatalf("expected 2 rects, got %v", got)
	}
	// Column at x=3 spans the top two rows.
	if got[0].X != 3.5 || got[0].Y != 2 || got[0].Width != 1 || got[0].Height != 2 {
		t.Fatalf("unexpected first rect %+v", got[0])
	}
	// 2x2 block in the bottom-left corner.
	if got[1].X != 1 || got[1].Y != 1 || got[1].Width != 2 || got[1].Height != 2 {
		t.Fatalf("unexpected second rect %+v", got[1])
	}
}

func TestPlacements(t *testing.T) {
	lvl, err := Parse([]byte(`{
		"width": 10, "height": 5, "tile_size": 2,
		"layers": [],
		"entities": [
			{"type": "spawn", "x": 1, "y": 3},
			{"type": "enemy", "x": 4, "y": 3, "props": {"category": "pbl"}}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	spawn := lvl.Spawn()
	if spawn.X != 3 || spawn.Y != 2 {
		t.Fatalf("spawn = %+v", spawn)
	}
	enemy := lvl.Placements()[1]
	if enemy.Category != combat.PlasticBrickCan || enemy.Pos.X != 9 {
		t.Fatalf("enemy = %+v", enemy)
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"no_spawn", `{"width": 2, "height": 2, "layers": []}`},
		{"bad_layer", `{"width": 2, "height": 2, "layers": [[1]], "entities": [{"type": "spawn"}]}`},
		{"bad_category", `{"width": 2, "height": 2, "layers": [], "entities": [{"type": "spawn"}, {"type": "enemy", "props": {"category": "steel"}}]}`},
		{"bad_type", `{"width": 2, "height": 2, "layers": [], "entities": [{"type": "spawn"}, {"type": "boss"}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.doc)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
