package physics

import (
	"testing"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs/component"
)

const step = 1.0 / 60

func find(events []Event, kind EventKind, self uint64, other combat.Tag) bool {
	for _, e := range events {
		if e.Kind == kind && e.Self == self && e.OtherTag == other {
			return true
		}
	}
	return false
}

func TestPlayerLandsOnFloor(t *testing.T) {
	pw := NewWorld(30)
	pw.Add(BodyDef{Entity: 1, Tag: combat.TagFloor, Kind: component.BodyStatic, Size: common.Vec{X: 20, Y: 1}})
	pw.Add(BodyDef{Entity: 2, Tag: combat.TagPlayer, Kind: component.BodyDynamic, Pos: common.Vec{Y: 2}, Size: common.Vec{X: 1, Y: 2}})

	landed := false
	for i := 0; i < 60 && !landed; i++ {
		events := pw.Step(step)
		landed = find(events, Begin, 2, combat.TagFloor) && find(events, Begin, 1, combat.TagPlayer)
	}
	if !landed {
		t.Fatal("expected the player to land on the floor within a second")
	}
	for i := 0; i < 30; i++ {
		pw.Step(step)
	}
	pos, _ := pw.Position(2)
	if pos.Y < 1.2 || pos.Y > 1.8 {
		t.Fatalf("expected the player to rest on the floor, y=%v", pos.Y)
	}
}

func TestTriggerLifecycle(t *testing.T) {
	pw := NewWorld(30)
	pw.Add(BodyDef{Entity: 1, Tag: combat.TagDetector, Kind: component.BodyKinematic, Pos: common.Vec{X: 5, Y: 1}, Size: common.Vec{X: 24, Y: 10}, Sensor: true})
	pw.Add(BodyDef{Entity: 2, Tag: combat.TagPlayer, Kind: component.BodyDynamic, Pos: common.Vec{Y: 1}, Size: common.Vec{X: 1, Y: 2}, NoGravity: true})

	events := pw.Step(step)
	if !find(events, Enter, 1, combat.TagPlayer) || !find(events, Enter, 2, combat.TagDetector) {
		t.Fatalf("expected enter on both sides, got %v", events)
	}
	if find(events, Stay, 1, combat.TagPlayer) {
		t.Fatal("stay must not accompany the first overlap")
	}

	events = pw.Step(step)
	if !find(events, Stay, 1, combat.TagPlayer) {
		t.Fatalf("expected stay, got %v", events)
	}

	pw.SetPosition(2, common.Vec{X: 100, Y: 1})
	events = pw.Step(step)
	if !find(events, Exit, 1, combat.TagPlayer) {
		t.Fatalf("expected exit, got %v", events)
	}
	events = pw.Step(step)
	if len(events) != 0 {
		t.Fatalf("expected silence after exit, got %v", events)
	}
}

func TestPlayerPassesThroughEnemy(t *testing.T) {
	pw := NewWorld(0)
	pw.Add(BodyDef{Entity: 1, Tag: combat.TagEnemy, Kind: component.BodyKinematic, Pos: common.Vec{X: 2}, Size: common.Vec{X: 1.5, Y: 2}})
	pw.Add(BodyDef{Entity: 2, Tag: combat.TagPlayer, Kind: component.BodyDynamic, Size: common.Vec{X: 1, Y: 2}, NoGravity: true})
	pw.SetVelocity(2, common.Vec{X: 10})

	touched := false
	for i := 0; i < 60; i++ {
		if find(pw.Step(step), Begin, 2, combat.TagEnemy) {
			touched = true
		}
	}
	if !touched {
		t.Fatal("expected a begin event against the enemy")
	}
	pos, _ := pw.Position(2)
	if pos.X < 5 {
		t.Fatalf("expected the player to pass through, x=%v", pos.X)
	}
}

func TestRemoveIsSilent(t *testing.T) {
	pw := NewWorld(0)
	pw.Add(BodyDef{Entity: 1, Tag: combat.TagDetector, Kind: component.BodyKinematic, Size: common.Vec{X: 4, Y: 4}, Sensor: true})
	pw.Add(BodyDef{Entity: 2, Tag: combat.TagPlayer, Kind: component.BodyDynamic, Size: common.Vec{X: 1, Y: 1}, NoGravity: true})
	pw.Step(step)

	if !pw.Remove(1) {
		t.Fatal("expected remove to succeed")
	}
	if pw.Remove(1) {
		t.Fatal("second remove should report false")
	}
	if events := pw.Step(step); len(events) != 0 {
		t.Fatalf("expected no events after removal, got %v", events)
	}
	if pw.Len() != 1 {
		t.Fatalf("expected one collider left, got %d", pw.Len())
	}
}
