package entity

import (
	"fmt"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/levels"
	"github.com/milk9111/wastesorter/physics"
	"github.com/milk9111/wastesorter/prefabs"
)

var (
	pickupSize   = common.V(0.8, 0.8)
	endPointSize = common.V(1, 3)
)

// NewLevel spawns the static scenery of lvl: floors, power-ups and the end
// point. The player and enemies are spawned by the caller.
func NewLevel(w *ecs.World, pw *physics.World, lvl *levels.Level, look prefabs.VisualsSpec) error {
	for _, r := range lvl.Solids() {
		if _, err := newFloor(w, pw, r, look); err != nil {
			return err
		}
	}
	for _, p := range lvl.Placements() {
		var err error
		switch p.Type {
		case levels.TypePowerUpDmg:
			_, err = NewPickup(w, pw, combat.TagPowerUpDamage, StandOn(p.Pos, pickupSize.Y), look)
		case levels.TypePowerUpLife:
			_, err = NewPickup(w, pw, combat.TagPowerUpLife, StandOn(p.Pos, pickupSize.Y), look)
		case levels.TypeEndPoint:
			_, err = newEndPoint(w, pw, StandOn(p.Pos, endPointSize.Y), look)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func newFloor(w *ecs.World, pw *physics.World, r common.Rect, look prefabs.VisualsSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.FloorTagComponent.Kind(), &component.FloorTag{}); err != nil {
		return 0, fmt.Errorf("floor: add tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}); err != nil {
		return 0, fmt.Errorf("floor: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderComponent.Kind(), &component.Render{Color: look.Floor.Or(floorFallback), Width: r.Width, Height: r.Height}); err != nil {
		return 0, fmt.Errorf("floor: add render: %w", err)
	}
	body := addBody(pw, physics.BodyDef{
		Entity:   uint64(entity),
		Tag:      combat.TagFloor,
		Kind:     component.BodyStatic,
		Pos:      common.V(r.X, r.Y),
		Size:     common.V(r.Width, r.Height),
		Friction: 0.8,
	})
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("floor: add body: %w", err)
	}
	return entity, nil
}

// NewPickup spawns a power-up trigger tagged tag.
func NewPickup(w *ecs.World, pw *physics.World, tag combat.Tag, pos common.Vec, look prefabs.VisualsSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	col := look.PowerUpDmg.Or(powerUpDmgFallback)
	if tag == combat.TagPowerUpLife {
		col = look.PowerUpHP.Or(powerUpLifeFallback)
	}
	if err := ecs.Add(w, entity, component.PickupComponent.Kind(), &component.Pickup{Tag: tag}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, fmt.Errorf("pickup: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderComponent.Kind(), &component.Render{Color: col, Width: pickupSize.X, Height: pickupSize.Y, Layer: 8}); err != nil {
		return 0, fmt.Errorf("pickup: add render: %w", err)
	}
	body := addBody(pw, physics.BodyDef{
		Entity: uint64(entity),
		Tag:    tag,
		Kind:   component.BodyStatic,
		Pos:    pos,
		Size:   pickupSize,
		Sensor: true,
	})
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("pickup: add body: %w", err)
	}
	return entity, nil
}

func newEndPoint(w *ecs.World, pw *physics.World, pos common.Vec, look prefabs.VisualsSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.EndPointTagComponent.Kind(), &component.EndPointTag{}); err != nil {
		return 0, fmt.Errorf("end point: add tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, fmt.Errorf("end point: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderComponent.Kind(), &component.Render{Color: look.EndPoint.Or(endPointFallback), Width: endPointSize.X, Height: endPointSize.Y, Layer: 8}); err != nil {
		return 0, fmt.Errorf("end point: add render: %w", err)
	}
	body := addBody(pw, physics.BodyDef{
		Entity: uint64(entity),
		Tag:    combat.TagEndPoint,
		Kind:   component.BodyStatic,
		Pos:    pos,
		Size:   endPointSize,
		Sensor: true,
	})
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("end point: add body: %w", err)
	}
	return entity, nil
}
