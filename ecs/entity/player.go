package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/physics"
	"github.com/milk9111/wastesorter/player"
)

// NewPlayer spawns the player body at the controller's position.
func NewPlayer(w *ecs.World, pw *physics.World, ctrl *player.Controller, size common.Vec, col color.Color) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{Controller: ctrl}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: ctrl.Pos.X, Y: ctrl.Pos.Y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderComponent.Kind(), &component.Render{Color: col, Width: size.X, Height: size.Y, Layer: 10}); err != nil {
		return 0, fmt.Errorf("player: add render: %w", err)
	}
	body := addBody(pw, physics.BodyDef{
		Entity:   uint64(entity),
		Tag:      combat.TagPlayer,
		Kind:     component.BodyDynamic,
		Pos:      ctrl.Pos,
		Size:     size,
		Friction: 0,
	})
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	return entity, nil
}
