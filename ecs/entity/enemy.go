package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/enemy"
	"github.com/milk9111/wastesorter/physics"
)

// EnemyLook colours an enemy and its detector.
type EnemyLook struct {
	Body     color.Color
	Detector color.Color
}

// NewEnemy spawns the enemy body and its proximity detector. The behavior's
// UserData is set to the body entity.
func NewEnemy(w *ecs.World, pw *physics.World, b *enemy.Behavior, cfg enemy.Config, look EnemyLook) (ecs.Entity, ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	b.UserData = entity

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{Behavior: b}); err != nil {
		return 0, 0, fmt.Errorf("enemy: add enemy: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: b.Pos.X, Y: b.Pos.Y, FacingLeft: !b.FacingRight()}); err != nil {
		return 0, 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderComponent.Kind(), &component.Render{Color: look.Body, Width: cfg.BodySize.X, Height: cfg.BodySize.Y, Layer: 5}); err != nil {
		return 0, 0, fmt.Errorf("enemy: add render: %w", err)
	}
	if err := ecs.Add(w, entity, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{}); err != nil {
		return 0, 0, fmt.Errorf("enemy: add flash: %w", err)
	}
	body := addBody(pw, physics.BodyDef{
		Entity: uint64(entity),
		Tag:    combat.TagEnemy,
		Kind:   component.BodyKinematic,
		Pos:    b.Pos,
		Size:   cfg.BodySize,
	})
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, 0, fmt.Errorf("enemy: add body: %w", err)
	}

	detector, err := newDetector(w, pw, entity, b, cfg.DetectorSize, look.Detector)
	if err != nil {
		return 0, 0, err
	}
	return entity, detector, nil
}

func newDetector(w *ecs.World, pw *physics.World, owner ecs.Entity, b *enemy.Behavior, size common.Vec, col color.Color) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.DetectorComponent.Kind(), &component.Detector{
		Detector: enemy.NewDetector(b),
		Owner:    uint64(owner),
	}); err != nil {
		return 0, fmt.Errorf("detector: add detector: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: b.Pos.X, Y: b.Pos.Y}); err != nil {
		return 0, fmt.Errorf("detector: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderComponent.Kind(), &component.Render{Color: col, Width: size.X, Height: size.Y, Layer: 0}); err != nil {
		return 0, fmt.Errorf("detector: add render: %w", err)
	}
	body := addBody(pw, physics.BodyDef{
		Entity: uint64(entity),
		Tag:    combat.TagDetector,
		Kind:   component.BodyKinematic,
		Pos:    b.Pos,
		Size:   size,
		Sensor: true,
	})
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("detector: add body: %w", err)
	}
	return entity, nil
}
