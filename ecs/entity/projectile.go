package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/physics"
)

// ProjectileSize is the collider edge of every projectile.
const ProjectileSize = 0.4

// NewProjectile spawns a trigger that follows p's motion.
func NewProjectile(w *ecs.World, pw *physics.World, p *combat.Projectile, col color.Color) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), &component.Projectile{Projectile: p}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: p.Pos.X, Y: p.Pos.Y}); err != nil {
		return 0, fmt.Errorf("projectile: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderComponent.Kind(), &component.Render{Color: col, Width: ProjectileSize, Height: ProjectileSize, Layer: 20}); err != nil {
		return 0, fmt.Errorf("projectile: add render: %w", err)
	}
	body := addBody(pw, physics.BodyDef{
		Entity: uint64(entity),
		Tag:    p.Tag,
		Kind:   component.BodyKinematic,
		Pos:    p.Pos,
		Size:   common.V(ProjectileSize, ProjectileSize),
		Sensor: true,
	})
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("projectile: add body: %w", err)
	}
	return entity, nil
}
