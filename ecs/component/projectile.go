package component

import "github.com/milk9111/wastesorter/combat"

type Projectile struct {
	Projectile *combat.Projectile
}

var ProjectileComponent = NewComponent[Projectile]()
