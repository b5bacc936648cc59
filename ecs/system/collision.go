package system

import (
	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/physics"
)

// CollisionSystem dispatches contacts to projectiles, enemies, the player
// and pickups.
type CollisionSystem struct {
	Physics *physics.World

	// floors counts the floor colliders the player touches so that leaving
	// one of two adjacent floors keeps the player grounded.
	floors map[ecs.Entity]int
	// touching holds the enemies each player body overlaps. Contact begins
	// only once, so these are replayed when the player can be hurt again.
	touching     map[ecs.Entity]map[ecs.Entity]struct{}
	invulnerable map[ecs.Entity]bool
}

func NewCollisionSystem(pw *physics.World) *CollisionSystem {
	return &CollisionSystem{
		Physics:      pw,
		floors:       make(map[ecs.Entity]int),
		touching:     make(map[ecs.Entity]map[ecs.Entity]struct{}),
		invulnerable: make(map[ecs.Entity]bool),
	}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range Contacts(w) {
		self, other := ecs.Entity(evt.Self), ecs.Entity(evt.Other)
		if !ecs.IsAlive(w, self) || !ecs.IsAlive(w, other) || removed(w, self) || removed(w, other) {
			continue
		}
		starts := evt.Kind == physics.Begin || evt.Kind == physics.Enter
		ends := evt.Kind == physics.End || evt.Kind == physics.Exit

		if pc, ok := ecs.Get(w, self, component.ProjectileComponent.Kind()); ok {
			// Stay lets a bullet that passed over an invulnerable player
			// land once the window closes.
			if starts || evt.Kind == physics.Stay {
				s.projectileHit(w, self, pc.Projectile, other, evt)
			}
			continue
		}
		if p, ok := ecs.Get(w, self, component.PlayerComponent.Kind()); ok && p.Controller != nil {
			switch {
			case starts:
				s.playerContact(w, self, p, other, evt)
			case ends:
				s.playerSeparate(self, p, other, evt)
			}
		}
	}
	s.replayEnemyContacts(w)
}

func removed(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.DestroyedComponent.Kind())
}

// MarkDestroyed flags e for removal at the end of the frame.
func MarkDestroyed(w *ecs.World, e ecs.Entity) {
	if removed(w, e) {
		return
	}
	_ = ecs.Add(w, e, component.DestroyedComponent.Kind(), &component.Destroyed{})
}

// projectileHit spends a projectile on the first solid thing it touches.
// Player shots pass through the player and enemy bullets through enemies.
func (s *CollisionSystem) projectileHit(w *ecs.World, self ecs.Entity, p *combat.Projectile, other ecs.Entity, evt physics.Event) {
	if p == nil || p.Spent() {
		return
	}
	switch evt.OtherTag {
	case combat.TagFloor:
		if p.Spend() {
			MarkDestroyed(w, self)
		}
	case combat.TagEnemy:
		if !p.FromPlayer {
			return
		}
		en, ok := ecs.Get(w, other, component.EnemyComponent.Kind())
		if !ok || en.Behavior == nil || en.Behavior.Destroyed() {
			return
		}
		if p.Spend() {
			MarkDestroyed(w, self)
			en.Behavior.Hit(p)
		}
	case combat.TagPlayer:
		if p.FromPlayer {
			return
		}
		pl, ok := ecs.Get(w, other, component.PlayerComponent.Kind())
		if !ok || pl.Controller == nil || pl.Controller.Invulnerable() {
			return
		}
		if p.Spend() {
			MarkDestroyed(w, self)
			pl.Controller.Collide(combat.TagEnemyBullet, p.Pos, s.velocity(other))
		}
	}
}

func (s *CollisionSystem) playerContact(w *ecs.World, self ecs.Entity, p *component.Player, other ecs.Entity, evt physics.Event) {
	switch evt.OtherTag {
	case combat.TagEnemyBullet, combat.TagGlassShot, combat.TagOrganicShot, combat.TagPaperShot, combat.TagPlasticShot, combat.TagDetector:
		// handled from the projectile side, or not a contact the player reacts to
		return
	case combat.TagFloor:
		s.floors[self]++
		if s.floors[self] > 1 {
			return
		}
	case combat.TagEnemy:
		if s.touching[self] == nil {
			s.touching[self] = make(map[ecs.Entity]struct{})
		}
		s.touching[self][other] = struct{}{}
	case combat.TagPowerUpDamage, combat.TagPowerUpLife:
		if _, ok := ecs.Get(w, other, component.PickupComponent.Kind()); !ok {
			return
		}
	}
	if p.Controller.Collide(evt.OtherTag, evt.OtherPos, s.velocity(self)) {
		MarkDestroyed(w, other)
	}
}

func (s *CollisionSystem) playerSeparate(self ecs.Entity, p *component.Player, other ecs.Entity, evt physics.Event) {
	if evt.OtherTag == combat.TagEnemy {
		delete(s.touching[self], other)
	}
	if evt.OtherTag != combat.TagFloor {
		p.Controller.Separate(evt.OtherTag)
		return
	}
	if s.floors[self] > 0 {
		s.floors[self]--
	}
	if s.floors[self] == 0 {
		p.Controller.Separate(combat.TagFloor)
	}
}

// replayEnemyContacts hurts a player whose invulnerability ran out while an
// enemy body still overlaps it.
func (s *CollisionSystem) replayEnemyContacts(w *ecs.World) {
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(self ecs.Entity, p *component.Player) {
		if p.Controller == nil {
			return
		}
		was := s.invulnerable[self]
		now := p.Controller.Invulnerable()
		s.invulnerable[self] = now
		if !was || now {
			return
		}
		for enemy := range s.touching[self] {
			en, ok := ecs.Get(w, enemy, component.EnemyComponent.Kind())
			if !ok || removed(w, enemy) || (en.Behavior != nil && en.Behavior.Destroyed()) {
				delete(s.touching[self], enemy)
				continue
			}
			var from common.Vec
			if s.Physics != nil {
				from, _ = s.Physics.Position(uint64(enemy))
			}
			p.Controller.Collide(combat.TagEnemy, from, s.velocity(self))
			if p.Controller.Invulnerable() {
				return
			}
		}
	})
}

func (s *CollisionSystem) velocity(e ecs.Entity) common.Vec {
	if s.Physics == nil {
		return common.Vec{}
	}
	return s.Physics.Velocity(uint64(e))
}
