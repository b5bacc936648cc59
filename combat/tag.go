package combat

// Tag is the collision tag reported by the physics host for the other
// participant of a collision or trigger.
type Tag string

const (
	TagPlayer        Tag = "Player"
	TagEnemy         Tag = "Enemy"
	TagEnemyBullet   Tag = "EnemyBullet"
	TagGlassShot     Tag = "BalaVidrio"
	TagOrganicShot   Tag = "BalaOrganica"
	TagPaperShot     Tag = "BalaPC"
	TagPlasticShot   Tag = "BalaPBL"
	TagFloor         Tag = "Floor"
	TagEndPoint      Tag = "EndPoint"
	TagPowerUpDamage Tag = "PowerUpDmg"
	TagPowerUpLife   Tag = "PowerUpVida"
	TagDetector      Tag = "Detector"
)

// CategoryForTag maps a player shot tag to its category. Any other tag
// reports false.
func CategoryForTag(t Tag) (Category, bool) {
	switch t {
	case TagGlassShot:
		return Glass, true
	case TagOrganicShot:
		return Organic, true
	case TagPaperShot:
		return PaperCardboard, true
	case TagPlasticShot:
		return PlasticBrickCan, true
	}
	return 0, false
}

// IsPlayerShot reports whether t is one of the four player shot tags.
func (t Tag) IsPlayerShot() bool {
	_, ok := CategoryForTag(t)
	return ok
}

// HurtsPlayer reports whether touching t damages the player.
func (t Tag) HurtsPlayer() bool {
	return t == TagEnemy || t == TagEnemyBullet
}
