package combat

import (
	"time"

	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/kinematics"
)

// Projectile is a shot in flight. It is destroyed by whichever comes first
// of its first collision, its TTL, or its motion completing.
type Projectile struct {
	Tag     Tag
	Powered bool
	Pos     common.Vec
	Motion  kinematics.Motion
	// TTL is the remaining lifetime. Zero means no limit.
	TTL time.Duration
	// FromPlayer distinguishes player shots from enemy bullets.
	FromPlayer bool

	spent bool
}

// Category reports the category of a player shot.
func (p *Projectile) Category() (Category, bool) {
	return CategoryForTag(p.Tag)
}

// Spent reports whether the projectile has collided, expired or arrived.
func (p *Projectile) Spent() bool {
	return p == nil || p.spent
}

// Spend marks the projectile destroyed. It reports false if it already was,
// so the first of collision and expiry wins.
func (p *Projectile) Spend() bool {
	if p == nil || p.spent {
		return false
	}
	p.spent = true
	return true
}

// Advance moves the projectile by dt and counts down its TTL. It reports
// whether the projectile is spent afterwards.
func (p *Projectile) Advance(dt time.Duration) bool {
	if p.Spent() {
		return true
	}
	if p.Motion != nil {
		next, done := p.Motion.Step(p.Pos, dt.Seconds())
		p.Pos = next
		if done {
			p.spent = true
			return true
		}
	}
	if p.TTL > 0 {
		p.TTL -= dt
		if p.TTL <= 0 {
			p.spent = true
		}
	}
	return p.spent
}

// Heading returns the projectile's rotation in radians.
func (p *Projectile) Heading() float64 {
	if h, ok := p.Motion.(interface{ Heading() float64 }); ok {
		return h.Heading()
	}
	return 0
}
