// Package kinematics holds the motion models used by every projectile.
package kinematics

import "github.com/milk9111/wastesorter/common"

// Motion advances a projectile position by dt seconds. Done reports that the
// motion reached its end and the projectile should be removed.
type Motion interface {
	Step(pos common.Vec, dt float64) (next common.Vec, done bool)
}

// Linear is a constant velocity set once at spawn.
type Linear struct {
	Velocity common.Vec
}

// NewLinear returns a motion along dir at speed. dir is used as given; callers
// that aim at a point normalize it first.
func NewLinear(dir common.Vec, speed float64) *Linear {
	return &Linear{Velocity: dir.Scale(speed)}
}

func (l *Linear) Step(pos common.Vec, dt float64) (common.Vec, bool) {
	return pos.Add(l.Velocity.Scale(dt)), false
}

// Heading returns the rotation matching the velocity.
func (l *Linear) Heading() float64 {
	return common.Heading(l.Velocity.X, l.Velocity.Y)
}
