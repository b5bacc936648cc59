package kinematics

import (
	"math"

	"github.com/milk9111/wastesorter/common"
)

// ArcConfig tunes the lob trajectory.
type ArcConfig struct {
	Speed      float64 `yaml:"speed"`
	ShortSpeed float64 `yaml:"short_speed"`
	ShortRange float64 `yaml:"short_range"`
	Scale      float64 `yaml:"scale"`
}

// DefaultArcConfig matches the plastic-brick-can lob.
var DefaultArcConfig = ArcConfig{
	Speed:      12.5,
	ShortSpeed: 8.5,
	ShortRange: 6.5,
	Scale:      1,
}

// Arc moves horizontally toward the target at constant speed while the
// height follows a parabola laid over the straight line between launch and
// target. The parabola is zero at both ends and peaks at Scale halfway.
type Arc struct {
	Start  common.Vec
	Target common.Vec
	Speed  float64
	Scale  float64

	rotation float64
}

// NewArc builds a lob from start to target. Short lobs, with a horizontal
// distance within ShortRange, use ShortSpeed.
func NewArc(start, target common.Vec, cfg ArcConfig) *Arc {
	a := &Arc{Start: start, Target: target, Speed: cfg.Speed, Scale: cfg.Scale}
	if math.Abs(target.X-start.X) <= cfg.ShortRange {
		a.Speed = cfg.ShortSpeed
	}
	return a
}

// Degenerate reports a lob with no horizontal distance. Such a lob cannot be
// parameterised by x, so it drops straight onto the target on its first step.
func (a *Arc) Degenerate() bool {
	return a.Target.X == a.Start.X
}

// Height returns the arc offset added to the straight line at x.
func (a *Arc) Height(x float64) float64 {
	if a.Degenerate() {
		return 0
	}
	x0, x1 := a.Start.X, a.Target.X
	d := x1 - x0
	return a.Scale * ((x - x0) * (x - x1) / (-0.25 * d * d))
}

// PositionAt returns the point on the arc for horizontal coordinate x.
func (a *Arc) PositionAt(x float64) common.Vec {
	if a.Degenerate() {
		return a.Target
	}
	x0 := a.Start.X
	d := a.Target.X - x0
	baseY := common.Lerp(a.Start.Y, a.Target.Y, (x-x0)/d)
	return common.Vec{X: x, Y: baseY + a.Height(x)}
}

func (a *Arc) Step(pos common.Vec, dt float64) (common.Vec, bool) {
	if a.Degenerate() {
		a.rotation = common.Heading(a.Target.X-pos.X, a.Target.Y-pos.Y)
		return a.Target, true
	}
	nx := common.MoveTowards(pos.X, a.Target.X, a.Speed*dt)
	next := a.PositionAt(nx)
	if nx == a.Target.X {
		next = a.Target
	}
	if d := next.Sub(pos); d.X != 0 || d.Y != 0 {
		a.rotation = common.Heading(d.X, d.Y)
	}
	return next, next == a.Target
}

// Heading returns the rotation computed on the last step.
func (a *Arc) Heading() float64 {
	return a.rotation
}
