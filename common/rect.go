package common

// Rect is an axis-aligned box anchored at its center.
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

func (r Rect) Min() Vec {
	return Vec{X: r.X - r.Width/2, Y: r.Y - r.Height/2}
}

func (r Rect) Max() Vec {
	return Vec{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether the two boxes overlap.
func (r Rect) Intersects(o Rect) bool {
	a0, a1 := r.Min(), r.Max()
	b0, b1 := o.Min(), o.Max()
	return a0.X < b1.X && a1.X > b0.X && a0.Y < b1.Y && a1.Y > b0.Y
}
