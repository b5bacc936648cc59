package component

import "image/color"

// Render is a debug rectangle drawn centred on the transform.
type Render struct {
	Color  color.Color
	Width  float64
	Height float64
	Hidden bool
	Layer  int
}

var RenderComponent = NewComponent[Render]()

// Particle drifts with a constant velocity until its TTL expires.
type Particle struct {
	VX float64
	VY float64
}

var ParticleComponent = NewComponent[Particle]()

// Popup is floating text such as a score delta.
type Popup struct {
	Text  string
	Color color.Color
	Rise  float64
}

var PopupComponent = NewComponent[Popup]()
