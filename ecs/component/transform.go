package component

// Transform is the entity centre in world units, y up.
type Transform struct {
	X          float64
	Y          float64
	FacingLeft bool
}

var TransformComponent = NewComponent[Transform]()
