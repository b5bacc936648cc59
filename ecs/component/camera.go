package component

// Camera follows the player horizontally. Zoom is pixels per world unit.
type Camera struct {
	Zoom      float64
	Smoothing float64
	// MinX and MaxX clamp the centre to the level bounds when MaxX > MinX.
	MinX float64
	MaxX float64
}

var CameraComponent = NewComponent[Camera]()
