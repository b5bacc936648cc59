package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerUnit maps world units to screen pixels in the debug renderer.
	PixelsPerUnit = 32.0

	// TPS is the fixed simulation rate of the host loop.
	TPS = 60

	// Gravity is the downward acceleration in units per second squared.
	Gravity = 30.0
)
