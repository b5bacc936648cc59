package component

import "github.com/milk9111/wastesorter/combat"

// Pickup is a power-up with a bobbing idle animation.
type Pickup struct {
	Tag          combat.Tag
	BaseY        float64
	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
	Initialized  bool
}

var PickupComponent = NewComponent[Pickup]()
