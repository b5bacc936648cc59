package component

import "github.com/milk9111/wastesorter/enemy"

type Enemy struct {
	Behavior *enemy.Behavior
}

var EnemyComponent = NewComponent[Enemy]()

// Detector is the proximity trigger of an enemy. Owner is the raw handle of
// the enemy entity it follows.
type Detector struct {
	Detector *enemy.Detector
	Owner    uint64
}

var DetectorComponent = NewComponent[Detector]()
