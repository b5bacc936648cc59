package enemy

import (
	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
)

// Listener receives the player's presence from a Detector. *Behavior
// implements it.
type Listener interface {
	PlayerDetected(pos common.Vec)
	PlayerLost()
	PlayerMoved(pos common.Vec)
}

// Detector relays trigger enter/stay/exit events for the player to its
// listener. Other tags are ignored.
type Detector struct {
	Listener Listener
	inside   bool
}

func NewDetector(l Listener) *Detector {
	return &Detector{Listener: l}
}

// Inside reports whether the player is in the trigger.
func (d *Detector) Inside() bool { return d.inside }

func (d *Detector) Enter(tag combat.Tag, pos common.Vec) {
	if tag != combat.TagPlayer || d.Listener == nil {
		return
	}
	d.inside = true
	d.Listener.PlayerDetected(pos)
}

func (d *Detector) Stay(tag combat.Tag, pos common.Vec) {
	if tag != combat.TagPlayer || d.Listener == nil {
		return
	}
	d.Listener.PlayerMoved(pos)
}

func (d *Detector) Exit(tag combat.Tag) {
	if tag != combat.TagPlayer || d.Listener == nil {
		return
	}
	d.inside = false
	d.Listener.PlayerLost()
}
