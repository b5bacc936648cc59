package entity

import (
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/physics"
)

func addBody(pw *physics.World, def physics.BodyDef) *component.PhysicsBody {
	body, shape := pw.Add(def)
	return &component.PhysicsBody{
		Body:      body,
		Shape:     shape,
		Tag:       def.Tag,
		Kind:      def.Kind,
		Width:     def.Size.X,
		Height:    def.Size.Y,
		Friction:  def.Friction,
		Sensor:    def.Sensor,
		NoGravity: def.NoGravity,
	}
}

// StandOn lifts a bottom-edge placement to the centre of a body of the given height.
func StandOn(pos common.Vec, height float64) common.Vec {
	return common.Vec{X: pos.X, Y: pos.Y + height/2}
}
