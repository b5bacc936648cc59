package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wastesorter/combat"
)

// BodyKind selects how the physics space integrates a body.
type BodyKind int

const (
	BodyStatic BodyKind = iota
	BodyDynamic
	BodyKinematic
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
type PhysicsBody struct {
	Body      *cp.Body
	Shape     *cp.Shape
	Tag       combat.Tag
	Kind      BodyKind
	Width     float64
	Height    float64
	Friction  float64
	Sensor    bool
	NoGravity bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
