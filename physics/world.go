package physics

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs/component"
)

const collisionTypeBody cp.CollisionType = 1

// EventKind distinguishes solid contacts from trigger overlaps.
type EventKind int

const (
	Begin EventKind = iota
	End
	Enter
	Stay
	Exit
)

func (k EventKind) String() string {
	switch k {
	case Begin:
		return "begin"
	case End:
		return "end"
	case Enter:
		return "enter"
	case Stay:
		return "stay"
	case Exit:
		return "exit"
	}
	return "unknown"
}

// Event is one side of a contact: Self touched Other. Every contact yields
// an event for each participant.
type Event struct {
	Kind     EventKind
	Self     uint64
	Other    uint64
	SelfTag  combat.Tag
	OtherTag combat.Tag
	// OtherPos is the centre of Other when the contact was recorded.
	OtherPos common.Vec
}

// BodyDef describes the collider of one entity.
type BodyDef struct {
	Entity    uint64
	Tag       combat.Tag
	Kind      component.BodyKind
	Pos       common.Vec
	Size      common.Vec
	Sensor    bool
	NoGravity bool
	Friction  float64
}

type entry struct {
	entity  uint64
	tag     combat.Tag
	kind    component.BodyKind
	sensor  bool
	body    *cp.Body
	shape   *cp.Shape
	removed bool
}

type pair struct {
	self, other uint64
}

// World owns the Chipmunk space and maps shapes back to entities.
type World struct {
	space *cp.Space

	shapeToEntry map[*cp.Shape]*entry
	entities     map[uint64]*entry

	overlaps map[pair]struct{}
	pending  []Event
}

// NewWorld creates a space pulling bodies down with the given gravity.
func NewWorld(gravity float64) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})

	pw := &World{
		space:        space,
		shapeToEntry: make(map[*cp.Shape]*entry),
		entities:     make(map[uint64]*entry),
		overlaps:     make(map[pair]struct{}),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *World) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Len returns the number of registered colliders.
func (pw *World) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.entities)
}

// Add creates the body and box shape for def, replacing any collider the
// entity already had.
func (pw *World) Add(def BodyDef) (*cp.Body, *cp.Shape) {
	if pw == nil || def.Entity == 0 {
		return nil, nil
	}
	pw.Remove(def.Entity)

	w, h := def.Size.X, def.Size.Y
	var body *cp.Body
	var shape *cp.Shape
	switch def.Kind {
	case component.BodyStatic:
		body = pw.space.StaticBody
		bb := cp.BB{L: def.Pos.X - w/2, B: def.Pos.Y - h/2, R: def.Pos.X + w/2, T: def.Pos.Y + h/2}
		shape = cp.NewBox2(body, bb, 0)
	case component.BodyKinematic:
		body = cp.NewKinematicBody()
		body.SetPosition(cp.Vector{X: def.Pos.X, Y: def.Pos.Y})
		pw.space.AddBody(body)
		shape = cp.NewBox(body, w, h, 0)
	default:
		body = cp.NewBody(1, math.Inf(1))
		body.SetPosition(cp.Vector{X: def.Pos.X, Y: def.Pos.Y})
		if def.NoGravity {
			body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
				cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
			})
		}
		pw.space.AddBody(body)
		shape = cp.NewBox(body, w, h, 0)
	}
	shape.SetSensor(def.Sensor)
	shape.SetCollisionType(collisionTypeBody)
	shape.SetFriction(def.Friction)
	shape.UserData = def.Entity
	pw.space.AddShape(shape)

	e := &entry{
		entity: def.Entity,
		tag:    def.Tag,
		kind:   def.Kind,
		sensor: def.Sensor,
		body:   body,
		shape:  shape,
	}
	pw.shapeToEntry[shape] = e
	pw.entities[def.Entity] = e
	return body, shape
}

// Remove drops the collider of entity. Contacts it had end silently.
func (pw *World) Remove(entity uint64) bool {
	if pw == nil {
		return false
	}
	e, ok := pw.entities[entity]
	if !ok {
		return false
	}
	e.removed = true
	pw.space.RemoveShape(e.shape)
	if e.kind != component.BodyStatic {
		pw.space.RemoveBody(e.body)
	}
	delete(pw.shapeToEntry, e.shape)
	delete(pw.entities, entity)
	for p := range pw.overlaps {
		if p.self == entity || p.other == entity {
			delete(pw.overlaps, p)
		}
	}
	return true
}

// Has reports whether entity owns a collider.
func (pw *World) Has(entity uint64) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.entities[entity]
	return ok
}

func (pw *World) Position(entity uint64) (common.Vec, bool) {
	e, ok := pw.entities[entity]
	if !ok {
		return common.Vec{}, false
	}
	if e.kind == component.BodyStatic {
		bb := e.shape.BB()
		return common.Vec{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}, true
	}
	p := e.body.Position()
	return common.Vec{X: p.X, Y: p.Y}, true
}

// SetPosition teleports a dynamic or kinematic body. Static colliders do not move.
func (pw *World) SetPosition(entity uint64, pos common.Vec) {
	e, ok := pw.entities[entity]
	if !ok || e.kind == component.BodyStatic {
		return
	}
	e.body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
}

func (pw *World) Velocity(entity uint64) common.Vec {
	e, ok := pw.entities[entity]
	if !ok || e.kind == component.BodyStatic {
		return common.Vec{}
	}
	v := e.body.Velocity()
	return common.Vec{X: v.X, Y: v.Y}
}

func (pw *World) SetVelocity(entity uint64, v common.Vec) {
	e, ok := pw.entities[entity]
	if !ok || e.kind == component.BodyStatic {
		return
	}
	e.body.SetVelocity(v.X, v.Y)
}

// Step advances the simulation and returns the contact events it produced,
// followed by a Stay event for every trigger overlap that persisted.
func (pw *World) Step(dt float64) []Event {
	if pw == nil || pw.space == nil {
		return nil
	}
	before := make(map[pair]struct{}, len(pw.overlaps))
	for p := range pw.overlaps {
		before[p] = struct{}{}
	}

	pw.space.Step(dt)

	events := pw.pending
	pw.pending = nil
	for p := range before {
		if _, ok := pw.overlaps[p]; !ok {
			continue
		}
		self, other := pw.entities[p.self], pw.entities[p.other]
		if self == nil || other == nil {
			continue
		}
		events = append(events, pw.event(Stay, self, other))
	}
	return events
}

func (pw *World) event(kind EventKind, self, other *entry) Event {
	evt := Event{
		Kind:     kind,
		Self:     self.entity,
		Other:    other.entity,
		SelfTag:  self.tag,
		OtherTag: other.tag,
	}
	if pos, ok := pw.Position(other.entity); ok {
		evt.OtherPos = pos
	}
	return evt
}

func (pw *World) lookup(arb *cp.Arbiter) (*entry, *entry, bool) {
	shapeA, shapeB := arb.Shapes()
	a, okA := pw.shapeToEntry[shapeA]
	b, okB := pw.shapeToEntry[shapeB]
	if !okA || !okB || a.removed || b.removed {
		return nil, nil, false
	}
	return a, b, true
}

func (pw *World) setupHandlers() {
	handler := pw.space.NewCollisionHandler(collisionTypeBody, collisionTypeBody)
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		a, b, ok := world.lookup(arb)
		if !ok {
			return true
		}
		if a.sensor || b.sensor {
			world.overlaps[pair{a.entity, b.entity}] = struct{}{}
			world.overlaps[pair{b.entity, a.entity}] = struct{}{}
			world.pending = append(world.pending, world.event(Enter, a, b), world.event(Enter, b, a))
			return true
		}
		world.pending = append(world.pending, world.event(Begin, a, b), world.event(Begin, b, a))
		return true
	}
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		a, b, ok := world.lookup(arb)
		if !ok {
			return true
		}
		// player and enemy bodies pass through each other
		if (a.tag == combat.TagPlayer && b.tag == combat.TagEnemy) || (a.tag == combat.TagEnemy && b.tag == combat.TagPlayer) {
			return false
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return
		}
		a, b, ok := world.lookup(arb)
		if !ok {
			return
		}
		if a.sensor || b.sensor {
			delete(world.overlaps, pair{a.entity, b.entity})
			delete(world.overlaps, pair{b.entity, a.entity})
			world.pending = append(world.pending, world.event(Exit, a, b), world.event(Exit, b, a))
			log.Debug("physics: trigger exit", "a", a.tag, "b", b.tag)
			return
		}
		world.pending = append(world.pending, world.event(End, a, b), world.event(End, b, a))
	}
}
