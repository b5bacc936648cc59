package ecs

import "github.com/milk9111/wastesorter/ecs/component"

// World owns entities, component stores, and the event queue shared by systems.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle. It
// returns false when e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns the live entities that carry every listed kind.
func (w *World) Query(kinds ...component.KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	smallest := w.stores[kinds[0].ID()]
	for _, k := range kinds[1:] {
		s := w.stores[k.ID()]
		if s.len() < smallest.len() {
			smallest = s
		}
	}
	if smallest.len() == 0 {
		return nil
	}
	var out []Entity
	for _, e := range smallest.entities() {
		if w.hasAll(e, kinds) {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) hasAll(e Entity, kinds []component.KindID) bool {
	for _, k := range kinds {
		if !w.stores[k.ID()].has(e) {
			return false
		}
	}
	return true
}

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}
