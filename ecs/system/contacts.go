package system

import (
	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/physics"
)

// ContactEvent is the world event type carrying a physics.Event.
const ContactEvent = "contact"

// publishContacts replaces last frame's world events with this step's
// contacts.
func publishContacts(w *ecs.World, events []physics.Event) {
	q := w.Events()
	q.Drain()
	for _, evt := range events {
		q.Push(ecs.Event{Type: ContactEvent, Data: evt})
	}
}

// Contacts returns the physics contacts published this frame.
func Contacts(w *ecs.World) []physics.Event {
	if w == nil {
		return nil
	}
	queued := w.Events().Peek()
	out := make([]physics.Event, 0, len(queued))
	for _, evt := range queued {
		if evt.Type != ContactEvent {
			continue
		}
		if c, ok := evt.Data.(physics.Event); ok {
			out = append(out, c)
		}
	}
	return out
}
