package combat

import "github.com/milk9111/wastesorter/common"

// EventType defines the kind of combat event.
type EventType string

const (
	EventHit          EventType = "hit"
	EventKilled       EventType = "killed"
	EventMismatch     EventType = "mismatch"
	EventPlayerHurt   EventType = "player_hurt"
	EventPlayerDied   EventType = "player_died"
	EventPlayerHealed EventType = "player_healed"
)

// Event is emitted during combat resolution. ScoreDelta carries the points
// the event added to or removed from the running score, for popups.
type Event struct {
	Type       EventType
	Category   Category
	Powered    bool
	Health     int
	ScoreDelta int
	Pos        common.Vec
}

// EventHandler handles combat events.
type EventHandler func(evt Event)

// Emitter fans events out to its handlers.
type Emitter struct {
	Handlers []EventHandler
}

// Subscribe appends h.
func (e *Emitter) Subscribe(h EventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends an event to all handlers.
func (e *Emitter) Emit(evt Event) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
