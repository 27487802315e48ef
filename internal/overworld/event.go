// Package overworld runs the walking part of the game: grid movement, the
// interaction resolver and the following camera. Subsystems talk through a
// small event bus so each one stays a plain function of the shared state.
package overworld

import "fmt"

// EventKind identifies what happened during a tick.
type EventKind uint8

const (
	// EventStepCompleted fires when the avatar snaps onto a new cell.
	EventStepCompleted EventKind = iota
	// EventLocationEntered asks for the town banner.
	EventLocationEntered
	// EventDoor starts the battle transition for Week.
	EventDoor
	// EventTalk opens dialogue with the NPC whose ID is in NPC.
	EventTalk
	// EventSign shows the nearest town's sign.
	EventSign
	// EventOverlay opens the weekly stats overlay.
	EventOverlay
)

func (k EventKind) String() string {
	switch k {
	case EventStepCompleted:
		return "step_completed"
	case EventLocationEntered:
		return "location_entered"
	case EventDoor:
		return "door"
	case EventTalk:
		return "talk"
	case EventSign:
		return "sign"
	case EventOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Event is one message on the bus.
type Event struct {
	Kind EventKind
	X, Y int
	Week int
	NPC  int
}

func (e Event) String() string {
	return fmt.Sprintf("%s(week=%d at %d,%d)", e.Kind, e.Week, e.X, e.Y)
}

// Bus collects the events emitted during one tick, in order.
type Bus struct {
	events []Event
}

// Emit appends events.
func (b *Bus) Emit(events ...Event) {
	b.events = append(b.events, events...)
}

// Events returns the events emitted so far this tick.
func (b *Bus) Events() []Event {
	return b.events
}

// Has reports whether an event of kind k was emitted.
func (b *Bus) Has(k EventKind) bool {
	for _, e := range b.events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Reset empties the bus for the next tick.
func (b *Bus) Reset() {
	b.events = b.events[:0]
}
