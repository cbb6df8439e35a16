package engine

import (
	"github.com/calyxgames/primordia/event"
)

// System is one frame-driven unit of work. Systems run in Priority
// order (lower first) within a single tick; none of them block or
// span frames.
type System interface {
	Name() string
	Priority() int

	// EventTypes lists the event types routed to HandleEvent; return
	// nil for systems that only tick
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)

	Update()
}

// SystemBase provides the common dependencies for all systems.
// Embed in a system struct and fill via NewSystemBase in the
// constructor.
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component *ComponentStore
}

// NewSystemBase caches world pointers; call once in the constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  &w.Resources,
		Component: &w.Components,
	}
}
