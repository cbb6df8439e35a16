package event

import (
	"github.com/calyxgames/primordia/core"
)

// EventType represents the type of engine event
type EventType int

const (
	// EventWorldReset requests mass entity cleanup
	// Trigger: session restart | Consumer: all systems | Payload: nil
	EventWorldReset EventType = iota

	// EventSectionChanged announces a world-section transition
	// Trigger: game flow layer | Consumer: GravitySystem, WarpSystem
	// Payload: *SectionChangedPayload
	EventSectionChanged

	// EventFieldRefreshRequest forces a well rescan within the current
	// section (debug / editor use)
	// Trigger: tooling | Consumer: GravitySystem | Payload: nil
	EventFieldRefreshRequest
)

// GameEvent is one queued event with its originating frame
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// SectionChangedPayload carries the section being entered
type SectionChangedPayload struct {
	Section core.Section
}
