package event

import (
	"sync/atomic"
)

const (
	// QueueSize must be a power of two for mask indexing
	QueueSize  = 256
	bufferMask = QueueSize - 1
)

// EventQueue is a lock-free MPSC ring buffer.
//   - Push: lock-free CAS, multiple producers OK
//   - Consume: single consumer (the frame loop)
//   - published flags prevent reading partial writes
//
// Overflow overwrites the oldest unread events.
type EventQueue struct {
	events    [QueueSize]GameEvent
	published [QueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event; safe for concurrent producers
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & bufferMask

			eq.events[idx] = ev
			eq.published[idx].Store(true) // must follow the write

			// Advance head if overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > QueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-QueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head.
// Single-consumer design; stops early at an unpublished slot.
func (eq *EventQueue) Consume() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	if currentTail == currentHead {
		return nil
	}

	available := currentTail - currentHead
	if available > QueueSize {
		available = QueueSize
		currentHead = currentTail - QueueSize
	}

	result := make([]GameEvent, 0, available)
	for i := uint64(0); i < available; i++ {
		idx := (currentHead + i) & bufferMask

		if !eq.published[idx].Load() {
			break // writer incomplete
		}

		result = append(result, eq.events[idx])
		eq.published[idx].Store(false)
	}

	eq.head.Store(currentHead + uint64(len(result)))
	return result
}
