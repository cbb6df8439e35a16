package engine

import (
	"sync"
	"time"

	"github.com/calyxgames/primordia/core"
	"github.com/calyxgames/primordia/event"
)

// World contains all entities and their components using typed stores,
// plus the singleton frame resources and the system list
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resource

	eventQueue  *event.EventQueue
	subscribers map[event.EventType][]System

	systems []System
}

// NewWorld creates a new world with empty stores and default resources
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources:    newResource(),
		eventQueue:   event.NewEventQueue(),
		subscribers:  make(map[event.EventType][]System),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Components.removeEntity(e)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.Components.clear()
}

// AddSystem registers a system and keeps the list priority-sorted,
// subscribing it to the event types it declares
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}

	for _, t := range system.EventTypes() {
		w.subscribers[t] = append(w.subscribers[t], system)
	}
}

// PushEvent queues an event for delivery at the start of the next tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// Tick advances one frame: updates timing, delivers pending events,
// then runs every system in priority order. The owner of the render
// loop calls this exactly once per frame.
func (w *World) Tick(now time.Time, dt time.Duration) {
	w.Resources.Time.Update(now, dt, w.Resources.Time.FrameNumber+1)

	for _, ev := range w.eventQueue.Consume() {
		w.mu.RLock()
		subs := w.subscribers[ev.Type]
		w.mu.RUnlock()
		for _, s := range subs {
			s.HandleEvent(ev)
		}
	}

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}
