package event

import (
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	if got := q.Consume(); got != nil {
		t.Errorf("Expected nil from empty queue, got %v", got)
	}

	for i := int64(0); i < 5; i++ {
		q.Push(GameEvent{Type: EventSectionChanged, Frame: i})
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Expected frame %d at position %d, got %d", i, i, ev.Frame)
		}
	}

	if got := q.Consume(); got != nil {
		t.Errorf("Expected drained queue, got %v", got)
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	const extra = 10
	for i := int64(0); i < QueueSize+extra; i++ {
		q.Push(GameEvent{Type: EventFieldRefreshRequest, Frame: i})
	}

	events := q.Consume()
	if len(events) != QueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", QueueSize, len(events))
	}
	if events[0].Frame != extra {
		t.Errorf("Expected oldest surviving frame %d, got %d", extra, events[0].Frame)
	}
	if last := events[len(events)-1].Frame; last != QueueSize+extra-1 {
		t.Errorf("Expected newest frame %d, got %d", QueueSize+extra-1, last)
	}
}

func TestQueueInterleavedPushConsume(t *testing.T) {
	q := NewEventQueue()
	next := int64(0)
	consumed := int64(0)

	for round := 0; round < 40; round++ {
		for i := 0; i < 7; i++ {
			q.Push(GameEvent{Type: EventWorldReset, Frame: next})
			next++
		}
		for _, ev := range q.Consume() {
			if ev.Frame != consumed {
				t.Fatalf("Round %d: expected frame %d, got %d", round, consumed, ev.Frame)
			}
			consumed++
		}
	}
	if consumed != next {
		t.Errorf("Expected all %d events consumed, got %d", next, consumed)
	}
}
