package system

import (
	"sync/atomic"

	"github.com/calyxgames/primordia/engine"
	"github.com/calyxgames/primordia/event"
	"github.com/calyxgames/primordia/parameter"
	"github.com/calyxgames/primordia/physics"
	"github.com/calyxgames/primordia/render"
)

// GravitySystem owns the distortion source cache. Wells are static for
// the lifetime of a section, so the cache is rebuilt only on section
// transitions (and explicit refresh requests), never per frame; the
// sampling systems read the snapshot.
type GravitySystem struct {
	engine.SystemBase

	// Scratch buffer reused across refreshes
	scratch []physics.FieldSource

	statRefreshes *atomic.Int64
	statSkipped   *atomic.Int64
}

func NewGravitySystem(world *engine.World) engine.System {
	s := &GravitySystem{
		SystemBase: engine.NewSystemBase(world),
		scratch:    make([]physics.FieldSource, 0, 16),
	}
	s.statRefreshes = s.Resource.Status.Ints.Get("gravity.refreshes")
	s.statSkipped = s.Resource.Status.Ints.Get("gravity.skipped_wells")
	return s
}

func (s *GravitySystem) Name() string {
	return "gravity"
}

func (s *GravitySystem) Priority() int {
	return parameter.PriorityGravity
}

func (s *GravitySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSectionChanged,
		event.EventFieldRefreshRequest,
		event.EventWorldReset,
	}
}

func (s *GravitySystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSectionChanged:
		payload, ok := ev.Payload.(*event.SectionChangedPayload)
		if !ok {
			return
		}
		s.Resource.Section.Enter(payload.Section)
		if payload.Section.HasWells() {
			s.Refresh()
		} else {
			s.Resource.Field.Clear()
			if s.Resource.Grid != nil {
				s.Resource.Grid.Reset()
			}
		}

	case event.EventFieldRefreshRequest:
		s.Refresh()

	case event.EventWorldReset:
		s.Resource.Field.Clear()
	}
}

// Update is a no-op: wells never move within a section
func (s *GravitySystem) Update() {}

// Refresh rescans obstacle entities and replaces the cached source
// list. Entities missing a transform or carrying unusable well data
// are skipped, not treated as errors; effective radius is the gameplay
// radius extended by the visual multiplier.
func (s *GravitySystem) Refresh() {
	s.scratch = s.scratch[:0]

	for _, e := range s.Component.GravityWell.All() {
		well, ok := s.Component.GravityWell.Get(e)
		if !ok || !well.Valid() {
			s.statSkipped.Add(1)
			continue
		}
		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			s.statSkipped.Add(1)
			continue
		}

		s.scratch = append(s.scratch, physics.FieldSource{
			Pos:             render.FieldFromRender(tr.Position),
			EffectiveRadius: well.Radius * parameter.FieldRadiusMultiplier,
			Strength:        well.Strength,
		})
	}

	s.Resource.Field.Replace(s.scratch)
	s.statRefreshes.Add(1)
}
