package system

import (
	"sync/atomic"

	"github.com/calyxgames/primordia/component"
	"github.com/calyxgames/primordia/core"
	"github.com/calyxgames/primordia/engine"
	"github.com/calyxgames/primordia/event"
	"github.com/calyxgames/primordia/parameter"
	"github.com/calyxgames/primordia/physics"
	"github.com/calyxgames/primordia/render"
)

// WarpSystem applies the dominant-well stretch/lean transform to
// organisms each frame. The un-warped baseline rotation is cached in a
// WarpStateComponent the first time a warp lands, which keeps the
// effect additive and exactly reversible.
type WarpSystem struct {
	engine.SystemBase

	tuning parameter.WarpTuning

	statNonFinite *atomic.Int64
}

func NewWarpSystem(world *engine.World) engine.System {
	s := &WarpSystem{
		SystemBase: engine.NewSystemBase(world),
		tuning:     parameter.DefaultWarpTuning(),
	}
	s.statNonFinite = s.Resource.Status.Ints.Get("transport.nonfinite_fallbacks")
	return s
}

func (s *WarpSystem) Name() string {
	return "warp"
}

func (s *WarpSystem) Priority() int {
	return parameter.PriorityWarp
}

func (s *WarpSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSectionChanged}
}

func (s *WarpSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventSectionChanged {
		return
	}
	if payload, ok := ev.Payload.(*event.SectionChangedPayload); ok {
		if !payload.Section.HasWells() {
			// Leaving well territory: unwind every active warp so no
			// entity carries a stale stretch into the new section
			for _, e := range s.Component.WarpState.All() {
				s.ResetWarp(e)
			}
		}
	}
}

func (s *WarpSystem) Update() {
	sources := s.Resource.Field.Snapshot()
	if len(sources) == 0 {
		return
	}

	for _, e := range s.Component.Organism.All() {
		org, ok := s.Component.Organism.Get(e)
		if !ok || org.Category != core.CategoryOrganism {
			continue
		}
		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}

		warp := physics.ComputeWarp(sources, render.FieldFromRender(tr.Position), s.tuning)
		s.ApplyWarp(e, warp)
	}
}

// ApplyWarp writes one warp state onto an entity's transform. Below
// the minimum-intensity threshold scale returns to (1,1,1) and
// rotation to the cached baseline, but the baseline cache survives
// until ResetWarp so a re-entering entity warps from the same base.
func (s *WarpSystem) ApplyWarp(e core.Entity, warp physics.WarpState) {
	tr, ok := s.Component.Transform.Get(e)
	if !ok {
		return
	}

	ws, cached := s.Component.WarpState.Get(e)

	next := tr
	if warp.Intensity >= s.tuning.MinIntensity {
		if !cached {
			ws = component.WarpStateComponent{BaselineRotation: tr.Rotation}
			s.Component.WarpState.Set(e, ws)
		}
		// Stretch along the pull axis, squash on the perpendicular,
		// leave the vertical axis untouched
		next.Scale.X = warp.Stretch
		next.Scale.Z = warp.Squash
		next.Rotation = ws.BaselineRotation + warp.Lean*warp.Intensity*s.tuning.LeanStrength
	} else {
		next.Scale.X = 1
		next.Scale.Y = 1
		next.Scale.Z = 1
		if cached {
			next.Rotation = ws.BaselineRotation
		}
	}

	if !next.IsFinite() {
		// Keep the previous valid transform for this frame
		s.statNonFinite.Add(1)
		return
	}
	s.Component.Transform.Set(e, next)
}

// ResetWarp restores the un-warped transform and forgets the baseline
// cache. Idempotent on entities that were never warped.
func (s *WarpSystem) ResetWarp(e core.Entity) {
	tr, ok := s.Component.Transform.Get(e)
	if ok {
		tr.Scale.X = 1
		tr.Scale.Y = 1
		tr.Scale.Z = 1
		if ws, cached := s.Component.WarpState.Get(e); cached {
			tr.Rotation = ws.BaselineRotation
		}
		s.Component.Transform.Set(e, tr)
	}
	s.Component.WarpState.Remove(e)
}
