package system

import (
	"sync/atomic"

	"github.com/calyxgames/primordia/engine"
	"github.com/calyxgames/primordia/event"
	"github.com/calyxgames/primordia/parameter"
	"github.com/calyxgames/primordia/physics"
	"github.com/calyxgames/primordia/render"
)

// GridSystem re-distorts the cached background line mesh every frame.
// Each vertex is recomputed from its captured original plus the live
// field displacement, so the result is a pure function of the field
// state and running the pass unconditionally can never accumulate
// drift.
type GridSystem struct {
	engine.SystemBase

	tuning parameter.FieldTuning

	statVertices *atomic.Int64
}

func NewGridSystem(world *engine.World) engine.System {
	s := &GridSystem{
		SystemBase: engine.NewSystemBase(world),
		tuning:     parameter.DefaultFieldTuning(),
	}
	s.statVertices = s.Resource.Status.Ints.Get("grid.vertices_sampled")
	return s
}

func (s *GridSystem) Name() string {
	return "grid"
}

func (s *GridSystem) Priority() int {
	return parameter.PriorityGrid
}

func (s *GridSystem) EventTypes() []event.EventType {
	return nil
}

func (s *GridSystem) HandleEvent(ev event.GameEvent) {}

func (s *GridSystem) Update() {
	mesh := s.Resource.Grid
	if mesh == nil {
		return
	}

	sources := s.Resource.Field.Snapshot()
	if len(sources) == 0 {
		mesh.Reset()
		s.statVertices.Store(0)
		return
	}

	sampled := int64(0)
	for li := range mesh.Lines {
		line := &mesh.Lines[li]
		for i, orig := range line.Original {
			sample := physics.SampleField(sources, render.FieldFromRender(orig), s.tuning)
			line.Current[i] = render.ApplyFieldDisplacement(orig, sample.Displacement)
		}
		sampled += int64(len(line.Original))
	}
	s.statVertices.Store(sampled)
}
