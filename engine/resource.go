package engine

import (
	"time"

	"github.com/calyxgames/primordia/core"
	"github.com/calyxgames/primordia/parameter"
	"github.com/calyxgames/primordia/physics"
	"github.com/calyxgames/primordia/render"
	"github.com/calyxgames/primordia/status"
)

// Resource holds singleton frame resources, initialized during world
// creation and accessed via World.Resources
type Resource struct {
	Time    *TimeResource
	Status  *status.Registry
	Field   *physics.FieldCache
	Grid    *render.GridMesh
	Section *SectionResource
}

func newResource() Resource {
	return Resource{
		Time:    &TimeResource{},
		Status:  status.NewRegistry(),
		Field:   physics.NewFieldCache(),
		Section: newSectionResource(),
	}
}

// TimeResource wraps frame timing for systems. Updated by the owner of
// the render loop at the start of every tick.
type TimeResource struct {
	RealTime    time.Time
	DeltaTime   time.Duration
	FrameNumber int64
}

// Update modifies TimeResource fields in place (zero allocation)
func (tr *TimeResource) Update(realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ElapsedMs returns the frame delta in milliseconds as consumed by the
// transport blend formula
func (tr *TimeResource) ElapsedMs() float64 {
	return float64(tr.DeltaTime) / float64(time.Millisecond)
}

// SectionResource tracks the active world section and the transport
// sphere radius that goes with it
type SectionResource struct {
	Current      core.Section
	SphereRadius float64
}

func newSectionResource() *SectionResource {
	return &SectionResource{
		Current:      core.SectionTidepool,
		SphereRadius: parameter.SphereRadiusTidepool,
	}
}

// Enter switches the active section and its sphere radius
func (sr *SectionResource) Enter(section core.Section) {
	sr.Current = section
	sr.SphereRadius = parameter.SphereRadius(section != core.SectionTidepool)
}
