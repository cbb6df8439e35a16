package system

import (
	"sync/atomic"

	"github.com/calyxgames/primordia/component"
	"github.com/calyxgames/primordia/core"
	"github.com/calyxgames/primordia/engine"
	"github.com/calyxgames/primordia/event"
	"github.com/calyxgames/primordia/parameter"
	"github.com/calyxgames/primordia/physics"
	"github.com/calyxgames/primordia/vmath"
)

// TransportSystem advances every interpolating entity along the sphere
// surface toward its authoritative target, maintains the smoothed
// heading, and re-orients the entity on the local surface according to
// its stage.
//
// The interpolation target records are written by the network layer
// and only read here; a slow or dropped frame simply presents a larger
// elapsed time to the blend formula on the next tick.
type TransportSystem struct {
	engine.SystemBase

	tuning parameter.TransportTuning

	statNonFinite *atomic.Int64
}

func NewTransportSystem(world *engine.World) engine.System {
	s := &TransportSystem{
		SystemBase: engine.NewSystemBase(world),
		tuning:     parameter.DefaultTransportTuning(),
	}
	s.statNonFinite = s.Resource.Status.Ints.Get("transport.nonfinite_fallbacks")
	return s
}

func (s *TransportSystem) Name() string {
	return "transport"
}

func (s *TransportSystem) Priority() int {
	return parameter.PriorityTransport
}

func (s *TransportSystem) EventTypes() []event.EventType {
	return nil
}

func (s *TransportSystem) HandleEvent(ev event.GameEvent) {}

func (s *TransportSystem) Update() {
	elapsedMs := s.Resource.Time.ElapsedMs()
	radius := s.Resource.Section.SphereRadius

	for _, e := range s.Component.InterpTarget.All() {
		interp, ok := s.Component.InterpTarget.Get(e)
		if !ok {
			continue
		}
		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}

		next := physics.AdvanceOnSphere(tr.Position, interp.Target, elapsedMs, radius, s.tuning)
		if !vmath.V3FIsFinite(next) {
			s.statNonFinite.Add(1)
			continue
		}

		movement := vmath.V3FSub(next, tr.Position)
		heading := s.advanceHeading(e, movement, elapsedMs)

		candidate := tr
		candidate.Position = next
		candidate.Basis = s.orient(e, next, heading)

		if !candidate.IsFinite() {
			// Keep the previous valid transform for this frame
			s.statNonFinite.Add(1)
			continue
		}
		s.Component.Transform.Set(e, candidate)
	}
}

// advanceHeading blends the persistent heading toward this frame's
// movement direction and stores it back
func (s *TransportSystem) advanceHeading(e core.Entity, movement vmath.Vec3F, elapsedMs float64) vmath.Vec3F {
	h, _ := s.Component.Heading.Get(e)
	smoothed := physics.SmoothHeading(h.Smoothed, movement, elapsedMs, s.tuning)
	s.Component.Heading.Set(e, component.HeadingComponent{Smoothed: smoothed})
	return smoothed
}

// orient picks the surface stance for the entity's stage: mats and
// drifters lie flush on the curved ground, swimmers face their
// smoothed heading within the tangent plane
func (s *TransportSystem) orient(e core.Entity, position, heading vmath.Vec3F) vmath.Basis {
	org, ok := s.Component.Organism.Get(e)
	if ok && org.Stage == core.StageSwimmer {
		return physics.HeadingBasis(position, heading, s.tuning)
	}
	return physics.SurfaceBasis(position, s.tuning)
}
