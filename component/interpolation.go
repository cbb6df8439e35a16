package component

import (
	"time"

	"github.com/calyxgames/primordia/vmath"
)

// InterpolationTargetComponent is the latest authoritative position
// for an entity, written by the network layer whenever a server update
// arrives and overwritten in place. This subsystem only reads it; the
// transport system advances the render position toward Target along
// the sphere surface every frame.
type InterpolationTargetComponent struct {
	Target    vmath.Vec3F
	Timestamp time.Time
}
