package component

import (
	"github.com/calyxgames/primordia/vmath"
)

// HeadingComponent is the persistent smoothed heading for an entity
// that orients along its movement. The transport system blends it
// toward the instantaneous movement direction each frame; feeding the
// raw per-frame direction into orientation would jitter.
type HeadingComponent struct {
	Smoothed vmath.Vec3F
}
