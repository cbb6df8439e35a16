package component

// WarpStateComponent caches an entity's un-warped baseline rotation.
// It is created the first time a warp is applied, which makes the
// warp additive and exactly reversible: resetting restores the
// baseline and removes the component.
type WarpStateComponent struct {
	BaselineRotation float64
}
