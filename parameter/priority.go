package parameter

// System execution priorities (lower runs first).
// Gravity must refresh the field cache before anything samples it;
// transport positions entities before warp reads their transforms;
// grid distortion runs last so it sees the frame's final field state.
const (
	PriorityGravity   = 10
	PriorityTransport = 100
	PriorityWarp      = 200
	PriorityGrid      = 300
)
