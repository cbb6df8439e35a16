package core

// Stage is the evolutionary stage of an organism, decided by the
// authoritative server and mirrored here for render-sync dispatch
type Stage uint8

const (
	// StageMat organisms are flat discs that lie flush on the sphere surface
	StageMat Stage = iota
	// StageSwimmer organisms travel and face along their movement heading
	StageSwimmer
	// StageDrifter organisms travel but keep a flat stance (jellyfish-like)
	StageDrifter
)

// Category distinguishes world entities during scans
type Category uint8

const (
	CategoryOrganism Category = iota
	// CategoryObstacle entities are static; the ones carrying a gravity
	// well component feed the distortion field cache
	CategoryObstacle
	CategoryNutrient
)
