package component

import (
	"github.com/calyxgames/primordia/core"
)

// OrganismComponent carries the render-sync dispatch data for a
// creature: its evolutionary stage decides which orientation applies
// (flat lie-down vs heading-preserving stance) and its category
// decides which scans include it.
type OrganismComponent struct {
	Stage    core.Stage
	Category core.Category
}
