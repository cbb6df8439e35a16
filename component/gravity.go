package component

// GravityWellComponent marks an obstacle entity as a distortion
// source. Radius is the gameplay hit radius; the field cache applies
// the visual radius multiplier when scanning. Wells never move for the
// lifetime of a section.
type GravityWellComponent struct {
	Radius   float64
	Strength float64
}

// Valid reports whether the well can feed the field cache; scans skip
// invalid wells instead of treating them as errors
func (g GravityWellComponent) Valid() bool {
	return g.Radius > 0 && g.Strength > 0
}
