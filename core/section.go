package core

// Section identifies the current world section. Sections decide which
// render systems act on an entity and which sphere radius applies.
// Well sources are static for the lifetime of one section; the field
// cache is rebuilt only on section transitions.
type Section uint8

const (
	// SectionTidepool is the small-scale early world: flat gravity-well
	// field active, small transport sphere
	SectionTidepool Section = iota
	// SectionReef keeps the gravity field active on the large sphere
	SectionReef
	// SectionOpenOcean has no wells; the field cache is cleared on entry
	SectionOpenOcean
)

// HasWells reports whether the section hosts gravity-well obstacles
func (s Section) HasWells() bool {
	return s != SectionOpenOcean
}
