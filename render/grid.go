package render

import (
	"github.com/calyxgames/primordia/vmath"
)

// GridLine is one static background line with a parallel shadow buffer
// of its undistorted vertices. Original is captured once at
// construction and never written again; Current is overwritten every
// frame from Original plus the live field displacement, so the
// distortion is a pure function of the field state with no
// frame-to-frame drift.
type GridLine struct {
	Original []vmath.Vec3F
	Current  []vmath.Vec3F
}

// GridMesh is the cached set of background lines the distorter works on
type GridMesh struct {
	Lines []GridLine
}

// NewGridMesh builds a square grid on the render XZ plane at height y,
// centered on the origin: lines every spacing units out to ±halfExtent
// in both directions, each subdivided into segmentsPerLine segments so
// the deformation bends line interiors, not just endpoints.
func NewGridMesh(halfExtent, spacing, y float64, segmentsPerLine int) *GridMesh {
	if segmentsPerLine < 1 {
		segmentsPerLine = 1
	}
	mesh := &GridMesh{}

	for offset := -halfExtent; offset <= halfExtent+spacing/2; offset += spacing {
		// Line parallel to X at z = offset
		along := func(t float64) vmath.Vec3F {
			return vmath.Vec3F{X: -halfExtent + 2*halfExtent*t, Y: y, Z: offset}
		}
		mesh.Lines = append(mesh.Lines, newGridLine(along, segmentsPerLine))

		// Line parallel to Z at x = offset
		across := func(t float64) vmath.Vec3F {
			return vmath.Vec3F{X: offset, Y: y, Z: -halfExtent + 2*halfExtent*t}
		}
		mesh.Lines = append(mesh.Lines, newGridLine(across, segmentsPerLine))
	}
	return mesh
}

func newGridLine(pointAt func(t float64) vmath.Vec3F, segments int) GridLine {
	count := segments + 1
	line := GridLine{
		Original: make([]vmath.Vec3F, count),
		Current:  make([]vmath.Vec3F, count),
	}
	for i := 0; i < count; i++ {
		p := pointAt(float64(i) / float64(segments))
		line.Original[i] = p
		line.Current[i] = p
	}
	return line
}

// VertexCount returns the total number of vertices across all lines
func (m *GridMesh) VertexCount() int {
	total := 0
	for i := range m.Lines {
		total += len(m.Lines[i].Original)
	}
	return total
}

// Reset copies originals back into the live buffers, used when the
// field clears so the background snaps straight without waiting for a
// sample pass
func (m *GridMesh) Reset() {
	for i := range m.Lines {
		copy(m.Lines[i].Current, m.Lines[i].Original)
	}
}
