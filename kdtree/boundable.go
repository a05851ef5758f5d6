// Package kdtree builds a split kd-tree with ropes over axis-aligned
// integer primitives. Primitives straddling a split plane are divided
// so each leaf stores only geometry inside its bounds, and after the
// tree shape is fixed every leaf is linked to its neighbor across each
// of its six faces, letting traversal code step between leaves in
// constant time.
package kdtree

import "gonum.org/v1/gonum/spatial/r3"

// Rope and neighbor side indices.
const (
	SideXPos = iota
	SideXNeg
	SideYPos
	SideYNeg
	SideZPos
	SideZNeg
)

// Boundable is an axis-aligned integer primitive the tree can store
// and divide across axis planes. Implementations are immutable: the
// split methods return fresh primitives.
type Boundable interface {
	// Min returns the inclusive lower bound along axis 0, 1 or 2.
	Min(axis int) int
	// Max returns the exclusive upper bound along axis 0, 1 or 2.
	Max(axis int) int
	// Intersects reports whether the primitive overlaps the box
	// spanned by min and max. Comparisons are closed on both ends.
	Intersects(min, max r3.Vec) bool
	// SplitLeft returns the part of the primitive on the negative
	// side of the plane at pos on axis.
	SplitLeft(axis, pos int) Boundable
	// SplitRight returns the part of the primitive on the positive
	// side of the plane at pos on axis.
	SplitRight(axis, pos int) Boundable
}
