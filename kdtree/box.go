package kdtree

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Box is an axis-aligned integer bounding box. Max bounds are
// exclusive for volume purposes but compare closed in Intersects.
type Box struct {
	MinX, MinY, MinZ int
	MaxX, MaxY, MaxZ int
}

// Diagonal returns the length of the box diagonal.
func (b Box) Diagonal() float32 {
	dx := float32(b.MaxX - b.MinX)
	dy := float32(b.MaxY - b.MinY)
	dz := float32(b.MaxZ - b.MinZ)
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Min returns the lower bound along axis.
func (b Box) Min(axis int) int {
	switch axis {
	case 0:
		return b.MinX
	case 1:
		return b.MinY
	case 2:
		return b.MinZ
	}
	panic("kdtree: axis out of range")
}

// Max returns the upper bound along axis.
func (b Box) Max(axis int) int {
	switch axis {
	case 0:
		return b.MaxX
	case 1:
		return b.MaxY
	case 2:
		return b.MaxZ
	}
	panic("kdtree: axis out of range")
}

// SetMin moves the lower bound along axis.
func (b *Box) SetMin(axis, v int) {
	switch axis {
	case 0:
		b.MinX = v
	case 1:
		b.MinY = v
	case 2:
		b.MinZ = v
	default:
		panic("kdtree: axis out of range")
	}
}

// SetMax moves the upper bound along axis.
func (b *Box) SetMax(axis, v int) {
	switch axis {
	case 0:
		b.MaxX = v
	case 1:
		b.MaxY = v
	case 2:
		b.MaxZ = v
	default:
		panic("kdtree: axis out of range")
	}
}

// Intersects reports whether the box overlaps the float box spanned by
// min and max. Both comparisons are closed, so boxes sharing only a
// face still intersect.
func (b Box) Intersects(min, max r3.Vec) bool {
	return float64(b.MaxX) >= min.X && float64(b.MaxY) >= min.Y && float64(b.MaxZ) >= min.Z &&
		float64(b.MinX) <= max.X && float64(b.MinY) <= max.Y && float64(b.MinZ) <= max.Z
}

// SplitLeft is unsupported for Box.
func (b Box) SplitLeft(axis, pos int) Boundable {
	panic("kdtree: Box cannot be split")
}

// SplitRight is unsupported for Box.
func (b Box) SplitRight(axis, pos int) Boundable {
	panic("kdtree: Box cannot be split")
}
