package kdtree

import "gonum.org/v1/gonum/spatial/r3"

// Voxel is a single grid cell, possibly stretched along axes, in the
// byte-packed layout the renderer uploads. Extents are stored minus
// one, so a Voxel spans base..base+1+extent per axis. PaletteIndex and
// Sides (a visible-face bitmask) ride along unchanged through splits.
type Voxel struct {
	X, Y, Z      byte
	EX, EY, EZ   byte
	PaletteIndex byte
	Sides        byte
}

// NewVoxel returns a unit voxel at (x,y,z) with the given palette index.
func NewVoxel(x, y, z, paletteIndex int) Voxel {
	return Voxel{X: byte(x), Y: byte(y), Z: byte(z), PaletteIndex: byte(paletteIndex)}
}

// Min returns the inclusive lower bound along axis.
func (v Voxel) Min(axis int) int {
	switch axis {
	case 0:
		return int(v.X)
	case 1:
		return int(v.Y)
	case 2:
		return int(v.Z)
	}
	panic("kdtree: axis out of range")
}

// Max returns the exclusive upper bound along axis.
func (v Voxel) Max(axis int) int {
	switch axis {
	case 0:
		return int(v.X) + 1 + int(v.EX)
	case 1:
		return int(v.Y) + 1 + int(v.EY)
	case 2:
		return int(v.Z) + 1 + int(v.EZ)
	}
	panic("kdtree: axis out of range")
}

// SplitLeft returns the part of the voxel below pos on axis. The other
// two axes are untouched.
func (v Voxel) SplitLeft(axis, pos int) Boundable {
	switch axis {
	case 0:
		return Voxel{X: v.X, Y: v.Y, Z: v.Z, EX: byte(pos - int(v.X) - 1), EY: v.EY, EZ: v.EZ, PaletteIndex: v.PaletteIndex, Sides: v.Sides}
	case 1:
		return Voxel{X: v.X, Y: v.Y, Z: v.Z, EX: v.EX, EY: byte(pos - int(v.Y) - 1), EZ: v.EZ, PaletteIndex: v.PaletteIndex, Sides: v.Sides}
	case 2:
		return Voxel{X: v.X, Y: v.Y, Z: v.Z, EX: v.EX, EY: v.EY, EZ: byte(pos - int(v.Z) - 1), PaletteIndex: v.PaletteIndex, Sides: v.Sides}
	}
	panic("kdtree: axis out of range")
}

// SplitRight returns the part of the voxel at and above pos on axis.
func (v Voxel) SplitRight(axis, pos int) Boundable {
	switch axis {
	case 0:
		return Voxel{X: byte(pos), Y: v.Y, Z: v.Z, EX: byte(int(v.EX) - (pos - int(v.X))), EY: v.EY, EZ: v.EZ, PaletteIndex: v.PaletteIndex, Sides: v.Sides}
	case 1:
		return Voxel{X: v.X, Y: byte(pos), Z: v.Z, EX: v.EX, EY: byte(int(v.EY) - (pos - int(v.Y))), EZ: v.EZ, PaletteIndex: v.PaletteIndex, Sides: v.Sides}
	case 2:
		return Voxel{X: v.X, Y: v.Y, Z: byte(pos), EX: v.EX, EY: v.EY, EZ: byte(int(v.EZ) - (pos - int(v.Z))), PaletteIndex: v.PaletteIndex, Sides: v.Sides}
	}
	panic("kdtree: axis out of range")
}

// Intersects reports whether the voxel overlaps the box spanned by min
// and max, closed on both ends.
func (v Voxel) Intersects(min, max r3.Vec) bool {
	return float64(v.Max(0)) >= min.X && float64(v.Max(1)) >= min.Y && float64(v.Max(2)) >= min.Z &&
		float64(v.Min(0)) <= max.X && float64(v.Min(1)) <= max.Y && float64(v.Min(2)) <= max.Z
}
