package voxl

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// GridFromSDF3 rasterizes a signed distance field into a voxel grid of
// the given extents. The SDF bounding box is mapped onto the grid
// interior and each cell takes the material id when the distance at
// its center is negative. Material 0 is reserved for empty space.
func GridFromSDF3(s sdf.SDF3, dx, dy, dz int, material byte) (*Grid, error) {
	if s == nil {
		return nil, fmt.Errorf("voxl: nil SDF3")
	}
	if material == 0 {
		return nil, fmt.Errorf("voxl: material 0 is the empty cell value")
	}
	bb := s.BoundingBox()
	sx := (bb.Max.X - bb.Min.X) / float64(dx)
	sy := (bb.Max.Y - bb.Min.Y) / float64(dy)
	sz := (bb.Max.Z - bb.Min.Z) / float64(dz)
	if sx <= 0 || sy <= 0 || sz <= 0 {
		return nil, fmt.Errorf("voxl: degenerate SDF3 bounding box %v", bb)
	}
	g := NewGrid(dx, dy, dz)
	for z := 0; z < dz; z++ {
		for y := 0; y < dy; y++ {
			for x := 0; x < dx; x++ {
				p := v3.Vec{
					X: bb.Min.X + (float64(x)+0.5)*sx,
					Y: bb.Min.Y + (float64(y)+0.5)*sy,
					Z: bb.Min.Z + (float64(z)+0.5)*sz,
				}
				if s.Evaluate(p) < 0 {
					g.Set(x, y, z, material)
				}
			}
		}
	}
	return g, nil
}
