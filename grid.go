package voxl

import "strconv"

// Grid is a dense voxel volume padded with one cell of empty space on
// every side. Cell value 0 is empty; any other value is an opaque
// material id. Real data lives in the [0,dx)x[0,dy)x[0,dz) interior,
// while reads one cell past the volume see the zero pad. The pad is
// what drives emission of the outer hull faces during meshing.
type Grid struct {
	dx, dy, dz int
	vs         []byte
}

// NewGrid allocates a zeroed grid of the given interior extents.
// Extents must be in [1,256] per axis.
func NewGrid(dx, dy, dz int) *Grid {
	checkDim("dx", dx)
	checkDim("dy", dy)
	checkDim("dz", dz)
	return &Grid{
		dx: dx, dy: dy, dz: dz,
		vs: make([]byte, (dx+2)*(dy+2)*(dz+2)),
	}
}

func checkDim(name string, d int) {
	if d < 1 || d > 256 {
		panic("voxl: " + name + "=" + strconv.Itoa(d) + " outside [1,256]")
	}
}

// Dims returns the interior extents of the grid.
func (g *Grid) Dims() (dx, dy, dz int) { return g.dx, g.dy, g.dz }

// Len returns the cell count of the padded backing array,
// (dx+2)*(dy+2)*(dz+2).
func (g *Grid) Len() int { return len(g.vs) }

// At returns the cell value at (x,y,z). Coordinates from -1 to the
// axis extent inclusive are valid; out-of-volume reads see the pad.
func (g *Grid) At(x, y, z int) byte {
	return g.vs[g.idx(x, y, z)]
}

// Set stores v at the interior cell (x,y,z). Writing the pad is a
// programmer error and panics.
func (g *Grid) Set(x, y, z int, v byte) {
	if x < 0 || x >= g.dx || y < 0 || y >= g.dy || z < 0 || z >= g.dz {
		panic("voxl: Set outside grid interior")
	}
	g.vs[g.idx(x, y, z)] = v
}

// Data returns the padded backing array in the layout Mesher.Mesh
// expects: index = x+1 + (dx+2)*(y+1 + (dy+2)*(z+1)).
func (g *Grid) Data() []byte { return g.vs }

func (g *Grid) idx(x, y, z int) int {
	return x + 1 + (g.dx+2)*(y+1+(g.dy+2)*(z+1))
}
