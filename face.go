// Package voxl implements the geometric core of a voxel rendering
// pipeline: a greedy mesher that collapses dense voxel grids into a
// minimal set of axis-aligned quads ready for GPU upload, and, in the
// kdtree subpackage, a roped kd-tree over voxel boxes for constant-time
// neighbor traversal during ray marching.
package voxl

// Face side values stored in the low bit of Face.S. The sweep axis
// occupies the remaining bits, so S = axis*2 + side.
const (
	SideNX byte = 0
	SidePX byte = 1
	SideNY byte = 2
	SidePY byte = 3
	SideNZ byte = 4
	SidePZ byte = 5
)

// Face is a merged rectangle lying in a grid-aligned plane.
//
// (U0,V0)-(U1,V1) span the plane's two in-plane axes with exclusive
// upper bounds, so the rectangle covers cells [U0,U1) x [V0,V1). P is
// the slice coordinate along the plane normal and S encodes axis*2+side
// with side 1 facing the positive axis direction. All fields are
// unsigned bytes; an upper bound of 256 wraps to 0.
type Face struct {
	U0, V0, U1, V1 byte
	P, S           byte
}

// Axis returns the sweep axis (0, 1 or 2) the face is perpendicular to.
func (f Face) Axis() int { return int(f.S) >> 1 }

// Positive reports whether the face normal points in the positive
// direction of its axis.
func (f Face) Positive() bool { return f.S&1 == 1 }

// W returns the rectangle span along the first in-plane axis.
// The byte arithmetic decodes an exclusive bound of 256 stored as 0.
func (f Face) W() int { return (int(f.U1)-int(f.U0)-1)&0xff + 1 }

// H returns the rectangle span along the second in-plane axis.
func (f Face) H() int { return (int(f.V1)-int(f.V0)-1)&0xff + 1 }

// Area returns the number of cell boundaries the face covers.
func (f Face) Area() int { return f.W() * f.H() }
