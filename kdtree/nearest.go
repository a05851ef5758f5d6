package kdtree

import (
	"math"

	gkd "gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/voxl/internal/d3"
)

var (
	_ gkd.Interface = kdVoxels{}
	_ gkd.Bounder   = kdVoxels{}
)

// Locator answers nearest-voxel queries over a fixed primitive set.
// It indexes primitive centers with gonum's kd-tree and is independent
// of the roped Tree, which answers containment rather than proximity.
type Locator struct {
	tree *gkd.Tree
}

// NewLocator builds a nearest-center index over the primitives.
func NewLocator(voxels []Boundable) *Locator {
	k := make(kdVoxels, len(voxels))
	for i, v := range voxels {
		k[i] = kdVoxel{c: center(v), v: v}
	}
	return &Locator{tree: gkd.New(k, true)}
}

// Nearest returns the primitive whose center is closest to p along
// with the squared distance between them.
func (l *Locator) Nearest(p r3.Vec) (Boundable, float64) {
	got, d := l.tree.Nearest(kdVoxel{c: p})
	return got.(kdVoxel).v, d
}

func center(v Boundable) r3.Vec {
	return r3.Vec{
		X: float64(v.Min(0)+v.Max(0)) / 2,
		Y: float64(v.Min(1)+v.Max(1)) / 2,
		Z: float64(v.Min(2)+v.Max(2)) / 2,
	}
}

type kdVoxel struct {
	c r3.Vec
	v Boundable
}

type kdVoxels []kdVoxel

func (k kdVoxels) Index(i int) gkd.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdVoxels) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdVoxels) Pivot(d gkd.Dim) int {
	p := kdPlane{dim: int(d), voxels: k}
	return gkd.Partition(p, gkd.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half open
// indexing equivalent to built-in slice indexing.
func (k kdVoxels) Slice(start, end int) gkd.Interface {
	return k[start:end]
}

func (k kdVoxels) Bounds() *gkd.Bounding {
	min := d3.Elem(math.MaxFloat64)
	max := d3.Elem(-math.MaxFloat64)
	for _, v := range k {
		min = d3.MinElem(min, v.c)
		max = d3.MaxElem(max, v.c)
	}
	return &gkd.Bounding{
		Min: kdVoxel{c: min},
		Max: kdVoxel{c: max},
	}
}

// Compare returns the signed distance of a from the plane passing
// through b and perpendicular to the dimension d.
func (a kdVoxel) Compare(b gkd.Comparable, d gkd.Dim) float64 {
	return d3.Component(a.c, int(d)) - d3.Component(b.(kdVoxel).c, int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdVoxel) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver
// and the parameter.
func (a kdVoxel) Distance(b gkd.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.c, b.(kdVoxel).c))
}

type kdPlane struct {
	dim    int
	voxels kdVoxels
}

func (p kdPlane) Less(i, j int) bool {
	return d3.Component(p.voxels[i].c, p.dim) < d3.Component(p.voxels[j].c, p.dim)
}
func (p kdPlane) Swap(i, j int) {
	p.voxels[i], p.voxels[j] = p.voxels[j], p.voxels[i]
}
func (p kdPlane) Len() int { return len(p.voxels) }
func (p kdPlane) Slice(start, end int) gkd.SortSlicer {
	p.voxels = p.voxels[start:end]
	return p
}
