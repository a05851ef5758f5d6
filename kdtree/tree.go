package kdtree

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	maxVoxelCount       = 2
	nodeIntersectCosts  = 1.0
	voxelIntersectCosts = 1.0
)

// Tree is a kd-tree over integer primitives. Its shape, ropes and
// stored primitives do not change once built; IndexLeaves only writes
// the per-node numbering fields. The read-only queries may be shared
// between goroutines while IndexLeaves is not running.
type Tree struct {
	Root *Node
}

// Interval boundary event kinds for the split-plane sweep.
const (
	intervalStart = 0
	intervalEnd   = 1
)

type intervalBoundary struct {
	typ int
	pos int
}

// Build constructs a tree over the primitives, recursing at most
// maxDepth levels. Primitives straddling a chosen split plane are
// divided with SplitLeft/SplitRight so each ends up wholly inside one
// leaf.
func Build(voxels []Boundable, maxDepth int) *Tree {
	return BuildWithNeighbors(voxels, [6]*Node{}, maxDepth)
}

// BuildWithNeighbors is Build with externally supplied boundary
// neighbors: ropes on the outer faces of the tree start at the given
// nodes instead of nil. Used to stitch adjacent chunk trees together.
func BuildWithNeighbors(voxels []Boundable, neighbors [6]*Node, maxDepth int) *Tree {
	b := Box{
		MinX: math.MaxInt32, MinY: math.MaxInt32, MinZ: math.MaxInt32,
		MaxX: math.MinInt32, MaxY: math.MinInt32, MaxZ: math.MinInt32,
	}
	for _, v := range voxels {
		b.MinX = min(b.MinX, v.Min(0))
		b.MinY = min(b.MinY, v.Min(1))
		b.MinZ = min(b.MinZ, v.Min(2))
		b.MaxX = max(b.MaxX, v.Max(0))
		b.MaxY = max(b.MaxY, v.Max(1))
		b.MaxZ = max(b.MaxZ, v.Max(2))
	}
	t := &Tree{Root: newNode()}
	t.Root.Voxels = voxels
	t.Root.BoundingBox = b
	t.buildTree(t.Root, 0, 0, maxDepth)
	t.Root.Ropes = neighbors
	t.Root.processNode(neighbors)
	t.Root.optimizeRopes()
	return t
}

// FindNode returns the leaf whose bounds contain p. A point outside
// the root's bounds returns the root; callers detect that case by
// checking the result against Root.
func (t *Tree) FindNode(p r3.Vec) *Node {
	return t.Root.findNode(p)
}

// Intersects appends to dst every stored primitive overlapping the box
// spanned by min and max and returns the extended slice. A primitive
// divided during the build appears once per containing leaf part.
func (t *Tree) Intersects(min, max r3.Vec, dst []Boundable) []Boundable {
	return t.Root.intersects(min, max, dst)
}

// IndexLeaves numbers the tree for flat GPU consumption: every node
// gets a depth-first Index, every leaf a LeafIndex and the First/Count
// range its primitives occupy in leaf order. Returns the total
// primitive count.
func (t *Tree) IndexLeaves() int {
	index, leafIndex, first := 0, 0, 0
	var walk func(n *Node)
	walk = func(n *Node) {
		n.Index = index
		index++
		if n.IsLeaf() {
			n.LeafIndex = leafIndex
			n.First = first
			n.Count = len(n.Voxels)
			leafIndex++
			first += len(n.Voxels)
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(t.Root)
	return first
}

func (t *Tree) buildTree(node *Node, axis, depth, maxDepth int) {
	// The rotating axis argument is vestigial: findSplitPlane decides
	// the real split axis by widest extent and rewrites SplitAxis.
	if len(node.Voxels) <= maxVoxelCount || depth >= maxDepth {
		node.SplitAxis = -1
		return
	}
	node.SplitAxis = axis
	node.SplitPos = t.findSplitPlane(node)
	if node.SplitAxis == -1 {
		return
	}
	node.Left = newNode()
	node.Right = newNode()
	node.Left.BoundingBox = node.BoundingBox
	node.Left.BoundingBox.SetMax(node.SplitAxis, node.SplitPos)
	node.Right.BoundingBox = node.BoundingBox
	node.Right.BoundingBox.SetMin(node.SplitAxis, node.SplitPos)
	for _, vx := range node.Voxels {
		switch {
		case vx.Min(node.SplitAxis) >= node.SplitPos:
			node.Right.Voxels = append(node.Right.Voxels, vx)
		case vx.Max(node.SplitAxis) <= node.SplitPos:
			node.Left.Voxels = append(node.Left.Voxels, vx)
		default:
			l := vx.SplitLeft(node.SplitAxis, node.SplitPos)
			r := vx.SplitRight(node.SplitAxis, node.SplitPos)
			if l.Max(node.SplitAxis) > node.SplitPos {
				panic("kdtree: SplitLeft crossed the split plane")
			}
			if r.Min(node.SplitAxis) < node.SplitPos {
				panic("kdtree: SplitRight crossed the split plane")
			}
			node.Left.Voxels = append(node.Left.Voxels, l)
			node.Right.Voxels = append(node.Right.Voxels, r)
		}
	}
	node.Voxels = nil
	nextAxis := (axis + 1) % 3
	t.buildTree(node.Left, nextAxis, depth+1, maxDepth)
	t.buildTree(node.Right, nextAxis, depth+1, maxDepth)
}

// findSplitPlane picks the split plane for node by sweeping primitive
// interval boundaries along the widest axis and minimizing a surface
// area style cost. Nodes with many primitives are subsampled to at
// most 100 interval pairs. Returns -1 and marks node a leaf when the
// cheapest plane sits on the node boundary.
func (t *Tree) findSplitPlane(node *Node) int {
	if node == nil {
		return -1
	}
	bb := node.BoundingBox
	xw := bb.MaxX - bb.MinX
	yw := bb.MaxY - bb.MinY
	zw := bb.MaxZ - bb.MinZ
	var ax, boxWidth int
	if xw > yw && xw > zw {
		ax, boxWidth = 0, xw
	} else if yw > zw {
		ax, boxWidth = 1, yw
	} else {
		ax, boxWidth = 2, zw
	}
	invBoxWidth := 1 / float32(boxWidth)
	count := len(node.Voxels)
	divisor := (count + 99) / 100
	nPrims := count / divisor
	intervals := make([]intervalBoundary, 0, 2*nPrims+2)
	for i := 0; i < count; i += divisor {
		vx := node.Voxels[i]
		if !bb.Intersects(
			r3.Vec{X: float64(vx.Min(0)), Y: float64(vx.Min(1)), Z: float64(vx.Min(2))},
			r3.Vec{X: float64(vx.Max(0)), Y: float64(vx.Max(1)), Z: float64(vx.Max(2))},
		) {
			panic("kdtree: findSplitPlane: no intersection of boxes")
		}
		intervals = append(intervals,
			intervalBoundary{intervalStart, vx.Min(ax)},
			intervalBoundary{intervalEnd, vx.Max(ax)},
		)
	}
	// Stable sort keeps the per-primitive start-before-end emission
	// order at equal positions, making builds reproducible.
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].pos < intervals[j].pos
	})
	doneIntervals, openIntervals := 0, 0
	minID := 0
	minCost := float32(math.MaxFloat32)
	for i, in := range intervals {
		if in.typ == intervalEnd {
			openIntervals--
			doneIntervals++
		}
		alpha := float32(in.pos-bb.Min(ax)) * invBoxWidth
		cost := voxelIntersectCosts + nodeIntersectCosts*
			(float32(doneIntervals+openIntervals)*alpha+float32(nPrims-doneIntervals)*(1-alpha))
		if cost < minCost {
			minID = i
			minCost = cost
		}
		if in.typ == intervalStart {
			openIntervals++
		}
	}
	splitPlane := intervals[minID].pos
	if splitPlane == bb.Min(ax) || splitPlane == bb.Max(ax) {
		node.SplitAxis = -1
		return -1
	}
	node.SplitAxis = ax
	return splitPlane
}
