package kdtree

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/voxl/internal/d3"
)

// Node is a kd-tree node. Interior nodes carry a split plane and two
// children; leaves carry SplitAxis == -1, the primitives inside their
// bounds and the six rope links. Index, LeafIndex, First and Count are
// filled by Tree.IndexLeaves for consumers that flatten the tree.
type Node struct {
	SplitAxis   int
	SplitPos    int
	BoundingBox Box
	Left, Right *Node
	Voxels      []Boundable

	// Ropes link this leaf to the neighbor across each of its six
	// faces, indexed by the Side constants. They are non-owning back
	// references into the tree; a nil rope means the face lies on the
	// tree boundary. After optimizeRopes a rope is the tightest node
	// enclosing the shared face: a leaf, or an interior node whose
	// split plane crosses the face.
	Ropes [6]*Node

	Index     int
	LeafIndex int
	First     int
	Count     int
}

func newNode() *Node {
	return &Node{SplitAxis: -1}
}

// IsLeaf reports whether the node stores primitives rather than a
// split plane.
func (n *Node) IsLeaf() bool { return n.SplitAxis == -1 }

// isParallelTo returns +1 if the node's split plane is parallel to the
// given side and faces the same direction, -1 for the opposite
// direction and 0 when the plane is perpendicular to the side.
func (n *Node) isParallelTo(side int) int {
	switch n.SplitAxis {
	case 0:
		switch side {
		case SideXNeg:
			return -1
		case SideXPos:
			return +1
		}
		return 0
	case 1:
		switch side {
		case SideYNeg:
			return -1
		case SideYPos:
			return +1
		}
		return 0
	case 2:
		switch side {
		case SideZNeg:
			return -1
		case SideZPos:
			return +1
		}
		return 0
	}
	panic("kdtree: axis out of range")
}

// processNode pushes rope arrays down the tree. Each child inherits
// its parent's ropes with the rope facing its sibling overridden, so
// leaves end up pointing at the subtree on the far side of each face.
func (n *Node) processNode(ropes [6]*Node) {
	if n.IsLeaf() {
		n.Ropes = ropes
		return
	}
	var sideLeft, sideRight int
	switch n.SplitAxis {
	case 0:
		sideLeft, sideRight = SideXNeg, SideXPos
	case 1:
		sideLeft, sideRight = SideYNeg, SideYPos
	case 2:
		sideLeft, sideRight = SideZNeg, SideZPos
	default:
		panic("kdtree: interior node without split axis")
	}
	n.Left.Ropes = ropes
	n.Left.Ropes[sideRight] = n.Right
	n.Left.processNode(n.Left.Ropes)
	n.Right.Ropes = ropes
	n.Right.Ropes[sideLeft] = n.Left
	n.Right.processNode(n.Right.Ropes)
}

// optimizeRopes shortens every rope in the subtree to the tightest
// node enclosing the shared face.
func (n *Node) optimizeRopes() {
	for i := 0; i < 6; i++ {
		n.Ropes[i] = n.optimizeRope(n.Ropes[i], i)
	}
	if n.Left != nil {
		n.Left.optimizeRopes()
	}
	if n.Right != nil {
		n.Right.optimizeRopes()
	}
}

// optimizeRope walks a rope downward while the rope node's split plane
// does not cross this node's face: parallel planes pick the child
// touching the face, perpendicular planes pick a child only when the
// plane clears this node's bounds on that axis.
func (n *Node) optimizeRope(rope *Node, side int) *Node {
	if rope == nil {
		return nil
	}
	r := rope
	for !r.IsLeaf() {
		switch r.isParallelTo(side) {
		case +1:
			r = r.Left
		case -1:
			r = r.Right
		default:
			if r.SplitPos < n.BoundingBox.Min(r.SplitAxis) {
				r = r.Right
			} else if r.SplitPos > n.BoundingBox.Max(r.SplitAxis) {
				r = r.Left
			} else {
				return r
			}
		}
	}
	return r
}

// findNode descends to the leaf containing p. Points outside the
// node's bounds return the node itself; the caller detects that case
// when querying from the root.
func (n *Node) findNode(p r3.Vec) *Node {
	b := n.BoundingBox
	if p.X < float64(b.MinX) || p.X > float64(b.MaxX) ||
		p.Y < float64(b.MinY) || p.Y > float64(b.MaxY) ||
		p.Z < float64(b.MinZ) || p.Z > float64(b.MaxZ) ||
		n.Left == nil {
		return n
	}
	if d3.Component(p, n.SplitAxis) < float64(n.SplitPos) {
		return n.Left.findNode(p)
	}
	return n.Right.findNode(p)
}

// intersects appends to dst every primitive in the subtree overlapping
// the query box.
func (n *Node) intersects(min, max r3.Vec, dst []Boundable) []Boundable {
	if !n.BoundingBox.Intersects(min, max) {
		return dst
	}
	if n.IsLeaf() {
		for _, vx := range n.Voxels {
			if vx.Intersects(min, max) {
				dst = append(dst, vx)
			}
		}
		return dst
	}
	dst = n.Left.intersects(min, max, dst)
	return n.Right.intersects(min, max, dst)
}
