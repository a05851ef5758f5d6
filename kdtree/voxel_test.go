package kdtree

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestVoxelBounds(t *testing.T) {
	v := Voxel{X: 200, Y: 3, Z: 0, EX: 55, EY: 0, EZ: 9}
	// Byte fields decode unsigned; max is base+1+extent.
	if got := v.Min(0); got != 200 {
		t.Errorf("Min(0)=%d, want 200", got)
	}
	if got := v.Max(0); got != 256 {
		t.Errorf("Max(0)=%d, want 256", got)
	}
	if got := v.Max(1); got != 4 {
		t.Errorf("Max(1)=%d, want 4", got)
	}
	if got := v.Max(2); got != 10 {
		t.Errorf("Max(2)=%d, want 10", got)
	}
}

func TestVoxelSplit(t *testing.T) {
	v := Voxel{X: 0, EX: 9, PaletteIndex: 4, Sides: 0x3f} // spans x=[0,10)
	for pos := 1; pos < 10; pos++ {
		l := v.SplitLeft(0, pos).(Voxel)
		r := v.SplitRight(0, pos).(Voxel)
		if l.Min(0) != 0 || l.Max(0) != pos {
			t.Fatalf("pos %d: left spans [%d,%d), want [0,%d)", pos, l.Min(0), l.Max(0), pos)
		}
		if r.Min(0) != pos || r.Max(0) != 10 {
			t.Fatalf("pos %d: right spans [%d,%d), want [%d,10)", pos, r.Min(0), r.Max(0), pos)
		}
		// Other axes and metadata ride along unchanged.
		for axis := 1; axis < 3; axis++ {
			if l.Min(axis) != v.Min(axis) || l.Max(axis) != v.Max(axis) ||
				r.Min(axis) != v.Min(axis) || r.Max(axis) != v.Max(axis) {
				t.Fatalf("pos %d: split touched axis %d", pos, axis)
			}
		}
		if l.PaletteIndex != 4 || r.PaletteIndex != 4 || l.Sides != 0x3f || r.Sides != 0x3f {
			t.Fatalf("pos %d: metadata lost in split: %+v %+v", pos, l, r)
		}
	}
}

func TestVoxelSplitHalvesOverlapQuery(t *testing.T) {
	v := Voxel{EX: 9} // spans x=[0,10)
	l := v.SplitLeft(0, 5)
	r := v.SplitRight(0, 5)
	min := r3.Vec{X: 4, Y: 0, Z: 0}
	max := r3.Vec{X: 6, Y: 1, Z: 1}
	if !l.Intersects(min, max) {
		t.Error("left half does not intersect query [4,6)")
	}
	if !r.Intersects(min, max) {
		t.Error("right half does not intersect query [4,6)")
	}
	// The left half's closed upper bound is x=5, so a query starting
	// past the plane at x=5.5 misses it.
	if l.Intersects(r3.Vec{X: 5.5, Y: 0, Z: 0}, r3.Vec{X: 6, Y: 1, Z: 1}) {
		t.Error("left half intersects query starting past its bound")
	}
}

func TestVoxelIntersectsClosed(t *testing.T) {
	v := Voxel{X: 2, Y: 2, Z: 2} // unit cell [2,3)^3
	if !v.Intersects(r3.Vec{X: 3, Y: 3, Z: 3}, r3.Vec{X: 4, Y: 4, Z: 4}) {
		t.Error("corner touch should intersect (closed comparison)")
	}
	if v.Intersects(r3.Vec{X: 3.1, Y: 3, Z: 3}, r3.Vec{X: 4, Y: 4, Z: 4}) {
		t.Error("separated boxes reported intersecting")
	}
}
