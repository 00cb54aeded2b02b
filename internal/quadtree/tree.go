package quadtree

import (
	"iter"
	"math/bits"
)

// Tree is a quadtree set of lattice points over a fixed square region.
//
// The region passed to New is expanded outward to a power-of-two-aligned
// square whose side is itself a power of two, so every recursive bisection
// produces integer midpoints and exact halves all the way down to 1x1
// regions. Points outside the canonical region are rejected, never stored.
//
// A Tree is not safe for concurrent use; callers needing that wrap it in
// their own locking. Every operation is a single bounded walk, depth at most
// log2 of the region side.
type Tree struct {
	root   *node
	region Region
}

// Node is a read-only view of one tree node, as produced by Nodes.
type Node struct {
	Region Region
	Full   bool
	Depth  int
}

// Leaf reports whether the node covers a single lattice point.
func (n Node) Leaf() bool { return n.Region.IsPoint() }

// New creates an empty tree covering at least r.
func New(r Region) *Tree {
	lo := min(smaller2k(r.XMin), smaller2k(r.YMin))
	hi := max(larger2k(r.XMax), larger2k(r.YMax))
	// Aligned bounds alone do not guarantee a power-of-two side (e.g. [2,16)
	// has side 14); stretch the upper bound until they do.
	hi = lo + ceilPow2(hi-lo)
	return &Tree{region: Region{lo, lo, hi, hi}}
}

// Region returns the canonical region the tree covers.
func (t *Tree) Region() Region { return t.region }

// Insert adds p to the set. It reports false only when p lies outside the
// tree's region; inserting a point already present is a no-op reporting true.
func (t *Tree) Insert(p Point) bool {
	if !t.region.Contains(p) {
		return false
	}
	if t.root == nil {
		t.root = newNode(t.region, false)
	}
	return t.root.insert(p)
}

// Remove erases p from the set and reports whether it was present. Points
// outside the region, or absent from the set, leave the tree unchanged.
func (t *Tree) Remove(p Point) bool {
	if t.root == nil || !t.region.Contains(p) {
		return false
	}
	root, changed := t.root.remove(p)
	t.root = root
	return changed
}

// Contains reports whether p is a member of the set.
func (t *Tree) Contains(p Point) bool {
	if !t.region.Contains(p) {
		return false
	}
	for n := t.root; n != nil; {
		if n.full {
			return true
		}
		n = n.children[n.quadrant(p)]
	}
	return false
}

// Points returns the members of the set in preorder traversal order. The
// sequence is restartable: each range starts a fresh traversal.
//
// Enumerating a full node costs time proportional to its area, not to the
// tree size; the full node is itself the compressed representation of that
// area. Use Count for an O(nodes) cardinality.
func (t *Tree) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if t.root != nil {
			t.root.points(yield)
		}
	}
}

// Nodes returns a preorder traversal (self, NE, NW, SW, SE) of the tree's
// node structure, for consumers that want to observe the compression rather
// than the members.
func (t *Tree) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if t.root != nil {
			t.root.walk(0, yield)
		}
	}
}

// Count returns the number of points in the set without enumerating them.
func (t *Tree) Count() int {
	total := 0
	for n := range t.Nodes() {
		if n.Full {
			total += n.Region.Area()
		}
	}
	return total
}

// smaller2k returns the nearest power of two at or below n, mirrored for
// negative values so that the result still bounds n from below.
func smaller2k(n int) int {
	if n == 0 {
		return 0
	}
	if n < 0 {
		return -ceilPow2(-n)
	}
	return floorPow2(n)
}

// larger2k returns the nearest power of two at or above n, mirrored for
// negative values so that the result still bounds n from above.
func larger2k(n int) int {
	if n == 0 {
		return 0
	}
	if n < 0 {
		return -floorPow2(-n)
	}
	return ceilPow2(n)
}

func floorPow2(n int) int {
	return 1 << (bits.Len(uint(n)) - 1)
}

func ceilPow2(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}
