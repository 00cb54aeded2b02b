package quadtree

// node is a quadtree node over a square region. A node exclusively owns its
// four child slots; the structure is a strict tree. Invariants:
//
//   - full implies no children: a completely occupied region is represented
//     by its most compact ancestor (the compression invariant).
//   - a node over a 1x1 region never has children; its full flag encodes the
//     presence of that single point.
//   - in a non-full interior node, a present child covers a quadrant holding
//     at least one point, an absent child an empty quadrant.
type node struct {
	region   Region
	origin   Point
	children [4]*node
	full     bool
}

func newNode(r Region, full bool) *node {
	return &node{region: r, origin: r.Origin(), full: full}
}

// quadrant returns the quadrant of p relative to the origin. Ties on either
// axis resolve east/north; later bisections rely on the origin landing in the
// NE quarter, so this tie-break is load-bearing.
func (n *node) quadrant(p Point) Quadrant {
	if p.X >= n.origin.X {
		if p.Y >= n.origin.Y {
			return NE
		}
		return SE
	}
	if p.Y >= n.origin.Y {
		return NW
	}
	return SW
}

// insert adds p to the subtree rooted at n and reports success. The caller
// guarantees p lies within n.region. Inserting under a full node is a no-op
// reporting success: the point is already a member, and descending would
// fabricate children beneath a compressed node.
func (n *node) insert(p Point) bool {
	if n.full {
		return true
	}
	if n.region.IsPoint() {
		n.full = true
		return true
	}

	q := n.quadrant(p)
	c := n.children[q]
	if c == nil {
		c = newNode(n.region.Subdivide(q), false)
		n.children[q] = c
		if c.region.IsPoint() {
			c.full = true
		} else if !c.insert(p) {
			return false
		}
	} else if !c.insert(p) {
		return false
	}

	// Merge eagerly: four full children collapse into a full parent.
	if n.childrenFull() {
		n.full = true
		n.children = [4]*node{}
	}
	return true
}

// remove erases p from the subtree rooted at n. It returns the replacement
// for n (nil when the subtree became empty) and whether a point was actually
// removed. The caller guarantees p lies within n.region.
func (n *node) remove(p Point) (*node, bool) {
	if n.region.IsPoint() {
		// Terminal point node: erase the point by dropping the node. The
		// descent only reaches a 1x1 node through a present child slot or a
		// full ancestor, so the point is known to be set.
		return nil, true
	}

	q := n.quadrant(p)
	if n.full {
		// Materialize the compressed block just enough to carve out one
		// point: four full children, parent no longer full.
		n.subdivide()
		n.full = false
	}

	c := n.children[q]
	if c == nil {
		// Point was never present; do not synthesize nodes.
		return n, false
	}
	child, changed := c.remove(p)
	n.children[q] = child

	if n.childrenEmpty() {
		return nil, changed
	}
	return n, changed
}

// subdivide expands n into four children carrying n's full status.
func (n *node) subdivide() {
	n.children[NE] = newNode(n.region.Subdivide(NE), n.full)
	n.children[NW] = newNode(n.region.Subdivide(NW), n.full)
	n.children[SW] = newNode(n.region.Subdivide(SW), n.full)
	n.children[SE] = newNode(n.region.Subdivide(SE), n.full)
}

func (n *node) childrenFull() bool {
	for _, c := range n.children {
		if c == nil || !c.full {
			return false
		}
	}
	return true
}

func (n *node) childrenEmpty() bool {
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}
	return true
}

// walk visits the subtree in preorder (self, then NE, NW, SW, SE) and reports
// whether the traversal ran to completion.
func (n *node) walk(depth int, yield func(Node) bool) bool {
	if !yield(Node{Region: n.region, Full: n.full, Depth: depth}) {
		return false
	}
	for _, c := range n.children {
		if c != nil && !c.walk(depth+1, yield) {
			return false
		}
	}
	return true
}

// points yields every member point of the subtree in preorder. A full node
// contributes all lattice points of its region; sparse interior nodes
// contribute nothing themselves.
func (n *node) points(yield func(Point) bool) bool {
	if n.full {
		for x := n.region.XMin; x < n.region.XMax; x++ {
			for y := n.region.YMin; y < n.region.YMax; y++ {
				if !yield(Point{x, y}) {
					return false
				}
			}
		}
		// A full node has no children to visit.
		return true
	}
	for _, c := range n.children {
		if c != nil && !c.points(yield) {
			return false
		}
	}
	return true
}
