package quadtree

import "testing"

func TestQuadrantTieBreak(t *testing.T) {
	n := newNode(Region{0, 0, 8, 8}, false)
	if n.origin != (Point{4, 4}) {
		t.Fatalf("origin = %v, want (4,4)", n.origin)
	}
	// Ties on either axis resolve east/north.
	cases := []struct {
		p    Point
		want Quadrant
	}{
		{Point{4, 4}, NE},
		{Point{4, 3}, SE},
		{Point{3, 4}, NW},
		{Point{3, 3}, SW},
		{Point{7, 0}, SE},
		{Point{0, 7}, NW},
	}
	for _, c := range cases {
		if got := n.quadrant(c.p); got != c.want {
			t.Errorf("quadrant(%v) = %v, want %v", c.p, got, c.want)
		}
	}
	// The origin itself must land in the quadrant whose subregion contains it.
	for q := NE; q <= SE; q++ {
		r := n.region.Subdivide(q)
		if r.Contains(n.origin) != (q == NE) {
			t.Errorf("origin containment in %v = %v", q, r.Contains(n.origin))
		}
	}
}

func TestSubdivideCarriesFull(t *testing.T) {
	n := newNode(Region{0, 0, 8, 8}, true)
	n.subdivide()
	for q := NE; q <= SE; q++ {
		c := n.children[q]
		if c == nil || !c.full {
			t.Fatalf("child %v = %+v, want full node", q, c)
		}
		if c.region != n.region.Subdivide(q) {
			t.Errorf("child %v region = %v, want %v", q, c.region, n.region.Subdivide(q))
		}
	}
	if !n.childrenFull() {
		t.Error("childrenFull() = false after subdividing a full node")
	}
}

func TestRemoveLazilyExpandsFullNode(t *testing.T) {
	qt := New(Region{0, 0, 4, 4})
	for _, p := range allPoints(qt.Region()) {
		qt.Insert(p)
	}
	// Single compressed root.
	nodes := 0
	for range qt.Nodes() {
		nodes++
	}
	if nodes != 1 {
		t.Fatalf("filled tree has %d nodes, want 1", nodes)
	}

	if !qt.Remove(Point{0, 0}) {
		t.Fatal("Remove((0,0)) = false")
	}
	// Carving one point out of the full root must expand only along the path
	// to it, leaving the other quadrants compressed.
	full, total := 0, 0
	for n := range qt.Nodes() {
		total++
		if n.Full {
			full++
			if n.Region.Contains(Point{0, 0}) {
				t.Errorf("full node %v still covers the removed point", n.Region)
			}
		}
	}
	if got := qt.Count(); got != 15 {
		t.Errorf("Count() = %d, want 15", got)
	}
	// root + 4 children, SW child expanded into 4 more (one removed).
	if total != 8 || full != 6 {
		t.Errorf("tree has %d nodes (%d full), want 8 nodes (6 full)", total, full)
	}
}
