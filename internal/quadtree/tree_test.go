package quadtree

import (
	"math/rand"
	"testing"
)

// allPoints returns every lattice point of r.
func allPoints(r Region) []Point {
	pts := make([]Point, 0, r.Area())
	for x := r.XMin; x < r.XMax; x++ {
		for y := r.YMin; y < r.YMax; y++ {
			pts = append(pts, Point{x, y})
		}
	}
	return pts
}

func collect(t *Tree) map[Point]int {
	seen := map[Point]int{}
	for p := range t.Points() {
		seen[p]++
	}
	return seen
}

func TestNewCanonicalRegion(t *testing.T) {
	cases := []struct {
		in   Region
		want Region
	}{
		{Region{3, 3, 10, 10}, Region{2, 2, 18, 18}},
		{Region{0, 0, 8, 8}, Region{0, 0, 8, 8}},
		{Region{0, 0, 1, 1}, Region{0, 0, 1, 1}},
		{Region{0, 0, 100, 60}, Region{0, 0, 128, 128}},
		{Region{-5, -3, 6, 7}, Region{-8, -8, 8, 8}},
	}
	for _, c := range cases {
		got := New(c.in).Region()
		if got != c.want {
			t.Errorf("New(%v).Region() = %v, want %v", c.in, got, c.want)
		}
		if got.Width() != got.Height() {
			t.Errorf("New(%v): region %v is not square", c.in, got)
		}
		if w := got.Width(); w&(w-1) != 0 {
			t.Errorf("New(%v): side %d is not a power of two", c.in, w)
		}
		if got.XMin > c.in.XMin || got.YMin > c.in.YMin ||
			got.XMax < c.in.XMax || got.YMax < c.in.YMax {
			t.Errorf("New(%v): region %v does not enclose the request", c.in, got)
		}
	}
}

func TestInsertContains(t *testing.T) {
	qt := New(Region{0, 0, 64, 64})
	rng := rand.New(rand.NewSource(1))

	inserted := map[Point]bool{}
	for i := 0; i < 500; i++ {
		p := Point{rng.Intn(64), rng.Intn(64)}
		if !qt.Insert(p) {
			t.Fatalf("Insert(%v) = false inside region", p)
		}
		inserted[p] = true
	}
	for p := range inserted {
		if !qt.Contains(p) {
			t.Errorf("Contains(%v) = false after insert", p)
		}
	}
	for i := 0; i < 500; i++ {
		p := Point{rng.Intn(64), rng.Intn(64)}
		if qt.Contains(p) != inserted[p] {
			t.Errorf("Contains(%v) = %v, want %v", p, !inserted[p], inserted[p])
		}
	}
}

func TestInsertOutsideRegion(t *testing.T) {
	qt := New(Region{0, 0, 8, 8})
	for _, p := range []Point{{8, 0}, {0, 8}, {8, 8}, {-1, 3}, {3, -1}, {100, 100}} {
		if qt.Insert(p) {
			t.Errorf("Insert(%v) = true outside region", p)
		}
	}
	if qt.Count() != 0 {
		t.Errorf("rejected inserts mutated the tree: Count() = %d", qt.Count())
	}
}

func TestInsertIdempotent(t *testing.T) {
	qt := New(Region{0, 0, 8, 8})
	p := Point{3, 5}
	for i := 0; i < 3; i++ {
		if !qt.Insert(p) {
			t.Fatalf("Insert(%v) = false on attempt %d", p, i+1)
		}
	}
	if got := qt.Count(); got != 1 {
		t.Errorf("Count() = %d after duplicate inserts, want 1", got)
	}
}

func TestInsertIntoFullSubtree(t *testing.T) {
	qt := New(Region{0, 0, 8, 8})
	for _, p := range allPoints(Region{0, 0, 4, 4}) {
		qt.Insert(p)
	}
	// The SW quadrant is now one compressed full node. Re-inserting a point
	// inside it must succeed without expanding it again.
	if !qt.Insert(Point{1, 2}) {
		t.Fatal("Insert into full subtree = false")
	}
	nodes := 0
	for range qt.Nodes() {
		nodes++
	}
	if nodes != 2 { // root + full SW child
		t.Errorf("tree has %d nodes after duplicate insert, want 2", nodes)
	}
	if got := qt.Count(); got != 16 {
		t.Errorf("Count() = %d, want 16", got)
	}
}

func TestRemove(t *testing.T) {
	qt := New(Region{0, 0, 16, 16})
	rng := rand.New(rand.NewSource(2))

	pts := allPoints(Region{0, 0, 16, 16})
	rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
	keep := pts[:200]
	drop := pts[200:]

	for _, p := range pts {
		qt.Insert(p)
	}
	for _, p := range drop {
		if !qt.Remove(p) {
			t.Fatalf("Remove(%v) = false for a member", p)
		}
		if qt.Contains(p) {
			t.Fatalf("Contains(%v) = true after remove", p)
		}
	}
	for _, p := range keep {
		if !qt.Contains(p) {
			t.Errorf("Contains(%v) = false, removal disturbed an unrelated point", p)
		}
	}
	if got := qt.Count(); got != len(keep) {
		t.Errorf("Count() = %d, want %d", got, len(keep))
	}
}

func TestRemoveAbsent(t *testing.T) {
	qt := New(Region{0, 0, 8, 8})
	if qt.Remove(Point{1, 1}) {
		t.Error("Remove on empty tree = true")
	}

	qt.Insert(Point{0, 0})
	if qt.Remove(Point{7, 7}) {
		t.Error("Remove of a non-member = true")
	}
	if qt.Remove(Point{1, 0}) {
		t.Error("Remove of a non-member sharing a quadrant = true")
	}
	if !qt.Contains(Point{0, 0}) {
		t.Error("no-op remove disturbed the tree")
	}
	if got := qt.Count(); got != 1 {
		t.Errorf("Count() = %d after no-op removes, want 1", got)
	}

	if qt.Remove(Point{-3, 0}) {
		t.Error("Remove outside region = true")
	}
}

func TestRemoveLastPointEmptiesTree(t *testing.T) {
	qt := New(Region{0, 0, 8, 8})
	qt.Insert(Point{5, 2})
	if !qt.Remove(Point{5, 2}) {
		t.Fatal("Remove of sole member = false")
	}
	for range qt.Nodes() {
		t.Fatal("empty tree still has nodes")
	}
	for range qt.Points() {
		t.Fatal("empty tree still yields points")
	}
}

func TestCompressionOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 5; trial++ {
		qt := New(Region{0, 0, 8, 8})
		pts := allPoints(qt.Region())
		rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
		for _, p := range pts {
			if !qt.Insert(p) {
				t.Fatalf("Insert(%v) = false", p)
			}
		}

		var nodes []Node
		for n := range qt.Nodes() {
			nodes = append(nodes, n)
		}
		if len(nodes) != 1 || !nodes[0].Full || nodes[0].Region != qt.Region() {
			t.Fatalf("trial %d: filled tree is %+v, want a single full root", trial, nodes)
		}
	}
}

func TestPointsEnumeration(t *testing.T) {
	qt := New(Region{0, 0, 32, 32})
	rng := rand.New(rand.NewSource(4))

	want := map[Point]bool{}
	for i := 0; i < 400; i++ {
		p := Point{rng.Intn(32), rng.Intn(32)}
		qt.Insert(p)
		want[p] = true
	}
	for p := range want {
		if rng.Intn(3) == 0 {
			qt.Remove(p)
			delete(want, p)
		}
	}

	seen := collect(qt)
	for p, c := range seen {
		if c != 1 {
			t.Errorf("point %v enumerated %d times", p, c)
		}
		if !want[p] {
			t.Errorf("enumeration yielded unexpected point %v", p)
		}
	}
	for p := range want {
		if seen[p] == 0 {
			t.Errorf("enumeration missed point %v", p)
		}
	}
	if got := qt.Count(); got != len(want) {
		t.Errorf("Count() = %d, want %d", got, len(want))
	}
}

func TestPointsRestartable(t *testing.T) {
	qt := New(Region{0, 0, 8, 8})
	qt.Insert(Point{1, 1})
	qt.Insert(Point{6, 6})

	seq := qt.Points()
	for range seq {
		break // abandon mid-iteration
	}
	n := 0
	for range seq {
		n++
	}
	if n != 2 {
		t.Errorf("restarted iteration yielded %d points, want 2", n)
	}
}

func TestNegativeCoordinates(t *testing.T) {
	qt := New(Region{-8, -8, 8, 8})
	pts := []Point{{-8, -8}, {-1, -1}, {0, 0}, {-5, 3}, {7, -6}}
	for _, p := range pts {
		if !qt.Insert(p) {
			t.Fatalf("Insert(%v) = false", p)
		}
	}
	for _, p := range pts {
		if !qt.Contains(p) {
			t.Errorf("Contains(%v) = false", p)
		}
	}
	if !qt.Remove(Point{-1, -1}) {
		t.Fatal("Remove((-1,-1)) = false")
	}
	if qt.Contains(Point{-1, -1}) {
		t.Error("Contains((-1,-1)) = true after remove")
	}
	if got := qt.Count(); got != len(pts)-1 {
		t.Errorf("Count() = %d, want %d", got, len(pts)-1)
	}
}

func TestNodesPreorder(t *testing.T) {
	qt := New(Region{0, 0, 8, 8})
	qt.Insert(Point{0, 0})
	qt.Insert(Point{7, 7})

	var nodes []Node
	for n := range qt.Nodes() {
		nodes = append(nodes, n)
	}
	if len(nodes) == 0 {
		t.Fatal("no nodes for non-empty tree")
	}
	if nodes[0].Region != qt.Region() || nodes[0].Depth != 0 {
		t.Errorf("first node %+v is not the root", nodes[0])
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Depth > nodes[i-1].Depth+1 {
			t.Errorf("preorder depth jumps from %d to %d", nodes[i-1].Depth, nodes[i].Depth)
		}
		// The compression invariant, observed through the traversal: a full
		// node has no children, so nothing deeper may follow it directly.
		if nodes[i-1].Full && nodes[i].Depth > nodes[i-1].Depth {
			t.Errorf("node %+v appears beneath a full node", nodes[i])
		}
	}
}

// TestScenario is the end-to-end walk-through: fill an 8x8 region point by
// point in random order, then carve one point back out of the compressed
// root.
func TestScenario(t *testing.T) {
	qt := New(Region{0, 0, 8, 8})
	pts := allPoints(qt.Region())
	rng := rand.New(rand.NewSource(5))
	rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })

	for _, p := range pts {
		if !qt.Insert(p) {
			t.Fatalf("Insert(%v) = false", p)
		}
	}

	var nodes []Node
	for n := range qt.Nodes() {
		nodes = append(nodes, n)
	}
	if len(nodes) != 1 || !nodes[0].Full {
		t.Fatalf("filled 8x8 tree is %+v, want a single full root", nodes)
	}
	if seen := collect(qt); len(seen) != 64 {
		t.Fatalf("enumeration yielded %d points, want 64", len(seen))
	}

	if !qt.Remove(Point{3, 3}) {
		t.Fatal("Remove((3,3)) = false")
	}
	if qt.Contains(Point{3, 3}) {
		t.Error("Contains((3,3)) = true after remove")
	}
	seen := collect(qt)
	if len(seen) != 63 {
		t.Errorf("enumeration yielded %d points, want 63", len(seen))
	}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			p := Point{x, y}
			want := p != (Point{3, 3})
			if qt.Contains(p) != want {
				t.Errorf("Contains(%v) = %v, want %v", p, !want, want)
			}
		}
	}
}

func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(6))
	qt := New(Region{0, 0, 1024, 1024})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		qt.Insert(Point{rng.Intn(1024), rng.Intn(1024)})
	}
}

func BenchmarkContains(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	qt := New(Region{0, 0, 1024, 1024})
	for i := 0; i < 100000; i++ {
		qt.Insert(Point{rng.Intn(1024), rng.Intn(1024)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		qt.Contains(Point{rng.Intn(1024), rng.Intn(1024)})
	}
}
