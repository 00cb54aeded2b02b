// Package quadtree implements a region quadtree over the integer plane with
// set semantics: it stores distinct (x, y) points and compresses completely
// occupied square blocks into single "full" nodes, the two-dimensional
// analogue of run-length encoding. This makes it suitable for dense bitmap-
// like data (on/off pixels) rather than collision detection of shapes.
package quadtree

import "fmt"

// Point is a lattice point.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Region is an axis-aligned rectangle over integer coordinates, closed on the
// minimum bounds and open on the maximum bounds of both axes.
type Region struct {
	XMin int
	YMin int
	XMax int
	YMax int
}

// Quadrant identifies one of the four subdivisions of a region relative to
// its origin.
type Quadrant int

const (
	NE Quadrant = iota
	NW
	SW
	SE
)

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return "??"
}

// Contains reports whether p lies in r, closed on min, open on max.
func (r Region) Contains(p Point) bool {
	return p.X >= r.XMin && p.X < r.XMax &&
		p.Y >= r.YMin && p.Y < r.YMax
}

// IsPoint reports whether r covers exactly one lattice point.
func (r Region) IsPoint() bool {
	return r.XMin+1 == r.XMax && r.YMin+1 == r.YMax
}

func (r Region) Width() int  { return r.XMax - r.XMin }
func (r Region) Height() int { return r.YMax - r.YMin }

// Area is the number of lattice points covered by r.
func (r Region) Area() int { return r.Width() * r.Height() }

// Origin is the integer midpoint of r. Truncating division is floor here
// because the widths are positive.
func (r Region) Origin() Point {
	return Point{r.XMin + r.Width()/2, r.YMin + r.Height()/2}
}

// Subdivide returns the quarter of r in quadrant q. The four quarters tile r
// exactly and all share the origin as a corner.
func (r Region) Subdivide(q Quadrant) Region {
	o := r.Origin()
	switch q {
	case NE:
		return Region{o.X, o.Y, r.XMax, r.YMax}
	case NW:
		return Region{r.XMin, o.Y, o.X, r.YMax}
	case SW:
		return Region{r.XMin, r.YMin, o.X, o.Y}
	case SE:
		return Region{o.X, r.YMin, r.XMax, o.Y}
	}
	panic("quadtree: invalid quadrant")
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.XMin, r.XMax, r.YMin, r.YMax)
}
