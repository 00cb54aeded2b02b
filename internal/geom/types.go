// Package geom loads integer point sets from the file formats the viewer
// understands: CSV with coordinate columns, GeoJSON point geometries, and
// plain whitespace-separated text. All coordinates are truncated to the
// integer lattice.
package geom

// BBox is an integer bounding box, inclusive of both corners.
type BBox struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// extend grows the box to cover p; the first point initializes it.
func (b *BBox) extend(p [2]int, first bool) {
	if first {
		*b = BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
		return
	}
	if p[0] < b.MinX {
		b.MinX = p[0]
	}
	if p[1] < b.MinY {
		b.MinY = p[1]
	}
	if p[0] > b.MaxX {
		b.MaxX = p[0]
	}
	if p[1] > b.MaxY {
		b.MaxY = p[1]
	}
}
