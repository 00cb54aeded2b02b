package tui

import (
	"strings"

	"quadmap/internal/quadtree"
)

// projX maps a lattice x coordinate to a micro-pixel column. The region's
// x range spans the full canvas width; XMax maps to the exclusive right edge.
func (m Model) projX(x, w int) int {
	r := m.tree.Region()
	nx := float64(x-r.XMin) / float64(r.Width())
	return int(nx * float64(w*2))
}

// projY maps a lattice y coordinate to a micro-pixel row, north up: YMax maps
// to the top edge, YMin to the exclusive bottom edge.
func (m Model) projY(y, h int) int {
	r := m.tree.Region()
	ny := float64(y-r.YMin) / float64(r.Height())
	return h*4 - int(ny*float64(h*4))
}

// projRect maps a sub-region to a micro-pixel rectangle [x0,x1) x [y0,y1),
// at least one pixel in each dimension so small regions stay visible.
func (m Model) projRect(r quadtree.Region, w, h int) (x0, y0, x1, y1 int) {
	x0 = m.projX(r.XMin, w)
	x1 = m.projX(r.XMax, w)
	y0 = m.projY(r.YMax, h)
	y1 = m.projY(r.YMin, h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// cellToPoint maps a map cell back to the lattice point it covers.
func (m Model) cellToPoint(cx, cy, w, h int) (quadtree.Point, bool) {
	if w <= 0 || h <= 0 {
		return quadtree.Point{}, false
	}
	r := m.tree.Region()
	nx := (float64(cx) + 0.5) / float64(w)
	ny := 1.0 - (float64(cy)+0.5)/float64(h)
	p := quadtree.Point{
		X: r.XMin + int(nx*float64(r.Width())),
		Y: r.YMin + int(ny*float64(r.Height())),
	}
	p.X = clamp(p.X, r.XMin, r.XMax-1)
	p.Y = clamp(p.Y, r.YMin, r.YMax-1)
	return p, r.Contains(p)
}

// renderMap rasterizes the tree onto a braille canvas: full nodes become
// filled blocks, so the compression is directly visible as solid rectangles.
// With the grid overlay on, every node's region is outlined, showing how far
// the tree has subdivided.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)

	for n := range m.tree.Nodes() {
		if n.Full {
			x0, y0, x1, y1 := m.projRect(n.Region, w, h)
			br.fillRect(x0, y0, x1, y1)
		}
	}

	if m.showGrid {
		for n := range m.tree.Nodes() {
			x0, y0, x1, y1 := m.projRect(n.Region, w, h)
			br.drawLineMicro(x0, y0, x1-1, y0)
			br.drawLineMicro(x0, y1-1, x1-1, y1-1)
			br.drawLineMicro(x0, y0, x0, y1-1)
			br.drawLineMicro(x1-1, y0, x1-1, y1-1)
		}
	}

	lines := br.toLines()

	// Cursor: replace the covering cell with a styled marker.
	cx := (m.projX(m.cursor.X, w) + m.projX(m.cursor.X+1, w)) / 2 / 2
	cy := (m.projY(m.cursor.Y+1, h) + m.projY(m.cursor.Y, h)) / 2 / 4
	if cy >= 0 && cy < len(lines) {
		r := []rune(lines[cy])
		if cx >= 0 && cx < len(r) {
			marker := "◆"
			if m.tree.Contains(m.cursor) {
				marker = "◈"
			}
			lines[cy] = string(r[:cx]) + cursorStyle.Render(marker) + string(r[cx+1:])
		}
	}
	return strings.Join(lines, "\n")
}
