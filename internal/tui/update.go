package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"quadmap/internal/geom"
	"quadmap/internal/quadtree"
)

// layout returns the map viewport geometry; View and mouse handling must
// agree on it.
func (m Model) layout() (mapOriginX, mapOriginY, mapW, mapH int) {
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	mapW = contentWidth - sidebarWidth
	if m.showSidebar {
		mapW--
	}
	if mapW < 10 {
		mapW = 10
	}
	mapH = contentHeight
	mapOriginX = sidebarWidth
	if m.showSidebar {
		mapOriginX++
	}
	mapOriginY = headerHeight
	return mapOriginX, mapOriginY, mapW, mapH
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, _, m.mapW, m.mapH = m.layout()
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				pts, _, err := geom.ParseText(text)
				if err != nil {
					m.status = "paste error: " + err.Error()
					return m, nil
				}
				inserted, rejected := 0, 0
				for _, pt := range pts {
					if m.tree.Insert(quadtree.Point{X: pt[0], Y: pt[1]}) {
						inserted++
					} else {
						rejected++
					}
				}
				m.status = fmt.Sprintf("pasted %d points (%d outside region)", inserted, rejected)
				m.pasteMode = false
				m.ta.Blur()
				m.afterMutation()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(0, 1)
		case "down", "j":
			m.moveCursor(0, -1)
		case "left", "h":
			m.moveCursor(-1, 0)
		case "right", "l":
			m.moveCursor(1, 0)
		case " ":
			if m.tree.Contains(m.cursor) {
				m.tree.Remove(m.cursor)
				m.status = fmt.Sprintf("removed %v", m.cursor)
			} else {
				m.tree.Insert(m.cursor)
				m.status = fmt.Sprintf("inserted %v", m.cursor)
			}
			m.afterMutation()
		case "f":
			n := m.fillBlock(m.cursor, 4, true)
			m.status = fmt.Sprintf("filled %d points in 4x4 block at %v", n, m.cursor)
			m.afterMutation()
		case "d":
			n := m.fillBlock(m.cursor, 4, false)
			m.status = fmt.Sprintf("removed %d points in 4x4 block at %v", n, m.cursor)
			m.afterMutation()
		case "r":
			reg := m.tree.Region()
			for i := 0; i < 32; i++ {
				m.tree.Insert(quadtree.Point{
					X: reg.XMin + m.rng.Intn(reg.Width()),
					Y: reg.YMin + m.rng.Intn(reg.Height()),
				})
			}
			m.status = fmt.Sprintf("scattered 32 random points (%d total)", m.tree.Count())
			m.afterMutation()
		case "c":
			m.tree = quadtree.New(m.reqRegion)
			m.cursor = m.tree.Region().Origin()
			m.status = "cleared"
			m.afterMutation()
		case "g":
			m.showGrid = !m.showGrid
			m.status = fmt.Sprintf("grid overlay: %v", m.showGrid)
		case "s":
			m.showStats = !m.showStats
			if m.showStats {
				m.refreshStats()
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "?":
			m.helpVisible = !m.helpVisible
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		}
	case tea.MouseMsg:
		ox, oy, w, h := m.layout()
		m.mapW, m.mapH = w, h
		cx, cy := msg.X-ox, msg.Y-oy
		if cx >= 0 && cx < w && cy >= 0 && cy < h {
			if p, ok := m.cellToPoint(cx, cy, w, h); ok {
				if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
					m.cursor = p
					m.status = fmt.Sprintf("cursor %v", p)
				}
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	r := m.tree.Region()
	m.cursor.X = clamp(m.cursor.X+dx, r.XMin, r.XMax-1)
	m.cursor.Y = clamp(m.cursor.Y+dy, r.YMin, r.YMax-1)
}

// fillBlock inserts or removes a size x size block anchored at p, clipped to
// the region, and returns the number of points whose membership changed.
func (m *Model) fillBlock(p quadtree.Point, size int, insert bool) int {
	r := m.tree.Region()
	changed := 0
	for x := p.X; x < p.X+size && x < r.XMax; x++ {
		for y := p.Y; y < p.Y+size && y < r.YMax; y++ {
			q := quadtree.Point{X: x, Y: y}
			if insert {
				if !m.tree.Contains(q) && m.tree.Insert(q) {
					changed++
				}
			} else if m.tree.Remove(q) {
				changed++
			}
		}
	}
	return changed
}

func (m *Model) afterMutation() {
	if m.showStats {
		m.refreshStats()
	}
}
