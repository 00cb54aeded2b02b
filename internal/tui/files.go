package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"quadmap/internal/geom"
	"quadmap/internal/quadtree"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".csv" || ext == ".geojson" || ext == ".json" || ext == ".txt" || ext == ".pts" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no point files in current directory"
	}
}

// loadPath reads a point file and rebuilds the tree over the file's bounds.
func (m *Model) loadPath(p string) {
	var (
		pts  [][2]int
		bbox geom.BBox
		err  error
	)
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".csv":
		pts, bbox, err = geom.LoadCSV(p)
	case ".geojson", ".json":
		pts, bbox, err = geom.LoadGeoJSON(p)
	case ".txt", ".pts":
		pts, bbox, err = geom.LoadText(p)
	default:
		m.status = "unsupported file: " + ext
		return
	}
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p

	// Bounds are inclusive; the tree region is half-open.
	m.tree = quadtree.New(quadtree.Region{
		XMin: bbox.MinX, YMin: bbox.MinY,
		XMax: bbox.MaxX + 1, YMax: bbox.MaxY + 1,
	})
	inserted := 0
	for _, pt := range pts {
		if m.tree.Insert(quadtree.Point{X: pt[0], Y: pt[1]}) {
			inserted++
		}
	}
	m.cursor = m.tree.Region().Origin()
	m.status = fmt.Sprintf("loaded %s: %d points, region %v (%d distinct)",
		filepath.Base(p), inserted, m.tree.Region(), m.tree.Count())
	if m.showStats {
		m.refreshStats()
	}
}
