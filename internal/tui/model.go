package tui

import (
	"math/rand"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"quadmap/internal/config"
	"quadmap/internal/quadtree"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	showGrid    bool
	showStats   bool

	status string

	// Tree and cursor
	tree      *quadtree.Tree
	cursor    quadtree.Point
	reqRegion quadtree.Region // requested bounds, kept for clear/reset

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// last rendered map size (for mouse mapping)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// stats table
	tbl table.Model

	rng *rand.Rand
}

// New creates a model over an empty tree covering the configured region.
func New(cfg config.Config) Model {
	req := quadtree.Region{
		XMin: cfg.Region.XMin, YMin: cfg.Region.YMin,
		XMax: cfg.Region.XMax, YMax: cfg.Region.YMax,
	}
	m := Model{
		helpVisible: cfg.UI.Help,
		showGrid:    cfg.UI.Grid,
		status:      "quadmap ready",
		reqRegion:   req,
		tree:        quadtree.New(req),
		rng:         rand.New(rand.NewSource(1)),
	}
	m.cursor = m.tree.Region().Origin()
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Point files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste points, one per line: x y (or x,y). Enter to insert; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// stats table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a point file at launch.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
