package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshStats rebuilds the statistics table from the current tree. Counts
// come from the node traversal, not from enumerating points, so a tree
// holding one compressed megapixel block stays cheap to inspect.
func (m *Model) refreshStats() {
	nodes, fullNodes, leaves, maxDepth := 0, 0, 0, 0
	for n := range m.tree.Nodes() {
		nodes++
		if n.Full {
			fullNodes++
		}
		if n.Leaf() {
			leaves++
		}
		if n.Depth > maxDepth {
			maxDepth = n.Depth
		}
	}
	region := m.tree.Region()
	count := m.tree.Count()
	fill := 0.0
	if region.Area() > 0 {
		fill = 100 * float64(count) / float64(region.Area())
	}

	rows := []table.Row{
		{"region", region.String()},
		{"side", fmt.Sprintf("%d", region.Width())},
		{"points", fmt.Sprintf("%d", count)},
		{"fill", fmt.Sprintf("%.1f%%", fill)},
		{"nodes", fmt.Sprintf("%d", nodes)},
		{"full nodes", fmt.Sprintf("%d", fullNodes)},
		{"point leaves", fmt.Sprintf("%d", leaves)},
		{"max depth", fmt.Sprintf("%d", maxDepth)},
	}
	cols := []table.Column{
		{Title: "stat", Width: 14},
		{Title: "value", Width: 24},
	}
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(len(rows) + 1)
}
