package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safety-board/grid"
	"safety-board/ui/layout"
)

func TestSnapshotWithLayout(t *testing.T) {
	g := layout.Compute(grid.DefaultLayout(), 120, 40, layout.DefaultMetrics)
	slots := grid.DefaultAssignment().Swap(grid.LeftTop, grid.RightBottom)

	s := NewSnapshot().
		WithTerminal(120, 40).
		WithAppState(AppStateInfo{State: "default", Locked: true, Gesture: "none"}).
		WithLayout(g, grid.DefaultLayout(), slots)

	assert.Equal(t, "standard", s.Layout.Mode)
	assert.Equal(t, g.RootScale, s.Layout.RootScale)
	require.Len(t, s.Layout.Slots, grid.SlotCount)
	assert.Equal(t, "leftTop", s.Layout.Slots[0].Slot)
	assert.Equal(t, "poster", s.Layout.Slots[0].Kind)
	assert.Equal(t, []float64{28, 44, 28}, s.Layout.Vectors["columns"])

	active := map[string]bool{}
	for _, bp := range s.Breakpoints {
		active[bp.Name] = bp.Active
	}
	assert.True(t, active["standard_width"])
	assert.False(t, active["full_width"])

	text := s.ToText()
	assert.Contains(t, text, "Terminal: 120x40")
	assert.Contains(t, text, "columns: [28.00 44.00 28.00]")
	assert.Contains(t, text, "rightBottom")
}

func TestWriteSnapshotToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspect.json")
	root := NewNode("App").AddChild(NewNode("Slot").WithID("leftTop").WithBounds(0, 1, 20, 6))
	s := NewSnapshot().WithTerminal(80, 24).WithComponents(root)

	require.NoError(t, WriteSnapshotToPath(s, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 80, decoded.Terminal.Width)
	require.NotNil(t, decoded.Components.Find("Slot", "leftTop"))
	assert.Equal(t, 20, decoded.Components.Find("Slot", "leftTop").Bounds.Width)
}

func TestNodeFind(t *testing.T) {
	root := NewNode("Grid").
		AddChild(NewNode("Column").AddChild(NewNode("Slot").WithID("a"))).
		AddChild(NewNode("Slot").WithID("b"))

	assert.NotNil(t, root.Find("Slot", "a"))
	assert.NotNil(t, root.Find("Slot", "b"))
	assert.Nil(t, root.Find("Slot", "c"))

	var nilNode *Node
	assert.Nil(t, nilNode.Find("Grid", ""))
}

func TestWithTruncation(t *testing.T) {
	n := NewNode("Handle").WithTruncation(16, 8)
	assert.True(t, n.Truncated.Ellipsis)
	n = NewNode("Handle").WithTruncation(6, 6)
	assert.False(t, n.Truncated.Ellipsis)
}

func TestExtractStyleInfo(t *testing.T) {
	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("205")).
		Bold(true)

	info := ExtractStyleInfo(style, "slot.drop_target")
	assert.Equal(t, "double", info.Border)
	assert.Equal(t, "205", info.BorderColor)
	assert.True(t, info.Bold)
	assert.Equal(t, []string{"slot.drop_target"}, info.AppliedStyles)

	plain := ExtractStyleInfo(lipgloss.NewStyle())
	assert.Empty(t, plain.Border)
	assert.Empty(t, plain.Foreground)
}

func TestStyleRegistry(t *testing.T) {
	RegisterStyle("test.rounded", lipgloss.NewStyle().Border(lipgloss.RoundedBorder()))
	style, ok := GetRegisteredStyle("test.rounded")
	assert.True(t, ok)
	assert.True(t, style.GetBorderTop())
	assert.Contains(t, ListRegisteredStyles(), "test.rounded")
	assert.Equal(t, "rounded", GetAllStyles()["test.rounded"].Border)
}
