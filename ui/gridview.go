package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"safety-board/grid"
	"safety-board/log"
	"safety-board/ui/layout"
)

// GridState is everything the grid view needs for one frame.
type GridState struct {
	Geometry layout.Geometry
	Slots    grid.Assignment
	Locked   bool

	// Dragging is set while a drag started from DragFrom is in flight.
	Dragging bool
	DragFrom grid.SlotID
	// HasTarget is set when the pointer is over a slot a drop would swap.
	HasTarget  bool
	DropTarget grid.SlotID

	// ActiveSplitter is highlighted while its resize session is open.
	ActiveSplitter *layout.Splitter
}

// GridView renders the seven slots and the splitters between them.
type GridView struct {
	renderer PanelRenderer
}

// NewGridView creates a grid view drawing panel bodies with r. A nil r uses
// the placeholder renderer.
func NewGridView(r PanelRenderer) *GridView {
	if r == nil {
		r = PlaceholderRenderer{}
	}
	return &GridView{renderer: r}
}

// Render draws the content area of s.Geometry.
func (v *GridView) Render(s GridState) string {
	done := log.GetProfiler().StartRender("grid")
	defer done()

	g := s.Geometry
	content := g.Constraints.Content
	if content.Empty() {
		return ""
	}

	var parts []string
	for ci, col := range g.Columns {
		parts = append(parts, v.renderColumn(s, ci, col))
		if ci < len(g.Columns)-1 {
			parts = append(parts, renderVerticalSplitter(s, ci, content.H))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (v *GridView) renderColumn(s GridState, ci int, col layout.Rect) string {
	rowID := []grid.VectorID{grid.LeftRows, grid.CenterRows, grid.RightRows}[ci]
	slots := grid.ColumnSlots(rowID)

	var rows []string
	for ri, slot := range slots {
		rows = append(rows, v.renderSlot(s, s.Geometry.Slot(slot)))
		if ri < len(slots)-1 {
			rows = append(rows, renderHorizontalSplitter(s, rowID, ri, col.W))
		}
	}
	return fitBlock(strings.Join(rows, "\n"), col.W, col.H)
}

func (v *GridView) renderSlot(s GridState, box layout.SlotBox) string {
	r := box.Rect
	if r.W < 2 || r.H < 2 {
		return fitBlock("", r.W, r.H)
	}

	kind := s.Slots.Kind(box.Slot)
	detail := layout.ComputeDetail(box.Scale)

	style := SlotStyles.Default
	switch {
	case s.Dragging && s.DragFrom == box.Slot:
		style = SlotStyles.DragSource
	case s.HasTarget && s.DropTarget == box.Slot:
		style = SlotStyles.DropTarget
	}

	inner := r.Inset(layout.BorderSize)
	handle := v.renderHandle(s, box, kind, detail)
	log.RenderTrace("slot", "%s kind=%s rect=%+v scale=%.2f", box.Slot, kind, r, box.Scale)

	done := log.GetProfiler().StartRender("panel:" + string(kind))
	body := v.renderer.RenderPanel(PanelContext{
		Kind:      kind,
		Scale:     box.Scale,
		RootScale: s.Geometry.RootScale,
		Width:     box.Body.W,
		Height:    box.Body.H,
		Detail:    detail,
	})
	done()

	blocks := []string{handle}
	if box.Body.H > 0 {
		blocks = append(blocks, fitBlock(body, box.Body.W, box.Body.H))
	}
	contentBlock := fitBlock(strings.Join(blocks, "\n"), inner.W, inner.H)

	return style.Width(inner.W).Height(inner.H).Render(contentBlock)
}

// renderHandle draws the drag handle row: a grip when unlocked, then the
// panel title.
func (v *GridView) renderHandle(s GridState, box layout.SlotBox, kind grid.PanelKind, detail layout.Detail) string {
	width := box.Handle.W
	if width <= 0 || box.Handle.H <= 0 {
		return ""
	}

	prefix := ""
	if !s.Locked {
		prefix = IconGrip + " "
	}
	title := truncateTitle(PanelTitle(kind, detail.CompactTitle), width-lipgloss.Width(prefix))

	titleStyle := TextStyles.Title
	if s.Dragging && s.DragFrom == box.Slot {
		titleStyle = titleStyle.Foreground(StateDragging)
	}
	return TextStyles.Muted.Render(prefix) + titleStyle.Render(title)
}

func renderVerticalSplitter(s GridState, index, height int) string {
	glyph, style := SplitterVertical, SplitterStyles.Idle
	if isActive(s.ActiveSplitter, grid.Columns, index) {
		glyph, style = SplitterVerticalActive, SplitterStyles.Active
	}
	if s.Locked {
		glyph = " "
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = style.Render(glyph)
	}
	return strings.Join(lines, "\n")
}

func renderHorizontalSplitter(s GridState, id grid.VectorID, index, width int) string {
	glyph, style := SplitterHorizontal, SplitterStyles.Idle
	if isActive(s.ActiveSplitter, id, index) {
		glyph, style = SplitterHorizontalActive, SplitterStyles.Active
	}
	if s.Locked {
		glyph = " "
	}
	return style.Render(strings.Repeat(glyph, max(width, 0)))
}

func isActive(active *layout.Splitter, id grid.VectorID, index int) bool {
	return active != nil && active.Vector == id && active.Index == index
}
