package ui

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"safety-board/inspect"
	"safety-board/keys"
	"safety-board/ui/layout"
)

func init() {
	inspect.RegisterStyle("slot.default", SlotStyles.Default)
	inspect.RegisterStyle("slot.drag_source", SlotStyles.DragSource)
	inspect.RegisterStyle("slot.drop_target", SlotStyles.DropTarget)
	inspect.RegisterStyle("splitter.idle", SplitterStyles.Idle)
	inspect.RegisterStyle("splitter.active", SplitterStyles.Active)
}

// InspectGrid describes the slots and splitters drawn for s.
func InspectGrid(s GridState) *inspect.Node {
	c := s.Geometry.Constraints.Content
	root := inspect.NewNode("Grid").
		WithBounds(c.X, c.Y, c.W, c.H).
		WithState("locked", s.Locked).
		WithState("dragging", s.Dragging)

	for _, box := range s.Geometry.Slots {
		kind := s.Slots.Kind(box.Slot)
		detail := layout.ComputeDetail(box.Scale)
		r := box.Rect

		style, styleName := SlotStyles.Default, "slot.default"
		switch {
		case s.Dragging && s.DragFrom == box.Slot:
			style, styleName = SlotStyles.DragSource, "slot.drag_source"
		case s.HasTarget && s.DropTarget == box.Slot:
			style, styleName = SlotStyles.DropTarget, "slot.drop_target"
		}

		node := inspect.NewNode("Slot").
			WithID(box.Slot.String()).
			WithBounds(r.X, r.Y, r.W, r.H).
			WithState("kind", string(kind)).
			WithState("panel_scale", box.Scale).
			WithStyles(inspect.ExtractStyleInfo(style, styleName))

		title := PanelTitle(kind, detail.CompactTitle)
		shown := runewidth.StringWidth(truncateTitle(title, box.Handle.W))
		if full := runewidth.StringWidth(title); shown < full {
			node.WithTruncation(full, shown)
		}
		root.AddChild(node)
	}

	for _, sp := range s.Geometry.Splitters {
		r := sp.Rect
		root.AddChild(inspect.NewNode("Splitter").
			WithID(sp.Vector.String()+"/"+strconv.Itoa(sp.Index)).
			WithBounds(r.X, r.Y, r.W, r.H).
			WithState("active", isActive(s.ActiveSplitter, sp.Vector, sp.Index)))
	}
	return root
}

// InspectNode implements inspect.Introspectable.
func (m *Menu) InspectNode() *inspect.Node {
	var options []string
	for _, k := range m.Options() {
		options = append(options, keys.GlobalkeyBindings[k].Help().Key)
	}
	return inspect.NewNode("Menu").
		WithBounds(0, 0, m.width, m.height).
		WithState("state", int(m.state)).
		WithState("options", options)
}

// InspectNode implements inspect.Introspectable.
func (s *StatusBar) InspectNode() *inspect.Node {
	return inspect.NewNode("StatusBar").
		WithState("message", s.message).
		WithState("is_error", s.isError)
}
