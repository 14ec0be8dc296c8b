package inspect

import (
	"fmt"
	"strings"
	"time"

	"safety-board/grid"
	"safety-board/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// AppState contains application state information.
	AppState AppStateInfo `json:"app_state"`

	// Layout contains the measured board geometry.
	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components,omitempty"`

	// Breakpoints contains information about responsive breakpoints.
	Breakpoints []BreakpointInfo `json:"breakpoints"`

	// Styles lists the registered named styles.
	Styles map[string]*StyleInfo `json:"styles,omitempty"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// State is the current app state (e.g., "default", "help", "confirm").
	State string `json:"state"`

	// HasOverlay indicates if an overlay is currently displayed.
	HasOverlay bool `json:"has_overlay"`

	// Locked is the board lock flag.
	Locked bool `json:"locked"`

	// Gesture is the gesture holding the pointer capture ("none", "resize", "drag").
	Gesture string `json:"gesture"`

	// StatusMessage is the status line text if any.
	StatusMessage string `json:"status_message,omitempty"`
}

// LayoutInfo contains the measured board geometry.
type LayoutInfo struct {
	// Mode is the current layout mode.
	Mode string `json:"mode"`

	// RootScale is the root type scale for the viewport.
	RootScale float64 `json:"root_scale"`

	// Content is the area holding the slot grid.
	Content Bounds `json:"content"`

	// MenuHeight is the menu height.
	MenuHeight int `json:"menu_height"`

	// Vectors holds the four percentage vectors by name.
	Vectors map[string][]float64 `json:"vectors"`

	// Slots lists every slot with its panel and measured box.
	Slots []SlotInfo `json:"slots"`

	ShowMinWarning bool `json:"show_min_warning"`
}

// SlotInfo describes one slot.
type SlotInfo struct {
	Slot         string  `json:"slot"`
	Kind         string  `json:"kind"`
	Bounds       Bounds  `json:"bounds"`
	WidthPx      float64 `json:"width_px"`
	HeightPx     float64 `json:"height_px"`
	PanelScale   float64 `json:"panel_scale"`
	CompactTitle bool    `json:"compact_title"`
	BodyLines    int     `json:"body_lines"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold"`

	// Active indicates if the terminal is at or above the threshold.
	Active bool `json:"active"`

	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithAppState sets application state and returns the snapshot for chaining.
func (s *Snapshot) WithAppState(info AppStateInfo) *Snapshot {
	s.AppState = info
	return s
}

// WithLayout records the geometry of the board showing slots under l.
func (s *Snapshot) WithLayout(g layout.Geometry, l grid.Layout, slots grid.Assignment) *Snapshot {
	c := g.Constraints
	info := LayoutInfo{
		Mode:           c.Mode.String(),
		RootScale:      g.RootScale,
		Content:        boundsOf(c.Content),
		MenuHeight:     c.MenuHeight,
		Vectors:        make(map[string][]float64, len(grid.VectorIDs)),
		ShowMinWarning: c.ShowMinWarning,
	}
	for _, id := range grid.VectorIDs {
		info.Vectors[id.String()] = []float64(l.Vector(id))
	}
	for _, box := range g.Slots {
		d := layout.ComputeDetail(box.Scale)
		info.Slots = append(info.Slots, SlotInfo{
			Slot:         box.Slot.String(),
			Kind:         string(slots.Kind(box.Slot)),
			Bounds:       boundsOf(box.Rect),
			WidthPx:      box.WidthPx,
			HeightPx:     box.HeightPx,
			PanelScale:   box.Scale,
			CompactTitle: d.CompactTitle,
			BodyLines:    d.BodyLines,
		})
	}
	s.Layout = info

	w, h := c.TerminalWidth, c.TerminalHeight
	s.Breakpoints = []BreakpointInfo{
		{Name: "min_width", Threshold: layout.MinWidth, Active: w >= layout.MinWidth, Dimension: "width"},
		{Name: "standard_width", Threshold: layout.StandardWidth, Active: w >= layout.StandardWidth, Dimension: "width"},
		{Name: "full_width", Threshold: layout.FullWidth, Active: w >= layout.FullWidth, Dimension: "width"},
		{Name: "min_height", Threshold: layout.MinHeight, Active: h >= layout.MinHeight, Dimension: "height"},
		{Name: "standard_height", Threshold: layout.StandardHeight, Active: h >= layout.StandardHeight, Dimension: "height"},
		{Name: "full_height", Threshold: layout.FullHeight, Active: h >= layout.FullHeight, Dimension: "height"},
	}
	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// WithRegisteredStyles records every registered named style.
func (s *Snapshot) WithRegisteredStyles() *Snapshot {
	s.Styles = GetAllStyles()
	return s
}

func boundsOf(r layout.Rect) Bounds {
	return Bounds{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	b.WriteString(fmt.Sprintf("State: %s (locked=%v, gesture=%s)\n", s.AppState.State, s.AppState.Locked, s.AppState.Gesture))

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Root scale: %.2f\n", s.Layout.RootScale))
	for _, id := range grid.VectorIDs {
		b.WriteString(fmt.Sprintf("%s: %s\n", id, formatVector(s.Layout.Vectors[id.String()])))
	}

	b.WriteString("\n--- Slots ---\n")
	for _, slot := range s.Layout.Slots {
		b.WriteString(fmt.Sprintf("  %-13s %-14s %dx%d at %d,%d scale=%.2f\n",
			slot.Slot, slot.Kind, slot.Bounds.Width, slot.Bounds.Height, slot.Bounds.X, slot.Bounds.Y, slot.PanelScale))
	}

	b.WriteString("\n--- Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.2f", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))

	if node.Truncated != nil {
		b.WriteString(fmt.Sprintf(" TRUNCATED(%d->%d)",
			node.Truncated.OriginalLength,
			node.Truncated.DisplayLength))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
