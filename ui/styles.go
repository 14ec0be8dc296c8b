package ui

import "github.com/charmbracelet/lipgloss"

// Semantic Color Palette
// Designed for accessibility (colorblind-safe) with both color and shape differentiation.

// State colors - each board state has a distinct color and associated icon
var (
	// ColorLocked indicates the grid ignores pointer gestures
	// Color: Gray, Icon: "■"
	ColorLocked = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	// ColorEditing indicates the grid accepts resizes and swaps
	// Color: Green, Icon: "✎"
	ColorEditing = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StateDragging marks the slot a drag started from
	// Color: Blue, Icon: "⠿"
	StateDragging = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

	// StateDropTarget marks the slot a drop would swap with
	// Color: Amber
	StateDropTarget = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// StateError indicates a failed action
	// Color: Red, Icon: "×"
	StateError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
)

// State icons for accessibility (shape + color)
const (
	IconLocked  = "■"
	IconEditing = "✎"
	IconGrip    = "⠿"
	IconError   = "×"
)

// Splitter glyphs
const (
	SplitterVertical         = "│"
	SplitterVerticalActive   = "┃"
	SplitterHorizontal       = "─"
	SplitterHorizontalActive = "━"
)

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Title     lipgloss.Style
	Error     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
	Title:     lipgloss.NewStyle().Foreground(TextPrimary).Bold(true),
	Error:     lipgloss.NewStyle().Foreground(StateError),
}

// SlotStyles contains the slot border variants
var SlotStyles = struct {
	Default    lipgloss.Style
	DragSource lipgloss.Style
	DropTarget lipgloss.Style
}{
	Default: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border),
	DragSource: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(StateDragging),
	DropTarget: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(StateDropTarget),
}

// SplitterStyles contains the splitter variants
var SplitterStyles = struct {
	Idle   lipgloss.Style
	Active lipgloss.Style
}{
	Idle:   lipgloss.NewStyle().Foreground(Border),
	Active: lipgloss.NewStyle().Foreground(Primary).Bold(true),
}

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 1)
}

// StatusBadge returns a formatted status badge string
func StatusBadge(status string, color lipgloss.TerminalColor) string {
	return BadgeStyle(color).Render(status)
}

// LockBadge renders the lock state badge shown in the header.
func LockBadge(locked bool) string {
	if locked {
		return StatusBadge(IconLocked+" locked", ColorLocked)
	}
	return StatusBadge(IconEditing+" editing", ColorEditing)
}
