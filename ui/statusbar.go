package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"safety-board/grid"
	"safety-board/ui/layout"
)

const appTitle = "Safety Board"

// wideHeaderScale is the root scale above which the header shows its
// subtitle.
const wideHeaderScale = 18

// Header renders the title line: the board title, the lock badge and, when
// there is room, the layout mode and root scale.
func Header(width int, locked bool, g layout.Geometry) string {
	if width <= 0 {
		return ""
	}
	title := TextStyles.Title.Foreground(Primary).Render(appTitle)
	if g.RootScale >= wideHeaderScale {
		title += TextStyles.Secondary.Render("  workplace safety dashboard")
	}
	badge := LockBadge(locked)
	info := TextStyles.Muted.Render(fmt.Sprintf("%s · root %.1f", g.Constraints.Mode, g.RootScale))

	left := title + " " + badge
	gap := width - lipgloss.Width(left) - lipgloss.Width(info)
	if gap < 1 {
		return fitBlock(left, width, 1)
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + info
}

// StatusBar shows the outcome of the last action and what a gesture is doing.
type StatusBar struct {
	message string
	isError bool
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetMessage shows an informational message until the next one.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
	s.isError = false
}

// SetError shows an error until the next message.
func (s *StatusBar) SetError(err error) {
	if err == nil {
		s.Clear()
		return
	}
	s.message = err.Error()
	s.isError = true
}

func (s *StatusBar) Clear() {
	s.message = ""
	s.isError = false
}

func (s *StatusBar) Message() string {
	return s.message
}

func (s *StatusBar) IsError() bool {
	return s.isError
}

// Render draws the status line, padded to width. A gesture in flight takes
// precedence over the stored message.
func (s *StatusBar) Render(width int, state GridState) string {
	if width <= 0 {
		return ""
	}
	var text string
	style := TextStyles.Secondary
	switch {
	case state.Geometry.Constraints.ShowMinWarning:
		text = fmt.Sprintf("terminal too small: need %dx%d", layout.MinWidth, layout.MinHeight)
		style = TextStyles.Error
	case state.Dragging && state.HasTarget:
		text = fmt.Sprintf("swap %s with %s", describeSlot(state, state.DragFrom), describeSlot(state, state.DropTarget))
	case state.Dragging:
		text = fmt.Sprintf("moving %s", describeSlot(state, state.DragFrom))
	case state.ActiveSplitter != nil:
		text = describeSplitter(state)
	case s.isError:
		text = IconError + " " + s.message
		style = TextStyles.Error
	default:
		text = s.message
	}
	return style.Width(width).Render(runewidth.Truncate(text, width, "…"))
}

func describeSlot(state GridState, slot grid.SlotID) string {
	return fmt.Sprintf("%s (%s)", PanelTitle(state.Slots.Kind(slot), false), slot)
}

func describeSplitter(state GridState) string {
	sp := state.ActiveSplitter
	return fmt.Sprintf("resizing %s %d|%d", sp.Vector, sp.Index, sp.Index+1)
}
