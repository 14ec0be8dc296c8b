package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationOverlay asks a yes/no question. Confirmed is only meaningful
// once Dismissed is set.
type ConfirmationOverlay struct {
	Dismissed bool
	Confirmed bool

	message string
	// cursor is 0 for confirm, 1 for cancel
	cursor int
	width  int
}

// NewConfirmationOverlay creates a confirmation dialog with cancel selected.
func NewConfirmationOverlay(message string) *ConfirmationOverlay {
	return &ConfirmationOverlay{
		message: message,
		cursor:  1,
		width:   50,
	}
}

// HandleKeyPress processes a key press and reports whether the dialog closed.
func (c *ConfirmationOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		c.cursor = 1 - c.cursor
		return false
	case "y":
		c.close(true)
		return true
	case "n", "esc", "q":
		c.close(false)
		return true
	case "enter":
		c.close(c.cursor == 0)
		return true
	default:
		return false
	}
}

func (c *ConfirmationOverlay) close(confirmed bool) {
	c.Confirmed = confirmed
	c.Dismissed = true
}

// SetWidth sets the width of the overlay
func (c *ConfirmationOverlay) SetWidth(width int) {
	c.width = width
}

// Render renders the confirmation overlay
func (c *ConfirmationOverlay) Render(opts ...WhitespaceOption) string {
	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7aa2f7")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	choices := []string{"Reset", "Cancel"}
	rendered := make([]string, len(choices))
	for i, choice := range choices {
		if i == c.cursor {
			rendered[i] = selectedStyle.Render("> " + choice)
		} else {
			rendered[i] = normalStyle.Render("  " + choice)
		}
	}

	var content strings.Builder
	content.WriteString(messageStyle.Render(c.message))
	content.WriteString("\n\n")
	content.WriteString(strings.Join(rendered, "    "))
	content.WriteString("\n\n")
	content.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render(
		"[y] Reset  [n/Esc] Cancel  [←/→] Choose"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7aa2f7")).
		Padding(1, 2).
		Width(c.width)

	return borderStyle.Render(content.String())
}
