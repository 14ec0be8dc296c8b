package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay is a dismissable box of text, used for the help screen.
type TextOverlay struct {
	Dismissed bool

	title string
	lines []string
	width int
}

// NewTextOverlay creates a new text overlay
func NewTextOverlay(title string, lines []string) *TextOverlay {
	return &TextOverlay{
		title: title,
		lines: lines,
		width: 50,
	}
}

// HandleKeyPress dismisses the overlay on any key and reports that it did.
func (t *TextOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	t.Dismissed = true
	return true
}

// SetWidth sets the overlay width
func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

// Render renders the text overlay
func (t *TextOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62"))

	lineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(t.width)

	var content strings.Builder
	content.WriteString(titleStyle.Render(t.title))
	content.WriteString("\n\n")
	for _, line := range t.lines {
		content.WriteString(lineStyle.Render(line))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(hintStyle.Render("press any key to close"))

	return boxStyle.Render(content.String())
}
