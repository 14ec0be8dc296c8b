package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"safety-board/grid"
	"safety-board/ui/layout"
)

// PanelContext is what a panel renderer gets for one slot.
type PanelContext struct {
	Kind      grid.PanelKind
	Scale     float64
	RootScale float64
	// Width and Height are the body size in cells.
	Width  int
	Height int
	Detail layout.Detail
}

// PanelRenderer draws the body of a panel. Output larger than the body is
// clipped.
type PanelRenderer interface {
	RenderPanel(ctx PanelContext) string
}

// PanelRendererFunc adapts a function to PanelRenderer.
type PanelRendererFunc func(ctx PanelContext) string

func (f PanelRendererFunc) RenderPanel(ctx PanelContext) string {
	return f(ctx)
}

type panelInfo struct {
	title   string
	short   string
	summary string
}

var panels = map[grid.PanelKind]panelInfo{
	grid.PanelSlogan:        {"Safety Slogan", "Slogan", "This month's slogan, shown large."},
	grid.PanelSafetyData:    {"Safety Data", "Data", "Incident counts and leading indicators for the year."},
	grid.PanelAnnouncements: {"Announcements", "News", "Notices from the safety office."},
	grid.PanelCalendar:      {"Safety Calendar", "Calendar", "Drills, inspections and training days."},
	grid.PanelStreak:        {"Safe Days Streak", "Streak", "Days since the last recordable incident."},
	grid.PanelPolicy:        {"Safety Policy", "Policy", "The site safety policy in brief."},
	grid.PanelPoster:        {"Safety Poster", "Poster", "The featured poster."},
}

// PanelTitle returns the display title of kind, shortened when compact.
func PanelTitle(kind grid.PanelKind, compact bool) string {
	info, ok := panels[kind]
	if !ok {
		return string(kind)
	}
	if compact {
		return info.short
	}
	return info.title
}

// PlaceholderRenderer describes each panel kind in plain text. It stands in
// until real panel content is wired up.
type PlaceholderRenderer struct{}

func (PlaceholderRenderer) RenderPanel(ctx PanelContext) string {
	if ctx.Width <= 0 || ctx.Height <= 0 {
		return ""
	}
	info := panels[ctx.Kind]

	var lines []string
	if ctx.Detail.ShowSubtitle {
		lines = append(lines, TextStyles.Secondary.Render(truncate.StringWithTail(string(ctx.Kind), uint(ctx.Width), "…")))
	}

	body := wordwrap.String(info.summary, ctx.Width)
	bodyLines := strings.Split(body, "\n")
	if n := ctx.Detail.BodyLines; n > 0 && len(bodyLines) > n {
		bodyLines = bodyLines[:n]
	}
	for _, l := range bodyLines {
		lines = append(lines, TextStyles.Primary.Render(l))
	}

	if ctx.Detail.ShowFooter {
		for len(lines) < ctx.Height-1 {
			lines = append(lines, "")
		}
		lines = append(lines, TextStyles.Muted.Render(scaleLabel(ctx.Scale)))
	}
	return strings.Join(lines, "\n")
}

func scaleLabel(scale float64) string {
	return fmt.Sprintf("scale %.2f", scale)
}

// fitBlock clips or pads s to exactly width x height cells.
func fitBlock(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var lines []string
	if s != "" {
		lines = strings.Split(s, "\n")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, l := range lines {
		l = truncate.String(l, uint(width))
		if w := ansi.PrintableRuneWidth(l); w < width {
			l += strings.Repeat(" ", width-w)
		}
		lines[i] = l
	}
	return strings.Join(lines, "\n")
}

// truncateTitle shortens a plain title to width cells.
func truncateTitle(title string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(title, width, "…")
}
