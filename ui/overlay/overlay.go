package overlay

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

type whitespace struct {
	chars string
}

// WhitespaceOption sets a styling rule for rendering whitespace.
type WhitespaceOption func(*whitespace)

// WithWhitespaceChars sets the characters used to fill gaps left of an
// overlay that starts past the end of a background line.
func WithWhitespaceChars(s string) WhitespaceOption {
	return func(w *whitespace) {
		w.chars = s
	}
}

func (w whitespace) render(width int) string {
	if width <= 0 {
		return ""
	}
	chars := []rune(w.chars)
	if len(chars) == 0 {
		chars = []rune{' '}
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteRune(chars[i%len(chars)])
	}
	return b.String()
}

// PlaceOverlay draws fg on top of bg with its top left corner at (x, y), or
// centered when center is set. Both strings may carry ANSI styling.
func PlaceOverlay(x, y int, fg, bg string, center bool, opts ...WhitespaceOption) string {
	ws := &whitespace{}
	for _, opt := range opts {
		opt(ws)
	}

	fgLines, fgWidth := getLines(fg)
	bgLines, bgWidth := getLines(bg)
	bgHeight := len(bgLines)
	fgHeight := len(fgLines)

	if fgWidth >= bgWidth && fgHeight >= bgHeight {
		return fg
	}

	if center {
		x = (bgWidth - fgWidth) / 2
		y = (bgHeight - fgHeight) / 2
	}
	x = clamp(x, 0, max(bgWidth-fgWidth, 0))
	y = clamp(y, 0, max(bgHeight-fgHeight, 0))

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(ws.render(x - pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		right := cutLeft(bgLine, pos)
		bgLineWidth := ansi.PrintableRuneWidth(bgLine)
		rightWidth := ansi.PrintableRuneWidth(right)
		if rightWidth <= bgLineWidth-pos {
			b.WriteString(ws.render(bgLineWidth - rightWidth - pos))
		}
		b.WriteString(right)
	}
	return b.String()
}

// cutLeft drops the first cutWidth printable cells of s. Escape sequences
// are kept so styling carries over to the remaining text.
func cutLeft(s string, cutWidth int) string {
	var (
		pos    int
		inAnsi bool
		b      strings.Builder
	)
	for _, c := range s {
		if c == ansi.Marker || inAnsi {
			inAnsi = true
			b.WriteRune(c)
			if ansi.IsTerminator(c) {
				inAnsi = false
			}
			continue
		}
		w := runewidth.RuneWidth(c)
		switch {
		case pos >= cutWidth:
			b.WriteRune(c)
		case pos+w > cutWidth:
			// wide rune split by the cut
			b.WriteString(strings.Repeat(" ", pos+w-cutWidth))
		}
		pos += w
	}
	return b.String()
}

func getLines(s string) (lines []string, widest int) {
	lines = strings.Split(s, "\n")
	for _, l := range lines {
		if w := ansi.PrintableRuneWidth(l); w > widest {
			widest = w
		}
	}
	return lines, widest
}

func clamp(v, lower, upper int) int {
	return min(max(v, lower), upper)
}
