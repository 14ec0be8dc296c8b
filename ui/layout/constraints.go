package layout

// Rect is a cell rectangle. X and Y are zero-based screen coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// Constraints holds the chrome around the slot grid for one terminal size.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	HeaderHeight int
	StatusHeight int
	MenuHeight   int

	// Content is the area shared by the three columns and their splitters.
	Content Rect

	ShowMinWarning bool
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
		HeaderHeight:   HeaderHeight,
		StatusHeight:   StatusHeight,
	}
	c.ShowMinWarning = c.Mode == LayoutMinimal
	c.MenuHeight = computeMenuHeight(c.Mode)

	c.Content = Rect{
		X: 0,
		Y: c.HeaderHeight,
		W: max(width, 0),
		H: max(height-c.HeaderHeight-c.StatusHeight-c.MenuHeight, 0),
	}
	return c
}

// computeMenuHeight calculates the menu height based on mode.
func computeMenuHeight(mode LayoutMode) int {
	switch mode {
	case LayoutFull:
		return MenuMaxHeight
	case LayoutStandard:
		return MenuStandardHeight
	default:
		return MenuMinHeight
	}
}

// Helper functions

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
