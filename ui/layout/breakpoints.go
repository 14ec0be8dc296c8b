package layout

// Width breakpoints, in terminal cells
const (
	// MinWidth is the smallest width that fits three readable columns.
	MinWidth = 60

	// StandardWidth is the threshold for the standard layout.
	StandardWidth = 100

	// FullWidth is the threshold for the full layout with all chrome.
	FullWidth = 160
)

// Height breakpoints, in terminal cells
const (
	// MinHeight is the smallest height that fits three rows of slots.
	MinHeight = 20

	// StandardHeight is the threshold for the standard layout.
	StandardHeight = 30

	// FullHeight is the threshold for the full layout.
	FullHeight = 45
)

// Chrome around the slot grid
const (
	// HeaderHeight is the title line above the grid.
	HeaderHeight = 1

	// StatusHeight is the status line below the grid.
	StatusHeight = 1

	// MenuMinHeight is a single line of key hints.
	MenuMinHeight = 1

	// MenuStandardHeight pads the key hints with one blank line.
	MenuStandardHeight = 2

	// MenuMaxHeight centers the key hints in three lines.
	MenuMaxHeight = 3
)

// Slot grid constraints
const (
	// SplitterThickness is the width of a column splitter and the height of
	// a row splitter.
	SplitterThickness = 1

	// BorderSize is the slot border on each side.
	BorderSize = 1

	// HandleHeight is the drag handle row at the top of every slot.
	HandleHeight = 1
)
