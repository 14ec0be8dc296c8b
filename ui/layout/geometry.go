package layout

import (
	"math"
	"sort"

	"safety-board/grid"
)

// Metrics maps terminal cells to pixels for the scale functions.
type Metrics struct {
	CellWidthPx  float64
	CellHeightPx float64
}

// DefaultMetrics is a typical 8x16 terminal font.
var DefaultMetrics = Metrics{CellWidthPx: 8, CellHeightPx: 16}

// Px converts a cell extent to pixels.
func (m Metrics) Px(cols, rows int) (float64, float64) {
	return float64(cols) * m.CellWidthPx, float64(rows) * m.CellHeightPx
}

// Splitter is a draggable strip between two adjacent entries of a vector.
type Splitter struct {
	Vector grid.VectorID
	Index  int
	Rect   Rect
	// Extent is the container length along the drag axis, in cells. It is
	// the denominator that turns a pointer delta into a percentage delta.
	Extent int
}

// Orientation returns the axis the splitter moves along.
func (s Splitter) Orientation() grid.Orientation {
	return s.Vector.Orientation()
}

// SlotBox is the measured box of one slot.
type SlotBox struct {
	Slot grid.SlotID
	// Rect is the outer box, border included.
	Rect Rect
	// Handle is the drag handle row inside the border.
	Handle Rect
	// Body is the content area below the handle.
	Body Rect

	WidthPx  float64
	HeightPx float64
	Scale    float64
}

// Geometry is the cell layout of the whole board for one terminal size.
type Geometry struct {
	Constraints Constraints
	Slots       [grid.SlotCount]SlotBox
	Splitters   []Splitter
	Columns     [3]Rect
	RootScale   float64
	Metrics     Metrics
}

// rowVectors lists the row vector of each column, left to right.
var rowVectors = [3]grid.VectorID{grid.LeftRows, grid.CenterRows, grid.RightRows}

// Compute lays out the board in a width x height terminal.
func Compute(l grid.Layout, width, height int, m Metrics) Geometry {
	c := ComputeConstraints(width, height)
	g := Geometry{
		Constraints: c,
		Metrics:     m,
	}
	wpx, hpx := m.Px(width, height)
	g.RootScale = grid.RootScale(wpx, hpx)

	content := c.Content
	colVec := l.Columns
	colAvail := content.W - SplitterThickness*(len(colVec)-1)
	colWidths := Distribute(colVec, colAvail)

	x := content.X
	for ci, w := range colWidths {
		if ci >= len(rowVectors) {
			break
		}
		g.Columns[ci] = Rect{X: x, Y: content.Y, W: w, H: content.H}
		x += w
		if ci < len(colWidths)-1 {
			g.Splitters = append(g.Splitters, Splitter{
				Vector: grid.Columns,
				Index:  ci,
				Rect:   Rect{X: x, Y: content.Y, W: SplitterThickness, H: content.H},
				Extent: colAvail,
			})
			x += SplitterThickness
		}
	}

	for ci, rowID := range rowVectors {
		col := g.Columns[ci]
		rowVec := l.Vector(rowID)
		rowAvail := col.H - SplitterThickness*(len(rowVec)-1)
		heights := Distribute(rowVec, rowAvail)
		slots := grid.ColumnSlots(rowID)

		y := col.Y
		for ri, h := range heights {
			if ri >= len(slots) {
				break
			}
			g.Slots[slots[ri]] = measureSlot(slots[ri], Rect{X: col.X, Y: y, W: col.W, H: h}, m)
			y += h
			if ri < len(heights)-1 {
				g.Splitters = append(g.Splitters, Splitter{
					Vector: rowID,
					Index:  ri,
					Rect:   Rect{X: col.X, Y: y, W: col.W, H: SplitterThickness},
					Extent: rowAvail,
				})
				y += SplitterThickness
			}
		}
	}

	return g
}

func measureSlot(id grid.SlotID, r Rect, m Metrics) SlotBox {
	inner := r.Inset(BorderSize)
	handle := Rect{X: inner.X, Y: inner.Y, W: inner.W, H: min(HandleHeight, inner.H)}
	body := Rect{X: inner.X, Y: inner.Y + handle.H, W: inner.W, H: max(inner.H-handle.H, 0)}
	wpx, hpx := m.Px(r.W, r.H)
	return SlotBox{
		Slot:     id,
		Rect:     r,
		Handle:   handle,
		Body:     body,
		WidthPx:  wpx,
		HeightPx: hpx,
		Scale:    grid.PanelScale(wpx, hpx),
	}
}

// Slot returns the box of slot id.
func (g Geometry) Slot(id grid.SlotID) SlotBox {
	if !id.Valid() {
		return SlotBox{}
	}
	return g.Slots[id]
}

// SplitterAt returns the splitter under the cell (x, y).
func (g Geometry) SplitterAt(x, y int) (Splitter, bool) {
	for _, s := range g.Splitters {
		if s.Rect.Contains(x, y) {
			return s, true
		}
	}
	return Splitter{}, false
}

// SlotAt returns the slot whose box contains the cell (x, y).
func (g Geometry) SlotAt(x, y int) (grid.SlotID, bool) {
	for _, box := range g.Slots {
		if box.Rect.Contains(x, y) {
			return box.Slot, true
		}
	}
	return 0, false
}

// HandleAt returns the slot whose drag handle contains the cell (x, y). The
// top border row counts as part of the handle.
func (g Geometry) HandleAt(x, y int) (grid.SlotID, bool) {
	for _, box := range g.Slots {
		grab := Rect{X: box.Rect.X, Y: box.Rect.Y, W: box.Rect.W, H: box.Handle.Y + box.Handle.H - box.Rect.Y}
		if grab.Contains(x, y) {
			return box.Slot, true
		}
	}
	return 0, false
}

// Distribute splits total cells by the percentages in v with the largest
// remainder method, so the parts always add up to total. Ties go to the
// lower index.
func Distribute(v grid.Vector, total int) []int {
	out := make([]int, len(v))
	if total <= 0 || len(v) == 0 {
		return out
	}
	sum := v.Sum()
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return out
	}

	type part struct {
		index int
		frac  float64
	}
	parts := make([]part, len(v))
	used := 0
	for i, p := range v {
		exact := math.Max(p, 0) / sum * float64(total)
		out[i] = int(math.Floor(exact))
		used += out[i]
		parts[i] = part{index: i, frac: exact - float64(out[i])}
	}

	sort.SliceStable(parts, func(a, b int) bool {
		return parts[a].frac > parts[b].frac
	})
	for i := 0; used < total; i = (i + 1) % len(parts) {
		out[parts[i].index]++
		used++
	}
	return out
}

// ClampToContent keeps a pointer coordinate inside the content area.
func (g Geometry) ClampToContent(x, y int) (int, int) {
	c := g.Constraints.Content
	if c.Empty() {
		return x, y
	}
	return clamp(x, c.X, c.X+c.W-1), clamp(y, c.Y, c.Y+c.H-1)
}
