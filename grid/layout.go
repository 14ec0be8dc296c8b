package grid

import (
	"errors"
	"fmt"
	"math"
)

// VectorID names one of the four percent vectors of a Layout.
type VectorID int

const (
	Columns VectorID = iota
	LeftRows
	CenterRows
	RightRows
)

// VectorIDs lists every vector in a stable order.
var VectorIDs = []VectorID{Columns, LeftRows, CenterRows, RightRows}

func (id VectorID) String() string {
	switch id {
	case Columns:
		return "columns"
	case LeftRows:
		return "leftRows"
	case CenterRows:
		return "centerRows"
	case RightRows:
		return "rightRows"
	default:
		return "unknown"
	}
}

// Orientation returns the orientation of the splitters inside this vector.
func (id VectorID) Orientation() Orientation {
	if id == Columns {
		return Vertical
	}
	return Horizontal
}

// Minimum entry per vector, in percent.
const (
	MinColumn    = 18.0
	MinLeftRow   = 14.0
	MinCenterRow = 18.0
	MinRightRow  = 16.0
)

// MinEach returns the minimum size of any entry of this vector.
func (id VectorID) MinEach() float64 {
	switch id {
	case Columns:
		return MinColumn
	case LeftRows:
		return MinLeftRow
	case CenterRows:
		return MinCenterRow
	case RightRows:
		return MinRightRow
	default:
		return 0
	}
}

// Len returns the number of entries of this vector in the default topology.
func (id VectorID) Len() int {
	return len(DefaultLayout().Vector(id))
}

// Layout is the geometry of the board: column widths and, per column, row
// heights, all in percent of their container.
type Layout struct {
	Columns    Vector `json:"columns"`
	LeftRows   Vector `json:"leftRows"`
	CenterRows Vector `json:"centerRows"`
	RightRows  Vector `json:"rightRows"`
}

// DefaultLayout returns the compiled-in layout.
func DefaultLayout() Layout {
	return Layout{
		Columns:    Vector{28, 44, 28},
		LeftRows:   Vector{32, 36, 32},
		CenterRows: Vector{60, 40},
		RightRows:  Vector{55, 45},
	}
}

// Vector returns a copy of the vector named by id.
func (l Layout) Vector(id VectorID) Vector {
	switch id {
	case Columns:
		return l.Columns.Clone()
	case LeftRows:
		return l.LeftRows.Clone()
	case CenterRows:
		return l.CenterRows.Clone()
	case RightRows:
		return l.RightRows.Clone()
	default:
		return nil
	}
}

// WithVector returns a copy of l with the vector named by id replaced.
func (l Layout) WithVector(id VectorID, v Vector) Layout {
	out := l.Clone()
	switch id {
	case Columns:
		out.Columns = v.Clone()
	case LeftRows:
		out.LeftRows = v.Clone()
	case CenterRows:
		out.CenterRows = v.Clone()
	case RightRows:
		out.RightRows = v.Clone()
	}
	return out
}

// Clone returns a deep copy.
func (l Layout) Clone() Layout {
	return Layout{
		Columns:    l.Columns.Clone(),
		LeftRows:   l.LeftRows.Clone(),
		CenterRows: l.CenterRows.Clone(),
		RightRows:  l.RightRows.Clone(),
	}
}

// Normalized returns a copy with every vector renormalized.
func (l Layout) Normalized() Layout {
	return Layout{
		Columns:    Normalize(l.Columns),
		LeftRows:   Normalize(l.LeftRows),
		CenterRows: Normalize(l.CenterRows),
		RightRows:  Normalize(l.RightRows),
	}
}

// Equal compares every vector within tol.
func (l Layout) Equal(other Layout, tol float64) bool {
	for _, id := range VectorIDs {
		if !l.Vector(id).Equal(other.Vector(id), tol) {
			return false
		}
	}
	return true
}

// ErrInvalidLayout wraps every layout validation failure.
var ErrInvalidLayout = errors.New("invalid layout")

// ValidateLayout checks l against the default topology: entry counts, finite
// non-negative entries with a positive sum and, once normalized, every entry
// at or above its vector's minimum.
func ValidateLayout(l Layout) error {
	for _, id := range VectorIDs {
		if err := validateVector(id, l.Vector(id)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidLayout, id, err)
		}
	}
	return nil
}

func validateVector(id VectorID, v Vector) error {
	if want := id.Len(); len(v) != want {
		return fmt.Errorf("want %d entries, got %d", want, len(v))
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("entry %d is not finite", i)
		}
		if x < 0 {
			return fmt.Errorf("entry %d is negative", i)
		}
	}
	sum := v.Sum()
	if math.IsInf(sum, 0) {
		return errors.New("entries overflow when summed")
	}
	if sum <= 0 {
		return errors.New("entries sum to zero")
	}
	for i, x := range Normalize(v) {
		if x < id.MinEach()-Tolerance {
			return fmt.Errorf("entry %d (%.4f) below minimum %.0f", i, x, id.MinEach())
		}
	}
	return nil
}
