package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadIndex is returned when the splitter index does not sit between two entries.
	ErrBadIndex = errors.New("splitter index out of range")
	// ErrBadExtent is returned when the container has no size along the drag axis.
	ErrBadExtent = errors.New("container extent must be positive")
)

// Orientation is the direction of a splitter line.
type Orientation int

const (
	// Vertical splitters separate columns and follow horizontal movement.
	Vertical Orientation = iota
	// Horizontal splitters separate rows and follow vertical movement.
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Point is a pointer position in pixels.
type Point struct {
	X, Y float64
}

// Axis returns the coordinate a splitter of orientation o follows.
func (p Point) Axis(o Orientation) float64 {
	if o == Vertical {
		return p.X
	}
	return p.Y
}

// ResizeSession is one splitter drag: from pointer-down to pointer-up.
type ResizeSession struct {
	index       int
	orientation Orientation
	minEach     float64
	start       Point
	extent      float64
	snapshot    Vector
	current     Vector
	closed      bool

	// OnUpdate receives every published vector.
	OnUpdate func(Vector)
	// onClose runs exactly once when the session ends.
	onClose func()
}

// BeginResize starts a session on the splitter between v[index] and
// v[index+1]. extent is the pixel size of the container holding the whole
// vector along the drag axis, captured once for the whole session.
func BeginResize(v Vector, index int, o Orientation, minEach float64, start Point, extent float64) (*ResizeSession, error) {
	if len(v) < 2 || index < 0 || index+1 >= len(v) {
		return nil, fmt.Errorf("%w: index %d for %d entries", ErrBadIndex, index, len(v))
	}
	if extent <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadExtent, extent)
	}
	return &ResizeSession{
		index:       index,
		orientation: o,
		minEach:     minEach,
		start:       start,
		extent:      extent,
		snapshot:    v.Clone(),
		current:     v.Clone(),
	}, nil
}

// Move applies a pointer position and publishes the resulting vector.
// Every call is measured against the session start, not the previous move.
func (s *ResizeSession) Move(p Point) Vector {
	if s.closed {
		return s.current.Clone()
	}

	deltaPercent := (p.Axis(s.orientation) - s.start.Axis(s.orientation)) / s.extent * Total
	i, j := s.index, s.index+1
	rest := s.snapshot.Sum() - s.snapshot[i] - s.snapshot[j]

	a := s.snapshot[i] + deltaPercent
	upper := Total - rest - s.minEach
	if a > upper {
		a = upper
	}
	if a < s.minEach {
		a = s.minEach
	}
	b := Total - rest - a
	if b < s.minEach {
		b = s.minEach
		a = Total - rest - b
	}

	next := s.snapshot.Clone()
	next[i] = a
	next[j] = b
	s.current = Normalize(next)

	if s.OnUpdate != nil {
		s.OnUpdate(s.current.Clone())
	}
	return s.current.Clone()
}

// Vector returns the latest published vector, or the start vector if no
// move has happened.
func (s *ResizeSession) Vector() Vector {
	return s.current.Clone()
}

// Index returns the left/top member of the adjusted pair.
func (s *ResizeSession) Index() int {
	return s.index
}

// Orientation returns the splitter orientation.
func (s *ResizeSession) Orientation() Orientation {
	return s.orientation
}

// Closed reports whether the session has ended.
func (s *ResizeSession) Closed() bool {
	return s.closed
}

// Close ends the session. It is safe to call more than once.
func (s *ResizeSession) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.onClose != nil {
		s.onClose()
	}
}
