package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrLocked is returned when an interaction is attempted on a locked board.
	ErrLocked = errors.New("board is locked")
	// ErrGestureActive is returned when another gesture owns the pointer.
	ErrGestureActive = errors.New("another gesture is active")
)

// Listener observes accepted board mutations. Calls happen synchronously,
// after the new state is in place, in mutation order.
type Listener interface {
	LayoutChanged(Layout)
	SlotsChanged(Assignment)
	// Cleared is called on Reset, after defaults are restored.
	Cleared()
}

// Snapshot is an immutable view of the board.
type Snapshot struct {
	Layout  Layout
	Slots   Assignment
	Locked  bool
	Gesture GestureKind
}

// DragToken is produced by BeginDrag and consumed by Drop or CancelDrag.
type DragToken struct {
	From  SlotID
	token uint64
}

// Board is the slot grid: the current layout, the slot assignment, the
// process-wide lock flag and the pointer capture shared by all gestures.
// It is driven from a single event loop and is not safe for concurrent use.
type Board struct {
	layout    Layout
	slots     Assignment
	locked    bool
	capture   Capture
	session   *ResizeSession
	listeners []Listener
}

// NewBoard creates a locked board holding the given state.
func NewBoard(layout Layout, slots Assignment) *Board {
	return &Board{
		layout: layout.Clone(),
		slots:  slots,
		locked: true,
	}
}

// Subscribe registers l for every later mutation.
func (b *Board) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

// Snapshot returns the current state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Layout:  b.layout.Clone(),
		Slots:   b.slots,
		Locked:  b.locked,
		Gesture: b.capture.Active(),
	}
}

// Layout returns a copy of the current layout.
func (b *Board) Layout() Layout {
	return b.layout.Clone()
}

// Slots returns the current assignment.
func (b *Board) Slots() Assignment {
	return b.slots
}

// Locked reports whether splitters and drag handles are inert.
func (b *Board) Locked() bool {
	return b.locked
}

// SetLocked sets the lock flag for all slots at once. Locking ends any
// gesture in progress.
func (b *Board) SetLocked(locked bool) {
	if locked {
		b.cancelGesture()
	}
	b.locked = locked
}

// ToggleLock flips the lock flag and returns the new value.
func (b *Board) ToggleLock() bool {
	b.SetLocked(!b.locked)
	return b.locked
}

// ActiveResize returns the open resize session, if any.
func (b *Board) ActiveResize() *ResizeSession {
	return b.session
}

// BeginResize starts dragging the splitter after entry index of vector id.
// start is the pointer position and extent the container size along the
// drag axis, both in pixels. Each move publishes a new Layout.
func (b *Board) BeginResize(id VectorID, index int, start Point, extent float64) (*ResizeSession, error) {
	if b.locked {
		return nil, ErrLocked
	}
	token, ok := b.capture.Acquire(GestureResize)
	if !ok {
		return nil, ErrGestureActive
	}
	s, err := BeginResize(b.layout.Vector(id), index, id.Orientation(), id.MinEach(), start, extent)
	if err != nil {
		b.capture.Release(token)
		return nil, fmt.Errorf("resize %s: %w", id, err)
	}
	s.OnUpdate = func(v Vector) {
		b.layout = b.layout.WithVector(id, v)
		b.emitLayout()
	}
	s.onClose = func() {
		b.capture.Release(token)
		if b.session == s {
			b.session = nil
		}
	}
	b.session = s
	return s, nil
}

// BeginDrag picks up the panel in slot from. It fails while the board is
// locked or another gesture owns the pointer.
func (b *Board) BeginDrag(from SlotID) (DragToken, bool) {
	if b.locked || !from.Valid() {
		return DragToken{}, false
	}
	token, ok := b.capture.Acquire(GestureDrag)
	if !ok {
		return DragToken{}, false
	}
	return DragToken{From: from, token: token}, true
}

// Drop ends the drag of t over slot onto and reports whether a swap
// happened. Dropping onto the origin, onto a locked board or with a stale
// token changes nothing. The pointer capture is released in every case.
func (b *Board) Drop(t DragToken, onto SlotID) bool {
	if !b.capture.Owns(t.token) {
		return false
	}
	b.capture.Release(t.token)
	if b.locked || !onto.Valid() || onto == t.From {
		return false
	}
	b.slots = b.slots.Swap(t.From, onto)
	b.emitSlots()
	return true
}

// CancelDrag abandons the drag of t without changing the assignment.
func (b *Board) CancelDrag(t DragToken) {
	b.capture.Release(t.token)
}

// Reset restores the compiled-in layout and assignment and tells listeners
// to drop persisted values.
func (b *Board) Reset() {
	b.cancelGesture()
	b.layout = DefaultLayout()
	b.slots = DefaultAssignment()
	for _, l := range b.listeners {
		l.Cleared()
	}
}

// Restore replaces the layout and assignment with values read back from
// storage, for example after another process changed them. It reports
// whether anything changed. Listeners are not notified, and a board with a
// gesture in progress is left alone.
func (b *Board) Restore(layout Layout, slots Assignment) bool {
	if b.capture.Active() != GestureNone {
		return false
	}
	if b.layout.Equal(layout, Tolerance) && b.slots == slots {
		return false
	}
	b.layout = layout.Clone()
	b.slots = slots
	return true
}

func (b *Board) cancelGesture() {
	if b.session != nil {
		b.session.Close()
	}
	b.capture = Capture{next: b.capture.next}
}

func (b *Board) emitLayout() {
	for _, l := range b.listeners {
		l.LayoutChanged(b.layout.Clone())
	}
}

func (b *Board) emitSlots() {
	for _, l := range b.listeners {
		l.SlotsChanged(b.slots)
	}
}
