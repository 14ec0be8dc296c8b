package grid

// GestureKind names what currently owns the pointer.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureResize
	GestureDrag
)

func (k GestureKind) String() string {
	switch k {
	case GestureNone:
		return "none"
	case GestureResize:
		return "resize"
	case GestureDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// Capture is the exclusive owner of pointer move/release events. A gesture
// acquires it when it starts and must release it on every exit path; while it
// is held no other gesture can begin.
type Capture struct {
	kind  GestureKind
	token uint64
	next  uint64
}

// Acquire takes the capture for a gesture of the given kind. It returns the
// ownership token, or false if another gesture holds the capture.
func (c *Capture) Acquire(kind GestureKind) (uint64, bool) {
	if c.kind != GestureNone {
		return 0, false
	}
	c.next++
	c.kind = kind
	c.token = c.next
	return c.token, true
}

// Release frees the capture if token still owns it. Stale tokens are ignored,
// so releasing twice is harmless.
func (c *Capture) Release(token uint64) bool {
	if c.kind == GestureNone || c.token != token {
		return false
	}
	c.kind = GestureNone
	c.token = 0
	return true
}

// Owns reports whether token is the current owner.
func (c *Capture) Owns(token uint64) bool {
	return c.kind != GestureNone && c.token == token
}

// Active returns the kind of the gesture holding the capture.
func (c *Capture) Active() GestureKind {
	return c.kind
}
