package grid

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// SlotID identifies one of the seven fixed regions of the board.
type SlotID int

const (
	LeftTop SlotID = iota
	LeftMid
	LeftBottom
	CenterTop
	CenterBottom
	RightTop
	RightBottom

	slotCount
)

// SlotCount is the number of slots on the board.
const SlotCount = int(slotCount)

var slotNames = [SlotCount]string{
	"leftTop", "leftMid", "leftBottom", "centerTop", "centerBottom", "rightTop", "rightBottom",
}

// Slots lists every slot in board order.
var Slots = []SlotID{LeftTop, LeftMid, LeftBottom, CenterTop, CenterBottom, RightTop, RightBottom}

func (s SlotID) String() string {
	if s < 0 || s >= slotCount {
		return "unknown"
	}
	return slotNames[s]
}

// Valid reports whether s names a slot.
func (s SlotID) Valid() bool {
	return s >= 0 && s < slotCount
}

// ParseSlotID maps a persisted slot key to its SlotID.
func ParseSlotID(name string) (SlotID, bool) {
	for i, n := range slotNames {
		if n == name {
			return SlotID(i), true
		}
	}
	return 0, false
}

// ColumnSlots returns the slots of each column, top to bottom, matching the
// row vectors of a Layout.
func ColumnSlots(id VectorID) []SlotID {
	switch id {
	case LeftRows:
		return []SlotID{LeftTop, LeftMid, LeftBottom}
	case CenterRows:
		return []SlotID{CenterTop, CenterBottom}
	case RightRows:
		return []SlotID{RightTop, RightBottom}
	default:
		return nil
	}
}

// PanelKind identifies the content shown in a slot.
type PanelKind string

const (
	PanelSlogan        PanelKind = "slogan"
	PanelSafetyData    PanelKind = "safetyData"
	PanelAnnouncements PanelKind = "announcements"
	PanelCalendar      PanelKind = "calendar"
	PanelStreak        PanelKind = "streak"
	PanelPolicy        PanelKind = "policy"
	PanelPoster        PanelKind = "poster"
)

// PanelKinds lists every recognised panel kind.
var PanelKinds = []PanelKind{
	PanelSlogan, PanelSafetyData, PanelAnnouncements, PanelCalendar, PanelStreak, PanelPolicy, PanelPoster,
}

// Valid reports whether k is a recognised panel kind.
func (k PanelKind) Valid() bool {
	for _, known := range PanelKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Assignment maps every slot to the panel kind it shows. It is a value type:
// copies never alias, so a published Assignment cannot change under an
// observer.
type Assignment [SlotCount]PanelKind

// DefaultAssignment returns the compiled-in assignment, a bijection between
// slots and panel kinds.
func DefaultAssignment() Assignment {
	return Assignment{
		LeftTop:      PanelSlogan,
		LeftMid:      PanelSafetyData,
		LeftBottom:   PanelAnnouncements,
		CenterTop:    PanelCalendar,
		CenterBottom: PanelStreak,
		RightTop:     PanelPolicy,
		RightBottom:  PanelPoster,
	}
}

// Kind returns the panel kind held by slot s.
func (a Assignment) Kind(s SlotID) PanelKind {
	if !s.Valid() {
		return ""
	}
	return a[s]
}

// SlotOf returns the first slot holding kind k.
func (a Assignment) SlotOf(k PanelKind) (SlotID, bool) {
	for i, kind := range a {
		if kind == k {
			return SlotID(i), true
		}
	}
	return 0, false
}

// Swap returns a copy of a with the kinds of slots x and y exchanged.
func (a Assignment) Swap(x, y SlotID) Assignment {
	if !x.Valid() || !y.Valid() {
		return a
	}
	a[x], a[y] = a[y], a[x]
	return a
}

// IsBijection reports whether every panel kind appears exactly once.
func (a Assignment) IsBijection() bool {
	seen := make(map[PanelKind]bool, SlotCount)
	for _, k := range a {
		if !k.Valid() || seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}

// MarshalJSON encodes the assignment as an object keyed by slot name.
func (a Assignment) MarshalJSON() ([]byte, error) {
	m := make(map[string]PanelKind, SlotCount)
	for i, k := range a {
		m[slotNames[i]] = k
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by slot name. It requires exactly the
// seven slot keys, each mapped to a recognised panel kind.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("slot assignment is null")
	}
	var raw map[string]PanelKind
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out, err := AssignmentFromMap(raw)
	if err != nil {
		return err
	}
	*a = out
	return nil
}

// ErrInvalidAssignment wraps every slot assignment validation failure.
var ErrInvalidAssignment = errors.New("invalid slot assignment")

// AssignmentFromMap builds an Assignment from slot names, rejecting missing,
// unknown or extra keys and unrecognised kinds.
func AssignmentFromMap(raw map[string]PanelKind) (Assignment, error) {
	var out Assignment
	if len(raw) != SlotCount {
		return out, fmt.Errorf("%w: want %d slots, got %d", ErrInvalidAssignment, SlotCount, len(raw))
	}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		slot, ok := ParseSlotID(name)
		if !ok {
			return out, fmt.Errorf("%w: unknown slot %q", ErrInvalidAssignment, name)
		}
		kind := raw[name]
		if !kind.Valid() {
			return out, fmt.Errorf("%w: slot %s holds unknown panel %q", ErrInvalidAssignment, name, kind)
		}
		out[slot] = kind
	}
	return out, nil
}

// ValidateAssignment reports an assignment holding an unrecognised kind.
// Duplicated kinds are accepted; swaps alone cannot produce them.
func ValidateAssignment(a Assignment) error {
	for i, k := range a {
		if !k.Valid() {
			return fmt.Errorf("%w: slot %s holds unknown panel %q", ErrInvalidAssignment, slotNames[i], k)
		}
	}
	return nil
}
