// Package storage persists the board layout and slot assignment in a local
// key-value store. Loads never fail: anything missing, unparsable or out of
// shape is replaced by the compiled-in default.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"safety-board/config"
	"safety-board/grid"
	"safety-board/log"
)

// LoadLayout reads the layout stored under key. It returns the default
// layout unless the stored value passes checkLayout, in which case every
// vector is renormalized.
func LoadLayout(store config.Store, key string) grid.Layout {
	l := LoadValidated(store, key, checkLayout, grid.DefaultLayout)
	return l.Normalized()
}

// LoadSlots reads the slot assignment stored under key, falling back to the
// default assignment.
func LoadSlots(store config.Store, key string) grid.Assignment {
	return LoadValidated(store, key, checkSlots, grid.DefaultAssignment)
}

// Save JSON-encodes value and writes it under key.
func Save(store config.Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// LoadValidated reads key and runs check over the raw value. Any failure
// along the way yields fallback().
func LoadValidated[T any](store config.Store, key string, check func([]byte) (T, error), fallback func() T) T {
	data, ok, err := store.Get(key)
	if err != nil {
		log.WarningLog.Printf("failed to read %s, using defaults: %v", key, err)
		return fallback()
	}
	if !ok {
		return fallback()
	}
	value, err := check(data)
	if err != nil {
		log.WarningLog.Printf("stored %s rejected, using defaults: %v", key, err)
		return fallback()
	}
	return value
}

// YearKey returns the store key of a year-scoped record.
func YearKey(prefix string, year int) string {
	return fmt.Sprintf("%s.%d", prefix, year)
}

// LoadYear loads the year-scoped record for year, or fresh(year) when the
// stored value fails check.
func LoadYear[T any](store config.Store, prefix string, year int, check func([]byte) (T, error), fresh func(year int) T) T {
	return LoadValidated(store, YearKey(prefix, year), check, func() T { return fresh(year) })
}

// Adapter binds the store to the configured keys and persists every
// accepted board mutation.
type Adapter struct {
	store     config.Store
	layoutKey string
	slotsKey  string
	// saveErrors rate limits failure logging; a drag publishes every frame.
	saveErrors *log.Every
}

// NewAdapter creates an adapter writing the layout under layoutKey and the
// slot assignment under slotsKey.
func NewAdapter(store config.Store, layoutKey, slotsKey string) *Adapter {
	return &Adapter{
		store:      store,
		layoutKey:  layoutKey,
		slotsKey:   slotsKey,
		saveErrors: log.NewEvery(5 * time.Second),
	}
}

// NewAdapterFromConfig creates an adapter using the keys from cfg.
func NewAdapterFromConfig(store config.Store, cfg *config.Config) *Adapter {
	return NewAdapter(store, cfg.LayoutKey, cfg.SlotsKey)
}

func (a *Adapter) LoadLayout() grid.Layout {
	return LoadLayout(a.store, a.layoutKey)
}

func (a *Adapter) LoadSlots() grid.Assignment {
	return LoadSlots(a.store, a.slotsKey)
}

func (a *Adapter) SaveLayout(l grid.Layout) error {
	return Save(a.store, a.layoutKey, l)
}

func (a *Adapter) SaveSlots(s grid.Assignment) error {
	return Save(a.store, a.slotsKey, s)
}

// Clear deletes both persisted values.
func (a *Adapter) Clear() error {
	if err := a.store.Delete(a.layoutKey); err != nil {
		return fmt.Errorf("failed to clear %s: %w", a.layoutKey, err)
	}
	if err := a.store.Delete(a.slotsKey); err != nil {
		return fmt.Errorf("failed to clear %s: %w", a.slotsKey, err)
	}
	return nil
}

// Export returns the persisted values, or the defaults in their place, as
// one indented JSON document keyed by store key.
func (a *Adapter) Export() ([]byte, error) {
	doc := map[string]any{
		a.layoutKey: a.LoadLayout(),
		a.slotsKey:  a.LoadSlots(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// LayoutChanged implements grid.Listener.
func (a *Adapter) LayoutChanged(l grid.Layout) {
	a.report(a.SaveLayout(l))
}

// SlotsChanged implements grid.Listener.
func (a *Adapter) SlotsChanged(s grid.Assignment) {
	a.report(a.SaveSlots(s))
}

// Cleared implements grid.Listener.
func (a *Adapter) Cleared() {
	a.report(a.Clear())
}

func (a *Adapter) report(err error) {
	if err != nil && a.saveErrors.ShouldLog() {
		log.ErrorLog.Printf("%v", err)
	}
}

var _ grid.Listener = (*Adapter)(nil)
