package storage

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safety-board/config"
	"safety-board/grid"
)

const (
	layoutKey = "test.layout"
	slotsKey  = "test.slots"
)

func TestLoadLayout(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{columns:"},
		{"null", "null"},
		{"array", "[28,44,28]"},
		{"missing vector", `{"columns":[28,44,28],"leftRows":[32,36,32],"centerRows":[60,40]}`},
		{"wrong count", `{"columns":[50,50],"leftRows":[32,36,32],"centerRows":[60,40],"rightRows":[55,45]}`},
		{"non numeric", `{"columns":[28,"44",28],"leftRows":[32,36,32],"centerRows":[60,40],"rightRows":[55,45]}`},
		{"null vector", `{"columns":null,"leftRows":[32,36,32],"centerRows":[60,40],"rightRows":[55,45]}`},
		{"negative", `{"columns":[-10,80,30],"leftRows":[32,36,32],"centerRows":[60,40],"rightRows":[55,45]}`},
		{"overflowing sum", `{"columns":[1e308,1e308,1e308],"leftRows":[32,36,32],"centerRows":[60,40],"rightRows":[55,45]}`},
		{"zero sum", `{"columns":[0,0,0],"leftRows":[32,36,32],"centerRows":[60,40],"rightRows":[55,45]}`},
		{"below minimum", `{"columns":[5,70,25],"leftRows":[32,36,32],"centerRows":[60,40],"rightRows":[55,45]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := config.NewMemoryStore()
			require.NoError(t, store.Set(layoutKey, []byte(tt.payload)))
			assert.Equal(t, grid.DefaultLayout(), LoadLayout(store, layoutKey))
		})
	}

	t.Run("missing key", func(t *testing.T) {
		assert.Equal(t, grid.DefaultLayout(), LoadLayout(config.NewMemoryStore(), layoutKey))
	})

	t.Run("valid layout is renormalized", func(t *testing.T) {
		store := config.NewMemoryStore()
		payload := `{"columns":[30,40,30],"leftRows":[20,20,20],"centerRows":[1,1],"rightRows":[50,50],"extra":true}`
		require.NoError(t, store.Set(layoutKey, []byte(payload)))

		l := LoadLayout(store, layoutKey)
		assert.InDeltaSlice(t, []float64{30, 40, 30}, []float64(l.Columns), 1e-9)
		assert.InDeltaSlice(t, []float64{100.0 / 3, 100.0 / 3, 100.0 / 3}, []float64(l.LeftRows), 1e-9)
		assert.InDeltaSlice(t, []float64{50, 50}, []float64(l.CenterRows), 1e-9)
		for _, id := range grid.VectorIDs {
			assert.InDelta(t, grid.Total, l.Vector(id).Sum(), grid.Tolerance)
		}
	})
}

func TestLoadSlots(t *testing.T) {
	def := grid.DefaultAssignment()
	full := map[string]string{
		"leftTop": "poster", "leftMid": "safetyData", "leftBottom": "announcements",
		"centerTop": "calendar", "centerBottom": "streak", "rightTop": "policy", "rightBottom": "slogan",
	}

	encode := func(m map[string]string) string {
		data, err := json.Marshal(m)
		require.NoError(t, err)
		return string(data)
	}
	without := func(key string) map[string]string {
		out := map[string]string{}
		for k, v := range full {
			if k != key {
				out[k] = v
			}
		}
		return out
	}
	with := func(key, value string) map[string]string {
		out := without("")
		out[key] = value
		return out
	}

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "nope"},
		{"null", "null"},
		{"missing slot", encode(without("rightBottom"))},
		{"extra slot", encode(with("bottomBar", "poster"))},
		{"unknown kind", encode(with("leftTop", "weather"))},
		{"non string kind", `{"leftTop":1,"leftMid":"safetyData","leftBottom":"announcements","centerTop":"calendar","centerBottom":"streak","rightTop":"policy","rightBottom":"slogan"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := config.NewMemoryStore()
			require.NoError(t, store.Set(slotsKey, []byte(tt.payload)))
			assert.Equal(t, def, LoadSlots(store, slotsKey))
		})
	}

	t.Run("valid", func(t *testing.T) {
		store := config.NewMemoryStore()
		require.NoError(t, store.Set(slotsKey, []byte(encode(full))))
		got := LoadSlots(store, slotsKey)
		assert.Equal(t, grid.PanelPoster, got.Kind(grid.LeftTop))
		assert.Equal(t, grid.PanelSlogan, got.Kind(grid.RightBottom))
	})
}

func TestAdapterRoundTrip(t *testing.T) {
	store := config.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	a := NewAdapter(store, layoutKey, slotsKey)

	layout := grid.DefaultLayout().WithVector(grid.Columns, grid.Vector{18, 54, 28})
	slots := grid.DefaultAssignment().Swap(grid.LeftTop, grid.RightBottom)
	require.NoError(t, a.SaveLayout(layout))
	require.NoError(t, a.SaveSlots(slots))

	reloaded := NewAdapter(config.NewFileStore(store.Path()), layoutKey, slotsKey)
	assert.True(t, layout.Equal(reloaded.LoadLayout(), 1e-9))
	assert.Equal(t, slots, reloaded.LoadSlots())

	require.NoError(t, a.Clear())
	assert.Equal(t, grid.DefaultLayout(), reloaded.LoadLayout())
	assert.Equal(t, grid.DefaultAssignment(), reloaded.LoadSlots())
}

func TestAdapterPersistsBoardMutations(t *testing.T) {
	store := config.NewMemoryStore()
	a := NewAdapter(store, layoutKey, slotsKey)
	b := grid.NewBoard(a.LoadLayout(), a.LoadSlots())
	b.Subscribe(a)
	b.SetLocked(false)

	tok, ok := b.BeginDrag(grid.LeftTop)
	require.True(t, ok)
	require.True(t, b.Drop(tok, grid.RightBottom))
	assert.Equal(t, b.Slots(), a.LoadSlots())

	s, err := b.BeginResize(grid.Columns, 0, grid.Point{X: 0}, 1000)
	require.NoError(t, err)
	s.Move(grid.Point{X: -230})
	s.Close()
	assert.True(t, b.Layout().Equal(a.LoadLayout(), 1e-9))
	assert.InDeltaSlice(t, []float64{18, 54, 28}, []float64(a.LoadLayout().Columns), 1e-9)

	b.Reset()
	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

type failingStore struct{ config.MemoryStore }

func (f *failingStore) Set(string, []byte) error { return errors.New("disk full") }
func (f *failingStore) Get(string) ([]byte, bool, error) {
	return nil, false, errors.New("unreadable")
}

func TestAdapterStoreFailures(t *testing.T) {
	a := NewAdapter(&failingStore{}, layoutKey, slotsKey)
	assert.Equal(t, grid.DefaultLayout(), a.LoadLayout())
	assert.Equal(t, grid.DefaultAssignment(), a.LoadSlots())
	assert.Error(t, a.SaveLayout(grid.DefaultLayout()))

	// listener path swallows the failure
	assert.NotPanics(t, func() { a.LayoutChanged(grid.DefaultLayout()) })
}

func TestExport(t *testing.T) {
	a := NewAdapter(config.NewMemoryStore(), layoutKey, slotsKey)
	data, err := a.Export()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, layoutKey)
	assert.Contains(t, doc, slotsKey)
}

type yearPlan struct {
	Year  int      `json:"year"`
	Weeks []string `json:"weeks"`
}

func checkYearPlan(data []byte) (yearPlan, error) {
	var p yearPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return p, err
	}
	if p.Year == 0 || len(p.Weeks) != 52 {
		return p, errors.New("bad shape")
	}
	return p, nil
}

func TestLoadYear(t *testing.T) {
	assert.Equal(t, "plan.2026", YearKey("plan", 2026))

	store := config.NewMemoryStore()
	fresh := func(year int) yearPlan { return yearPlan{Year: year, Weeks: make([]string, 52)} }

	got := LoadYear(store, "plan", 2026, checkYearPlan, fresh)
	assert.Equal(t, fresh(2026), got)

	require.NoError(t, store.Set(YearKey("plan", 2026), []byte(`{"year":2026,"weeks":["a"]}`)))
	assert.Equal(t, fresh(2026), LoadYear(store, "plan", 2026, checkYearPlan, fresh))

	stored := fresh(2026)
	stored.Weeks[3] = "fire drill"
	require.NoError(t, Save(store, YearKey("plan", 2026), stored))
	assert.Equal(t, stored, LoadYear(store, "plan", 2026, checkYearPlan, fresh))
}
