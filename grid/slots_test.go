package grid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAssignmentIsBijection(t *testing.T) {
	a := DefaultAssignment()

	assert.True(t, a.IsBijection())
	for _, kind := range PanelKinds {
		_, ok := a.SlotOf(kind)
		assert.True(t, ok, "kind %s", kind)
	}
}

func TestSlotNames(t *testing.T) {
	want := []string{"leftTop", "leftMid", "leftBottom", "centerTop", "centerBottom", "rightTop", "rightBottom"}
	require.Len(t, Slots, SlotCount)

	for i, s := range Slots {
		assert.Equal(t, want[i], s.String())
		parsed, ok := ParseSlotID(want[i])
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	_, ok := ParseSlotID("middle")
	assert.False(t, ok)
	assert.Equal(t, "unknown", SlotID(42).String())
}

func TestColumnSlotsMatchTopology(t *testing.T) {
	for _, id := range []VectorID{LeftRows, CenterRows, RightRows} {
		assert.Len(t, ColumnSlots(id), id.Len(), "%s", id)
	}
	assert.Nil(t, ColumnSlots(Columns))
}

func TestAssignmentSwapReturnsCopy(t *testing.T) {
	a := DefaultAssignment()
	b := a.Swap(LeftTop, RightBottom)

	assert.Equal(t, PanelSlogan, a[LeftTop])
	assert.Equal(t, PanelPoster, b[LeftTop])
	assert.Equal(t, PanelSlogan, b[RightBottom])
	assert.Equal(t, a, b.Swap(RightBottom, LeftTop))
	assert.Equal(t, a, a.Swap(LeftTop, SlotID(-1)))
}

func TestAssignmentJSON(t *testing.T) {
	a := DefaultAssignment().Swap(CenterTop, LeftMid)

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, SlotCount)
	assert.Equal(t, "safetyData", raw["centerTop"])
	assert.Equal(t, "calendar", raw["leftMid"])

	var decoded Assignment
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, a, decoded)
}

func TestAssignmentUnmarshalRejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "null", payload: `null`},
		{name: "array", payload: `["slogan"]`},
		{name: "missing slot", payload: `{"leftTop":"slogan","leftMid":"safetyData","leftBottom":"announcements","centerTop":"calendar","centerBottom":"streak","rightTop":"policy"}`},
		{name: "unknown slot", payload: `{"leftTop":"slogan","leftMid":"safetyData","leftBottom":"announcements","centerTop":"calendar","centerBottom":"streak","rightTop":"policy","middle":"poster"}`},
		{name: "extra slot", payload: `{"leftTop":"slogan","leftMid":"safetyData","leftBottom":"announcements","centerTop":"calendar","centerBottom":"streak","rightTop":"policy","rightBottom":"poster","middle":"poster"}`},
		{name: "unknown kind", payload: `{"leftTop":"slogan","leftMid":"safetyData","leftBottom":"announcements","centerTop":"calendar","centerBottom":"streak","rightTop":"policy","rightBottom":"weather"}`},
		{name: "non-string kind", payload: `{"leftTop":1,"leftMid":"safetyData","leftBottom":"announcements","centerTop":"calendar","centerBottom":"streak","rightTop":"policy","rightBottom":"poster"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Assignment
			assert.Error(t, json.Unmarshal([]byte(tt.payload), &a))
			assert.Equal(t, Assignment{}, a)
		})
	}
}

func TestIsBijectionDetectsDuplicates(t *testing.T) {
	a := DefaultAssignment()
	a[LeftTop] = PanelPoster

	assert.False(t, a.IsBijection())
}
