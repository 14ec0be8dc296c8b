package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootScaleReference(t *testing.T) {
	assert.Equal(t, 16.0, RootScale(1920, 1080))
}

func TestRootScaleBounds(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
		want   float64
	}{
		{name: "tiny viewport hits floor", width: 320, height: 200, want: 14},
		{name: "zero viewport", width: 0, height: 0, want: 14},
		{name: "huge viewport hits ceiling", width: 20000, height: 20000, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RootScale(tt.width, tt.height))
		})
	}
}

func TestRootScaleMonotone(t *testing.T) {
	prev := RootScale(0, 1080)
	for w := 0.0; w <= 8000; w += 37 {
		got := RootScale(w, 1080)
		assert.GreaterOrEqual(t, got, prev, "width %v", w)
		assert.GreaterOrEqual(t, got, RootMin)
		assert.LessOrEqual(t, got, RootMax)
		prev = got
	}

	prev = RootScale(1920, 0)
	for h := 0.0; h <= 8000; h += 29 {
		got := RootScale(1920, h)
		assert.GreaterOrEqual(t, got, prev, "height %v", h)
		prev = got
	}
}

func TestRootScaleUsesSmallerRatio(t *testing.T) {
	// A very wide but short display is limited by its height.
	assert.Equal(t, RootScale(1920, 540), RootScale(7680, 540))
}

func TestPanelScaleReference(t *testing.T) {
	assert.Equal(t, 1.0, PanelScale(520, 300))
}

func TestPanelScaleBounds(t *testing.T) {
	for _, box := range [][2]float64{
		{0, 0}, {10, 10}, {260, 150}, {520, 300}, {1040, 600}, {5000, 5000}, {520, 10},
	} {
		got := PanelScale(box[0], box[1])
		assert.GreaterOrEqual(t, got, PanelMin, "box %v", box)
		assert.LessOrEqual(t, got, PanelMax, "box %v", box)
	}

	assert.Equal(t, PanelMin, PanelScale(0, 0))
	assert.Equal(t, PanelMax, PanelScale(5000, 5000))
}

func TestPanelScaleShrinksWithBox(t *testing.T) {
	big := PanelScale(520, 300)
	small := PanelScale(400, 300)

	assert.Less(t, small, big)
}

func TestScaledLength(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		scale float64
		want  float64
	}{
		{name: "identity", base: 10, scale: 1, want: 10},
		{name: "within bounds", base: 10, scale: 1.2, want: 12},
		{name: "clamped low", base: 10, scale: 0.5, want: 8},
		{name: "clamped high", base: 10, scale: 2, want: 13.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScaledLength(tt.base, tt.scale), 1e-9)
		})
	}
}

func TestScaledLengthWithin(t *testing.T) {
	assert.Equal(t, 12.0, ScaledLengthWithin(10, 2, 5, 12))
	assert.Equal(t, 9.0, ScaledLengthWithin(10, 0.1, 9, 12))
	assert.InDelta(t, 11.0, ScaledLengthWithin(10, 1.1, 9, 12), 1e-9)
}
