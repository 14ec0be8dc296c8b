package grid

import "math"

// Root scale: the base text size of the whole board, derived from the viewport.
const (
	// ReferenceViewportWidth and ReferenceViewportHeight give RootBase exactly.
	ReferenceViewportWidth  = 1920.0
	ReferenceViewportHeight = 1080.0

	RootBase     = 16.0
	RootExponent = 0.45
	// RootFloorRatio keeps tiny viewports legible.
	RootFloorRatio = 0.35
	RootMin        = 14.0
	RootMax        = 24.0
)

// Panel scale: the content multiplier of one slot, derived from its own box.
const (
	ReferencePanelWidth  = 520.0
	ReferencePanelHeight = 300.0

	PanelExponent   = 0.33
	PanelFloorRatio = 0.45
	PanelMin        = 0.82
	PanelMax        = 1.25
)

// Default bounds of ScaledLength, relative to the base length.
const (
	LengthMinFactor = 0.8
	LengthMaxFactor = 1.35
)

// RootScale maps viewport dimensions in pixels to the global base size.
// It grows sub-linearly so very large displays do not get oversized text.
func RootScale(viewportWidth, viewportHeight float64) float64 {
	r := math.Min(viewportWidth/ReferenceViewportWidth, viewportHeight/ReferenceViewportHeight)
	return clampFloat(RootBase*math.Pow(floorRatio(r, RootFloorRatio), RootExponent), RootMin, RootMax)
}

// PanelScale maps the measured box of one slot to its content scale.
func PanelScale(boxWidth, boxHeight float64) float64 {
	r := math.Min(boxWidth/ReferencePanelWidth, boxHeight/ReferencePanelHeight)
	return clampFloat(math.Pow(floorRatio(r, PanelFloorRatio), PanelExponent), PanelMin, PanelMax)
}

// ScaledLength scales base by panelScale, bounded to [0.8*base, 1.35*base].
func ScaledLength(base, panelScale float64) float64 {
	return ScaledLengthWithin(base, panelScale, base*LengthMinFactor, base*LengthMaxFactor)
}

// ScaledLengthWithin scales base by panelScale, bounded to [minLen, maxLen].
func ScaledLengthWithin(base, panelScale, minLen, maxLen float64) float64 {
	return clampFloat(base*panelScale, minLen, maxLen)
}

// floorRatio also maps NaN (zero-sized boxes divided by zero) to the floor.
func floorRatio(r, floor float64) float64 {
	if math.IsNaN(r) || r < floor {
		return floor
	}
	return r
}

func clampFloat(value, minVal, maxVal float64) float64 {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
