package layout

import (
	"math"

	"safety-board/grid"
)

// Detail holds the content density a panel renderer should use for a slot,
// derived from the slot's measured panel scale.
type Detail struct {
	CompactTitle bool // short title only (scale < CompactTitleScale)
	ShowSubtitle bool // secondary line under the title (scale >= SubtitleScale)
	ShowFooter   bool // footer line at the bottom of the panel (scale >= FooterScale)
	BodyLines    int  // target number of body lines
}

// Thresholds for panel detail
const (
	CompactTitleScale = 0.9
	SubtitleScale     = 0.95
	FooterScale       = 1.1

	BaseBodyLines = 4
	MinBodyLines  = 2
	MaxBodyLines  = 6
)

// ComputeDetail calculates which panel features to show at panelScale.
func ComputeDetail(panelScale float64) Detail {
	lines := grid.ScaledLengthWithin(BaseBodyLines, panelScale, MinBodyLines, MaxBodyLines)
	return Detail{
		CompactTitle: panelScale < CompactTitleScale,
		ShowSubtitle: panelScale >= SubtitleScale,
		ShowFooter:   panelScale >= FooterScale,
		BodyLines:    int(math.Round(lines)),
	}
}

// IsCompactMode returns true if the panel should use compact rendering.
func (d Detail) IsCompactMode() bool {
	return d.CompactTitle
}
