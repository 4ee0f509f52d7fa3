package overlay

import (
	"testing"

	"skylight/src/components/indicator"
	"skylight/src/types"

	"github.com/stretchr/testify/assert"
)

func TestPlacement_DockedAnchorsUpLeftOfDock(t *testing.T) {
	vw, vh := 160, 45
	dock := indicator.DockRect(vw, vh, types.TierWide)
	ind := indicator.State{Rect: dock, Docked: true, Visible: true}

	p := Placement(ind, vw, vh)

	assert.Equal(t, dock.Top-float64(PanelHeight)-1, p.Top, "panel sits above the dock")
	assert.Equal(t, dock.Left+dock.Width-float64(PanelWidth), p.Left, "right edges align")
}

func TestPlacement_TransitionCentersLeftOfIndicator(t *testing.T) {
	ind := indicator.State{
		Rect:    types.Rect{Top: 18, Left: 100, Width: 40, Height: 5},
		Visible: true,
	}

	p := Placement(ind, 160, 45)

	assert.Equal(t, 100-float64(PanelWidth)-2, p.Left)
	assert.Equal(t, 18+2.5-float64(PanelHeight)/2, p.Top)
}

func TestPlacement_ClampsToMinimumOffsets(t *testing.T) {
	// An indicator near the top-left corner would push the panel
	// off-screen; it clamps instead.
	ind := indicator.State{
		Rect:    types.Rect{Top: 1, Left: 4, Width: 24, Height: 4},
		Visible: true,
	}

	p := Placement(ind, 60, 24)

	assert.GreaterOrEqual(t, p.Top, 1.0)
	assert.GreaterOrEqual(t, p.Left, 1.0)
	assert.LessOrEqual(t, p.Left+p.Width, 60.0)
	assert.LessOrEqual(t, p.Top+p.Height, 24.0)
}

func TestPlacement_NoIndicatorFallsBackBottomRight(t *testing.T) {
	p := Placement(indicator.State{}, 160, 45)

	assert.Equal(t, float64(160)-p.Width-2, p.Left)
	assert.Equal(t, float64(45)-p.Height-3, p.Top)
}

func TestPlacement_ShrinksOnSmallViewports(t *testing.T) {
	ind := indicator.State{
		Rect:    types.Rect{Top: 5, Left: 10, Width: 24, Height: 4},
		Visible: true,
	}

	p := Placement(ind, 44, 14)

	assert.LessOrEqual(t, p.Width, 42.0)
	assert.LessOrEqual(t, p.Height, 12.0)
}
