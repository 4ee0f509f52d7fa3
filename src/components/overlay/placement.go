// placement.go - Overlay placement as a function of the indicator's current
// rectangle. Recomputed only when the overlay opens or docked mode flips,
// never per animation frame.

package overlay

import (
	"skylight/src/components/indicator"
	"skylight/src/types"
)

// Panel geometry in cells.
const (
	PanelWidth  = 46
	PanelHeight = 16

	// The panel never renders above or left of these offsets, which keeps
	// it on-screen on small viewports.
	minTop  = 1
	minLeft = 1

	dockGap = 1
)

// Placement computes the overlay rectangle for the current indicator state
// and viewport size.
func Placement(ind indicator.State, viewportWidth, viewportHeight int) types.Rect {
	w := float64(min(PanelWidth, viewportWidth-2*minLeft))
	h := float64(min(PanelHeight, viewportHeight-2*minTop))

	// No indicator rectangle yet: fall back to a bottom-right default.
	if !ind.Visible {
		return clampRect(types.Rect{
			Top:    float64(viewportHeight) - h - 3,
			Left:   float64(viewportWidth) - w - 2,
			Width:  w,
			Height: h,
		}, viewportWidth, viewportHeight)
	}

	rect := ind.Rect.Round()

	if ind.Docked {
		// Up and left of the dock corner, right edges aligned.
		return clampRect(types.Rect{
			Top:    rect.Top - h - dockGap,
			Left:   rect.Left + rect.Width - w,
			Width:  w,
			Height: h,
		}, viewportWidth, viewportHeight)
	}

	// Hero/transition mode: to the left of the indicator, vertically
	// centered on it.
	return clampRect(types.Rect{
		Top:    rect.Top + rect.Height/2 - h/2,
		Left:   rect.Left - w - 2,
		Width:  w,
		Height: h,
	}, viewportWidth, viewportHeight)
}

func clampRect(r types.Rect, viewportWidth, viewportHeight int) types.Rect {
	maxTop := float64(viewportHeight) - r.Height - 1
	maxLeft := float64(viewportWidth) - r.Width - 1
	if r.Top > maxTop {
		r.Top = maxTop
	}
	if r.Left > maxLeft {
		r.Left = maxLeft
	}
	if r.Top < minTop {
		r.Top = minTop
	}
	if r.Left < minLeft {
		r.Left = minLeft
	}
	return r
}
