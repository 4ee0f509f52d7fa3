// interpolate.go - Linear interpolation between the anchor and dock
// rectangles. Both endpoints must already be in viewport coordinates so a
// change in scroll offset moves the start rectangle, not the math.

package indicator

import "skylight/src/types"

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpRect interpolates every rectangle field independently.
func LerpRect(start, end types.Rect, t float64) types.Rect {
	return types.Rect{
		Top:    Lerp(start.Top, end.Top, t),
		Left:   Lerp(start.Left, end.Left, t),
		Width:  Lerp(start.Width, end.Width, t),
		Height: Lerp(start.Height, end.Height, t),
	}
}
