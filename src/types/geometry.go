// geometry.go - Shared geometry primitives for layout and widget positioning.
// All coordinates are terminal cells; fractional values only exist while a
// rectangle is being interpolated and are rounded at render time.

package types

import "math"

// Rect represents an axis-aligned rectangle in cell coordinates.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Round returns the rectangle with every field rounded to the nearest cell.
func (r Rect) Round() Rect {
	return Rect{
		Top:    math.Round(r.Top),
		Left:   math.Round(r.Left),
		Width:  math.Round(r.Width),
		Height: math.Round(r.Height),
	}
}

// Contains reports whether the cell at (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= r.Left && fx < r.Left+r.Width &&
		fy >= r.Top && fy < r.Top+r.Height
}

// IsZero reports whether the rectangle is the zero value.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Tier identifies one of the three supported viewport width classes.
type Tier int

const (
	TierNarrow Tier = iota
	TierMedium
	TierWide
)

// Width breakpoints in columns, the cell-space analog of the usual
// 1024/768 pixel breakpoints.
const (
	BreakpointWide   = 120
	BreakpointMedium = 80
)

// TierFor selects the viewport tier for a terminal width.
func TierFor(width int) Tier {
	switch {
	case width >= BreakpointWide:
		return TierWide
	case width >= BreakpointMedium:
		return TierMedium
	default:
		return TierNarrow
	}
}

// String returns the tier name used in logs.
func (t Tier) String() string {
	switch t {
	case TierWide:
		return "wide"
	case TierMedium:
		return "medium"
	default:
		return "narrow"
	}
}
