// Package anchors tracks the widget's hero-mode anchor rectangles, one per
// viewport tier, measured from the rendered page layout. Anchors carry no
// behavior; they are start positions for the indicator's morph.
package anchors

import "skylight/src/types"

// Registry holds the measured anchor rectangle for each viewport tier.
// Rectangles are in page coordinates (rows from the top of the page
// content, not the screen).
type Registry struct {
	rects map[types.Tier]types.Rect
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rects: make(map[types.Tier]types.Rect)}
}

// SetAnchor records the measured rectangle for a tier. Called by the page
// layout pass on mount and after every resize.
func (r *Registry) SetAnchor(tier types.Tier, rect types.Rect) {
	r.rects[tier] = rect
}

// ResolveActive returns the anchor rectangle for the tier matching the
// current viewport width. The second return is false while the layout for
// that tier has not been measured yet; callers treat this as "not ready",
// never as an error.
func (r *Registry) ResolveActive(viewportWidth int) (types.Rect, bool) {
	rect, ok := r.rects[types.TierFor(viewportWidth)]
	return rect, ok
}
