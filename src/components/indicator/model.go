// model.go - Indicator state and the per-frame position computation.

package indicator

import (
	"skylight/src/types"

	"go.uber.org/zap"
)

// Dock geometry in cells.
const (
	DockWidth   = 16
	DockHeight  = 3
	edgePadding = 2

	// Bottom clearance keeps the docked widget clear of the help bar,
	// which takes more room on narrower layouts.
	clearanceWide   = 1
	clearanceNarrow = 3
)

// State represents the indicator at one rendered frame.
//
// Visible is a one-way gate: it flips to true after the first successful
// position computation and stays true. Docked is re-derived from progress
// on every frame. The two are deliberately distinct fields.
type State struct {
	Rect    types.Rect
	Docked  bool
	Visible bool
	Hovered bool
	Open    bool
}

// DockRect computes the widget's final resting rectangle for the current
// viewport, in viewport coordinates.
func DockRect(viewportWidth, viewportHeight int, tier types.Tier) types.Rect {
	clearance := clearanceWide
	if tier != types.TierWide {
		clearance = clearanceNarrow
	}
	return types.Rect{
		Top:    float64(viewportHeight - clearance - DockHeight),
		Left:   float64(viewportWidth - edgePadding - DockWidth),
		Width:  DockWidth,
		Height: DockHeight,
	}
}

// AnchorResolver yields the hero anchor rectangle for a viewport width.
type AnchorResolver interface {
	ResolveActive(viewportWidth int) (types.Rect, bool)
}

// Model owns the indicator state and recomputes it from scroll input.
type Model struct {
	state    State
	registry AnchorResolver
	logger   *zap.Logger
}

// NewModel creates an indicator bound to an anchor registry.
func NewModel(registry AnchorResolver, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{registry: registry, logger: logger}
}

// State returns the most recently computed state.
func (m *Model) State() State {
	return m.state
}

// SetHovered updates the hover flag.
func (m *Model) SetHovered(hovered bool) {
	m.state.Hovered = hovered
}

// SetOpen updates the overlay-open flag mirrored on the indicator.
func (m *Model) SetOpen(open bool) {
	m.state.Open = open
}

// ComputeFrame recomputes the indicator rectangle for the current scroll
// offset and viewport. It returns the new state and whether the frame was
// computed; false means the active anchor is not measured yet and the
// frame's update is skipped, not failed.
func (m *Model) ComputeFrame(scrollY, viewportWidth, viewportHeight int) (State, bool) {
	anchor, ok := m.registry.ResolveActive(viewportWidth)
	if !ok {
		return m.state, false
	}

	// Anchor is in page coordinates; subtract the scroll offset so both
	// interpolation endpoints share the viewport frame.
	start := anchor
	start.Top -= float64(scrollY)

	tier := types.TierFor(viewportWidth)
	end := DockRect(viewportWidth, viewportHeight, tier)

	t := Progress(float64(scrollY), float64(viewportHeight))

	m.state.Rect = LerpRect(start, end, t)
	m.state.Docked = Docked(t)
	if !m.state.Visible {
		m.state.Visible = true
		m.logger.Info("indicator visible",
			zap.String("tier", tier.String()),
			zap.Float64("t", t))
	}
	return m.state, true
}
