// progress.go - Scroll progress math. Everything here is a pure function of
// the instantaneous scroll offset and viewport height; no history, no
// hysteresis, so a frame can always be recomputed from current inputs.

package indicator

// scrollSpan is the fraction of the viewport height over which the morph
// completes: scrolling 60% of one screen takes the widget from its hero
// anchor to the dock.
const scrollSpan = 0.6

// DockThreshold is the progress value above which the widget behaves as a
// docked corner icon. Derived every frame, never latched.
const DockThreshold = 0.8

// RawProgress maps a scroll offset to [0, 1] linearly over the scroll span.
func RawProgress(scrollY, viewportHeight float64) float64 {
	if viewportHeight <= 0 {
		return 0
	}
	raw := scrollY / (viewportHeight * scrollSpan)
	if raw < 0 {
		return 0
	}
	if raw > 1 {
		return 1
	}
	return raw
}

// Smoothstep eases a raw progress value. Its first derivative is zero at
// both ends, so the widget has no visible velocity jump when the morph
// starts or finishes.
func Smoothstep(x float64) float64 {
	return x * x * (3 - 2*x)
}

// Progress returns the eased transition value for a scroll position.
func Progress(scrollY, viewportHeight float64) float64 {
	return Smoothstep(RawProgress(scrollY, viewportHeight))
}

// Docked reports whether a progress value puts the widget in docked mode.
func Docked(t float64) bool {
	return t > DockThreshold
}
