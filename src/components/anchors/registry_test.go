package anchors

import (
	"testing"

	"skylight/src/types"

	"github.com/stretchr/testify/assert"
)

func TestResolveActive_NotReady(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.ResolveActive(160)
	assert.False(t, ok, "unmeasured tier must resolve to not-ready, not a default")
}

func TestResolveActive_SelectsByViewportWidth(t *testing.T) {
	wide := types.Rect{Top: 12, Left: 60, Width: 40, Height: 5}
	medium := types.Rect{Top: 11, Left: 24, Width: 32, Height: 5}
	narrow := types.Rect{Top: 10, Left: 18, Width: 24, Height: 4}

	reg := NewRegistry()
	reg.SetAnchor(types.TierWide, wide)
	reg.SetAnchor(types.TierMedium, medium)
	reg.SetAnchor(types.TierNarrow, narrow)

	cases := []struct {
		width int
		want  types.Rect
	}{
		{200, wide},
		{120, wide},
		{119, medium},
		{80, medium},
		{79, narrow},
		{40, narrow},
	}
	for _, tc := range cases {
		got, ok := reg.ResolveActive(tc.width)
		assert.True(t, ok, "width=%d", tc.width)
		assert.Equal(t, tc.want, got, "width=%d", tc.width)
	}
}

func TestSetAnchor_RemeasureReplaces(t *testing.T) {
	reg := NewRegistry()
	reg.SetAnchor(types.TierWide, types.Rect{Top: 12, Left: 60, Width: 40, Height: 5})
	updated := types.Rect{Top: 14, Left: 58, Width: 40, Height: 5}
	reg.SetAnchor(types.TierWide, updated)

	got, ok := reg.ResolveActive(160)
	assert.True(t, ok)
	assert.Equal(t, updated, got)
}
