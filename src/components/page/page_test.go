package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_MeasuresAnchorPerTier(t *testing.T) {
	cases := []struct {
		width      int
		wantWidth  float64
		wantHeight float64
	}{
		{160, 40, 5},
		{100, 32, 5},
		{60, 24, 4},
	}
	for _, tc := range cases {
		layout := Render(tc.width)
		assert.Equal(t, tc.wantWidth, layout.AnchorRect.Width, "width=%d", tc.width)
		assert.Equal(t, tc.wantHeight, layout.AnchorRect.Height, "width=%d", tc.width)
		assert.Greater(t, layout.AnchorRect.Top, 0.0, "anchor sits below the headline")
		assert.GreaterOrEqual(t, layout.AnchorRect.Left, 0.0)
	}
}

func TestRender_SectionOffsetsAreOrdered(t *testing.T) {
	layout := Render(120)

	hero := layout.SectionOffsets[SectionHero]
	pricing := layout.SectionOffsets[SectionPricing]
	process := layout.SectionOffsets[SectionProcess]
	contact := layout.SectionOffsets[SectionContact]

	assert.Equal(t, 0, hero)
	assert.Less(t, hero, pricing)
	assert.Less(t, pricing, process)
	assert.Less(t, process, contact)
	assert.Less(t, contact, layout.Lines)
}

func TestRender_LineCountMatchesContent(t *testing.T) {
	for _, width := range []int{60, 100, 160} {
		layout := Render(width)
		lines := strings.Split(layout.Content, "\n")
		assert.Equal(t, layout.Lines, len(lines), "width=%d", width)
	}
}

func TestRender_HeadlineBandCoversAnchorGap(t *testing.T) {
	layout := Render(160)

	require.LessOrEqual(t, layout.HeadingTop, layout.HeadingBottom)
	assert.Less(t, float64(layout.HeadingBottom), layout.AnchorRect.Top,
		"anchor region starts below the headline band")
}

func TestRender_AnchorRegionIsBlank(t *testing.T) {
	layout := Render(100)
	lines := strings.Split(layout.Content, "\n")

	top := int(layout.AnchorRect.Top)
	for row := top; row < top+int(layout.AnchorRect.Height); row++ {
		require.Less(t, row, len(lines))
		assert.Equal(t, "", strings.TrimSpace(lines[row]), "row %d", row)
	}
}
