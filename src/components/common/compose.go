// Package common holds shared rendering utilities. The compositor splices
// a rendered layer into a background at a cell position, which is how the
// widget, page chrome and overlay get their stacking order: later splices
// paint over earlier ones, and repainting background rows puts content
// back in front of a layer.
package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose draws layer onto base with the layer's top-left corner at
// (top, left). Rows of the layer that fall outside the base are dropped.
// Both strings may contain ANSI escape sequences.
func Compose(base, layer string, top, left int) string {
	if layer == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	layerLines := strings.Split(layer, "\n")

	for i, layerLine := range layerLines {
		row := top + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = spliceLine(baseLines[row], layerLine, left)
	}

	return strings.Join(baseLines, "\n")
}

// RestoreRows copies rows [from, to] of original back into composed,
// bringing that band of the background in front of anything drawn there.
func RestoreRows(composed, original string, from, to int) string {
	composedLines := strings.Split(composed, "\n")
	originalLines := strings.Split(original, "\n")

	for row := from; row <= to; row++ {
		if row < 0 || row >= len(composedLines) || row >= len(originalLines) {
			continue
		}
		composedLines[row] = originalLines[row]
	}

	return strings.Join(composedLines, "\n")
}

// spliceLine overwrites base starting at column left with seg, keeping the
// remainder of base past the segment.
func spliceLine(base, seg string, left int) string {
	if left < 0 {
		left = 0
	}
	segWidth := ansi.StringWidth(seg)
	if segWidth == 0 {
		return base
	}

	head := ansi.Truncate(base, left, "")
	if pad := left - ansi.StringWidth(head); pad > 0 {
		head += strings.Repeat(" ", pad)
	}
	tail := ansi.TruncateLeft(base, left+segWidth, "")

	return head + seg + tail
}
