// Package page renders the Skylight Labs landing page content and measures
// its layout. The hero section reserves an inert region where the assistant
// indicator sits before the morph begins; its rectangle, the headline band
// and the section offsets are reported alongside the rendered text so the
// widget subsystem can position itself without re-parsing the page.
package page

import (
	"strings"

	"skylight/src/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

// Section names addressable by the nav bar.
const (
	SectionHero    = "hero"
	SectionPricing = "pricing"
	SectionProcess = "process"
	SectionContact = "contact"
)

// Hero-mode footprint of the assistant indicator per viewport tier.
var anchorSizes = map[types.Tier]struct{ width, height int }{
	types.TierWide:   {40, 5},
	types.TierMedium: {32, 5},
	types.TierNarrow: {24, 4},
}

// Layout is the rendered page plus everything the widget subsystem needs
// to know about where things ended up.
type Layout struct {
	Content        string
	Lines          int
	SectionOffsets map[string]int
	AnchorRect     types.Rect // page coordinates
	HeadingTop     int        // first row of the hero headline band
	HeadingBottom  int        // last row of the hero headline band
}

// Render lays out the whole page for a content width.
func Render(width int) Layout {
	tier := types.TierFor(width)

	layout := Layout{SectionOffsets: make(map[string]int)}
	var b strings.Builder
	row := 0

	write := func(block string) {
		b.WriteString(block)
		b.WriteString("\n")
		row += strings.Count(block, "\n") + 1
	}
	blank := func(n int) {
		for i := 0; i < n; i++ {
			write("")
		}
	}

	// --- Hero ---
	layout.SectionOffsets[SectionHero] = row
	blank(1)

	layout.HeadingTop = row
	write(renderHeadline(width, tier))
	layout.HeadingBottom = row - 1

	write(center(width, taglineStyle.Render("Automation studio for teams that ship.")))
	write(center(width, bodyStyle.Render("We design, build and run the AI workflows behind your product.")))
	blank(1)

	// Inert anchor region: the indicator renders here in hero mode.
	size := anchorSizes[tier]
	layout.AnchorRect = types.Rect{
		Top:    float64(row),
		Left:   float64((width - size.width) / 2),
		Width:  float64(size.width),
		Height: float64(size.height),
	}
	blank(size.height)
	blank(8)

	// --- Services ---
	write(center(width, sectionTitleStyle.Render("What we do")))
	blank(1)
	for _, line := range []string{
		"· Workflow automation that replaces copy-paste operations",
		"· Assistants wired into your own data and tools",
		"· Integrations between the systems you already run",
		"· Dashboards that tell you what the automations saved",
	} {
		write(center(width, bodyStyle.Render(line)))
	}
	blank(8)

	// --- Clients ---
	write(center(width, sectionTitleStyle.Render("Trusted by")))
	blank(1)
	write(center(width, bodyStyle.Render("Nordwind Logistics · Fathom Health · Copper & Pine · Arcline")))
	write(center(width, footerStyle.Render("\"They gave us back forty hours a week.\" — COO, Nordwind")))
	blank(8)

	// --- Pricing ---
	layout.SectionOffsets[SectionPricing] = row
	write(center(width, sectionTitleStyle.Render("Pricing")))
	blank(1)
	write(renderPricing(width, tier))
	blank(8)

	// --- Process ---
	layout.SectionOffsets[SectionProcess] = row
	write(center(width, sectionTitleStyle.Render("How we work")))
	blank(1)
	write(renderProcess(width))
	blank(8)

	// --- Contact ---
	layout.SectionOffsets[SectionContact] = row
	write(center(width, sectionTitleStyle.Render("Start a project")))
	blank(1)
	write(center(width, bodyStyle.Render("Tell the assistant what you want to automate, or write to us directly.")))
	write(center(width, bodyStyle.Render("We reply within one business day.")))
	blank(6)

	// --- Footer ---
	write(center(width, footerStyle.Render("Skylight Labs · hello@skylightlabs.io")))
	write(center(width, footerStyle.Render("© 2026 Skylight Labs. All rights reserved.")))
	blank(1)

	layout.Content = strings.TrimSuffix(b.String(), "\n")
	layout.Lines = row
	return layout
}

// renderHeadline renders the hero headline, falling back to plain styled
// text when the ASCII art would not fit.
func renderHeadline(width int, tier types.Tier) string {
	if tier == types.TierNarrow {
		return center(width, headlineStyle.Render("SKYLIGHT"))
	}

	art := figure.NewFigure("Skylight", "", true).String()
	art = strings.TrimRight(art, "\n")

	lines := strings.Split(art, "\n")
	for i, line := range lines {
		lines[i] = center(width, headlineStyle.Render(strings.TrimRight(line, " ")))
	}
	return strings.Join(lines, "\n")
}

type plan struct {
	name    string
	price   string
	details []string
}

var plans = []plan{
	{"Starter", "$1.9k/mo", []string{"1 workflow", "Email support", "Monthly review"}},
	{"Studio", "$4.5k/mo", []string{"5 workflows", "Shared Slack", "Weekly review"}},
	{"Partner", "Custom", []string{"Unlimited", "Dedicated team", "On-call"}},
}

// renderPricing renders the plan cards side by side, or stacked when the
// viewport is too narrow for three columns.
func renderPricing(width int, tier types.Tier) string {
	var cards []string
	for _, p := range plans {
		body := lipgloss.JoinVertical(lipgloss.Left,
			cardTitleStyle.Render(p.name),
			priceStyle.Render(p.price),
			"",
			bodyStyle.Render(strings.Join(p.details, "\n")),
		)
		cards = append(cards, cardStyle.Render(body))
	}

	if tier == types.TierNarrow {
		stacked := lipgloss.JoinVertical(lipgloss.Left, cards...)
		return centerBlock(width, stacked)
	}
	rowed := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return centerBlock(width, rowed)
}

var steps = []string{
	"Discover — one week mapping what eats your team's time",
	"Design — a plan for the workflows worth automating",
	"Build — shipped in increments you can use immediately",
	"Run — we operate, monitor and tune what we built",
}

func renderProcess(width int) string {
	var lines []string
	for i, step := range steps {
		num := stepStyle.Render(strings.Repeat(" ", 2) + string(rune('1'+i)) + ".")
		lines = append(lines, center(width, num+" "+bodyStyle.Render(step)))
	}
	return strings.Join(lines, "\n")
}

// NavBar renders the persistent top navigation bar.
func NavBar(width int) string {
	return navStyle.Width(width).Render("SKYLIGHT LABS    [1] Home  [2] Pricing  [3] Process  [4] Contact")
}

// HelpBar renders the bottom help bar.
func HelpBar(width int) string {
	return helpStyle.Width(width).Render("↑/↓ scroll · a assistant · q quit")
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func centerBlock(width int, block string) string {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > blockWidth {
			blockWidth = w
		}
	}
	pad := strings.Repeat(" ", max((width-blockWidth)/2, 0))
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
