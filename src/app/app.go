// Package app provides the main application model for the Skylight landing
// page: the scrollable page, the morphing assistant indicator and the
// conversation overlay, glued together by one frame-coalesced update loop.
package app

import (
	"skylight/src/components/anchors"
	"skylight/src/components/common"
	"skylight/src/components/indicator"
	"skylight/src/components/overlay"
	"skylight/src/components/page"
	"skylight/src/services/config"
	"skylight/src/types"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Chrome: one nav bar row on top, one help bar row at the bottom.
const chromeRows = 2

// App is the top level bubbletea model.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	vp       viewport.Model
	layout   page.Layout
	registry *anchors.Registry
	ind      *indicator.Model
	ov       overlay.Model

	width  int
	height int
	ready  bool

	framePending bool
	warmedUp     bool
	lastDocked   bool
}

// New assembles the application.
func New(cfg *config.Config, backend overlay.Backend, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := anchors.NewRegistry()
	return &App{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		ind:      indicator.NewModel(registry, logger),
		ov:       overlay.New(backend, logger),
	}
}

// Init schedules the warm-up for the first position computation.
func (a *App) Init() tea.Cmd {
	return warmupCmd(a.cfg.WarmupDelay)
}

// Update handles all application messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.relayout()
		a.ready = true
		return a, a.requestFrame()

	case warmupMsg:
		a.warmedUp = true
		a.computeFrame()
		return a, nil

	case frameMsg:
		a.framePending = false
		if a.warmedUp {
			a.computeFrame()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)
	}

	// Everything else (backend replies, focus timer, spinner ticks)
	// belongs to the overlay.
	return a, a.ov.Update(msg)
}

// handleKey routes keyboard input. While the overlay is open it owns the
// keyboard apart from ctrl+c.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.ov.IsOpen() {
		cmd := a.ov.Update(msg)
		if !a.ov.IsOpen() {
			a.ind.SetOpen(false)
		}
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "a", "enter":
		return a, a.toggleOverlay()
	case "1":
		return a, a.gotoSection(page.SectionHero)
	case "2":
		return a, a.gotoSection(page.SectionPricing)
	case "3":
		return a, a.gotoSection(page.SectionProcess)
	case "4":
		return a, a.gotoSection(page.SectionContact)
	}

	return a, a.scrollWith(msg)
}

// handleMouse drives hover, click-to-toggle and wheel scrolling.
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	state := a.ind.State()
	inWidget := state.Visible && a.widgetScreenRect().Contains(msg.X, msg.Y)
	a.ind.SetHovered(inWidget)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inWidget {
		return a, a.toggleOverlay()
	}

	return a, a.scrollWith(msg)
}

// scrollWith forwards a message to the page viewport and schedules a frame
// if the scroll offset moved.
func (a *App) scrollWith(msg tea.Msg) tea.Cmd {
	before := a.vp.YOffset
	var cmd tea.Cmd
	a.vp, cmd = a.vp.Update(msg)
	if a.vp.YOffset != before {
		return tea.Batch(cmd, a.requestFrame())
	}
	return cmd
}

// gotoSection moves the viewport to a named page anchor.
func (a *App) gotoSection(name string) tea.Cmd {
	offset, ok := a.layout.SectionOffsets[name]
	if !ok {
		return nil
	}
	a.vp.SetYOffset(offset)
	return a.requestFrame()
}

// toggleOverlay opens or closes the conversation overlay.
func (a *App) toggleOverlay() tea.Cmd {
	if a.ov.IsOpen() {
		a.ov.Close()
		a.ind.SetOpen(false)
		return nil
	}
	cmd := a.ov.Open(a.ind.State(), a.pageWidth(), a.pageHeight())
	a.ind.SetOpen(true)
	return cmd
}

// relayout re-renders the page for the current width and remeasures the
// active tier's anchor. Runs on mount and on every resize.
func (a *App) relayout() {
	w := a.pageWidth()
	if w <= 0 {
		return
	}

	a.layout = page.Render(w)
	a.registry.SetAnchor(types.TierFor(w), a.layout.AnchorRect)

	a.vp.Width = w
	a.vp.Height = a.pageHeight()
	a.vp.SetContent(a.layout.Content)

	a.logger.Info("page laid out",
		zap.Int("width", a.width),
		zap.Int("height", a.height),
		zap.String("tier", types.TierFor(w).String()))
}

// computeFrame runs one position recomputation and refreshes the overlay
// placement. While the indicator is still transitioning the overlay has to
// follow it frame by frame; once docked the panel sits still and placement
// is only refreshed when docked mode flips.
func (a *App) computeFrame() {
	state, ok := a.ind.ComputeFrame(a.vp.YOffset, a.pageWidth(), a.pageHeight())
	if !ok {
		// Anchor not measured yet; skip this frame, the next one retries.
		return
	}

	dockFlipped := state.Docked != a.lastDocked
	a.lastDocked = state.Docked

	if dockFlipped || !state.Docked {
		a.ov.RecomputePlacement(state, a.pageWidth(), a.pageHeight())
	}
}

func (a *App) pageWidth() int  { return a.width }
func (a *App) pageHeight() int { return a.height - chromeRows }

// widgetScreenRect converts the indicator's page-area rectangle to screen
// coordinates (the nav bar shifts everything down one row).
func (a *App) widgetScreenRect() types.Rect {
	r := a.ind.State().Rect.Round()
	r.Top++
	return r
}

// View renders the page and composites the widget layers in stacking
// order: body, then the indicator, then (while transitioning) the hero
// headline back on top, then the overlay above everything.
func (a *App) View() string {
	if !a.ready {
		return "loading…"
	}
	if a.width < 40 || a.height < 12 {
		return lipgloss.NewStyle().
			Align(lipgloss.Center, lipgloss.Center).
			Width(a.width).
			Height(a.height).
			Render("Terminal too small for this page")
	}

	base := page.NavBar(a.width) + "\n" + a.vp.View() + "\n" + page.HelpBar(a.width)
	out := base

	state := a.ind.State()
	if a.warmedUp && state.Visible {
		widget := a.ind.View()
		rect := a.widgetScreenRect()
		out = common.Compose(out, widget, int(rect.Top), int(rect.Left))

		if !state.Docked {
			// Mid-transition the indicator stays behind the headline so
			// the hero text never gets covered.
			from := a.layout.HeadingTop - a.vp.YOffset + 1
			to := a.layout.HeadingBottom - a.vp.YOffset + 1
			from, to = clampBand(from, to, 1, a.height-2)
			if from <= to {
				out = common.RestoreRows(out, base, from, to)
			}
		}
	}

	if a.ov.IsOpen() {
		panel := a.ov.View()
		p := a.ov.Placement().Round()
		out = common.Compose(out, panel, int(p.Top)+1, int(p.Left))
	}

	return out
}

// clampBand clamps [from, to] to [lo, hi].
func clampBand(from, to, lo, hi int) (int, int) {
	if from < lo {
		from = lo
	}
	if to > hi {
		to = hi
	}
	return from, to
}
