package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/chasecards/internal/fonts"
)

// FontLoader loads named font resources.
type FontLoader interface {
	Load(resources map[string]string) (*fonts.Registry, error)
}

type gatePhase int

const (
	phaseLoading gatePhase = iota
	phaseReady
)

// gate holds the content back until the font load completes. It
// moves Loading → Ready once, on success or failure alike.
type gate struct {
	phase gatePhase
	err   error
}

func (g gate) ready() bool { return g.phase == phaseReady }

// complete returns the Ready gate and true, or the unchanged gate and
// false when it was already open.
func (g gate) complete(err error) (gate, bool) {
	if g.ready() {
		return g, false
	}
	return gate{phase: phaseReady, err: err}, true
}

type fontsLoadedMsg struct {
	fonts   *fonts.Registry
	err     error
	elapsed time.Duration
}

// loadFonts is the one font request issued at mount. It is not
// retried or cancelled.
func (m Model) loadFonts() tea.Cmd {
	loader, resources := m.loader, m.cfg.Fonts
	return func() tea.Msg {
		start := time.Now()
		reg, err := loader.Load(resources)
		return fontsLoadedMsg{fonts: reg, err: err, elapsed: time.Since(start)}
	}
}

// renderLoading is the only thing drawn while the gate is closed.
func renderLoading(m *Model) string {
	content := m.spinner.View() + " " + loadingTextStyle.Render("Loading fonts...")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
