package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Mr-Dark-debug/chasecards/internal/catalog"
	"github.com/Mr-Dark-debug/chasecards/internal/fonts"
	"github.com/Mr-Dark-debug/chasecards/internal/nav"
	"github.com/Mr-Dark-debug/chasecards/internal/selection"
	"github.com/Mr-Dark-debug/chasecards/pkg/timeutil"
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for chasecards.
// State is organized by concern; rendering is delegated
// to component functions in separate files.
type Model struct {
	cfg    Config
	loader FontLoader
	keys   keyMap

	// Data
	catalog *catalog.Catalog
	cards   []catalog.Card
	art     *artCache
	fonts   *fonts.Registry

	// Screen state. Held by value so an Update never changes a Model
	// that was already returned.
	screenID string
	stack    nav.Stack
	sel      selection.State

	// UI state
	gate    gate
	spinner spinner.Model
	cursor  int
	width   int
	height  int

	// Status
	statusMsg string
}

// NewModel creates the TUI over cat. Card art is converted up front
// from images; fonts are requested by Init.
func NewModel(cat *catalog.Catalog, cfg Config, loader FontLoader, images ImageSource) Model {
	cards := cat.GetAll()
	art := newArtCache(images)
	art.warm(cards, cardArtWidth(cfg.CardWidth), cfg.DetailArtWidth)

	m := Model{
		cfg:      cfg,
		loader:   loader,
		keys:     newKeyMap(cfg.Variant),
		catalog:  cat,
		cards:    cards,
		art:      art,
		screenID: uuid.NewString(),
		stack:    *nav.NewStack(),
		sel:      selection.Collapsed(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(spinnerStyle),
		),
		statusMsg: "Loading fonts...",
	}

	log.Printf("[INFO] Screen %s mounted (variant %s, %d cards)", m.screenID, cfg.Variant, len(cards))
	return m
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadFonts())
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.gate.ready() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fontsLoadedMsg:
		return m.handleFontsLoaded(msg), nil

	case tea.KeyMsg:
		if !m.gate.ready() {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.gate.ready() || !m.cfg.Mouse {
			return m, nil
		}
		return m.handleMouse(msg), nil
	}

	return m, nil
}

func (m Model) handleFontsLoaded(msg fontsLoadedMsg) Model {
	g, opened := m.gate.complete(msg.err)
	if !opened {
		log.Printf("[DEBUG] Screen %s: ignoring late font load result", m.screenID)
		return m
	}
	m.gate = g

	if msg.err != nil {
		log.Printf("[WARN] Font load failed, using plain text: %v", msg.err)
		m.statusMsg = fmt.Sprintf("Fonts unavailable: %v", msg.err)
		return m
	}

	m.fonts = msg.fonts
	log.Printf("[INFO] Loaded %d fonts in %s", msg.fonts.Len(), timeutil.FormatDuration(msg.elapsed))
	m.statusMsg = fmt.Sprintf("%d cards", len(m.cards))
	return m
}

// handleKey routes keyboard input based on the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// ── Detail screen ──

	if m.stack.Current().Screen == nav.ScreenDetail {
		if key.Matches(msg, m.keys.Back) {
			m.stack.Back()
			m.statusMsg = fmt.Sprintf("%d cards", len(m.cards))
		}
		return m, nil
	}

	// ── Card list ──

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, 0, len(m.cards)-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, 0, len(m.cards)-1)
	case key.Matches(msg, m.keys.Press):
		m = m.press(m.cursor)
	case key.Matches(msg, m.keys.Back):
		if id, active := m.sel.ActiveID(); active {
			m = m.pressID(id)
		}
	}
	return m, nil
}

// handleMouse presses the card under a left click; the wheel moves focus.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.stack.Current().Screen != nav.ScreenHome {
		return m
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.cursor = clamp(m.cursor-1, 0, len(m.cards)-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.cursor = clamp(m.cursor+1, 0, len(m.cards)-1)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		headerHeight := lipgloss.Height(renderHeader(&m))
		if i := cardAt(&m, msg.X, msg.Y-headerHeight, m.bodyHeight()); i >= 0 {
			m.cursor = i
			m = m.press(i)
		}
	}
	return m
}

func (m Model) press(i int) Model {
	if i < 0 || i >= len(m.cards) {
		return m
	}
	return m.pressID(m.cards[i].ID)
}

// pressID runs the configured press policy against this copy's state.
func (m Model) pressID(id string) Model {
	var (
		ctrl selection.Controller
		ex   *selection.Expand
	)
	if m.cfg.Variant == selection.PolicyNavigate {
		ctrl = selection.NewNavigate(m.catalog, &m.stack)
	} else {
		ex = selection.NewExpandWith(m.catalog, m.sel)
		ctrl = ex
	}

	if err := ctrl.Press(id); err != nil {
		log.Printf("[ERROR] Screen %s: %v", m.screenID, err)
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m
	}

	card, _ := m.catalog.ByID(id)
	if ex == nil {
		log.Printf("[DEBUG] Screen %s: navigated to %s for card %s", m.screenID, nav.ScreenDetail, id)
		m.statusMsg = card.Name
		return m
	}

	m.sel = ex.State()
	log.Printf("[DEBUG] Screen %s: %s", m.screenID, m.sel)
	if m.sel.IsActive(id) {
		m.statusMsg = card.Name + " expanded"
	} else {
		m.statusMsg = card.Name + " collapsed"
	}
	return m
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.gate.ready() {
		return renderLoading(&m)
	}
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)
	bodyHeight := m.bodyHeight()

	var body string
	route := m.stack.Current()
	if route.Screen == nav.ScreenDetail {
		body = renderDetailScreen(&m, route.Params.Card, bodyHeight)
	} else {
		body = renderCardList(&m, bodyHeight)
	}

	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// bodyHeight is the space between the header and footer bars.
func (m Model) bodyHeight() int {
	return max(1, m.height-2)
}
