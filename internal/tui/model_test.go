package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/chasecards/internal/assets"
	"github.com/Mr-Dark-debug/chasecards/internal/fonts"
	"github.com/Mr-Dark-debug/chasecards/internal/nav"
	"github.com/Mr-Dark-debug/chasecards/internal/selection"
)

func TestLoadingViewUntilFontsArrive(t *testing.T) {
	m := newTestModel(t, selection.PolicyExpand, fonts.NewLoader(assets.FS), 100, 200)

	view := m.View()
	assert.Contains(t, view, "Loading fonts...")
	assert.NotContains(t, view, "Charizard ex")

	// input is held while loading
	m = update(t, m, keyMsg("down"))
	m = update(t, m, keyMsg("enter"))
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, selection.Collapsed(), m.sel)

	m = update(t, m, m.loadFonts()())
	view = m.View()
	assert.NotContains(t, view, "Loading fonts...")
	assert.Contains(t, view, "Charizard ex")
	assert.Contains(t, view, "Ｓｕｒｇｉｎｇ　Ｓｐａｒｋｓ")
	assert.Contains(t, view, "5 cards")
}

func TestQuitWhileLoading(t *testing.T) {
	m := newTestModel(t, selection.PolicyExpand, &fakeLoader{}, 80, 40)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestFontFailureFallsBackToPlainText(t *testing.T) {
	loader := &fakeLoader{err: &fonts.FontLoadError{Name: FontDisplay, Path: "fonts/missing.font", Err: errors.New("boom")}}
	m := newTestModel(t, selection.PolicyExpand, loader, 100, 200)
	m = update(t, m, m.loadFonts()())

	require.True(t, m.gate.ready())
	assert.Equal(t, 1, loader.calls)

	view := m.View()
	assert.Contains(t, view, HeaderTitle)
	assert.Contains(t, view, "Fonts unavailable")
	assert.Contains(t, view, "Charizard ex")
}

func TestLateFontResultIgnored(t *testing.T) {
	m := newTestModel(t, selection.PolicyExpand, &fakeLoader{err: errors.New("boom")}, 100, 200)
	m = update(t, m, m.loadFonts()())
	require.True(t, m.gate.ready())

	reg, err := fonts.NewLoader(assets.FS).Load(DefaultConfig().Fonts)
	require.NoError(t, err)
	m = update(t, m, fontsLoadedMsg{fonts: reg})

	assert.Nil(t, m.fonts)
	assert.Error(t, m.gate.err)
	assert.Contains(t, m.View(), "Fonts unavailable")
}

func TestExpandTogglesCard(t *testing.T) {
	m := readyModel(t, selection.PolicyExpand)
	assert.NotContains(t, m.View(), "Explosão Ígnea")

	m = update(t, m, keyMsg("enter"))
	assert.Equal(t, selection.ExpandedFor("1"), m.sel)
	view := m.View()
	assertInOrder(t, view, "Charizard ex", "Fogo", "Chase", "280", "Explosão Ígnea")
	assert.Contains(t, view, "Charizard ex expanded")

	m = update(t, m, keyMsg("enter"))
	assert.Equal(t, selection.Collapsed(), m.sel)
	assert.NotContains(t, m.View(), "Explosão Ígnea")
}

func TestExpandIsExclusive(t *testing.T) {
	m := readyModel(t, selection.PolicyExpand)
	m = update(t, m, keyMsg("enter"))
	for i := 0; i < 4; i++ {
		m = update(t, m, keyMsg("down"))
	}
	m = update(t, m, keyMsg("enter"))

	assert.Equal(t, selection.ExpandedFor("4"), m.sel)
	view := m.View()
	assert.Contains(t, view, "Explosão Psíquica")
	assert.NotContains(t, view, "Explosão Ígnea")
}

func TestEscCollapsesActiveCard(t *testing.T) {
	m := readyModel(t, selection.PolicyExpand)
	m = update(t, m, keyMsg("enter"))
	require.Equal(t, selection.ExpandedFor("1"), m.sel)

	m = update(t, m, keyMsg("esc"))
	assert.Equal(t, selection.Collapsed(), m.sel)
	assert.Equal(t, nav.ScreenHome, m.stack.Current().Screen)
}

func TestCursorClamps(t *testing.T) {
	m := readyModel(t, selection.PolicyExpand)
	m = update(t, m, keyMsg("up"))
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		m = update(t, m, keyMsg("j"))
	}
	assert.Equal(t, len(m.cards)-1, m.cursor)
}

func TestNavigateOpensDetail(t *testing.T) {
	m := readyModel(t, selection.PolicyNavigate)

	for i := 0; i < 3; i++ {
		m = update(t, m, keyMsg("down"))
	}
	m = update(t, m, keyMsg("enter"))

	route := m.stack.Current()
	require.Equal(t, nav.ScreenDetail, route.Screen)
	want, ok := m.catalog.ByID("3")
	require.True(t, ok)
	assert.Equal(t, want, route.Params.Card)

	view := m.View()
	assertInOrder(t, view, "Detalhes", "Blastoise", "Água", "Rara", "120", "Jato D'água")
	assert.NotContains(t, view, "Charizard ex")

	m = update(t, m, keyMsg("esc"))
	assert.Equal(t, nav.ScreenHome, m.stack.Current().Screen)
	view = m.View()
	assert.Contains(t, view, "Charizard ex")
	assert.NotContains(t, view, "Jato D'água")
}

func TestNavigateListNeverExpands(t *testing.T) {
	m := readyModel(t, selection.PolicyNavigate)
	m = update(t, m, keyMsg("enter"))
	m = update(t, m, keyMsg("esc"))

	for _, card := range m.cards {
		assert.False(t, m.sel.IsActive(card.ID))
	}
	assert.NotContains(t, m.View(), "Explosão Ígnea")
}

func TestMouseClickPressesCard(t *testing.T) {
	m := readyModel(t, selection.PolicyExpand)
	layout := layoutCardList(&m, m.bodyHeight())
	require.Len(t, layout.spans, 5)

	// header bar is one line
	click := tea.MouseMsg{
		X:      layout.left + 2,
		Y:      1 + layout.spans[2].top + 1,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	}
	m = update(t, m, click)

	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, selection.ExpandedFor("2"), m.sel)
	assert.Contains(t, m.View(), "Choque do Trovão")
}

func TestMouseIgnoredWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mouse = false
	m := NewModel(testCatalog(t), cfg, fonts.NewLoader(assets.FS), assets.NewImages(assets.FS))
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 200})
	m = update(t, m, m.loadFonts()())

	layout := layoutCardList(&m, m.bodyHeight())
	m = update(t, m, tea.MouseMsg{
		X:      layout.left + 2,
		Y:      1 + layout.spans[1].top + 1,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	})
	assert.Equal(t, selection.Collapsed(), m.sel)
}

func TestScrollKeepsFocusedCardVisible(t *testing.T) {
	m := newTestModel(t, selection.PolicyExpand, fonts.NewLoader(assets.FS), 80, 30)
	m = update(t, m, m.loadFonts()())

	assert.NotContains(t, m.View(), "Gardevoir")
	for i := 0; i < 4; i++ {
		m = update(t, m, keyMsg("down"))
	}
	view := m.View()
	assert.Contains(t, view, "Gardevoir")
	assert.Contains(t, view, "5/5 (100%)")
}

// At 80x24 the art shrinks so every field of the pressed card is on
// screen.
func TestExpandFitsStandardTerminal(t *testing.T) {
	m := newTestModel(t, selection.PolicyExpand, fonts.NewLoader(assets.FS), 80, 24)
	m = update(t, m, m.loadFonts()())

	m = update(t, m, keyMsg("enter"))
	require.Equal(t, selection.ExpandedFor("1"), m.sel)
	view := m.View()
	assertInOrder(t, view, "Charizard ex", "▀", "Tipo", "Fogo", "Chase", "280", "Explosão Ígnea")
	assert.Equal(t, 24, lipgloss.Height(view))

	for i := 0; i < 4; i++ {
		m = update(t, m, keyMsg("down"))
	}
	m = update(t, m, keyMsg("enter"))
	require.Equal(t, selection.ExpandedFor("4"), m.sel)
	assertInOrder(t, m.View(), "Gardevoir", "▀", "Psíquico", "Incomum", "90", "Explosão Psíquica")
}

func TestDetailFitsStandardTerminal(t *testing.T) {
	m := newTestModel(t, selection.PolicyNavigate, fonts.NewLoader(assets.FS), 80, 24)
	m = update(t, m, m.loadFonts()())

	for i := 0; i < 3; i++ {
		m = update(t, m, keyMsg("down"))
	}
	m = update(t, m, keyMsg("enter"))
	require.Equal(t, nav.ScreenDetail, m.stack.Current().Screen)

	view := m.View()
	assertInOrder(t, view, "Blastoise", "▀", "Tipo", "Água", "Rara", "120", "Jato D'água")
	assert.Equal(t, 24, lipgloss.Height(view))
}

func TestUpdateLeavesEarlierModelUntouched(t *testing.T) {
	before := readyModel(t, selection.PolicyExpand)
	after := update(t, before, keyMsg("enter"))

	assert.Equal(t, selection.ExpandedFor("1"), after.sel)
	assert.Equal(t, selection.Collapsed(), before.sel)
	assert.NotContains(t, before.View(), "Explosão Ígnea")

	home := readyModel(t, selection.PolicyNavigate)
	detail := update(t, home, keyMsg("enter"))
	back := update(t, detail, keyMsg("esc"))

	assert.Equal(t, nav.ScreenHome, home.stack.Current().Screen)
	assert.Equal(t, nav.ScreenDetail, detail.stack.Current().Screen)
	assert.Equal(t, nav.ScreenHome, back.stack.Current().Screen)
	assert.Contains(t, detail.View(), "Explosão Ígnea")
}
