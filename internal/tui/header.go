package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/chasecards/internal/nav"
)

// renderHeader produces the top bar:
//
//	Ｓｕｒｇｉｎｇ　Ｓｐａｒｋｓ　Ｃｈａｓｅ　Ｃａｒｄｓ │ Detalhes
//
// The display font is used only when it fits; otherwise, and when the
// font failed to load, the title is plain text.
func renderHeader(m *Model) string {
	route := m.stack.Current()

	var meta string
	if route.Screen != nav.ScreenHome {
		meta = headerSepStyle.Render(" │ ") + headerMetaStyle.Render(string(route.Screen))
	}

	room := m.width - headerBarStyle.GetHorizontalFrameSize() - lipgloss.Width(meta)
	title := m.fonts.Apply(FontDisplay, HeaderTitle)
	if lipgloss.Width(title) > room {
		title = HeaderTitle
	}
	title = truncate(title, max(0, room))

	content := headerBrandStyle.Render(title) + meta

	return headerBarStyle.
		Width(m.width).
		Align(lipgloss.Center).
		Render(content)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left string
	switch {
	case m.gate.err != nil:
		left = statusWarnStyle.Render(m.statusMsg)
	case m.statusMsg != "":
		left = statusStyle.Render(m.statusMsg)
	}

	bindings := m.keys.listHints()
	if m.stack.Current().Screen == nav.ScreenDetail {
		bindings = m.keys.detailHints()
	}
	right := renderHints(bindings)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		MaxHeight(1).
		Render(bar)
}

func renderHints(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts,
			hintKeyStyle.Render(h.Key)+" "+hintDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
