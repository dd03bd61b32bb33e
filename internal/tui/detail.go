package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/chasecards/internal/catalog"
	"github.com/Mr-Dark-debug/chasecards/internal/fonts"
)

// renderDetail draws the detail screen for card. Every field is shown;
// there is no toggle here.
func renderDetail(card catalog.Card, art string, reg *fonts.Registry, width int) string {
	var lines []string

	lines = append(lines, detailSectionStyle.Render(reg.Apply(FontHeading, "Detalhes")))
	lines = append(lines, "")
	if card.IsChase {
		lines = append(lines, chaseBadgeStyle.Render("★ CHASE"))
	}
	lines = append(lines, detailNameStyle.Render(card.Name))
	lines = append(lines, "")
	lines = append(lines, art)
	lines = append(lines, "")
	for _, f := range cardFields(card) {
		lines = append(lines, fieldLine(f))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

// renderDetailScreen fits the detail view into height lines. The art
// is narrowed first so every field stays on screen.
func renderDetailScreen(m *Model, card catalog.Card, height int) string {
	chrome := lipgloss.Height(renderDetail(card, "", m.fonts, m.width)) - 1
	artWidth := min(m.cfg.DetailArtWidth, max(1, m.width))
	art := m.art.fit(card.Image, artWidth, max(1, height-chrome))

	content := renderDetail(card, art, m.fonts, m.width)

	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// RenderDetail draws the detail view of card outside the interactive
// program, width columns wide.
func RenderDetail(card catalog.Card, cfg Config, images ImageSource, reg *fonts.Registry, width int) string {
	artWidth := min(cfg.DetailArtWidth, max(1, width))
	return renderDetail(card, newArtCache(images).get(card.Image, artWidth), reg, width)
}
