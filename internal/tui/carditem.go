package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/chasecards/internal/catalog"
)

// cardField is one labelled line of extended card info.
type cardField struct {
	Label string
	Value string
}

// cardItem is the visual description of one list entry. It is a pure
// function of the card and whether it is active.
type cardItem struct {
	ID       string
	Name     string
	Image    catalog.ImageHandle
	Fields   []cardField
	Emphasis bool
}

// describeCard always carries name and image; an active card adds
// type, rarity, hp and attack in that order. Chase cards are
// emphasized regardless of active state.
func describeCard(card catalog.Card, active bool) cardItem {
	item := cardItem{
		ID:       card.ID,
		Name:     card.Name,
		Image:    card.Image,
		Emphasis: card.IsChase,
	}
	if active {
		item.Fields = cardFields(card)
	}
	return item
}

func cardFields(card catalog.Card) []cardField {
	return []cardField{
		{"Tipo", card.ElementType},
		{"Raridade", string(card.Rarity)},
		{"HP", card.HP},
		{"Ataque", card.AttackName},
	}
}

// renderCardItem draws item as a bordered block width cells wide.
// Focus only recolors the border.
func renderCardItem(item cardItem, art string, focused bool, width int) string {
	style := cardStyle
	title := cardTitleStyle
	if item.Emphasis {
		style = chaseCardStyle
		title = chaseTitleStyle
	}
	if focused {
		style = style.BorderForeground(colorFocus)
	}

	inner := max(1, width-style.GetHorizontalFrameSize())

	var lines []string
	if item.Emphasis {
		lines = append(lines, chaseBadgeStyle.Render("★ CHASE"))
	}
	lines = append(lines, title.Render(truncate(item.Name, inner)))
	lines = append(lines, art)
	for _, f := range item.Fields {
		lines = append(lines, fieldLine(f))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return style.Width(width - style.GetHorizontalBorderSize()).
		Align(lipgloss.Center).
		Render(body)
}

// cardArtWidth is the image width that fits inside a card of the
// given outer width.
func cardArtWidth(cardWidth int) int {
	return max(1, cardWidth-cardStyle.GetHorizontalFrameSize())
}

func fieldLine(f cardField) string {
	return fieldLabelStyle.Render(f.Label+":") + " " + fieldValueStyle.Render(f.Value)
}
