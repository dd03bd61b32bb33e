package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// span is the inclusive line range one card occupies in the list.
type span struct {
	top, bottom int
}

// listLayout is the full, unscrolled card list.
type listLayout struct {
	lines []string
	spans []span
	left  int // column where cards start
}

// layoutCardList stacks every catalog card, in order, centered in
// width columns with one blank line between cards. Each card's art is
// narrowed until the whole card fits a body of the given height, with
// one line kept for the scroll indicator.
func layoutCardList(m *Model, height int) listLayout {
	cardWidth := m.cfg.CardWidth
	artWidth := cardArtWidth(cardWidth)
	rows := max(1, height-1)

	layout := listLayout{left: max(0, (m.width-cardWidth)/2)}
	for i, card := range m.cards {
		if i > 0 {
			layout.lines = append(layout.lines, "")
		}
		item := describeCard(card, m.sel.IsActive(card.ID))
		focused := i == m.cursor

		chrome := lipgloss.Height(renderCardItem(item, "", focused, cardWidth)) - 1
		art := m.art.fit(card.Image, artWidth, max(1, rows-chrome))

		block := renderCardItem(item, art, focused, cardWidth)
		block = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)

		top := len(layout.lines)
		layout.lines = append(layout.lines, strings.Split(block, "\n")...)
		layout.spans = append(layout.spans, span{top: top, bottom: len(layout.lines) - 1})
	}
	return layout
}

// scrollStart returns the first visible line so the focused card is
// on screen. A card taller than the viewport shows its top.
func scrollStart(layout listLayout, cursor, height int) int {
	if cursor < 0 || cursor >= len(layout.spans) || height <= 0 {
		return 0
	}
	s := layout.spans[cursor]
	start := 0
	if s.bottom >= height {
		start = s.bottom - height + 1
	}
	if s.top < start {
		start = s.top
	}
	return start
}

// visibleHeight is the number of card lines shown in a body of the
// given height; one line is kept for the scroll indicator when the
// list overflows.
func visibleHeight(layout listLayout, height int) int {
	if len(layout.lines) > height {
		return max(1, height-1)
	}
	return height
}

// renderCardList renders the scrolled list into height lines.
func renderCardList(m *Model, height int) string {
	if len(m.cards) == 0 {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			hintDescStyle.Render("No cards."))
	}

	layout := layoutCardList(m, height)
	visible := visibleHeight(layout, height)
	start := scrollStart(layout, m.cursor, visible)
	end := min(start+visible, len(layout.lines))

	lines := append([]string(nil), layout.lines[start:end]...)

	if len(layout.lines) > height {
		pct := 0
		if len(m.cards) > 1 {
			pct = m.cursor * 100 / (len(m.cards) - 1)
		}
		indicator := scrollIndicatorStyle.Render(
			fmt.Sprintf(" %d/%d (%d%%)", m.cursor+1, len(m.cards), pct))
		lines = append(lines, indicator)
	}

	return strings.Join(lines, "\n")
}

// cardAt maps a body-relative cell to a card index, or -1.
func cardAt(m *Model, x, y, height int) int {
	layout := layoutCardList(m, height)
	if x < layout.left || x >= layout.left+m.cfg.CardWidth {
		return -1
	}
	visible := visibleHeight(layout, height)
	if y < 0 || y >= visible {
		return -1
	}
	line := y + scrollStart(layout, m.cursor, visible)
	for i, s := range layout.spans {
		if line >= s.top && line <= s.bottom {
			return i
		}
	}
	return -1
}
