package tui

import "github.com/charmbracelet/x/ansi"

// truncate cuts s to at most width terminal cells, ending in "…" when
// anything was dropped. Wide runes count as two cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// clamp restricts val to [lo, hi]; lo wins when the range is empty.
func clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
