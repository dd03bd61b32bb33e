package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. Adaptive pairs follow the terminal's
// background, light first, dark second.

var (
	// Base
	colorBgSurface = lipgloss.AdaptiveColor{Light: "#e8e8e8", Dark: "#3d3d3d"}

	// Text
	colorText      = lipgloss.AdaptiveColor{Light: "#1f2328", Dark: "#f0f0f0"}
	colorTextDim   = lipgloss.AdaptiveColor{Light: "#57606a", Dark: "#a8a8a8"}
	colorTextMuted = lipgloss.AdaptiveColor{Light: "#8c959f", Dark: "#6e6e6e"}

	// Accents
	colorGold  = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffd700"}
	colorFocus = lipgloss.AdaptiveColor{Light: "#1f6feb", Dark: "#58a6ff"}
	colorWarn  = lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"}

	// Structural
	colorBorder = lipgloss.AdaptiveColor{Light: "#d0d0d0", Dark: "#5a5a5a"}
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorGold)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Cards
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	chaseCardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorGold).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	chaseTitleStyle = lipgloss.NewStyle().
			Foreground(colorGold).
			Bold(true)

	chaseBadgeStyle = lipgloss.NewStyle().
			Foreground(colorGold).
			Bold(true)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	artPlaceholderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorTextMuted).
				Foreground(colorTextMuted).
				Align(lipgloss.Center, lipgloss.Center)
)

// Detail screen
var (
	detailSectionStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	detailNameStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			Underline(true)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusWarnStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Background(colorBgSurface).
			Bold(true).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	scrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)
)

// Startup gate
var (
	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorGold)

	loadingTextStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)
)
