package tui

import "github.com/Mr-Dark-debug/chasecards/internal/selection"

// Font names requested at startup.
const (
	FontDisplay = "PressStart2P_400Regular"
	FontHeading = "SpaceGrotesk_700Bold"
)

// HeaderTitle is the label above the card list.
const HeaderTitle = "Surging Sparks Chase Cards"

// Config holds the settings the TUI is built with.
type Config struct {
	// Variant picks inline expand or navigate-to-detail.
	Variant selection.Policy

	// Fonts maps font names to resource paths inside the asset FS.
	Fonts map[string]string

	// CardWidth is the outer width of a list card, border included.
	CardWidth int

	// DetailArtWidth is the image width on the detail screen.
	DetailArtWidth int

	// Mouse enables click and wheel handling.
	Mouse bool
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Variant: selection.PolicyExpand,
		Fonts: map[string]string{
			FontDisplay: "fonts/press_start_2p.font",
			FontHeading: "fonts/space_grotesk_bold.font",
		},
		CardWidth:      30,
		DetailArtWidth: 32,
		Mouse:          true,
	}
}
