package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/chasecards/internal/assets"
	"github.com/Mr-Dark-debug/chasecards/internal/catalog"
	"github.com/Mr-Dark-debug/chasecards/internal/fonts"
	"github.com/Mr-Dark-debug/chasecards/internal/selection"
	"github.com/Mr-Dark-debug/chasecards/internal/tui"
)

var (
	browseVariant string
	browseLogFile string
	browseNoMouse bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive card browser",
	Long: `Open the card list. With --variant expand (the default) pressing a
card shows its details in place; with --variant navigate it opens a
detail screen.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	addBrowseFlags(browseCmd)
}

func addBrowseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&browseVariant, "variant", string(selection.PolicyExpand), "card press behavior: expand or navigate")
	cmd.Flags().StringVar(&browseLogFile, "log", "", "write the debug log to this file")
	cmd.Flags().BoolVar(&browseNoMouse, "no-mouse", false, "disable mouse input")
}

// browseConfig overlays the browse flags on the default config.
func browseConfig() (tui.Config, error) {
	policy, err := selection.ParsePolicy(browseVariant)
	if err != nil {
		return tui.Config{}, err
	}

	cfg := tui.DefaultConfig()
	cfg.Variant = policy
	cfg.Mouse = !browseNoMouse
	return cfg, nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := browseConfig()
	if err != nil {
		return err
	}

	// Anything written to stderr would corrupt the alternate screen.
	if browseLogFile != "" {
		f, err := tea.LogToFile(browseLogFile, "chasecards")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cat, err := catalog.Open()
	if err != nil {
		return err
	}

	model := tui.NewModel(cat, cfg, fonts.NewLoader(assets.FS), assets.NewImages(assets.FS))

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
