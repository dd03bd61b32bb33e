package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/chasecards/internal/assets"
	"github.com/Mr-Dark-debug/chasecards/internal/catalog"
	"github.com/Mr-Dark-debug/chasecards/internal/database"
	"github.com/Mr-Dark-debug/chasecards/internal/fonts"
	"github.com/Mr-Dark-debug/chasecards/internal/tui"
)

var showWidth int

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Short:   "Print the details of one card",
	Example: "  chasecards show 3",
	Args:    cobra.ExactArgs(1),
	RunE:    runShow,
}

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", 60, "output width in columns")
}

func runShow(cmd *cobra.Command, args []string) error {
	if showWidth < 1 {
		return fmt.Errorf("invalid width %d", showWidth)
	}

	store, err := database.NewDBService(":memory:")
	if err != nil {
		return fmt.Errorf("opening catalog store: %w", err)
	}
	defer store.Close()

	card, err := catalog.Lookup(store, args[0])
	if err != nil {
		return err
	}

	cfg := tui.DefaultConfig()
	reg, err := fonts.NewLoader(assets.FS).Load(cfg.Fonts)
	if err != nil {
		log.Printf("[WARN] Font load failed, using plain text: %v", err)
		reg = nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderDetail(card, cfg, assets.NewImages(assets.FS), reg, showWidth))
	return nil
}
