package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/chasecards/internal/catalog"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the card catalog",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "text", "output format: text or json")
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Open()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch listFormat {
	case "json":
		data, err := json.MarshalIndent(cat.GetAll(), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		fmt.Fprintln(out, string(data))

	case "text":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "NAME", "TYPE", "RARITY", "HP", "ATTACK")
		for _, c := range cat.GetAll() {
			name := c.Name
			if c.IsChase {
				name += " ★"
			}
			t.Row(c.ID, name, c.ElementType, string(c.Rarity), c.HP, c.AttackName)
		}
		fmt.Fprintln(out, t.Render())

	default:
		return fmt.Errorf("unknown format %q (want text or json)", listFormat)
	}
	return nil
}
