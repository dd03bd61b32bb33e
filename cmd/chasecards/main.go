// chasecards browses the Surging Sparks chase cards in the terminal.
//
// Usage:
//
//	chasecards [command] [flags]
//
// Commands:
//
//	browse    Open the interactive card browser (default)
//	list      Print the card catalog
//	show      Print the details of one card
//	version   Print version information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "chasecards",
	Short: "Surging Sparks chase card browser",
	Long: `chasecards shows the Surging Sparks chase cards in an interactive
terminal browser. Run without a command to open the browser.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowse,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	addBrowseFlags(rootCmd)

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}
