package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/torvane/daybook/cmd/daybook/commands"
	"github.com/torvane/daybook/logger"
)

var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "daybook - date-anchored item store with human-typed addressing",
	Long: `daybook - a hierarchical, date-anchored item store.

Items live under placements: a calendar day, another item, or the permanent
area, optionally descended into numbered subsections. Commands address
placements with locator expressions: relative dates (today, +3d, ~mon),
aliases and their unique prefixes, item ids, absolute paths
(/2025-11-16/5/2), and dotdot ascent (../2).

Examples:
  daybook new "buy milk"                 # create under today
  daybook new "standup notes" +mon/1     # next Monday, subsection 1
  daybook ls this-week                   # list the current week
  daybook mv groc tomorrow --after plan  # move, ranked after a sibling
  daybook alias add <item> groceries     # name an item`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Root().PersistentFlags().GetBool("json")
		verbosity, _ := cmd.Root().PersistentFlags().GetCount("verbose")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().String("cwd", "", "Current placement for relative locators (default: today)")

	rootCmd.AddCommand(commands.NewCmd)
	rootCmd.AddCommand(commands.LsCmd)
	rootCmd.AddCommand(commands.MvCmd)
	rootCmd.AddCommand(commands.AliasCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
