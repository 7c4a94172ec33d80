package commands

import (
	"github.com/spf13/cobra"

	"github.com/torvane/daybook/display"
)

// LsCmd lists items in a placement or range.
var LsCmd = &cobra.Command{
	Use:   "ls [range]",
	Short: "List items",
	Long: `List the items a range expression covers, in rank order.
Without an argument today is listed.

Ranges span whole days (2025-11-16..2025-11-20, today..+3d, this-week,
next-month) or sibling subsections under one parent (groceries/2..4).
A plain locator lists that single placement.

Examples:
  daybook ls                      # today
  daybook ls this-week
  daybook ls groceries            # inside an aliased item
  daybook ls 2025-11-16/1..3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

func init() {
	LsCmd.Flags().Bool("json", false, "Output items as JSON")
	LsCmd.Flags().Bool("yaml", false, "Output items as YAML")
}

func runLs(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	cwd, err := env.cwd(cmd)
	if err != nil {
		return err
	}

	rangeText := ""
	if len(args) > 0 {
		rangeText = args[0]
	}

	items, err := env.workflows.List(cmd.Context(), cwd, rangeText)
	if err != nil {
		return err
	}

	switch {
	case display.ShouldOutputJSON(cmd):
		return display.OutputJSON(itemViews(items))
	case display.ShouldOutputYAML(cmd):
		return display.OutputYAML(itemViews(items))
	default:
		return display.RenderItems(items)
	}
}
