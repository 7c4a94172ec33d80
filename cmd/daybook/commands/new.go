package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torvane/daybook/display"
)

// NewCmd creates an item under a placement.
var NewCmd = &cobra.Command{
	Use:   "new <title> [locator]",
	Short: "Create an item",
	Long: `Create an item under the placement the locator resolves to.
Without a locator the item goes under today. The new item is ranked after
its siblings.

Examples:
  daybook new "buy milk"                # under today
  daybook new "retro notes" +fri        # next Friday
  daybook new "step two" groceries/2    # subsection 2 of an aliased item`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNew,
}

var newBodyFlag string

func init() {
	NewCmd.Flags().StringVar(&newBodyFlag, "body", "", "Item body text")
	NewCmd.Flags().Bool("json", false, "Output the created item as JSON")
}

func runNew(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	cwd, err := env.cwd(cmd)
	if err != nil {
		return err
	}

	locator := ""
	if len(args) > 1 {
		locator = args[1]
	}

	it, err := env.workflows.Create(cmd.Context(), cwd, args[0], newBodyFlag, locator)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(itemView(it))
	}
	fmt.Printf("created %s at %s (rank %s)\n", it.ID, it.Placement, it.Rank)
	return nil
}
