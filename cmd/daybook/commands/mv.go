package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torvane/daybook/display"
	"github.com/torvane/daybook/errors"
)

// MvCmd relocates an item.
var MvCmd = &cobra.Command{
	Use:   "mv <item> <destination>",
	Short: "Move an item",
	Long: `Move an item to the placement the destination locator resolves to.
By default the item is ranked after the existing siblings; --before and
--after rank it relative to a named sibling instead.

Examples:
  daybook mv groceries tomorrow
  daybook mv groc +mon/2 --before plan
  daybook mv 7c0e… permanent --after inbox`,
	Args: cobra.ExactArgs(2),
	RunE: runMv,
}

var (
	mvBeforeFlag string
	mvAfterFlag  string
)

func init() {
	MvCmd.Flags().StringVar(&mvBeforeFlag, "before", "", "Rank the item before this sibling")
	MvCmd.Flags().StringVar(&mvAfterFlag, "after", "", "Rank the item after this sibling")
	MvCmd.Flags().Bool("json", false, "Output the moved item as JSON")
	MvCmd.MarkFlagsMutuallyExclusive("before", "after")
}

func runMv(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	cwd, err := env.cwd(cmd)
	if err != nil {
		return err
	}

	it, err := env.workflows.Move(cmd.Context(), cwd, args[0], args[1], mvBeforeFlag, mvAfterFlag)
	if err != nil {
		if candidates := errors.Candidates(err); len(candidates) > 0 {
			return errors.WithHintf(err, "did you mean one of: %v", candidates)
		}
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(itemView(it))
	}
	fmt.Printf("moved %s to %s (rank %s)\n", it.ID, it.Placement, it.Rank)
	return nil
}
