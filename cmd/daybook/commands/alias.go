package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torvane/daybook/display"
	"github.com/torvane/daybook/resolve"
)

// AliasCmd manages item aliases.
var AliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage item aliases",
	Long: `Manage the human-typed names of items.

An alias resolves case-insensitively and by unique prefix; aliases of items
placed within a week of today win prefix ties. 'alias ls' shows the shortest
prefix that currently identifies each alias.

Examples:
  daybook alias add 7c0e… groceries
  daybook alias rm groceries
  daybook alias ls`,
}

var aliasAddCmd = &cobra.Command{
	Use:   "add <item> <slug>",
	Short: "Name an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runAliasAdd,
}

var aliasRmCmd = &cobra.Command{
	Use:   "rm <slug>",
	Short: "Remove an alias",
	Args:  cobra.ExactArgs(1),
	RunE:  runAliasRm,
}

var aliasLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List aliases with their shortest unique prefixes",
	Args:  cobra.NoArgs,
	RunE:  runAliasLs,
}

func init() {
	aliasLsCmd.Flags().Bool("json", false, "Output aliases as JSON")
	aliasLsCmd.Flags().Bool("yaml", false, "Output aliases as YAML")
	AliasCmd.AddCommand(aliasAddCmd)
	AliasCmd.AddCommand(aliasRmCmd)
	AliasCmd.AddCommand(aliasLsCmd)
}

func runAliasAdd(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	cwd, err := env.cwd(cmd)
	if err != nil {
		return err
	}

	a, err := env.workflows.AddAlias(cmd.Context(), cwd, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("alias %q -> %s\n", a.Slug, a.ItemID)
	return nil
}

func runAliasRm(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.workflows.RemoveAlias(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("removed alias %q\n", args[0])
	return nil
}

func runAliasLs(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	aliases, err := env.workflows.Aliases(cmd.Context())
	if err != nil {
		return err
	}

	switch {
	case display.ShouldOutputJSON(cmd), display.ShouldOutputYAML(cmd):
		canonicals := make([]string, len(aliases))
		for i, a := range aliases {
			canonicals[i] = a.Canonical
		}
		views := aliasViews(aliases, resolve.ShortestUniquePrefixes(canonicals))
		if display.ShouldOutputYAML(cmd) {
			return display.OutputYAML(views)
		}
		return display.OutputJSON(views)
	default:
		return display.RenderAliases(aliases)
	}
}
