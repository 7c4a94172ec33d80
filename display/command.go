// Package display renders command output: pterm tables for humans, JSON or
// YAML for everything else.
package display

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torvane/daybook/config"
)

// ShouldOutputJSON determines if a command should output JSON based on its
// own --json flag, falling back to the root persistent flag, then to the
// display.json config setting.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return configuredJSON()
	}

	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	if globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); globalFlag {
		return true
	}

	return configuredJSON()
}

func configuredJSON() bool {
	cfg, err := config.Load()
	if err != nil {
		return false
	}
	return cfg.Display.JSON
}

// ShouldOutputYAML reports whether the command asked for YAML export.
func ShouldOutputYAML(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	yamlFlag, _ := cmd.Flags().GetBool("yaml")
	return yamlFlag
}

// OutputJSON marshals and prints JSON using MarshalJSON.
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
