// ABOUTME: CLI commands for app settings: get, set, list.
// ABOUTME: Values are stored as JSON; plain strings are wrapped automatically.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage app settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show a setting's value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := store.GetSetting(args[0])
		if err != nil {
			return err
		}
		if raw == nil {
			fmt.Println("(unset)")
			return nil
		}
		fmt.Println(string(raw))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Long: `Set a setting. The value is stored as JSON: valid JSON is stored as-is,
anything else is stored as a JSON string.

EXAMPLES:

  fittrack settings set units metric
  fittrack settings set notifications true
  fittrack settings set restTimers '{"default": 90}'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := json.RawMessage(args[1])
		if !json.Valid(value) {
			encoded, err := json.Marshal(args[1])
			if err != nil {
				return err
			}
			value = encoded
		}
		if err := store.SetSetting(args[0], value); err != nil {
			return err
		}
		fmt.Printf("Set %s\n", args[0])
		return nil
	},
}

var settingsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := store.GetAllSettings()
		if err != nil {
			return err
		}
		if len(settings) == 0 {
			fmt.Println("No settings stored.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range settings {
			fmt.Printf("%s = %s %s\n", padRight(s.Key, 20), string(s.Value),
				faint.Sprintf("(updated %s)", s.UpdatedAt))
		}
		return nil
	},
}

var settingsDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteSetting(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsDeleteCmd)
	rootCmd.AddCommand(settingsCmd)
}
