// ABOUTME: CLI command for loading reference data from a seed file.
// ABOUTME: Seeding is insert-or-ignore, so it's safe to re-run.
package main

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load reference libraries from a JSON seed file",
	Long: `Load exercise and food reference libraries from a JSON seed file.

The file may contain any of: exercises, bodyParts, equipment, muscles,
foods. Records whose primary key already exists are left untouched, so
re-seeding never clobbers local edits.

EXAMPLES:

  fittrack seed data/exercises.json
  fittrack seed data/foods.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := seed.Load(store, args[0]); err != nil {
			return err
		}
		fmt.Println("Seed applied.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
