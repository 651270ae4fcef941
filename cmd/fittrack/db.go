// ABOUTME: CLI command for destructive database administration.
// ABOUTME: Reset destroys all data and leaves a fresh initialized database.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var dbResetForce bool

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database administration",
}

var dbResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Destroy all data and re-initialize",
	Long: `Destroy the entire local database and re-initialize a fresh, empty one.
This cannot be undone. Prompts for confirmation unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !dbResetForce {
			fmt.Print("This deletes ALL local data. Type 'yes' to continue: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := manager.DeleteDatabase(); err != nil {
			return err
		}
		fmt.Println("Database reset.")
		return nil
	},
}

func init() {
	dbResetCmd.Flags().BoolVarP(&dbResetForce, "force", "f", false, "skip confirmation")
	dbCmd.AddCommand(dbResetCmd)
	rootCmd.AddCommand(dbCmd)
}
