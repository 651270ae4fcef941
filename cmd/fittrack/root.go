// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Handles storage backend lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/database"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	manager *database.Manager
	store   storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness and nutrition tracker",
	Long: `Fittrack is a CLI tool for tracking workouts, nutrition and body metrics.

WHAT IT TRACKS:

  Workouts    regular, interval, cardio-gps, cardio-manual sessions
  Routines    reusable workout templates with favorites
  Nutrition   food library, daily logs, macro targets, daily rollups
  Body        weight, body fat, muscle mass by date

QUICK START:

  $ fittrack workout start "Leg Day"        # Start a workout session
  $ fittrack workout complete               # Finish the active session
  $ fittrack food log <food-id>             # Log a food for today
  $ fittrack target set --calories 2200     # Replace the active macro target
  $ fittrack metric record 82.5             # Record today's weight
  $ fittrack seed data/seed.json            # Load exercise/food libraries

STORAGE BACKENDS:

  Data lives in a local database selected once at startup:

    sqlite  (default)  single fittrack.db file, queries run in-engine
    badger             embedded document store, JSON documents

  Select via config (~/.config/fittrack/config.json) or FITTRACK_BACKEND.
  Both backends store the same entities with identical behavior.

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		manager = database.NewManager(cfg.OpenStorage)
		store, err = manager.Initialize()
		if err != nil {
			return fmt.Errorf("initialize storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if manager != nil {
			return manager.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
