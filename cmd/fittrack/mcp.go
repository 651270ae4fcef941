// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fittrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and exposes the tracker's data
through standard MCP tools and resources.

AVAILABLE TOOLS:

  start_workout         Start a workout session
  complete_workout      Complete a workout and refresh analytics
  get_active_workout    Get the in-progress session
  list_workouts         List recent workouts
  search_foods          Search the food library
  log_food              Log a consumed food
  set_nutrition_target  Replace the active macro target
  get_nutrition_day     One day's rollup plus the active target
  record_body_metric    Record a body measurement

AVAILABLE RESOURCES:

  fittrack://workouts/recent      Last 10 workouts
  fittrack://routines/favorites   Favorited routines`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
