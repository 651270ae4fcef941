// ABOUTME: MCP server setup for the fitness tracker.
// ABOUTME: Wraps the MCP server with the storage contract and domain repositories.
package mcp

import (
	"context"

	"github.com/harperreed/fittrack/internal/repository"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	store     storage.Store
	workouts  *repository.WorkoutRepository
	nutrition *repository.NutritionRepository
	body      *repository.BodyRepository
}

// NewServer creates a new MCP server over the given storage.
func NewServer(store storage.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fittrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		workouts:  repository.NewWorkoutRepository(store),
		nutrition: repository.NewNutritionRepository(store),
		body:      repository.NewBodyRepository(store),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
