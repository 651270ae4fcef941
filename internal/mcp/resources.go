// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fittrack://workouts/recent and fittrack://routines/favorites.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://workouts/recent - last 10 workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://workouts/recent",
		Name:        "Recent Workouts",
		Description: "Last 10 workout sessions",
		MIMEType:    "application/json",
	}, s.handleRecentWorkoutsResource)

	// fittrack://routines/favorites - favorited routines
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://routines/favorites",
		Name:        "Favorite Routines",
		Description: "Routines the user marked as favorites",
		MIMEType:    "application/json",
	}, s.handleFavoriteRoutinesResource)
}

// Resource handlers

func (s *Server) handleRecentWorkoutsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.store.GetWorkouts()
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if len(workouts) > 10 {
		workouts = workouts[:10]
	}

	data, err := json.MarshalIndent(workouts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal workouts: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://workouts/recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleFavoriteRoutinesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	routines, err := s.store.GetFavoriteRoutines()
	if err != nil {
		return nil, fmt.Errorf("list favorite routines: %w", err)
	}

	data, err := json.MarshalIndent(routines, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal routines: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://routines/favorites",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
