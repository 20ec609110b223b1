// ABOUTME: MCP resource implementations for the seeded store.
// ABOUTME: Provides seed://summary with counts and the latest events.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/storage"
)

const summaryURI = "seed://summary"

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Seeded Store Summary",
		Description: "User and event counts plus the 10 most recent events",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	recent, err := s.repo.ListEvents(ctx, storage.EventFilter{Limit: 10})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	result := map[string]interface{}{
		"path":   s.repo.Path(),
		"stats":  stats,
		"recent": recent,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      summaryURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
