// ABOUTME: MCP tool implementations over seeded users and events.
// ABOUTME: Read-only: listing, aggregate stats, and invariant verification.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
	"github.com/erkannt/rechenschaftspflicht-seed/internal/seed"
	"github.com/erkannt/rechenschaftspflicht-seed/internal/storage"
)

const defaultListLimit = 20

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_users",
		Description: "List all users in the store, including duplicates from repeated seeding",
	}, s.handleListUsers)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_events",
		Description: "List recent events, optionally filtered by tag or recording user's email",
	}, s.handleListEvents)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Count users and events, with events broken down by tag and by user email",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "verify_store",
		Description: "Check every row against the rules seeded data follows and list violations",
	}, s.handleVerifyStore)
}

// Tool input/output types

type emptyInput struct{}

type userOutput struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type listUsersOutput struct {
	Count int          `json:"count"`
	Users []userOutput `json:"users"`
}

type listEventsInput struct {
	Tag   string `json:"tag,omitempty" jsonschema:"filter by tag: weight, pushups or exercise"`
	Email string `json:"email,omitempty" jsonschema:"filter by the email of the recording user"`
	Limit int    `json:"limit,omitempty" jsonschema:"max results (default 20)"`
}

type eventOutput struct {
	ID         int64  `json:"id"`
	Tag        string `json:"tag"`
	Comment    string `json:"comment"`
	Value      string `json:"value"`
	RecordedAt string `json:"recorded_at"`
	RecordedBy string `json:"recorded_by"`
	Username   string `json:"username"`
}

type listEventsOutput struct {
	Count  int           `json:"count"`
	Events []eventOutput `json:"events"`
}

// Tool handlers

func (s *Server) handleListUsers(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, listUsersOutput, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, listUsersOutput{}, fmt.Errorf("failed to list users: %w", err)
	}

	out := listUsersOutput{Users: make([]userOutput, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, userOutput{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	out.Count = len(out.Users)

	return nil, out, nil
}

func (s *Server) handleListEvents(ctx context.Context, req *mcp.CallToolRequest, input listEventsInput) (*mcp.CallToolResult, listEventsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}

	filter := storage.EventFilter{RecordedBy: input.Email, Limit: input.Limit}
	if input.Tag != "" {
		if !models.IsValidTag(input.Tag) {
			return nil, listEventsOutput{}, fmt.Errorf("unknown tag: %s", input.Tag)
		}
		tag := models.Tag(input.Tag)
		filter.Tag = &tag
	}

	events, err := s.repo.ListEvents(ctx, filter)
	if err != nil {
		return nil, listEventsOutput{}, fmt.Errorf("failed to list events: %w", err)
	}

	out := listEventsOutput{Events: make([]eventOutput, 0, len(events))}
	for _, e := range events {
		out.Events = append(out.Events, eventOutput{
			ID:         e.ID,
			Tag:        string(e.Tag),
			Comment:    e.Comment,
			Value:      e.Value,
			RecordedAt: e.RecordedAt,
			RecordedBy: e.RecordedBy,
			Username:   e.Username,
		})
	}
	out.Count = len(out.Events)

	return nil, out, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, storage.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, storage.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}
	return nil, *stats, nil
}

func (s *Server) handleVerifyStore(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, seed.Report, error) {
	report, err := seed.Verify(ctx, s.repo)
	if err != nil {
		return nil, seed.Report{}, fmt.Errorf("failed to verify store: %w", err)
	}
	return nil, *report, nil
}
