// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server exposing the seeded store read-only.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start a Model Context Protocol (MCP) server over the seeded store.

The server communicates via stdin/stdout and never writes to the store.

AVAILABLE TOOLS:

  list_users     List all users
  list_events    List recent events, filter by tag or email
  get_stats      Counts per tag and per user
  verify_store   Check rows against the seeding rules

AVAILABLE RESOURCES:

  seed://summary   Counts plus the 10 most recent events`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		server, err := mcp.NewServer(db)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Debug().Str("db", db.Path()).Msg("mcp server starting")
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
