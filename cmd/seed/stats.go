// ABOUTME: CLI command for printing store statistics.
// ABOUTME: Shows overall counts and events per tag and per user.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show user and event counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)

		fmt.Fprintf(out, "%s\n", faint.Sprint(db.Path()))
		fmt.Fprintf(out, "%s %d\n", padRight("users", 24), stats.Users)
		fmt.Fprintf(out, "%s %d\n", padRight("events", 24), stats.Events)

		printGroup(cmd, "by tag", stats.ByTag)
		printGroup(cmd, "by user", stats.ByUser)
		return nil
	},
}

func printGroup(cmd *cobra.Command, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	out := cmd.OutOrStdout()

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(out, "\n%s\n", color.New(color.Bold).Sprint(title))
	for _, k := range keys {
		label := k
		if label == "" {
			label = "(empty)"
		}
		fmt.Fprintf(out, "  %s %d\n", padRight(label, 22), counts[k])
	}
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
