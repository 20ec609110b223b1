// ABOUTME: CLI command for verifying the store against the seeding rules.
// ABOUTME: Prints each violation and exits non-zero when any are found.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/seed"
)

var (
	verifyLimit int
	verifyJSON  bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the store against the seeding rules",
	Long: `Read every user and event and check them against what seeding produces.

CHECKS:

  - recordedBy is one of the five seeded emails
  - exercise events have an empty value
  - weight values are integers in [50, 120], pushups in [10, 100]
  - recordedAt is YYYY-MM-DD HH:MM:SS within 2026-01-01 .. 2026-07-31 23:59:59
  - each seeded email has 100 events per matching user row

Rows the app itself recorded are checked too and will usually be reported.

EXAMPLES:

  seed verify              # Show up to 20 problems
  seed verify -n 0         # Show all problems
  seed verify --json       # Machine-readable report`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		report, err := seed.Verify(cmd.Context(), db)
		if err != nil {
			return fmt.Errorf("verify store: %w", err)
		}

		out := cmd.OutOrStdout()
		if verifyJSON {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		} else {
			fmt.Fprintf(out, "Checked %d users and %d events in %s\n", report.Users, report.Events, db.Path())
			if report.OK() {
				color.New(color.FgGreen).Fprintln(out, "✓ No problems found")
			}
			for i, p := range report.Problems {
				if verifyLimit > 0 && i >= verifyLimit {
					fmt.Fprintf(out, "  ... and %d more\n", len(report.Problems)-i)
					break
				}
				color.New(color.FgRed).Fprintf(out, "  ✗ %s\n", p)
			}
		}

		if !report.OK() {
			return fmt.Errorf("store has %d problems", len(report.Problems))
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().IntVarP(&verifyLimit, "limit", "n", 20, "max problems to print (0 for all)")
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(verifyCmd)
}
