// ABOUTME: CLI command for exporting seeded data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
)

var (
	exportOutput string
	exportTag    string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export users and events",
	Long: `Export the store's users and events in various formats.

FORMATS:

  json       Full JSON export
  yaml       YAML export with events grouped by tag
  markdown   Markdown tables, one per tag

OPTIONS:

  --output, -o   Write to file instead of stdout
  --tag, -t      Only include one tag (markdown only)

EXAMPLES:

  seed export json                     # Export everything as JSON
  seed export yaml -o fixtures.yaml    # Save to file
  seed export markdown --tag weight    # Weight events as Markdown`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var tag *models.Tag
		if exportTag != "" {
			if !models.IsValidTag(exportTag) {
				return fmt.Errorf("unknown tag: %s", exportTag)
			}
			t := models.Tag(exportTag)
			tag = &t
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		var data []byte
		switch format {
		case "json":
			data, err = db.ExportJSON(ctx)
		case "yaml":
			data, err = db.ExportYAML(ctx)
		case "markdown", "md":
			var md string
			md, err = db.ExportMarkdown(ctx, tag)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (valid: json, yaml, markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file")
	exportCmd.Flags().StringVarP(&exportTag, "tag", "t", "", "filter by tag (markdown only)")
	rootCmd.AddCommand(exportCmd)
}
