// ABOUTME: Tests for the seed CLI commands.
// ABOUTME: Runs the commands in-process against a temporary database.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/seed"
)

// resetFlags restores every flag to its default so commands can be run
// more than once in the same process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "data", "state.db")
	t.Setenv("SQLITE_PATH", dbPath)
	t.Setenv("SEED_RANDOM", "")
	t.Setenv("LOG_LEVEL", "")
	return dbPath
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "seed" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "seed")
	}
	for _, name := range []string{"db", "seed", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected --%s persistent flag", name)
		}
	}
}

func TestSubcommandsExist(t *testing.T) {
	want := map[string]bool{"verify": false, "stats": false, "export": false, "mcp": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Expected %s subcommand", name)
		}
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	want := []string{"json", "yaml", "markdown"}
	if len(exportCmd.ValidArgs) != len(want) {
		t.Fatalf("ValidArgs = %v, want %v", exportCmd.ValidArgs, want)
	}
	for i, arg := range want {
		if exportCmd.ValidArgs[i] != arg {
			t.Errorf("ValidArgs[%d] = %q, want %q", i, exportCmd.ValidArgs[i], arg)
		}
	}
	if exportCmd.Flags().ShorthandLookup("o") == nil {
		t.Error("Expected -o shorthand for --output")
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input  string
		length int
		want   string
	}{
		{"abc", 5, "abc  "},
		{"abcde", 5, "abcde"},
		{"abcdef", 3, "abcdef"},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := padRight(tt.input, tt.length); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
		}
	}
}

func TestRunSeedsStore(t *testing.T) {
	dbPath := setupEnv(t)

	output, err := executeCommand(t)
	if err != nil {
		t.Fatalf("seed failed: %v\n%s", err, output)
	}

	want := "Inserted 5 users and 500 events into " + dbPath
	if !strings.Contains(output, want) {
		t.Errorf("output = %q, want it to contain %q", output, want)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestRunDBFlagOverridesEnv(t *testing.T) {
	setupEnv(t)
	other := filepath.Join(t.TempDir(), "other.db")

	output, err := executeCommand(t, "--db", other, "--seed", "7")
	if err != nil {
		t.Fatalf("seed failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "into "+other) {
		t.Errorf("output = %q, want path %s", output, other)
	}
}

func TestRunTwiceAppends(t *testing.T) {
	setupEnv(t)

	for i := 0; i < 2; i++ {
		if output, err := executeCommand(t); err != nil {
			t.Fatalf("run %d failed: %v\n%s", i+1, err, output)
		}
	}

	output, err := executeCommand(t, "verify", "--json")
	if err != nil {
		t.Fatalf("verify failed: %v\n%s", err, output)
	}

	var report seed.Report
	if err := json.Unmarshal([]byte(output), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, output)
	}
	if report.Users != 10 || report.Events != 1000 {
		t.Errorf("got %d users and %d events, want 10 and 1000", report.Users, report.Events)
	}
}

func TestVerifyAfterSeed(t *testing.T) {
	setupEnv(t)

	if output, err := executeCommand(t, "--seed", "42"); err != nil {
		t.Fatalf("seed failed: %v\n%s", err, output)
	}

	output, err := executeCommand(t, "verify")
	if err != nil {
		t.Fatalf("verify failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Checked 5 users and 500 events") {
		t.Errorf("unexpected verify output: %s", output)
	}
	if !strings.Contains(output, "No problems found") {
		t.Errorf("expected clean report, got: %s", output)
	}
}

func TestVerifyEmptyStore(t *testing.T) {
	setupEnv(t)

	output, err := executeCommand(t, "verify")
	if err != nil {
		t.Fatalf("verify on empty store failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Checked 0 users and 0 events") {
		t.Errorf("unexpected verify output: %s", output)
	}
}

func TestStatsAfterSeed(t *testing.T) {
	setupEnv(t)

	if output, err := executeCommand(t); err != nil {
		t.Fatalf("seed failed: %v\n%s", err, output)
	}

	output, err := executeCommand(t, "stats")
	if err != nil {
		t.Fatalf("stats failed: %v\n%s", err, output)
	}
	for _, want := range []string{"500", "alice@example.com", "eve@example.com"} {
		if !strings.Contains(output, want) {
			t.Errorf("stats output missing %q:\n%s", want, output)
		}
	}
}

func TestExportJSONToFile(t *testing.T) {
	setupEnv(t)

	if output, err := executeCommand(t, "--seed", "1"); err != nil {
		t.Fatalf("seed failed: %v\n%s", err, output)
	}

	outFile := filepath.Join(t.TempDir(), "export.json")
	output, err := executeCommand(t, "export", "json", "-o", outFile)
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Exported to") {
		t.Errorf("unexpected export output: %s", output)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var exported struct {
		Users  []json.RawMessage `json:"users"`
		Events []json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(exported.Users) != 5 || len(exported.Events) != 500 {
		t.Errorf("exported %d users and %d events, want 5 and 500", len(exported.Users), len(exported.Events))
	}
}

func TestExportMarkdownByTag(t *testing.T) {
	setupEnv(t)

	if output, err := executeCommand(t, "--seed", "3"); err != nil {
		t.Fatalf("seed failed: %v\n%s", err, output)
	}

	output, err := executeCommand(t, "export", "markdown", "--tag", "pushups")
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "| Date | User | Value | Comment |") {
		t.Errorf("expected table header, got: %s", output)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	setupEnv(t)

	if _, err := executeCommand(t, "export", "csv"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := executeCommand(t, "export", "markdown", "--tag", "steps"); err == nil {
		t.Error("expected error for unknown tag")
	}
}

func TestInvalidConfig(t *testing.T) {
	setupEnv(t)

	t.Setenv("SEED_RANDOM", "not-a-number")
	if _, err := executeCommand(t); err == nil {
		t.Error("expected error for non-numeric SEED_RANDOM")
	}

	t.Setenv("SEED_RANDOM", "")
	if _, err := executeCommand(t, "--log-level", "loud"); err == nil {
		t.Error("expected error for unknown log level")
	}
}
