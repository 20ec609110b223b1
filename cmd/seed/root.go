// ABOUTME: Root Cobra command for the seed CLI.
// ABOUTME: Running it with no arguments seeds the store; config and logger setup live here.
package main

import (
	"math/rand/v2"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/config"
	"github.com/erkannt/rechenschaftspflicht-seed/internal/logging"
	"github.com/erkannt/rechenschaftspflicht-seed/internal/seed"
	"github.com/erkannt/rechenschaftspflicht-seed/internal/storage"
)

var (
	dbFlag       string
	seedFlag     int64
	logLevelFlag string

	cfg    *config.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the accountability app's store with synthetic data",
	Long: `Seed populates the accountability app's SQLite store with synthetic users and
fitness events for development and testing.

WHAT IT WRITES:

  users    alice, bob, carol, dave, eve (@example.com)
  events   100 per user, tagged weight, pushups or exercise, recorded
           between 2026-01-01 and 2026-07-31

  Every run appends. Running twice gives 10 users and 1000 events.

QUICK START:

  $ seed                      # Seed src/data/state.db
  $ seed verify               # Check the store against the seeding rules
  $ seed stats                # Counts per tag and per user

CONFIGURATION:

  SQLITE_PATH   database file (default src/data/state.db), same variable the app reads
  SEED_RANDOM   fix the random seed to reproduce a run
  LOG_LEVEL     debug, info, warn or error (default info)

  A .env file in the working directory is loaded first. Flags override both.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotenv(".env"); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(os.Getenv)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("db") {
			cfg.DBPath = dbFlag
		}
		if flags.Changed("seed") {
			cfg.Seed = seedFlag
			cfg.HasSeed = true
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevelFlag
		}
		if err := cfg.Valid().Err(); err != nil {
			return err
		}

		logger, err = logging.New(cmd.ErrOrStderr(), cfg.GetLogLevel())
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		summary, err := seed.NewRunner(db, newGenerator(), logger).Run(cmd.Context())
		if err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), summary.String())
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func openStore() (*storage.DB, error) {
	db, err := storage.Open(cfg.GetDBPath())
	if err != nil {
		return nil, err
	}
	return db.WithLogger(logger), nil
}

// newGenerator uses the configured seed, or draws one and logs it so the run
// can be reproduced with --seed.
func newGenerator() *seed.Generator {
	s := uint64(cfg.Seed)
	if !cfg.HasSeed {
		s = rand.Uint64()
	}
	logger.Debug().Int64("seed", int64(s)).Msg("random source ready")
	return seed.NewSeededGenerator(s)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "database path (overrides SQLITE_PATH)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "random seed (overrides SEED_RANDOM)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (overrides LOG_LEVEL)")
}
