package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/opsprep/tcoprep/internal/app"
	"github.com/opsprep/tcoprep/internal/config"
	"github.com/opsprep/tcoprep/internal/logging"
	"github.com/opsprep/tcoprep/internal/question"
	"github.com/opsprep/tcoprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tcoprep",
	Short: "TCO exam prep from the terminal",
	Long:  "tcoprep — practice sessions, mock assessments and spaced-repetition review for the Tanium Certified Operator exam.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to YAML config file")
	pf.String("db", "", "Path to SQLite database file (overrides TCOPREP_DB env var)")
	pf.String("bank", "", "Path to question bank JSON file")
	pf.String("user", "", "Profile to record attempts under")
	pf.String("log", "", "Logging mode: dev or prod (default silent)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration from the optional --config file,
// TCOPREP_* env vars and the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, cmd.Flags())
}

// resolveDBPath returns the database path from config (highest priority),
// then the TCOPREP_DB env var, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// loadRepo loads and validates the question bank named by the config.
func loadRepo(cfg *config.Config) (*question.StaticRepo, error) {
	bank, err := question.LoadBank(cfg.BankPath)
	if err != nil {
		return nil, err
	}
	return question.NewStaticRepo(bank.Questions), nil
}

// buildOptions opens the store and assembles the runner dependencies.
// Commands that present questions set opts.Repo themselves from loadRepo.
// The caller must Close the returned store.
func buildOptions(cmd *cobra.Command, cfg *config.Config) (*store.Store, app.Options, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, app.Options{}, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, app.Options{}, fmt.Errorf("open store: %w", err)
	}

	mode, _ := cmd.Flags().GetString("log")
	log := logging.Nop()
	if mode != "" {
		log, err = logging.New(mode)
		if err != nil {
			st.Close()
			return nil, app.Options{}, err
		}
	}

	opts := app.Options{
		UserID:   cfg.UserID,
		Events:   st.EventRepo(),
		Reviews:  st.ReviewRepo(),
		Progress: st.ProgressRepo(),
		Log:      log,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	return st, opts, nil
}
