package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/lexicon"
	"github.com/abhisek/quizgen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizgen",
	Short: "Vocabulary quizzes built from live dictionary data",
	Long: `quizgen builds multiple-choice vocabulary quizzes from a word list.

Definitions, synonyms, antonyms and example sentences are looked up from
WordsAPI, Merriam-Webster or an LLM, in priority order. Questions missed
in the last run can be carried forward into the next one.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
	RunE:              runQuiz,
}

// Execute runs the command tree. An interrupt cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("env-file", ".env", "File of KEY=value credentials loaded into the environment")
	pf.String("data-dir", "", "Directory for the last run's questions and answers (overrides QUIZGEN_DATA_DIR)")
	pf.String("providers", "", "Comma-separated lexical provider order (overrides QUIZGEN_PROVIDERS)")
	pf.BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadEnv loads the env file without overriding variables already set.
// A missing file is not an error.
func loadEnv(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("env-file")
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveDataDir returns the data directory using --data-dir (highest
// priority), then QUIZGEN_DATA_DIR, then the default XDG path.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data-dir"); p != "" {
		return p, nil
	}
	return store.DefaultDataDir()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dir)
}

func newChain(cmd *cobra.Command, logger *slog.Logger) (*lexicon.Chain, error) {
	cfg := lexicon.ConfigFromEnv()
	if order, _ := cmd.Flags().GetString("providers"); order != "" {
		cfg.Order = lexicon.ParseOrder(order)
	}
	return lexicon.NewChainFromConfig(cmd.Context(), cfg, logger, cmd.ErrOrStderr())
}
