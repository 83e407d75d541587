package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/app"
	"github.com/abhisek/quizgen/internal/carryforward"
	"github.com/abhisek/quizgen/internal/questiongen"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/tui"
	"github.com/abhisek/quizgen/internal/ui/components"
)

func init() {
	addQuizFlags(rootCmd)
	_ = rootCmd.MarkFlagRequired("source")
}

func addQuizFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("kind", string(questiongen.KindSynonyms), "Question kind: synonyms, definitions, pool-synonyms, pool-antonyms, pool-definitions or pool-examples")
	f.String("mode", string(session.ModeInteractive), "Presentation mode: interactive or batch")
	f.IntP("length", "l", 10, "Number of questions")
	f.StringArrayP("source", "s", nil, "Word list file, one word per line (repeatable)")
	f.Int("choices", questiongen.DefaultConfig().Choices, "Choices per question (2-26)")
	f.Bool("carry-forward", false, "Start with questions missed in the last run")
	f.Float64("carry-ratio", carryforward.DefaultRatio, "Largest share of the quiz filled by carried questions")
	f.Bool("tui", false, "Run the quiz full-screen, one question at a time (interactive only)")
}

// runQuiz builds the dependencies of one quiz and runs it.
func runQuiz(cmd *cobra.Command, args []string) error {
	opts, err := quizOptions(cmd)
	if err != nil {
		return err
	}
	mode, useTUI, err := presentation(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	chain, err := newChain(cmd, logger)
	if err != nil {
		return fmt.Errorf("lexical providers: %w", err)
	}

	out := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())

	var presenter session.Presenter
	if useTUI {
		presenter = tui.NewPresenter()
	} else {
		presenter = session.NewTextPresenter(mode, cmd.InOrStdin(), out, components.RenderQuestion)
	}

	a := &app.App{
		Lookup:    chain,
		Store:     st,
		Presenter: presenter,
		Rand:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Logger:    logger,
		Out:       out,
	}
	_, err = a.Run(cmd.Context(), opts)
	return err
}

func quizOptions(cmd *cobra.Command) (app.Options, error) {
	f := cmd.Flags()
	kindVal, _ := f.GetString("kind")
	kind, err := questiongen.ParseKind(kindVal)
	if err != nil {
		return app.Options{}, err
	}

	opts := app.Options{Kind: kind}
	opts.Length, _ = f.GetInt("length")
	opts.Choices, _ = f.GetInt("choices")
	opts.Sources, _ = f.GetStringArray("source")
	opts.CarryForward, _ = f.GetBool("carry-forward")
	opts.CarryRatio, _ = f.GetFloat64("carry-ratio")
	return opts, opts.Validate()
}

// presentation resolves the presentation mode. The full-screen UI shows
// one question at a time, so it cannot run in batch mode.
func presentation(cmd *cobra.Command) (session.Mode, bool, error) {
	modeVal, _ := cmd.Flags().GetString("mode")
	mode, err := session.ParseMode(modeVal)
	if err != nil {
		return "", false, err
	}
	useTUI, _ := cmd.Flags().GetBool("tui")
	if useTUI && mode == session.ModeBatch {
		return "", false, fmt.Errorf("--tui runs interactively and cannot be combined with --mode batch")
	}
	return mode, useTUI, nil
}
