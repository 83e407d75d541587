package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/store"
	"github.com/abhisek/quizgen/internal/ui/components"
)

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the questions and grade report of the last run",
	RunE:  runLast,
}

func init() {
	lastCmd.Flags().Bool("questions", false, "Also print every question")
}

func runLast(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	run, err := st.Load()
	if store.IsMissing(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "No previous run found.")
		return nil
	}
	if err != nil {
		return err
	}

	out := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
	fmt.Fprintf(out, "Run %s, saved %s\n\n", run.ID, run.SavedAt.Local().Format("2006-01-02 15:04:05"))

	if withQuestions, _ := cmd.Flags().GetBool("questions"); withQuestions {
		for i, q := range run.Questions {
			fmt.Fprintln(out, components.RenderQuestion(i+1, q))
		}
	}
	fmt.Fprint(out, run.Report().Format(components.ReportMarks()))
	return nil
}
