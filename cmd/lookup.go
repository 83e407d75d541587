package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/lexicon"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Resolve one lexical attribute of a word through the provider chain",
	Long: `Run a single provider-chain lookup and print which provider answered.

Useful for checking credentials and provider order without starting a quiz.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("attr", "synonyms", "Attribute: definitions, synonyms, antonyms or examples")
}

func runLookup(cmd *cobra.Command, args []string) error {
	attrVal, _ := cmd.Flags().GetString("attr")
	attr, err := lexicon.ParseAttribute(attrVal)
	if err != nil {
		return err
	}

	chain, err := newChain(cmd, newLogger(cmd))
	if err != nil {
		return fmt.Errorf("lexical providers: %w", err)
	}

	res, err := chain.Lookup(cmd.Context(), args[0], attr)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Word:     %s\n", res.Word)
	fmt.Fprintf(out, "Provider: %s\n", res.Provider)
	fmt.Fprintf(out, "%s (%d):\n", strings.ToUpper(attr.String()[:1])+attr.String()[1:], len(res.Values))
	for _, v := range res.Values {
		fmt.Fprintf(out, "  - %s\n", v)
	}
	return nil
}
