package questiongen

import (
	"fmt"
	"regexp"
	"strings"
)

// MaskToken replaces the target word inside a statement.
const MaskToken = "[.....]"

// Question is a multiple-choice question ready for display.
type Question struct {
	// Statement is the prompt, with the target word already masked.
	Statement string `json:"statement"`

	// Choices holds the choice texts in display order.
	Choices []string `json:"choices"`

	// Solution is the ordinal of the correct choice.
	Solution Choice `json:"solution"`
}

// Answer returns the text of the correct choice.
func (q *Question) Answer() string {
	if !q.Solution.Valid(len(q.Choices)) {
		return ""
	}
	return q.Choices[q.Solution]
}

// Correct reports whether c is the solution.
func (q *Question) Correct(c Choice) bool {
	return c.Answered() && c == q.Solution
}

// Validate checks the structural invariants every question must hold:
// a choice count within bounds, a solution that addresses a choice, and
// pairwise distinct choice texts compared case-insensitively.
func (q *Question) Validate() error {
	n := len(q.Choices)
	if n < MinChoices || n > MaxChoices {
		return fmt.Errorf("question has %d choices, want %d to %d", n, MinChoices, MaxChoices)
	}
	if !q.Solution.Valid(n) {
		return fmt.Errorf("solution %s does not address one of %d choices", q.Solution, n)
	}
	seen := make(map[string]bool, n)
	for _, c := range q.Choices {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" {
			return fmt.Errorf("question has a blank choice")
		}
		if seen[key] {
			return fmt.Errorf("duplicate choice %q", c)
		}
		seen[key] = true
	}
	return nil
}

// ValidateFor checks Validate plus the invariants tying a freshly built
// question to its target: exactly n choices, and exactly one choice, the
// solution, equal to target case-insensitively.
func (q *Question) ValidateFor(n int, target string) error {
	if len(q.Choices) != n {
		return fmt.Errorf("question has %d choices, want %d", len(q.Choices), n)
	}
	if err := q.Validate(); err != nil {
		return err
	}
	matches := 0
	for _, c := range q.Choices {
		if strings.EqualFold(strings.TrimSpace(c), target) {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("%d choices match %q, want exactly 1", matches, target)
	}
	if !strings.EqualFold(strings.TrimSpace(q.Answer()), target) {
		return fmt.Errorf("solution %s is %q, not %q", q.Solution, q.Answer(), target)
	}
	return nil
}

// Render formats the question for the console, numbered k.
func (q *Question) Render(k int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question %d: %s\n\n", k, q.Statement)
	for i, c := range q.Choices {
		fmt.Fprintf(&b, "\t%s. %s\n", Choice(i), c)
	}
	return b.String()
}

// Mask hides word in statement behind MaskToken. Every whole-word
// occurrence is masked, ignoring case. When the word only appears inside
// longer words, the first exact-case occurrence is masked, else the first
// case-insensitive one. Statements without the word are returned unchanged.
func Mask(statement, word string) string {
	if word == "" {
		return statement
	}
	quoted := regexp.QuoteMeta(word)
	whole := regexp.MustCompile(`(?i)\b` + quoted + `\b`)
	if whole.MatchString(statement) {
		return whole.ReplaceAllLiteralString(statement, MaskToken)
	}
	if i := strings.Index(statement, word); i >= 0 {
		return statement[:i] + MaskToken + statement[i+len(word):]
	}
	re := regexp.MustCompile("(?i)" + quoted)
	if loc := re.FindStringIndex(statement); loc != nil {
		return statement[:loc[0]] + MaskToken + statement[loc[1]:]
	}
	return statement
}
