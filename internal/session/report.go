package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/quizgen/internal/questiongen"
)

// Pair is the graded outcome of one question.
type Pair struct {
	Expected  questiongen.Choice `json:"expected"`
	Submitted questiongen.Choice `json:"submitted"`
}

// Correct reports whether a submission was given and matches.
func (p Pair) Correct() bool {
	return p.Submitted.Answered() && p.Submitted == p.Expected
}

// Missed reports whether a submission was given and is wrong.
func (p Pair) Missed() bool {
	return p.Submitted.Answered() && p.Submitted != p.Expected
}

// Report is the graded result of one quiz run.
type Report struct {
	Start time.Time
	End   time.Time
	Pairs []Pair

	// texts holds the expected answer text per pair, when known.
	texts []string
}

// NewReport creates a Report. texts, when non-nil, carries the expected
// answer text for each pair and is shown next to the ordinal.
func NewReport(start, end time.Time, pairs []Pair, texts []string) *Report {
	return &Report{Start: start, End: end, Pairs: pairs, texts: texts}
}

// Elapsed is the time between first display and last submission.
func (r *Report) Elapsed() time.Duration { return r.End.Sub(r.Start) }

// Total returns the number of graded questions.
func (r *Report) Total() int { return len(r.Pairs) }

// Correct returns the number of correct submissions.
func (r *Report) Correct() int {
	n := 0
	for _, p := range r.Pairs {
		if p.Correct() {
			n++
		}
	}
	return n
}

// Score returns the percentage of correct submissions, 0 for an empty report.
func (r *Report) Score() float64 {
	if len(r.Pairs) == 0 {
		return 0
	}
	return float64(r.Correct()) / float64(len(r.Pairs)) * 100
}

// Marks decorates the per-question correctness markers.
type Marks struct {
	Correct string
	Wrong   string
}

// PlainMarks are the undecorated markers.
var PlainMarks = Marks{Correct: "✔", Wrong: "✘"}

// Format renders the report with the given markers.
func (r *Report) Format(m Marks) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time taken: %s\n", r.Elapsed().Round(time.Millisecond))
	fmt.Fprintf(&b, "Score: %.1f%%\n", r.Score())
	for i, p := range r.Pairs {
		mark := m.Wrong
		if p.Correct() {
			mark = m.Correct
		}
		fmt.Fprintf(&b, "%d. %s %s", i+1, mark, p.Expected)
		if i < len(r.texts) && r.texts[i] != "" {
			fmt.Fprintf(&b, " (%s)", r.texts[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Report) String() string { return r.Format(PlainMarks) }
