package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizgen/internal/questiongen"
	"github.com/abhisek/quizgen/internal/session"
)

// Run is one graded quiz as it is persisted.
type Run struct {
	ID        uuid.UUID
	SavedAt   time.Time
	Start     time.Time
	End       time.Time
	Questions []*questiongen.Question
	Pairs     []session.Pair
}

// NewRun pairs the questions of a graded session with its report under a
// fresh run id.
func NewRun(questions []*questiongen.Question, report *session.Report) *Run {
	return &Run{
		ID:        uuid.New(),
		Start:     report.Start,
		End:       report.End,
		Questions: questions,
		Pairs:     report.Pairs,
	}
}

// Report rebuilds the grade report of the run.
func (r *Run) Report() *session.Report {
	texts := make([]string, len(r.Questions))
	for i, q := range r.Questions {
		texts[i] = q.Answer()
	}
	return session.NewReport(r.Start, r.End, r.Pairs, texts)
}

type questionsDoc struct {
	RunID     uuid.UUID               `json:"run_id"`
	SavedAt   time.Time               `json:"saved_at"`
	Questions []*questiongen.Question `json:"questions"`
}

type answersDoc struct {
	RunID      uuid.UUID      `json:"run_id"`
	SavedAt    time.Time      `json:"saved_at"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Answers    []session.Pair `json:"answers"`
}

// Save writes both run files, replacing any previous run. Both files are
// staged before either is renamed into place, answers first.
func (s *Store) Save(run *Run) error {
	if len(run.Questions) != len(run.Pairs) {
		return fmt.Errorf("run has %d questions but %d answers", len(run.Questions), len(run.Pairs))
	}
	run.SavedAt = time.Now().UTC()

	answers, err := stageJSON(s.AnswersPath(), answersDoc{
		RunID:      run.ID,
		SavedAt:    run.SavedAt,
		StartedAt:  run.Start,
		FinishedAt: run.End,
		Answers:    run.Pairs,
	})
	if err != nil {
		return err
	}
	defer os.Remove(answers)

	questions, err := stageJSON(s.QuestionsPath(), questionsDoc{
		RunID:     run.ID,
		SavedAt:   run.SavedAt,
		Questions: run.Questions,
	})
	if err != nil {
		return err
	}
	defer os.Remove(questions)

	if err := os.Rename(answers, s.AnswersPath()); err != nil {
		return &FileError{Op: "write", Path: s.AnswersPath(), Err: err}
	}
	if err := os.Rename(questions, s.QuestionsPath()); err != nil {
		return &FileError{Op: "write", Path: s.QuestionsPath(), Err: err}
	}
	return nil
}

// Load reads both run files and checks that they describe the same run.
// Errors are *FileError values except a run mismatch, which wraps
// ErrRunMismatch.
func (s *Store) Load() (*Run, error) {
	var qd questionsDoc
	if err := readJSON(s.QuestionsPath(), QuestionsFile, &qd); err != nil {
		return nil, err
	}
	for i, q := range qd.Questions {
		if q == nil {
			return nil, &FileError{Op: "validate", Path: s.QuestionsPath(), Err: fmt.Errorf("question %d is null", i+1)}
		}
		if err := q.Validate(); err != nil {
			return nil, &FileError{Op: "validate", Path: s.QuestionsPath(), Err: fmt.Errorf("question %d: %w", i+1, err)}
		}
	}

	var ad answersDoc
	if err := readJSON(s.AnswersPath(), AnswersFile, &ad); err != nil {
		return nil, err
	}

	if qd.RunID != ad.RunID {
		return nil, fmt.Errorf("%w: %s vs %s (%s)", ErrRunMismatch, qd.RunID, ad.RunID, s.resetHint())
	}
	if len(qd.Questions) != len(ad.Answers) {
		return nil, fmt.Errorf("%w: %d questions but %d answers (%s)",
			ErrRunMismatch, len(qd.Questions), len(ad.Answers), s.resetHint())
	}
	for i, p := range ad.Answers {
		q := qd.Questions[i]
		if p.Expected != q.Solution {
			return nil, &FileError{Op: "validate", Path: s.AnswersPath(),
				Err: fmt.Errorf("answer %d expects %s but the question's solution is %s", i+1, p.Expected, q.Solution)}
		}
		if p.Submitted.Answered() && !p.Submitted.Valid(len(q.Choices)) {
			return nil, &FileError{Op: "validate", Path: s.AnswersPath(),
				Err: fmt.Errorf("answer %d submitted %s but the question has %d choices", i+1, p.Submitted, len(q.Choices))}
		}
	}

	return &Run{
		ID:        qd.RunID,
		SavedAt:   qd.SavedAt,
		Start:     ad.StartedAt,
		End:       ad.FinishedAt,
		Questions: qd.Questions,
		Pairs:     ad.Answers,
	}, nil
}

// readJSON reads path, validates it against the named schema and decodes
// it into out. A missing or truncated file keeps its underlying error
// (fs.ErrNotExist, io.EOF or io.ErrUnexpectedEOF) reachable via errors.Is.
func readJSON(path, schemaName string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &FileError{Op: "read", Path: path, Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return &FileError{Op: "parse", Path: path, Err: err}
	}

	sch, err := schemaFor(schemaName)
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return &FileError{Op: "validate", Path: path, Err: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &FileError{Op: "decode", Path: path, Err: err}
	}
	return nil
}

// stageJSON writes v as indented JSON to a temporary file next to path
// and returns the temporary file's name. The caller renames it into place
// so a crash never leaves a half-written run file behind.
func stageJSON(path string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", &FileError{Op: "encode", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", &FileError{Op: "write", Path: path, Err: err}
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", &FileError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", &FileError{Op: "write", Path: path, Err: err}
	}
	return tmp.Name(), nil
}

func (s *Store) resetHint() string {
	return fmt.Sprintf("remove %s and %s to start fresh", s.QuestionsPath(), s.AnswersPath())
}
