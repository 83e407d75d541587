package questiongen

import (
	"errors"
	"fmt"
)

// ErrData matches every DataError via errors.Is.
var ErrData = errors.New("unusable lexical data")

// DataError reports that a word's lexical data cannot produce a valid
// question. The word should be skipped.
type DataError struct {
	Word   string
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("unusable lexical data for %q: %s", e.Word, e.Reason)
}

func (e *DataError) Is(target error) bool { return target == ErrData }

func dataErrorf(word, format string, args ...any) *DataError {
	return &DataError{Word: word, Reason: fmt.Sprintf(format, args...)}
}
