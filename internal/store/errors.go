package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// ErrRunMismatch means the questions and answers files do not describe
// the same run.
var ErrRunMismatch = errors.New("questions and answers belong to different runs")

// FileError reports a failure reading, parsing or writing a file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// IsMissing reports whether err means there is no usable prior run: a file
// that does not exist, or one that ends before its JSON document does.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
