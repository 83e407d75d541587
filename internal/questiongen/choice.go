package questiongen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Bounds on the number of choices per question. Choices are labelled with
// the letters A to Z.
const (
	MinChoices = 2
	MaxChoices = 26
)

// Choice is the ordinal of an answer within a question's choice list:
// A is 0, B is 1 and so on.
type Choice int

// NoAnswer records a missing or unparsable submission.
const NoAnswer Choice = -1

func (c Choice) String() string {
	if c < 0 || c >= MaxChoices {
		return "-"
	}
	return string(rune('A' + c))
}

// Answered reports whether c holds a submission.
func (c Choice) Answered() bool { return c != NoAnswer }

// Valid reports whether c addresses one of n choices.
func (c Choice) Valid(n int) bool { return c >= 0 && int(c) < n }

// ParseChoice reads a submission for a question with n choices. It accepts
// a letter in either case or a 1-based number. Anything else, including an
// out-of-range letter or number, is NoAnswer.
func ParseChoice(s string, n int) Choice {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoAnswer
	}

	if len(s) == 1 {
		r := s[0]
		switch {
		case r >= 'a' && r <= 'z':
			return checked(Choice(r-'a'), n)
		case r >= 'A' && r <= 'Z':
			return checked(Choice(r-'A'), n)
		}
	}
	if i, err := strconv.Atoi(s); err == nil {
		return checked(Choice(i-1), n)
	}
	return NoAnswer
}

func checked(c Choice, n int) Choice {
	if c.Valid(n) {
		return c
	}
	return NoAnswer
}

// MarshalJSON encodes a choice as its letter, and NoAnswer as null.
func (c Choice) MarshalJSON() ([]byte, error) {
	if !c.Answered() {
		return []byte("null"), nil
	}
	if !c.Valid(MaxChoices) {
		return nil, fmt.Errorf("choice ordinal %d out of range", int(c))
	}
	return json.Marshal(c.String())
}

func (c *Choice) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = NoAnswer
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("choice must be a letter or null: %w", err)
	}
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return fmt.Errorf("invalid choice %q", s)
	}
	*c = Choice(s[0] - 'A')
	return nil
}
