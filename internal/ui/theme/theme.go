// Package theme holds the colours and styles shared by quiz output, both
// the line-oriented text presenter and the full-screen UI.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette
var (
	Ink    = lipgloss.Color("#E2E8F0")
	InkDim = lipgloss.Color("#8A94A6")
	Rule   = lipgloss.Color("#3B4252")
	Brand  = lipgloss.Color("#5E81AC")
	Letter = lipgloss.Color("#88C0D0")
	Blank  = lipgloss.Color("#EBCB8B")
	Right  = lipgloss.Color("#A3BE8C")
	Wrong  = lipgloss.Color("#BF616A")
	Filled = lipgloss.Color("#81A1C1")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Brand)

	Statement = lipgloss.NewStyle().
			Foreground(Ink).
			Bold(true)

	// Mask marks the blank left where the target word was.
	Mask = lipgloss.NewStyle().
		Foreground(Blank).
		Bold(true)

	// Label is the choice letter in "A. text".
	Label = lipgloss.NewStyle().
		Foreground(Letter).
		Bold(true)

	Selected = lipgloss.NewStyle().
			Foreground(Brand).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Ink)

	Correct = lipgloss.NewStyle().
		Foreground(Right).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Wrong).
			Bold(true)

	ProgressFilled = lipgloss.NewStyle().
			Background(Filled)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Rule)
)
