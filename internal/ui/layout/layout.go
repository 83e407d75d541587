package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Smallest terminal the quiz screen renders in.
const (
	MinWidth  = 60
	MinHeight = 16
)

// KeyHint is one "key description" pair shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the screen with a resize request.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small: %dx%d\nResize to at least %dx%d to continue.",
		width, height, MinWidth, MinHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Ink).Render(msg))
}

var rule = lipgloss.NewStyle().Foreground(theme.Rule)

// RenderHeader renders the app name with status right-aligned above a
// horizontal rule.
func RenderHeader(status string, width int) string {
	left := theme.Title.Render(" quizgen")
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(status)-1, 1)
	line := left + strings.Repeat(" ", gap) + status
	return line + "\n" + rule.Render(strings.Repeat("─", max(width, 0)))
}

// RenderFooter renders key hints below a horizontal rule.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Letter).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.InkDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return rule.Render(strings.Repeat("─", max(width, 0))) + "\n " + strings.Join(parts, "  ·  ")
}

// RenderFrame stacks header, content and footer, giving the content all
// rows the other two leave.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).MaxHeight(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
