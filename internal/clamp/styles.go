package clamp

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the check reporter and the generate summary.
// Lipgloss degrades colors on terminals that cannot show them.
var (
	// StyleCyan marks row locations and section headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed marks errors and failed checks.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow marks warnings and applied fixes.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen marks written files and a clean check.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray marks linter names, hints and dry-run output.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// severityStyle picks the style for an issue severity label
func severityStyle(severity string) lipgloss.Style {
	if severity == SeverityError {
		return StyleRed
	}
	return StyleYellow
}
