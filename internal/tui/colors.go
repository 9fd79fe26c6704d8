package tui

import "github.com/charmbracelet/lipgloss"

// Message prefixes used by the Format helpers.
const (
	successPrefix = "✅ "
	warningPrefix = "⚠️  "
	errorPrefix   = "❌ "
	hintPrefix    = "👉 "
)

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorDim renders text in a muted gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(text)
}

// FormatSuccess renders msg as a green success line.
func FormatSuccess(msg string) string {
	return ColorGreen(successPrefix + msg)
}

// FormatWarning renders msg as a yellow warning line.
func FormatWarning(msg string) string {
	return ColorYellow(warningPrefix + msg)
}

// FormatError renders msg as a red error line.
func FormatError(msg string) string {
	return ColorRed(errorPrefix + msg)
}

// FormatHint renders a remediation hint.
func FormatHint(msg string) string {
	return ColorCyan(hintPrefix + msg)
}
