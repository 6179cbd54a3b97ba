package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Stderr is where Error and Warning write. Tests replace it.
var Stderr io.Writer = os.Stderr

// Error prints a formatted error line to Stderr
func Error(format string, args ...any) {
	fmt.Fprintln(Stderr, errorStyle.Render("ERROR:")+" "+fmt.Sprintf(format, args...))
}

// Warning prints a formatted warning line to Stderr
func Warning(format string, args ...any) {
	fmt.Fprintln(Stderr, warningStyle.Render("WARNING:")+" "+fmt.Sprintf(format, args...))
}

// Success formats a confirmation line
func Success(format string, args ...any) string {
	return successStyle.Render(fmt.Sprintf(format, args...))
}
