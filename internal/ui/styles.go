package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	DoneStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	HelpStyle = lipgloss.NewStyle().Faint(true)

	BoxChecked   = "☑"
	BoxUnchecked = "☐"
)

var plain bool

// SetColorMode controls styling: "always" and "auto" style the output,
// "never" emits plain text (useful for pipes and tests).
func SetColorMode(mode string) {
	plain = mode == "never"
}

func render(st lipgloss.Style, s string) string {
	if plain {
		return s
	}
	return st.Render(s)
}

// Title renders s in the title style.
func Title(s string) string { return render(TitleStyle, s) }

// OK prints a confirmation notice.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, render(successStyle, "✔ "+msg))
}

// Fail prints an error notice.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, render(errorStyle, "✖ "+msg))
}

// Muted prints a dimmed informational line.
func Muted(w io.Writer, msg string) {
	fmt.Fprintln(w, render(mutedStyle, msg))
}
