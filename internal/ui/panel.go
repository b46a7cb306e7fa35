package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in the current theme's border.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Truncate cuts s to width visible cells, ANSI-aware.
func Truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// Pluralize returns "1 item", "2 items", "0 items".
func Pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymCheck+" "+msg))
}

func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Render(t.SymCross+" "+msg))
}
