package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Pending, Error lipgloss.Style
	Selected, Done, Link, LinkSelected            lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	SymCheck, SymCross       string
}

var themes = map[string]Theme{
	"classic": {
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Link:         lipgloss.NewStyle().Faint(true),
		LinkSelected: lipgloss.NewStyle().Bold(true).Underline(true),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("8"),
		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		SymDone:      "✔",
		SymPending:   "•",
		SymCheck:     "✔",
		SymCross:     "✖",
	},
	"neon": {
		Name:         "neon",
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")),
		Done:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
		Link:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		LinkSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Underline(true),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("13"),
		BoxUnchecked: "◻",
		BoxChecked:   "◼",
		SymDone:      "✔",
		SymPending:   "•",
		SymCheck:     "✔",
		SymCross:     "✖",
	},
	"mono": {
		Name:         "mono",
		Title:        lipgloss.NewStyle(),
		Muted:        lipgloss.NewStyle(),
		Accent:       lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle(),
		Pending:      lipgloss.NewStyle(),
		Error:        lipgloss.NewStyle(),
		Selected:     lipgloss.NewStyle().Reverse(true),
		Done:         lipgloss.NewStyle(),
		Link:         lipgloss.NewStyle(),
		LinkSelected: lipgloss.NewStyle().Underline(true),
		Border:       lipgloss.NormalBorder(),
		BorderColor:  lipgloss.NoColor{},
		BoxUnchecked: "[ ]",
		BoxChecked:   "[x]",
		SymDone:      "x",
		SymPending:   "-",
		SymCheck:     "ok",
		SymCross:     "error:",
	},
}

var current = themes["classic"]

// ThemeNames lists the accepted theme names.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }

// ValidTheme reports whether SetTheme accepts name.
func ValidTheme(name string) bool {
	_, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return ok || strings.TrimSpace(name) == ""
}

// SetTheme switches the current theme. Empty selects classic.
func SetTheme(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "classic"
	}
	t, ok := themes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames(), ", "))
	}
	current = t
	return nil
}

// Expose what renderers need
func Current() Theme { return current }
