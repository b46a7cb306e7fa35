package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	Toggle         key.Binding
	Destroy        key.Binding
	Edit           key.Binding
	ToggleAll      key.Binding
	ClearCompleted key.Binding
	ShowAll        key.Binding
	ShowActive     key.Binding
	ShowCompleted  key.Binding
	FocusInput     key.Binding
	Help           key.Binding
	Quit           key.Binding
	ForceQuit      key.Binding

	// Text field bindings (header input and edit-in-place).
	Commit key.Binding
	Cancel key.Binding
	Blur   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Destroy:        key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Edit:           key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "edit")),
		ToggleAll:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		ClearCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		ShowAll:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		ShowActive:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		ShowCompleted:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		FocusInput:     key.NewBinding(key.WithKeys("tab", "n"), key.WithHelp("tab/n", "new todo")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:           key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Blur:   key.NewBinding(key.WithKeys("tab", "up", "down"), key.WithHelp("tab", "leave field")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Destroy, k.FocusInput, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Destroy},
		{k.Edit, k.ToggleAll, k.ClearCompleted, k.FocusInput},
		{k.ShowAll, k.ShowActive, k.ShowCompleted},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// KeysMarkdown is the key reference as a markdown document.
func KeysMarkdown() string {
	k := defaultKeyMap()
	var b strings.Builder
	b.WriteString("# Keys\n\n## List\n\n| Key | Action |\n| --- | --- |\n")
	for _, group := range k.FullHelp() {
		for _, kb := range group {
			fmt.Fprintf(&b, "| `%s` | %s |\n", kb.Help().Key, kb.Help().Desc)
		}
	}
	b.WriteString("\n## Text fields\n\n| Key | Action |\n| --- | --- |\n")
	for _, kb := range []key.Binding{k.Commit, k.Cancel, k.Blur} {
		fmt.Fprintf(&b, "| `%s` | %s |\n", kb.Help().Key, kb.Help().Desc)
	}
	b.WriteString("\nA blank title in the new-todo field is ignored. Saving an edit with a blank title deletes the todo.\n")
	return b.String()
}
