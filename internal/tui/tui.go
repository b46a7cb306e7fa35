// Package tui is the interactive front end: a header input, the item
// list with edit-in-place rows, and a footer with counts and filter links.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todomvc/internal/app"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/ui"
)

type focusArea int

const (
	focusHeader focusArea = iota
	focusList
)

// Model is the Bubble Tea model. All state beyond focus, cursor and the
// two text fields lives in the controller.
type Model struct {
	ctx  context.Context
	ctrl *app.Controller
	keys keyMap
	help help.Model

	header textinput.Model
	edit   textinput.Model

	focus    focusArea
	cursor   int
	revision int
	status   string
	// stale forces a resync: a failed write changes the list without a
	// revision bump.
	stale    bool

	width, height int
}

// New builds the model with the header input focused.
func New(ctx context.Context, ctrl *app.Controller) Model {
	header := textinput.New()
	header.Prompt = "❯ "
	header.Placeholder = ctrl.Render().Header.Placeholder
	header.CharLimit = 200
	header.Focus()

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = 200

	h := help.New()
	t := ui.Current()
	h.Styles.ShortKey = t.Muted
	h.Styles.ShortDesc = t.Muted
	h.Styles.FullKey = t.Muted
	h.Styles.FullDesc = t.Muted

	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		keys:     defaultKeyMap(),
		help:     h,
		header:   header,
		edit:     edit,
		focus:    focusHeader,
		revision: ctrl.Revision(),
	}
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(ctx context.Context, ctrl *app.Controller) error {
	p := tea.NewProgram(New(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if msg.Width > 20 {
			m.header.Width = msg.Width - 8
			m.edit.Width = msg.Width - 10
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		switch {
		case m.ctrl.Editing() != "":
			m, cmd = m.updateEditing(msg)
		case m.focus == focusHeader:
			m, cmd = m.updateHeader(msg)
		default:
			m, cmd = m.updateList(msg)
		}
		m.sync()
		return m, cmd
	}

	// cursor blink and other non-key messages go to whichever field is live
	var cmd tea.Cmd
	if m.ctrl.Editing() != "" {
		m.edit, cmd = m.edit.Update(msg)
	} else if m.focus == focusHeader {
		m.header, cmd = m.header.Update(msg)
	}
	return m, cmd
}

func (m Model) updateHeader(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		if strings.TrimSpace(m.header.Value()) == "" {
			return m, nil
		}
		m.report(m.ctrl.Add(m.ctx, m.header.Value()))
		m.header.SetValue("")
		return m, nil
	case key.Matches(msg, m.keys.Cancel, m.keys.Blur):
		if m.ctrl.Render().List != nil {
			m.focus = focusList
			m.header.Blur()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.header, cmd = m.header.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	v := m.ctrl.Render()
	rows := 0
	if v.List != nil {
		rows = len(v.List.Rows)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < rows-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.report(m.ctrl.Toggle(m.ctx, m.cursor))
	case key.Matches(msg, m.keys.Destroy):
		m.report(m.ctrl.Destroy(m.ctx, m.cursor))
	case key.Matches(msg, m.keys.Edit):
		if m.cursor < rows {
			m.ctrl.Edit(m.cursor)
			m.edit.SetValue(v.List.Rows[m.cursor].Title)
			m.edit.CursorEnd()
			cmd := m.edit.Focus()
			return m, cmd
		}
	case key.Matches(msg, m.keys.ToggleAll):
		if v.List != nil {
			m.report(m.ctrl.ToggleAll(m.ctx, !v.List.AllCompleted))
		}
	case key.Matches(msg, m.keys.ClearCompleted):
		if v.Footer != nil && v.Footer.CompletedCount > 0 {
			m.report(m.ctrl.ClearCompleted(m.ctx))
		}
	case key.Matches(msg, m.keys.ShowAll):
		m.navigate(model.RouteAll)
	case key.Matches(msg, m.keys.ShowActive):
		m.navigate(model.RouteActive)
	case key.Matches(msg, m.keys.ShowCompleted):
		m.navigate(model.RouteCompleted)
	case key.Matches(msg, m.keys.FocusInput):
		m.focus = focusHeader
		cmd := m.header.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit), key.Matches(msg, m.keys.Blur):
		m.report(m.ctrl.Save(m.ctx, m.editingIndex(), m.edit.Value()))
		m.edit.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Cancel()
		m.edit.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	return m, cmd
}

func (m *Model) editingIndex() int {
	id := m.ctrl.Editing()
	if v := m.ctrl.Render(); v.List != nil {
		for _, r := range v.List.Rows {
			if r.ID == id {
				return r.Index
			}
		}
	}
	return -1
}

func (m *Model) navigate(route string) {
	m.report(m.ctrl.Navigate(route))
	m.cursor = 0
}

func (m *Model) report(err error) {
	if err != nil {
		m.status = err.Error()
		m.stale = true
		return
	}
	m.status = ""
}

// sync re-reads the controller after it changed and keeps the cursor on a row.
func (m *Model) sync() {
	rev := m.ctrl.Revision()
	if rev == m.revision && !m.stale {
		return
	}
	m.revision = rev
	m.stale = false
	v := m.ctrl.Render()
	if v.List == nil {
		m.cursor = 0
		if m.focus == focusList {
			m.focus = focusHeader
			m.header.Focus()
		}
		return
	}
	if n := len(v.List.Rows); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m Model) View() string {
	v := m.ctrl.Render()
	sections := []string{renderHeader(m.header)}
	if v.List != nil {
		sections = append(sections, renderList(v.List, m.cursor, m.focus == focusList, m.edit, m.width))
	}
	if v.Footer != nil {
		sections = append(sections, renderFooter(v.Footer))
	}
	if m.status != "" {
		sections = append(sections, ui.Current().Error.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))
	return ui.Panel(joinWithGaps(sections))
}

func joinWithGaps(sections []string) []string {
	out := make([]string, 0, len(sections)*2)
	for i, s := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, s)
	}
	return out
}
