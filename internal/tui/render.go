package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/idilsaglam/todomvc/internal/app"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/ui"
)

// Each render* function draws one component from its slice of app.View.

func renderHeader(input textinput.Model) string {
	t := ui.Current()
	return t.Title.Render("todos") + "\n" + input.View()
}

func renderToggleAll(lv *app.ListView) string {
	t := ui.Current()
	box := t.Muted.Render(t.BoxUnchecked)
	if lv.AllCompleted {
		box = t.Success.Render(t.BoxChecked)
	}
	return box + " " + t.Muted.Render("Mark all as complete")
}

func renderRow(r app.RowView, selected bool, edit textinput.Model, width int) string {
	t := ui.Current()
	prefix := "  "
	if selected {
		prefix = t.Selected.Render(">") + " "
	}
	if r.Editing {
		return prefix + edit.View()
	}
	box := t.Muted.Render(t.BoxUnchecked)
	title := r.Title
	if width > 0 {
		title = ui.Truncate(title, width)
	}
	if r.Completed {
		box = t.Success.Render(t.BoxChecked)
		title = t.Done.Render(title)
	}
	return prefix + box + " " + title
}

func renderList(lv *app.ListView, cursor int, focused bool, edit textinput.Model, width int) string {
	lines := []string{renderToggleAll(lv)}
	titleWidth := 0
	if width > 0 {
		titleWidth = width - 8
	}
	for _, r := range lv.Rows {
		lines = append(lines, renderRow(r, focused && r.Index == cursor, edit, titleWidth))
	}
	if len(lv.Rows) == 0 {
		lines = append(lines, ui.Current().Muted.Render("  nothing to show"))
	}
	return strings.Join(lines, "\n")
}

type footerLink struct {
	Label    string
	Route    string
	Selected bool
}

func footerLinks(now model.Filter) []footerLink {
	links := make([]footerLink, 0, len(model.Filters))
	for _, f := range model.Filters {
		links = append(links, footerLink{Label: f.Label(), Route: f.Route(), Selected: f == now})
	}
	return links
}

func renderFooter(fv *app.FooterView) string {
	t := ui.Current()
	parts := []string{t.Pending.Render(ui.Pluralize(fv.Count, "item") + " left")}

	var links []string
	for _, l := range footerLinks(fv.NowShowing) {
		if l.Selected {
			links = append(links, t.LinkSelected.Render(l.Label))
		} else {
			links = append(links, t.Link.Render(l.Label))
		}
	}
	parts = append(parts, strings.Join(links, " "))

	if fv.CompletedCount > 0 {
		parts = append(parts, t.Accent.Render("Clear completed"))
	}
	return strings.Join(parts, "   ")
}
