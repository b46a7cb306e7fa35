package app

import "github.com/idilsaglam/todomvc/internal/model"

// View is everything the presentation layer needs for one frame.
// List and Footer are nil when they should not be drawn.
type View struct {
	Revision int
	Header   HeaderView
	List     *ListView
	Footer   *FooterView
}

type HeaderView struct {
	Placeholder string
}

// ListView backs the item list. AllCompleted is the toggle-all checkbox state.
type ListView struct {
	ActiveCount  int
	AllCompleted bool
	Rows         []RowView
}

type RowView struct {
	Index     int
	ID        string
	Title     string
	Completed bool
	Editing   bool
}

type FooterView struct {
	Count          int
	CompletedCount int
	NowShowing     model.Filter
}

const headerPlaceholder = "What needs to be done?"

// Render derives the frame from the list, the filter and the edit marker.
func (c *Controller) Render() View {
	v := View{
		Revision: c.revision,
		Header:   HeaderView{Placeholder: headerPlaceholder},
	}

	active := c.todos.ActiveTodoCount()
	completed := c.todos.CompletedCount()

	if c.todos.Len() > 0 {
		shown := c.Shown()
		rows := make([]RowView, 0, len(shown))
		for i, it := range shown {
			rows = append(rows, RowView{
				Index:     i,
				ID:        it.ID,
				Title:     it.Title,
				Completed: it.Completed,
				Editing:   c.editing != "" && it.ID == c.editing,
			})
		}
		v.List = &ListView{
			ActiveCount:  active,
			AllCompleted: active == 0,
			Rows:         rows,
		}
	}

	if active > 0 || completed > 0 {
		v.Footer = &FooterView{
			Count:          active,
			CompletedCount: completed,
			NowShowing:     c.nowShowing,
		}
	}
	return v
}
