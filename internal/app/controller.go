// Package app wires the router and the todo list together and holds the
// transient view state: the current filter and the row being edited.
package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todomvc/internal/logging"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/router"
	"github.com/idilsaglam/todomvc/internal/todo"
)

// Controller dispatches user actions to the todo list. Row arguments are
// 0-based positions in the currently filtered view and are resolved
// again on every call.
type Controller struct {
	todos  *todo.Model
	router *router.Router
	logger *log.Logger

	nowShowing model.Filter
	editing    string
	revision   int

	unsubscribe func()
	onChange    func()
}

type Option func(*Controller)

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// OnChange registers fn to run after each list change has been folded
// into the controller's revision.
func OnChange(fn func()) Option {
	return func(c *Controller) { c.onChange = fn }
}

// New mounts the filter routes and subscribes to the list. Call Start to
// dispatch the initial route.
func New(todos *todo.Model, r *router.Router, opts ...Option) *Controller {
	c := &Controller{
		todos:      todos,
		router:     r,
		logger:     logging.Discard(),
		nowShowing: model.FilterAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	routes := make(map[string]router.Handler, len(model.Filters))
	for _, f := range model.Filters {
		routes[f.Route()] = func() { c.show(f) }
	}
	r.Mount(routes)
	c.unsubscribe = todos.Subscribe(c.changed)
	return c
}

// Start dispatches the router's initial location, defaulting to "/".
func (c *Controller) Start() error {
	return c.router.Init(model.RouteAll)
}

// Close drops the list subscription.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Navigate forwards to the router.
func (c *Controller) Navigate(path string) error {
	return c.router.Navigate(path)
}

func (c *Controller) show(f model.Filter) {
	c.nowShowing = f
	c.revision++
	c.logger.Debug("now showing", "filter", f)
}

func (c *Controller) changed() {
	c.revision++
	if c.onChange != nil {
		c.onChange()
	}
}

func (c *Controller) NowShowing() model.Filter { return c.nowShowing }

// Editing is the id of the row in edit mode, or "".
func (c *Controller) Editing() string { return c.editing }

// Revision increases on every list change and navigation.
func (c *Controller) Revision() int { return c.revision }

// Shown is the filtered view rows are indexed into.
func (c *Controller) Shown() []model.Item {
	return model.Visible(c.todos.Todos(), c.nowShowing)
}

func (c *Controller) resolve(index int) (model.Item, bool) {
	shown := c.Shown()
	if index < 0 || index >= len(shown) {
		c.logger.Debug("stale row index", "index", index, "shown", len(shown))
		return model.Item{}, false
	}
	return shown[index], true
}

// Add forwards a non-empty title; blank titles are dropped silently.
func (c *Controller) Add(ctx context.Context, title string) error {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	return c.todos.AddTodo(ctx, title)
}

func (c *Controller) ToggleAll(ctx context.Context, checked bool) error {
	return c.todos.ToggleAll(ctx, checked)
}

func (c *Controller) Toggle(ctx context.Context, index int) error {
	it, ok := c.resolve(index)
	if !ok {
		return nil
	}
	return c.todos.Toggle(ctx, it)
}

func (c *Controller) Destroy(ctx context.Context, index int) error {
	it, ok := c.resolve(index)
	if !ok {
		return nil
	}
	if it.ID == c.editing {
		c.editing = ""
	}
	return c.todos.Destroy(ctx, it)
}

// Edit puts the row into edit mode, replacing any row already editing.
func (c *Controller) Edit(index int) {
	it, ok := c.resolve(index)
	if !ok {
		return
	}
	c.editing = it.ID
	c.revision++
}

// Save retitles the row and leaves edit mode. Blank text destroys the row.
func (c *Controller) Save(ctx context.Context, index int, text string) error {
	it, ok := c.resolve(index)
	c.editing = ""
	c.revision++
	if !ok {
		return nil
	}
	err := c.todos.Save(ctx, it, text)
	if errors.Is(err, todo.ErrEmptyTitle) {
		return c.todos.Destroy(ctx, it)
	}
	return err
}

func (c *Controller) Cancel() {
	c.editing = ""
	c.revision++
}

func (c *Controller) ClearCompleted(ctx context.Context) error {
	return c.todos.ClearCompleted(ctx)
}
