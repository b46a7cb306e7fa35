// Package router maps the three view paths to handlers. The navigation
// source (key press, --route flag) is the caller's concern.
package router

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todomvc/internal/logging"
)

var ErrNoRoute = errors.New("no route")

// Handler runs when its path is navigated to.
type Handler func()

type Router struct {
	routes   map[string]Handler
	location string
	logger   *log.Logger
}

type Option func(*Router)

// WithLocation sets the path Init dispatches, overriding its default.
func WithLocation(path string) Option {
	return func(r *Router) { r.location = Normalize(path) }
}

func WithLogger(l *log.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(opts ...Option) *Router {
	r := &Router{
		routes: map[string]Handler{},
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount registers handlers by path. Later mounts replace earlier ones.
func (r *Router) Mount(routes map[string]Handler) {
	for path, h := range routes {
		r.routes[Normalize(path)] = h
	}
}

// Init dispatches the current location once, or defaultPath when no
// location has been set.
func (r *Router) Init(defaultPath string) error {
	path := r.location
	if path == "" {
		path = Normalize(defaultPath)
	}
	return r.Navigate(path)
}

// Navigate runs the handler for path. Unknown paths leave the location unchanged.
func (r *Router) Navigate(path string) error {
	p := Normalize(path)
	h, ok := r.routes[p]
	if !ok {
		r.logger.Warn("unknown route", "path", path)
		return fmt.Errorf("%w: %s", ErrNoRoute, path)
	}
	r.location = p
	r.logger.Debug("navigate", "path", p)
	h()
	return nil
}

// Location is the last successfully dispatched path.
func (r *Router) Location() string { return r.location }

// Normalize turns "#/active", "active" and "/active/" into "/active".
// Empty input is the root path.
func Normalize(path string) string {
	p := strings.TrimSpace(path)
	p = strings.TrimPrefix(p, "#")
	p = strings.Trim(p, "/")
	return "/" + p
}
