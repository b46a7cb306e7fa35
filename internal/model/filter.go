package model

import "strings"

// Filter selects which items a view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Route paths, one per filter.
const (
	RouteAll       = "/"
	RouteActive    = "/active"
	RouteCompleted = "/completed"
)

// Filters lists every filter in footer order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// Route returns the navigation path that selects f.
func (f Filter) Route() string {
	switch f {
	case FilterActive:
		return RouteActive
	case FilterCompleted:
		return RouteCompleted
	default:
		return RouteAll
	}
}

// Label is the footer link text.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Match reports whether it is shown under f.
func (f Filter) Match(it Item) bool {
	switch f {
	case FilterActive:
		return !it.Completed
	case FilterCompleted:
		return it.Completed
	default:
		return true
	}
}

// FilterForRoute maps a route path back to its filter.
func FilterForRoute(path string) (Filter, bool) {
	switch strings.TrimSpace(path) {
	case RouteAll:
		return FilterAll, true
	case RouteActive:
		return FilterActive, true
	case RouteCompleted:
		return FilterCompleted, true
	}
	return "", false
}

// Visible returns the subsequence of items matching f, in original order.
func Visible(items []Item, f Filter) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Stats counts active and completed items.
func Stats(items []Item) (active, completed int) {
	for _, it := range items {
		if it.Completed {
			completed++
		} else {
			active++
		}
	}
	return
}
