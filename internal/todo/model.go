// Package todo owns the ordered todo list. Every mutation is persisted as a
// whole-list overwrite and then announced to subscribers.
package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/idilsaglam/todomvc/internal/logging"
	"github.com/idilsaglam/todomvc/internal/model"
)

// StorageKey is the slot the list is written to.
const StorageKey = "todos-go"

var (
	ErrEmptyTitle = errors.New("todo title is empty")
	ErrNotFound   = errors.New("todo not found")
)

// Storage is the durable key-value slot the list lives in.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Model is the todo list. It is not safe for concurrent use; callers run
// on a single event loop.
type Model struct {
	storage Storage
	key     string
	logger  *log.Logger
	newID   func() string

	todos       []model.Item
	subscribers map[int]func()
	nextSub     int
}

type Option func(*Model)

func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *Model) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// WithKey overrides StorageKey.
func WithKey(key string) Option {
	return func(m *Model) {
		if key != "" {
			m.key = key
		}
	}
}

// New loads the list from storage. An absent slot is an empty list.
func New(ctx context.Context, storage Storage, opts ...Option) (*Model, error) {
	m := &Model{
		storage:     storage,
		key:         StorageKey,
		logger:      logging.Discard(),
		newID:       func() string { return uuid.NewString() },
		subscribers: map[int]func(){},
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.load(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) load(ctx context.Context) error {
	raw, ok, err := m.storage.Get(ctx, m.key)
	if err != nil {
		return fmt.Errorf("load todos: %w", err)
	}
	m.todos = []model.Item{}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	seen := make(map[string]bool, len(items))
	reassigned := 0
	for _, it := range items {
		if strings.TrimSpace(it.Title) == "" {
			m.logger.Warn("dropping stored todo with empty title", "id", it.ID)
			continue
		}
		if it.ID == "" || seen[it.ID] {
			it.ID = m.newID()
			reassigned++
		}
		seen[it.ID] = true
		m.todos = append(m.todos, it)
	}
	m.logger.Debug("loaded todos", "count", len(m.todos))
	if reassigned > 0 {
		m.logger.Warn("assigned fresh ids to stored todos", "count", reassigned)
		if err := m.persist(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Todos returns a copy of the list in display order.
func (m *Model) Todos() []model.Item {
	out := make([]model.Item, len(m.todos))
	copy(out, m.todos)
	return out
}

// Len is the total number of items.
func (m *Model) Len() int { return len(m.todos) }

// Subscribe registers fn to run after every successful mutation. The
// returned func removes it.
func (m *Model) Subscribe(fn func()) (unsubscribe func()) {
	id := m.nextSub
	m.nextSub++
	m.subscribers[id] = fn
	return func() { delete(m.subscribers, id) }
}

// AddTodo appends a new active item.
func (m *Model) AddTodo(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	it := model.Item{ID: m.newID(), Title: title}
	m.todos = append(m.todos, it)
	m.logger.Debug("add", "id", it.ID)
	return m.inform(ctx)
}

// Toggle flips completed on the item with it.ID.
func (m *Model) Toggle(ctx context.Context, it model.Item) error {
	i := m.indexOf(it.ID)
	if i < 0 {
		return fmt.Errorf("toggle %s: %w", it.ID, ErrNotFound)
	}
	m.todos[i].Completed = !m.todos[i].Completed
	m.logger.Debug("toggle", "id", it.ID, "completed", m.todos[i].Completed)
	return m.inform(ctx)
}

// ToggleAll sets completed=checked on every item.
func (m *Model) ToggleAll(ctx context.Context, checked bool) error {
	for i := range m.todos {
		m.todos[i].Completed = checked
	}
	m.logger.Debug("toggle all", "completed", checked)
	return m.inform(ctx)
}

// Destroy removes the item with it.ID.
func (m *Model) Destroy(ctx context.Context, it model.Item) error {
	i := m.indexOf(it.ID)
	if i < 0 {
		return fmt.Errorf("destroy %s: %w", it.ID, ErrNotFound)
	}
	m.todos = append(m.todos[:i], m.todos[i+1:]...)
	m.logger.Debug("destroy", "id", it.ID)
	return m.inform(ctx)
}

// Save retitles the item with it.ID.
func (m *Model) Save(ctx context.Context, it model.Item, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyTitle
	}
	i := m.indexOf(it.ID)
	if i < 0 {
		return fmt.Errorf("save %s: %w", it.ID, ErrNotFound)
	}
	m.todos[i].Title = text
	m.logger.Debug("save", "id", it.ID)
	return m.inform(ctx)
}

// ClearCompleted drops every completed item, keeping the order of the rest.
func (m *Model) ClearCompleted(ctx context.Context) error {
	kept := m.todos[:0]
	for _, it := range m.todos {
		if !it.Completed {
			kept = append(kept, it)
		}
	}
	removed := len(m.todos) - len(kept)
	m.todos = kept
	m.logger.Debug("clear completed", "removed", removed)
	return m.inform(ctx)
}

func (m *Model) ActiveTodoCount() int {
	n := 0
	for _, it := range m.todos {
		if !it.Completed {
			n++
		}
	}
	return n
}

func (m *Model) CompletedCount() int {
	return len(m.todos) - m.ActiveTodoCount()
}

func (m *Model) indexOf(id string) int {
	for i, it := range m.todos {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// inform persists the whole list, then notifies. A failed write is
// returned and subscribers are not called; memory is not rolled back.
func (m *Model) inform(ctx context.Context) error {
	if err := m.persist(ctx); err != nil {
		m.logger.Error("persist todos", "err", err)
		return err
	}
	for _, fn := range m.subscribers {
		fn()
	}
	return nil
}

func (m *Model) persist(ctx context.Context) error {
	b, err := json.Marshal(m.todos)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := m.storage.Set(ctx, m.key, string(b)); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}
	return nil
}
