package todo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/store/memstore"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestModel(t *testing.T, titles ...string) (*Model, *memstore.Store) {
	t.Helper()
	kv := memstore.New()
	m, err := New(context.Background(), kv, WithIDGenerator(seqIDs()))
	require.NoError(t, err)
	for _, title := range titles {
		require.NoError(t, m.AddTodo(context.Background(), title))
	}
	return m, kv
}

func titlesOf(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestNew_EmptyStorageIsEmptyList(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Todos())
}

func TestAddTodo_AppendsTrimmed(t *testing.T) {
	m, _ := newTestModel(t, "Item #1")

	require.NoError(t, m.AddTodo(context.Background(), "  Item #2  "))

	todos := m.Todos()
	require.Len(t, todos, 2)
	assert.Equal(t, "Item #2", todos[1].Title)
	assert.False(t, todos[1].Completed)
	assert.Equal(t, "id-2", todos[1].ID)
}

func TestAddTodo_RejectsBlank(t *testing.T) {
	m, _ := newTestModel(t, "Item #1")
	calls := 0
	m.Subscribe(func() { calls++ })

	err := m.AddTodo(context.Background(), "   \t")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Equal(t, 1, m.Len())
	assert.Zero(t, calls)
}

func TestToggle_FlipsOnlyThatItem(t *testing.T) {
	m, _ := newTestModel(t, "a", "b", "c")
	b := m.Todos()[1]

	require.NoError(t, m.Toggle(context.Background(), b))

	todos := m.Todos()
	assert.False(t, todos[0].Completed)
	assert.True(t, todos[1].Completed)
	assert.False(t, todos[2].Completed)

	require.NoError(t, m.Toggle(context.Background(), b))
	assert.False(t, m.Todos()[1].Completed)
}

func TestToggle_UnknownItem(t *testing.T) {
	m, _ := newTestModel(t, "a")
	err := m.Toggle(context.Background(), model.Item{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleAll(t *testing.T) {
	m, _ := newTestModel(t, "a", "b", "c")
	ctx := context.Background()

	require.NoError(t, m.ToggleAll(ctx, true))
	assert.Equal(t, 0, m.ActiveTodoCount())
	assert.Equal(t, 3, m.CompletedCount())

	require.NoError(t, m.ToggleAll(ctx, false))
	assert.Equal(t, 3, m.ActiveTodoCount())
	assert.Equal(t, 0, m.CompletedCount())
}

func TestDestroy(t *testing.T) {
	m, _ := newTestModel(t, "a", "b", "c")

	require.NoError(t, m.Destroy(context.Background(), m.Todos()[1]))
	assert.Equal(t, []string{"a", "c"}, titlesOf(m.Todos()))

	err := m.Destroy(context.Background(), model.Item{ID: "id-2"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSave(t *testing.T) {
	m, _ := newTestModel(t, "a")
	it := m.Todos()[0]

	require.NoError(t, m.Save(context.Background(), it, " renamed "))
	assert.Equal(t, "renamed", m.Todos()[0].Title)
	assert.Equal(t, it.ID, m.Todos()[0].ID)

	assert.ErrorIs(t, m.Save(context.Background(), it, "  "), ErrEmptyTitle)
	assert.Equal(t, "renamed", m.Todos()[0].Title)
}

func TestClearCompleted_KeepsOrder(t *testing.T) {
	m, _ := newTestModel(t, "a", "b", "c", "d")
	ctx := context.Background()
	todos := m.Todos()
	require.NoError(t, m.Toggle(ctx, todos[0]))
	require.NoError(t, m.Toggle(ctx, todos[2]))

	require.NoError(t, m.ClearCompleted(ctx))
	assert.Equal(t, []string{"b", "d"}, titlesOf(m.Todos()))
	assert.Equal(t, 0, m.CompletedCount())
}

func TestTodos_ReturnsCopy(t *testing.T) {
	m, _ := newTestModel(t, "a")
	todos := m.Todos()
	todos[0].Completed = true
	assert.False(t, m.Todos()[0].Completed)
}

func TestSubscribe_NotifiedAfterEachMutation(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	calls := 0
	unsubscribe := m.Subscribe(func() { calls++ })

	require.NoError(t, m.AddTodo(ctx, "a"))
	it := m.Todos()[0]
	require.NoError(t, m.Toggle(ctx, it))
	require.NoError(t, m.ToggleAll(ctx, false))
	require.NoError(t, m.Save(ctx, it, "b"))
	require.NoError(t, m.ClearCompleted(ctx))
	require.NoError(t, m.Destroy(ctx, it))
	assert.Equal(t, 6, calls)

	unsubscribe()
	require.NoError(t, m.AddTodo(ctx, "c"))
	assert.Equal(t, 6, calls)
}

func TestPersist_BeforeNotify(t *testing.T) {
	m, kv := newTestModel(t)
	ctx := context.Background()
	var seen string
	m.Subscribe(func() {
		seen, _, _ = kv.Get(ctx, StorageKey)
	})

	require.NoError(t, m.AddTodo(ctx, "Item #1"))
	assert.JSONEq(t, `[{"id":"id-1","title":"Item #1","completed":false}]`, seen)
}

func TestPersist_FailurePropagates(t *testing.T) {
	m, kv := newTestModel(t, "a")
	boom := errors.New("disk full")
	kv.FailSet = boom
	calls := 0
	m.Subscribe(func() { calls++ })

	err := m.AddTodo(context.Background(), "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, calls)
	// no rollback
	assert.Equal(t, 2, m.Len())
}

func TestLoad_RoundTrip(t *testing.T) {
	m, kv := newTestModel(t, "a", "b", "c")
	require.NoError(t, m.Toggle(context.Background(), m.Todos()[1]))

	reloaded, err := New(context.Background(), kv)
	require.NoError(t, err)
	assert.Equal(t, m.Todos(), reloaded.Todos())
}

func TestLoad_DropsBlankTitlesAndRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	kv := memstore.New()
	require.NoError(t, kv.Set(ctx, StorageKey, `[{"id":"1","title":" "},{"id":"2","title":"ok"}]`))

	m, err := New(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, titlesOf(m.Todos()))

	require.NoError(t, kv.Set(ctx, StorageKey, `{not json`))
	_, err = New(ctx, kv)
	assert.Error(t, err)
}

func TestLoad_AssignsMissingAndDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	kv := memstore.New()
	require.NoError(t, kv.Set(ctx, StorageKey,
		`[{"title":"A"},{"title":"B"},{"id":"x","title":"C"},{"id":"x","title":"D"}]`))

	m, err := New(ctx, kv, WithIDGenerator(seqIDs()))
	require.NoError(t, err)

	items := m.Todos()
	require.Len(t, items, 4)
	ids := map[string]bool{}
	for _, it := range items {
		assert.NotEmpty(t, it.ID)
		ids[it.ID] = true
	}
	assert.Len(t, ids, 4)
	assert.Equal(t, "x", items[2].ID)

	// fresh ids are written back so they survive a reload
	reloaded, err := New(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, items, reloaded.Todos())

	require.NoError(t, m.Toggle(ctx, items[3]))
	for i, it := range m.Todos() {
		assert.Equal(t, i == 3, it.Completed, it.Title)
	}
}

func TestLoad_FailedIDWriteBackIsReturned(t *testing.T) {
	ctx := context.Background()
	kv := memstore.New()
	require.NoError(t, kv.Set(ctx, StorageKey, `[{"title":"A"}]`))
	kv.FailSet = errors.New("read-only")

	_, err := New(ctx, kv)
	assert.ErrorIs(t, err, kv.FailSet)
}

func TestWithKey(t *testing.T) {
	ctx := context.Background()
	kv := memstore.New()
	m, err := New(ctx, kv, WithKey("other"))
	require.NoError(t, err)
	require.NoError(t, m.AddTodo(ctx, "a"))

	_, ok, _ := kv.Get(ctx, StorageKey)
	assert.False(t, ok)
	_, ok, _ = kv.Get(ctx, "other")
	assert.True(t, ok)
}
