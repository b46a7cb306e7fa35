package sqlitestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_GetSetAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(ctx, dir)
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "todos")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "todos", `[{"id":"a","title":"x","completed":false}]`))
	require.NoError(t, s.Set(ctx, "todos", `[]`))
	require.NoError(t, s.Close())

	s, err = Open(ctx, dir)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)
}
