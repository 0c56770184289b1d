package docstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDoc(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

// runStoreContract exercises the Store behavior every implementation must
// share. Patch application is a shallow overwrite and is not transactional
// with respect to the caller's preceding Get; that race is accepted.
func runStoreContract(t *testing.T, s Store) {
	ctx := context.Background()

	docs, err := s.List(ctx, Goals, 0)
	require.NoError(t, err)
	assert.Empty(t, docs, "empty collection lists as empty slice")

	first := map[string]any{"id": "a1", "title": "first", "completed": false, "position": map[string]any{"x": 1.0, "y": 2.0}}
	second := map[string]any{"id": "b2", "title": "second", "completed": false}
	require.NoError(t, s.Insert(ctx, Goals, "a1", first))
	require.NoError(t, s.Insert(ctx, Goals, "b2", second))

	raw, err := s.Get(ctx, Goals, "a1")
	require.NoError(t, err)
	assert.Equal(t, first, decodeDoc(t, raw))

	docs, err = s.List(ctx, Goals, 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a1", decodeDoc(t, docs[0])["id"], "insertion order is stable")
	assert.Equal(t, "b2", decodeDoc(t, docs[1])["id"])

	// Patch overwrites exactly the supplied keys; sub-objects replace
	// wholesale rather than deep-merging.
	err = s.Patch(ctx, Goals, "a1", map[string]any{
		"completed": true,
		"position":  map[string]any{"x": 9.0},
	})
	require.NoError(t, err)
	raw, err = s.Get(ctx, Goals, "a1")
	require.NoError(t, err)
	got := decodeDoc(t, raw)
	assert.Equal(t, "first", got["title"], "untouched field survives")
	assert.Equal(t, true, got["completed"])
	assert.Equal(t, map[string]any{"x": 9.0}, got["position"])

	// A nil patch value writes an explicit null.
	require.NoError(t, s.Patch(ctx, Goals, "a1", map[string]any{"title": nil}))
	raw, err = s.Get(ctx, Goals, "a1")
	require.NoError(t, err)
	got = decodeDoc(t, raw)
	value, ok := got["title"]
	require.True(t, ok)
	assert.Nil(t, value)

	// Collections are independent.
	_, err = s.Get(ctx, Todos, "a1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Patch(ctx, Goals, "missing", map[string]any{"title": "x"}), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, Goals, "missing"), ErrNotFound)

	require.NoError(t, s.Delete(ctx, Goals, "b2"))
	assert.ErrorIs(t, s.Delete(ctx, Goals, "b2"), ErrNotFound, "repeated delete stays not found")

	docs, err = s.List(ctx, Goals, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
