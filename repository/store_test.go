package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A nil *mongo.Database models the unconfigured-store startup state; every
// gateway method must degrade without panicking.

func TestFetchWithoutConnection(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	res := store.Fetch(context.Background(), "menuitem", nil, 0)
	assert.Equal(t, FetchFailed, res.Status)
	assert.ErrorIs(t, res.Err, ErrStoreUnavailable)
	assert.Empty(t, res.Docs)
}

func TestInsertWithoutConnection(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	id, err := store.Insert(context.Background(), "reservation", map[string]any{"name": "Anna"})
	assert.Empty(t, id)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestListCollectionsWithoutConnection(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	names, err := store.ListCollections(context.Background(), 10)
	assert.Nil(t, names)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
