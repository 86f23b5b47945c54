package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAdapter() (*DB, *MemoryStore) {
	store := NewMemoryStore()
	return NewDB(store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func TestDBReadMissingKeyLeavesDefault(t *testing.T) {
	db, _ := testAdapter()

	users := []string{"fallback"}
	found := db.Read(context.Background(), "fitconnect_users", &users)

	assert.False(t, found)
	assert.Equal(t, []string{"fallback"}, users)
}

func TestDBWriteThenRead(t *testing.T) {
	db, _ := testAdapter()
	ctx := context.Background()

	db.Write(ctx, "fitconnect_users", []string{"a", "b"})

	var users []string
	found := db.Read(ctx, "fitconnect_users", &users)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, users)
}

func TestDBReadCorruptValueLeavesDefault(t *testing.T) {
	db, store := testAdapter()
	ctx := context.Background()

	err := store.Set(ctx, "fitconnect_users", "{not json")
	assert.NoError(t, err)

	var users []string
	found := db.Read(ctx, "fitconnect_users", &users)
	assert.False(t, found)
	assert.Nil(t, users)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("backend down")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("backend down")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("backend down")
}

func TestDBSwallowsBackendFailures(t *testing.T) {
	db := NewDB(failingStore{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	// None of these may panic or surface an error.
	db.Write(ctx, "fitconnect_users", []string{"a"})
	db.Remove(ctx, "fitconnect_currentUser")

	users := []string{"default"}
	found := db.Read(ctx, "fitconnect_users", &users)
	assert.False(t, found)
	assert.Equal(t, []string{"default"}, users)
}

func TestDBRemove(t *testing.T) {
	db, store := testAdapter()
	ctx := context.Background()

	db.Write(ctx, "fitconnect_currentUser", map[string]string{"id": "1"})
	db.Remove(ctx, "fitconnect_currentUser")

	_, err := store.Get(ctx, "fitconnect_currentUser")
	assert.ErrorIs(t, err, ErrNotFound)
}
