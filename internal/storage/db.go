package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// DB is the application's key-value database adapter. Values are stored as
// JSON under string keys. Storage failures never cross this boundary: reads
// fall back to the caller's zero/default, writes are dropped. Every
// swallowed failure is logged so operators can see it.
type DB struct {
	store Store
	log   *slog.Logger
}

func NewDB(store Store, log *slog.Logger) *DB {
	if log == nil {
		log = slog.Default()
	}
	return &DB{store: store, log: log}
}

// Read decodes the JSON value stored under key into out and reports whether
// a stored value was found and decoded. On a missing key, a backend error,
// or a corrupt value it leaves out untouched and returns false; plain
// absence is not logged, everything else is.
func (db *DB) Read(ctx context.Context, key string, out any) bool {
	raw, err := db.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			db.log.Error("storage read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		db.log.Error("storage value corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// Write encodes value as JSON and stores it under key. On failure the write
// is logged and dropped; the caller receives no error signal.
func (db *DB) Write(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		db.log.Error("storage encode failed", "key", key, "error", err)
		return
	}
	if err := db.store.Set(ctx, key, string(raw)); err != nil {
		db.log.Error("storage write failed", "key", key, "error", err)
	}
}

// Remove deletes the value stored under key, logging failures.
func (db *DB) Remove(ctx context.Context, key string) {
	if err := db.store.Delete(ctx, key); err != nil {
		db.log.Error("storage delete failed", "key", key, "error", err)
	}
}
