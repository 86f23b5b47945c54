package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/youssefhk11/seneca-hackathon/internal/models"
	"github.com/youssefhk11/seneca-hackathon/internal/storage"
)

func testSessionRepo(t *testing.T) *SessionRepository {
	t.Helper()
	db := storage.NewDB(storage.NewMemoryStore(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewSessionRepository(db)
}

func TestSessionLifecycle(t *testing.T) {
	sessions := testSessionRepo(t)
	ctx := context.Background()

	if current := sessions.Current(ctx); current != nil {
		t.Fatalf("Expected no session initially, got %+v", current)
	}

	sessions.SetCurrent(ctx, &models.User{ID: "7", Username: "Ali", Phone: "555"})
	current := sessions.Current(ctx)
	if current == nil || current.ID != "7" {
		t.Fatalf("Expected session user 7, got %+v", current)
	}

	sessions.Clear(ctx)
	if current := sessions.Current(ctx); current != nil {
		t.Fatalf("Expected no session after Clear, got %+v", current)
	}
}

func TestSessionSnapshotIsNotReconciled(t *testing.T) {
	db := storage.NewDB(storage.NewMemoryStore(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	sessions := NewSessionRepository(db)
	users := NewUserRepository(db, sessions)
	ctx := context.Background()

	registered, err := users.Register(ctx, RegistrationInput{Username: "Ali", Phone: "1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Rewrite the collection behind the session's back. Current returns the
	// stored snapshot verbatim; it does not consult the collection.
	db.Write(ctx, "fitconnect_users", []models.User{{ID: registered.ID, Username: "Renamed", Phone: "1"}})

	current := sessions.Current(ctx)
	if current == nil || current.Username != "Ali" {
		t.Fatalf("Expected stale snapshot with username Ali, got %+v", current)
	}
}
