package repository

import (
	"context"

	"github.com/youssefhk11/seneca-hackathon/internal/models"
	"github.com/youssefhk11/seneca-hackathon/internal/storage"
)

// SessionRepository tracks the currently logged-in member as a single
// persisted user snapshot.
type SessionRepository struct {
	db *storage.DB
}

func NewSessionRepository(db *storage.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Current returns the persisted session snapshot, or nil when nobody is
// logged in. The snapshot is returned verbatim; it can lag behind the user
// collection if that was mutated without refreshing the session.
func (r *SessionRepository) Current(ctx context.Context) *models.User {
	var user models.User
	if !r.db.Read(ctx, currentUserKey, &user) {
		return nil
	}
	return &user
}

// SetCurrent overwrites the session snapshot with user.
func (r *SessionRepository) SetCurrent(ctx context.Context, user *models.User) {
	r.db.Write(ctx, currentUserKey, user)
}

// Clear logs the member out by removing the session snapshot. The user
// collection is untouched.
func (r *SessionRepository) Clear(ctx context.Context) {
	r.db.Remove(ctx, currentUserKey)
}
