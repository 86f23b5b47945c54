package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/youssefhk11/seneca-hackathon/internal/models"
	"github.com/youssefhk11/seneca-hackathon/internal/storage"
	"github.com/youssefhk11/seneca-hackathon/pkg/utils"
)

// RegistrationInput carries the raw registration form fields. Password is
// part of the form but is neither stored nor verified anywhere in the app.
type RegistrationInput struct {
	Username string
	Surname  string
	Phone    string
	Password string
}

// ProfileInput carries the onboarding form fields. BMI and progress are
// derived here, not supplied by the caller.
type ProfileInput struct {
	Age                  int
	Weight               float64
	Height               float64
	FitnessLevel         string
	Goals                []string
	City                 string
	AvgWorkoutDuration   int
	PreferredWorkoutTime string
}

// UserRepository stores the account collection as a single JSON sequence
// under one key, read and rewritten whole on every mutation. Mutations that
// concern the logged-in member also refresh the session snapshot.
type UserRepository struct {
	db       *storage.DB
	sessions *SessionRepository
}

func NewUserRepository(db *storage.DB, sessions *SessionRepository) *UserRepository {
	return &UserRepository{db: db, sessions: sessions}
}

func (r *UserRepository) load(ctx context.Context) []models.User {
	var users []models.User
	r.db.Read(ctx, usersKey, &users)
	return users
}

// Register creates an account for the given form input and logs it in. The
// phone number must not belong to an existing account; on conflict nothing
// is written and ErrPhoneTaken is returned.
func (r *UserRepository) Register(ctx context.Context, input RegistrationInput) (*models.User, error) {
	users := r.load(ctx)
	for i := range users {
		if users[i].Phone == input.Phone {
			return nil, ErrPhoneTaken
		}
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: input.Username,
		Surname:  input.Surname,
		Phone:    input.Phone,
	}
	users = append(users, user)
	r.db.Write(ctx, usersKey, users)
	r.sessions.SetCurrent(ctx, &user)
	return &user, nil
}

// Login looks an account up by phone number and logs it in. Any non-empty
// password is accepted: credential verification is out of scope for this
// prototype, and callers must not read any security guarantee into a
// successful login.
func (r *UserRepository) Login(ctx context.Context, phone, password string) (*models.User, error) {
	_ = password

	users := r.load(ctx)
	for i := range users {
		if users[i].Phone == phone {
			r.sessions.SetCurrent(ctx, &users[i])
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// AttachProfile completes onboarding for the account identified by userID:
// it computes the BMI from the supplied weight and height, zeroes the
// progress counters, attaches the profile, persists the collection, and
// refreshes the session snapshot to the updated record.
func (r *UserRepository) AttachProfile(ctx context.Context, userID string, input ProfileInput) (*models.User, error) {
	users := r.load(ctx)
	for i := range users {
		if users[i].ID != userID {
			continue
		}

		users[i].Profile = &models.Profile{
			Age:                  input.Age,
			Weight:               input.Weight,
			Height:               input.Height,
			FitnessLevel:         input.FitnessLevel,
			Goals:                input.Goals,
			City:                 input.City,
			BMI:                  utils.FormatBMI(input.Weight, input.Height),
			Progress:             models.Progress{},
			AvgWorkoutDuration:   input.AvgWorkoutDuration,
			PreferredWorkoutTime: input.PreferredWorkoutTime,
		}
		r.db.Write(ctx, usersKey, users)
		r.sessions.SetCurrent(ctx, &users[i])
		return &users[i], nil
	}
	return nil, ErrUserNotFound
}

// List returns every account in insertion order.
func (r *UserRepository) List(ctx context.Context) []models.User {
	return r.load(ctx)
}

// GetByID returns the account with the given id.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	users := r.load(ctx)
	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}
