package repository

import (
	"context"

	"github.com/youssefhk11/seneca-hackathon/internal/models"
	"github.com/youssefhk11/seneca-hackathon/internal/storage"
)

// defaultUsers is the demo community the app ships with, localized to
// Tunis. The literal BMI strings are kept as shipped, even where they
// differ from a fresh computation.
func defaultUsers() []models.User {
	return []models.User{
		{
			ID:       "1",
			Username: "Karim",
			Surname:  "Ben Ahmed",
			Phone:    "1111",
			Profile: &models.Profile{
				Age:                  28,
				Weight:               75,
				Height:               180,
				FitnessLevel:         models.FitnessLevelIntermediate,
				Goals:                []string{"Build Muscle", "Improve Endurance"},
				City:                 "La Marsa, Tunis",
				BMI:                  "23.1",
				Progress:             models.Progress{WorkoutsLogged: 12, CaloriesBurned: 3500, ActiveMinutes: 450},
				AvgWorkoutDuration:   60,
				PreferredWorkoutTime: "Evening",
			},
		},
		{
			ID:       "2",
			Username: "Amina",
			Surname:  "Trabelsi",
			Phone:    "2222",
			Profile: &models.Profile{
				Age:                  24,
				Weight:               62,
				Height:               165,
				FitnessLevel:         models.FitnessLevelBeginner,
				Goals:                []string{"Lose Weight", "Stay Active"},
				City:                 "Carthage, Tunis",
				BMI:                  "22.7",
				Progress:             models.Progress{WorkoutsLogged: 5, CaloriesBurned: 1200, ActiveMinutes: 180},
				AvgWorkoutDuration:   45,
				PreferredWorkoutTime: "Morning",
			},
		},
	}
}

// EnsureSeedUsers initializes the account collection with the demo members
// when no collection has been stored yet. Existing data is never touched.
func EnsureSeedUsers(ctx context.Context, db *storage.DB) {
	var users []models.User
	if db.Read(ctx, usersKey, &users) {
		return
	}
	db.Write(ctx, usersKey, defaultUsers())
}
