package cli

import (
	"strings"

	"github.com/youssefhk11/seneca-hackathon/internal/models"
	"github.com/youssefhk11/seneca-hackathon/internal/repository"
)

var allowedFitnessLevels = map[string]struct{}{
	models.FitnessLevelNotSet:       {},
	models.FitnessLevelBeginner:     {},
	models.FitnessLevelIntermediate: {},
	models.FitnessLevelAdvanced:     {},
}

func validateRegistration(input repository.RegistrationInput) string {
	if strings.TrimSpace(input.Username) == "" {
		return "username is required"
	}
	if strings.TrimSpace(input.Surname) == "" {
		return "surname is required"
	}
	if strings.TrimSpace(input.Phone) == "" {
		return "phone is required"
	}
	if input.Password == "" {
		return "password is required"
	}
	return ""
}

func validateProfile(input repository.ProfileInput) string {
	if input.Age <= 0 {
		return "age must be greater than 0"
	}
	if input.Weight <= 0 {
		return "weight must be greater than 0"
	}
	if input.Height <= 0 {
		return "height must be greater than 0"
	}
	if _, ok := allowedFitnessLevels[input.FitnessLevel]; !ok {
		return "fitness level must be one of: Not Set, Beginner, Intermediate, Advanced"
	}
	if len(input.Goals) == 0 {
		return "pick at least one goal"
	}
	for _, goal := range input.Goals {
		if !isGoalOption(goal) {
			return "goal must be one of: " + strings.Join(models.GoalOptions, ", ")
		}
	}
	if strings.TrimSpace(input.City) == "" {
		return "city is required"
	}
	if input.AvgWorkoutDuration <= 0 {
		return "workout duration must be greater than 0"
	}
	if !isTimeOption(input.PreferredWorkoutTime) {
		return "workout time must be one of: " + strings.Join(models.WorkoutTimeOptions, ", ")
	}
	return ""
}

func isGoalOption(goal string) bool {
	for _, option := range models.GoalOptions {
		if goal == option {
			return true
		}
	}
	return false
}

func isTimeOption(value string) bool {
	for _, option := range models.WorkoutTimeOptions {
		if value == option {
			return true
		}
	}
	return false
}
