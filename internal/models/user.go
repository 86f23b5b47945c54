package models

// Fitness levels a profile can carry. "Not Set" is the onboarding form's
// initial value and is stored as-is if the member never picks one.
const (
	FitnessLevelNotSet       = "Not Set"
	FitnessLevelBeginner     = "Beginner"
	FitnessLevelIntermediate = "Intermediate"
	FitnessLevelAdvanced     = "Advanced"
)

// GoalOptions is the fixed list the onboarding form offers. Goals are stored
// in the order the member picked them.
var GoalOptions = []string{
	"Lose Weight",
	"Build Muscle",
	"Improve Endurance",
	"Stay Active",
	"Learn New Exercises",
}

// WorkoutTimeOptions for the preferred-workout-time selector.
var WorkoutTimeOptions = []string{"Morning", "Afternoon", "Evening", "Night"}

// Progress holds the activity counters shown on the profile page. They are
// zeroed when the profile is created; incrementing them belongs to the
// activity tracker, not to this layer.
type Progress struct {
	WorkoutsLogged int `json:"workoutsLogged"`
	CaloriesBurned int `json:"caloriesBurned"`
	ActiveMinutes  int `json:"activeMinutes"`
}

// Profile is attached to a user once onboarding completes. Either every
// field is populated or the whole profile is absent; partial profiles are
// never persisted.
type Profile struct {
	Age                  int      `json:"age"`
	Weight               float64  `json:"weight"`
	Height               float64  `json:"height"`
	FitnessLevel         string   `json:"fitnessLevel"`
	Goals                []string `json:"goals"`
	City                 string   `json:"city"`
	BMI                  string   `json:"bmi,omitempty"`
	Progress             Progress `json:"progress"`
	AvgWorkoutDuration   int      `json:"avgWorkoutDuration"`
	PreferredWorkoutTime string   `json:"preferredWorkoutTime"`
}

// User is an account record. Profile is nil until onboarding completes.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Surname  string   `json:"surname"`
	Phone    string   `json:"phone"`
	Profile  *Profile `json:"profile,omitempty"`
}

// Onboarded reports whether the user has completed profile setup.
func (u *User) Onboarded() bool {
	return u != nil && u.Profile != nil
}
