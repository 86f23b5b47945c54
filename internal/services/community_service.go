package services

import (
	"context"
	"strconv"

	"github.com/youssefhk11/seneca-hackathon/internal/models"
	"github.com/youssefhk11/seneca-hackathon/pkg/utils"
)

type memberLister interface {
	List(ctx context.Context) []models.User
}

// CommunityService derives the community views from the user collection and
// the static catalogs. It holds no persisted state of its own; every call
// recomputes from the current repository contents.
type CommunityService struct {
	users memberLister
}

func NewCommunityService(users memberLister) *CommunityService {
	return &CommunityService{users: users}
}

// Events returns the static community calendar.
func (s *CommunityService) Events() []models.Event {
	return []models.Event{
		{ID: 1, Title: "Morning Run at Belvédère", Date: "Sat, 9:00 AM", Location: "Parc du Belvédère, Tunis", Type: models.EventTypeRun},
		{ID: 2, Title: "Sunset Yoga in Sidi Bou Said", Date: "Sun, 6:00 PM", Location: "Sidi Bou Said", Type: models.EventTypeYoga},
		{ID: 3, Title: "Nutrition Workshop (Online)", Date: "Next Wed, 7:00 PM", Location: "Online", Type: models.EventTypeWorkshop},
	}
}

// Stats builds the community stats bar. Member and event counts are live;
// the other two tiles are presentation constants carried over from the
// mockup, not real aggregates.
func (s *CommunityService) Stats(ctx context.Context) []models.Stat {
	return []models.Stat{
		{Label: "Active Members", Value: strconv.Itoa(len(s.users.List(ctx)))},
		{Label: "Community Events", Value: strconv.Itoa(len(s.Events()))},
		{Label: "Workouts Logged Today", Value: "87"},
		{Label: "Community Goal", Value: "75%"},
	}
}

// Members returns every community member in insertion order.
func (s *CommunityService) Members(ctx context.Context) []models.User {
	return s.users.List(ctx)
}

// Leaderboard ranks members purely by insertion position, with points
// descending by 70 per rank from 1250. The ranking is a deterministic
// placeholder until real activity scoring lands.
func (s *CommunityService) Leaderboard(ctx context.Context) []models.LeaderboardEntry {
	users := s.users.List(ctx)
	entries := make([]models.LeaderboardEntry, 0, len(users))
	for i := range users {
		entries = append(entries, models.LeaderboardEntry{
			Rank:     i + 1,
			Username: users[i].Username,
			Points:   1250 - i*70,
			Avatar:   utils.AvatarInitial(users[i].Username),
		})
	}
	return entries
}

// Challenges returns the static challenge cards.
func (s *CommunityService) Challenges() []models.Challenge {
	return []models.Challenge{
		{ID: 1, Title: "Weekly Step Goal", Description: "Walk 50,000 steps this week.", Progress: 75, Reward: "+50 pts"},
		{ID: 2, Title: "Consistency King", Description: "Log a workout 5 days in a row.", Progress: 40, Reward: "+100 pts"},
	}
}

// Meals returns the static nutrition catalog.
func (s *CommunityService) Meals() []models.Meal {
	return []models.Meal{
		{ID: 1, Name: "Oatmeal with Berries", Calories: 350, Type: "Breakfast"},
		{ID: 2, Name: "Grilled Chicken Salad", Calories: 450, Type: "Lunch"},
		{ID: 3, Name: "Salmon with Quinoa", Calories: 550, Type: "Dinner"},
		{ID: 4, Name: "Greek Yogurt", Calories: 150, Type: "Snack"},
	}
}

// Report returns the static weekly and monthly progress series.
func (s *CommunityService) Report() models.ReportData {
	return models.ReportData{
		WeeklyProgress: []models.ReportPoint{
			{Label: "Mon", Value: 30}, {Label: "Tue", Value: 45}, {Label: "Wed", Value: 60},
			{Label: "Thu", Value: 50}, {Label: "Fri", Value: 75}, {Label: "Sat", Value: 90},
			{Label: "Sun", Value: 20},
		},
		MonthlyProgress: []models.ReportPoint{
			{Label: "Jan", Value: 1200}, {Label: "Feb", Value: 1500},
			{Label: "Mar", Value: 1400}, {Label: "Apr", Value: 1800},
		},
	}
}
