package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/youssefhk11/seneca-hackathon/internal/models"
)

type stubMemberLister struct {
	users []models.User
}

func (s *stubMemberLister) List(_ context.Context) []models.User {
	return s.users
}

func buildMembers(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, models.User{
			ID:       fmt.Sprintf("%d", i+1),
			Username: fmt.Sprintf("member%d", i+1),
			Phone:    fmt.Sprintf("%d", 1000+i),
		})
	}
	return users
}

func TestStatsMixesLiveCountsAndConstants(t *testing.T) {
	service := NewCommunityService(&stubMemberLister{users: buildMembers(5)})

	stats := service.Stats(context.Background())
	if len(stats) != 4 {
		t.Fatalf("Expected 4 stat tiles, got %d", len(stats))
	}
	if stats[0].Label != "Active Members" || stats[0].Value != "5" {
		t.Fatalf("Expected 5 active members, got %+v", stats[0])
	}
	if stats[1].Label != "Community Events" || stats[1].Value != "3" {
		t.Fatalf("Expected 3 community events, got %+v", stats[1])
	}
	// The last two tiles are literal constants from the mockup.
	if stats[2].Value != "87" {
		t.Fatalf("Expected workouts-logged constant 87, got %q", stats[2].Value)
	}
	if stats[3].Value != "75%" {
		t.Fatalf("Expected community-goal constant 75%%, got %q", stats[3].Value)
	}
}

func TestLeaderboardRanksAndPoints(t *testing.T) {
	n := 6
	service := NewCommunityService(&stubMemberLister{users: buildMembers(n)})

	entries := service.Leaderboard(context.Background())
	if len(entries) != n {
		t.Fatalf("Expected %d entries, got %d", n, len(entries))
	}
	for i, entry := range entries {
		if entry.Rank != i+1 {
			t.Fatalf("Expected rank %d at position %d, got %d", i+1, i, entry.Rank)
		}
		if want := 1250 - i*70; entry.Points != want {
			t.Fatalf("Expected %d points at rank %d, got %d", want, entry.Rank, entry.Points)
		}
		if entry.Avatar != "M" {
			t.Fatalf("Expected uppercased initial M, got %q", entry.Avatar)
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Points != entries[i-1].Points-70 {
			t.Fatalf("Expected points strictly decreasing by 70, got %d after %d", entries[i].Points, entries[i-1].Points)
		}
	}
}

func TestLeaderboardEmptyCommunity(t *testing.T) {
	service := NewCommunityService(&stubMemberLister{})

	if entries := service.Leaderboard(context.Background()); len(entries) != 0 {
		t.Fatalf("Expected no entries, got %d", len(entries))
	}
}

func TestStaticCatalogs(t *testing.T) {
	service := NewCommunityService(&stubMemberLister{})

	events := service.Events()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[0].Type != models.EventTypeRun || events[1].Type != models.EventTypeYoga || events[2].Type != models.EventTypeWorkshop {
		t.Fatalf("Unexpected event types: %+v", events)
	}

	if meals := service.Meals(); len(meals) != 4 {
		t.Fatalf("Expected 4 meals, got %d", len(meals))
	}
	if challenges := service.Challenges(); len(challenges) != 2 {
		t.Fatalf("Expected 2 challenges, got %d", len(challenges))
	}

	report := service.Report()
	if len(report.WeeklyProgress) != 7 || len(report.MonthlyProgress) != 4 {
		t.Fatalf("Unexpected report shape: %d weekly, %d monthly", len(report.WeeklyProgress), len(report.MonthlyProgress))
	}
}
