package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/youssefhk11/seneca-hackathon/internal/repository"
	"github.com/youssefhk11/seneca-hackathon/internal/services"
	"github.com/youssefhk11/seneca-hackathon/internal/storage"
)

func testApp(t *testing.T) (*App, *bytes.Buffer, *storage.DB) {
	t.Helper()

	db := storage.NewDB(storage.NewMemoryStore(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	sessions := repository.NewSessionRepository(db)
	users := repository.NewUserRepository(db, sessions)

	out := &bytes.Buffer{}
	app := &App{
		Users:     users,
		Sessions:  sessions,
		Chat:      repository.NewChatRepository(db),
		Community: services.NewCommunityService(users),
		Out:       out,
	}
	return app, out, db
}

func TestRegisterOnboardMeFlow(t *testing.T) {
	app, out, _ := testApp(t)
	ctx := context.Background()

	err := app.Run(ctx, []string{"register", "-username", "Ali", "-surname", "Ben", "-phone", "555", "-password", "x"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !strings.Contains(out.String(), "Welcome, Ali!") {
		t.Fatalf("Expected welcome message, got %q", out.String())
	}

	out.Reset()
	err = app.Run(ctx, []string{
		"onboard",
		"-age", "30", "-weight", "80", "-height", "200",
		"-level", "Beginner", "-goals", "Stay Active", "-city", "Tunis",
		"-duration", "45", "-time", "Evening",
	})
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}
	if !strings.Contains(out.String(), "Your BMI is 20.0") {
		t.Fatalf("Expected BMI in output, got %q", out.String())
	}

	out.Reset()
	if err := app.Run(ctx, []string{"me"}); err != nil {
		t.Fatalf("me: %v", err)
	}
	if !strings.Contains(out.String(), "20.0") || !strings.Contains(out.String(), "Tunis") {
		t.Fatalf("Expected profile rendered, got %q", out.String())
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	app, _, _ := testApp(t)

	err := app.Run(context.Background(), []string{"register", "-username", "Ali", "-surname", "Ben", "-phone", "555"})
	if err == nil || !strings.Contains(err.Error(), "password is required") {
		t.Fatalf("Expected password validation error, got %v", err)
	}
}

func TestOnboardRejectsUnknownGoal(t *testing.T) {
	app, _, _ := testApp(t)
	ctx := context.Background()

	if err := app.Run(ctx, []string{"register", "-username", "Ali", "-surname", "Ben", "-phone", "555", "-password", "x"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := app.Run(ctx, []string{
		"onboard",
		"-age", "30", "-weight", "80", "-height", "200",
		"-level", "Beginner", "-goals", "Become An Astronaut", "-city", "Tunis",
	})
	if err == nil || !strings.Contains(err.Error(), "goal must be one of") {
		t.Fatalf("Expected goal validation error, got %v", err)
	}
}

func TestOnboardRequiresLogin(t *testing.T) {
	app, _, _ := testApp(t)

	err := app.Run(context.Background(), []string{"onboard", "-age", "30", "-weight", "80", "-height", "200"})
	if err == nil || !strings.Contains(err.Error(), "nobody is logged in") {
		t.Fatalf("Expected login-required error, got %v", err)
	}
}

func TestChatSendRequiresLogin(t *testing.T) {
	app, _, _ := testApp(t)

	err := app.Run(context.Background(), []string{"chat", "-send", "hello"})
	if err == nil || !strings.Contains(err.Error(), "nobody is logged in") {
		t.Fatalf("Expected login-required error, got %v", err)
	}
}

func TestChatReadAndSend(t *testing.T) {
	app, out, _ := testApp(t)
	ctx := context.Background()

	if err := app.Run(ctx, []string{"chat"}); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if !strings.Contains(out.String(), "Amina") || !strings.Contains(out.String(), "Karim") {
		t.Fatalf("Expected seeded conversation, got %q", out.String())
	}

	if err := app.Run(ctx, []string{"register", "-username", "Ali", "-surname", "Ben", "-phone", "555", "-password", "x"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	out.Reset()
	if err := app.Run(ctx, []string{"chat", "-send", "Count me in!"}); err != nil {
		t.Fatalf("chat -send: %v", err)
	}
	if !strings.Contains(out.String(), "Ali: Count me in!") {
		t.Fatalf("Expected posted message in log, got %q", out.String())
	}
}

func TestLeaderboardOutput(t *testing.T) {
	app, out, db := testApp(t)
	ctx := context.Background()

	repository.EnsureSeedUsers(ctx, db)

	if err := app.Run(ctx, []string{"leaderboard"}); err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	rendered := out.String()
	if !strings.Contains(rendered, "Karim") || !strings.Contains(rendered, "1250") {
		t.Fatalf("Expected ranked members, got %q", rendered)
	}
	if !strings.Contains(rendered, "1180") {
		t.Fatalf("Expected second place at 1180 points, got %q", rendered)
	}
}

func TestCoachDisabledWithoutKey(t *testing.T) {
	app, _, _ := testApp(t)

	err := app.Run(context.Background(), []string{"coach", "article"})
	if err == nil || !strings.Contains(err.Error(), "AI coach is disabled") {
		t.Fatalf("Expected disabled-coach error, got %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	app, _, _ := testApp(t)

	if err := app.Run(context.Background(), []string{"teleport"}); err == nil {
		t.Fatal("Expected error for unknown command")
	}
}
