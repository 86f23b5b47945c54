package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/youssefhk11/seneca-hackathon/internal/models"
	"github.com/youssefhk11/seneca-hackathon/internal/repository"
	"github.com/youssefhk11/seneca-hackathon/internal/services"
	"github.com/youssefhk11/seneca-hackathon/pkg/utils"
)

// defaultGroupID is the prototype's single community chat group.
const defaultGroupID = "tunis_runners"

// App wires the persistence layer and the content service to terminal
// commands. It is the UI layer: raw form input is validated here, before it
// reaches the repositories.
type App struct {
	Users     *repository.UserRepository
	Sessions  *repository.SessionRepository
	Chat      *repository.ChatRepository
	Community *services.CommunityService
	AI        services.ContentService // nil when no API key is configured
	Out       io.Writer
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	switch args[0] {
	case "register":
		return a.register(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		return a.logout(ctx)
	case "me":
		return a.me(ctx)
	case "onboard":
		return a.onboard(ctx, args[1:])
	case "community":
		return a.community(ctx)
	case "leaderboard":
		return a.leaderboard(ctx)
	case "events":
		return a.events()
	case "meals":
		return a.meals()
	case "chat":
		return a.chat(ctx, args[1:])
	case "coach":
		return a.coach(ctx, args[1:])
	case "help":
		a.printUsage()
		return nil
	default:
		a.printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.Out, `FitConnect - your fitness community

Usage: fitconnect <command> [flags]

Commands:
  register     create an account and log in
  login        log in with your phone number
  logout       clear the current session
  me           show the logged-in member and profile
  onboard      complete your profile
  community    community stats and members
  leaderboard  community ranking
  events       upcoming community events
  meals        nutrition catalog
  chat         read or post in the group chat
  coach        AI coach: ask, meals, workouts, article, insights
  help         show this message`)
}

func (a *App) currentUser(ctx context.Context) (*models.User, error) {
	user := a.Sessions.Current(ctx)
	if user == nil {
		return nil, errors.New("nobody is logged in; run: fitconnect login -phone <phone> -password <password>")
	}
	return user, nil
}

func (a *App) register(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("register", flag.ContinueOnError)
	flags.SetOutput(a.Out)
	username := flags.String("username", "", "display name")
	surname := flags.String("surname", "", "family name")
	phone := flags.String("phone", "", "phone number, used to log in")
	password := flags.String("password", "", "password (not verified in this prototype)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	input := repository.RegistrationInput{
		Username: strings.TrimSpace(*username),
		Surname:  strings.TrimSpace(*surname),
		Phone:    strings.TrimSpace(*phone),
		Password: *password,
	}
	if msg := validateRegistration(input); msg != "" {
		return errors.New(msg)
	}

	user, err := a.Users.Register(ctx, input)
	if err != nil {
		if errors.Is(err, repository.ErrPhoneTaken) {
			return fmt.Errorf("phone %s is already registered", input.Phone)
		}
		return err
	}

	a.notice("Welcome, %s! You are logged in.", user.Username)
	fmt.Fprintln(a.Out, "Run `fitconnect onboard` to set up your profile.")
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("login", flag.ContinueOnError)
	flags.SetOutput(a.Out)
	phone := flags.String("phone", "", "phone number")
	password := flags.String("password", "", "password")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*phone) == "" {
		return errors.New("phone is required")
	}
	if *password == "" {
		return errors.New("password is required")
	}

	user, err := a.Users.Login(ctx, strings.TrimSpace(*phone), *password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.New("invalid phone number or password")
		}
		return err
	}

	a.notice("Welcome back, %s!", user.Username)
	if !user.Onboarded() {
		fmt.Fprintln(a.Out, "Run `fitconnect onboard` to finish setting up your profile.")
	}
	return nil
}

func (a *App) logout(ctx context.Context) error {
	a.Sessions.Clear(ctx)
	fmt.Fprintln(a.Out, "Logged out.")
	return nil
}

func (a *App) me(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}

	a.heading(fmt.Sprintf("%s %s (%s)", user.Username, user.Surname, user.Phone))
	if !user.Onboarded() {
		fmt.Fprintln(a.Out, "Profile not set up yet. Run `fitconnect onboard`.")
		return nil
	}

	p := user.Profile
	return a.renderTable(
		[]string{"Age", "Weight", "Height", "BMI", "Level", "Goals", "City"},
		[][]string{{
			strconv.Itoa(p.Age),
			fmt.Sprintf("%g kg", p.Weight),
			fmt.Sprintf("%g cm", p.Height),
			p.BMI,
			p.FitnessLevel,
			strings.Join(p.Goals, ", "),
			p.City,
		}},
	)
}

func (a *App) onboard(ctx context.Context, args []string) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("onboard", flag.ContinueOnError)
	flags.SetOutput(a.Out)
	age := flags.Int("age", 0, "age in years")
	weight := flags.Float64("weight", 0, "weight in kg")
	height := flags.Float64("height", 0, "height in cm")
	level := flags.String("level", models.FitnessLevelNotSet, "fitness level")
	goals := flags.String("goals", "", "comma-separated goals, e.g. \"Build Muscle,Stay Active\"")
	city := flags.String("city", "", "where you train")
	duration := flags.Int("duration", 45, "average workout duration in minutes")
	workoutTime := flags.String("time", "Morning", "preferred workout time")
	if err := flags.Parse(args); err != nil {
		return err
	}

	input := repository.ProfileInput{
		Age:                  *age,
		Weight:               *weight,
		Height:               *height,
		FitnessLevel:         strings.TrimSpace(*level),
		Goals:                splitGoals(*goals),
		City:                 strings.TrimSpace(*city),
		AvgWorkoutDuration:   *duration,
		PreferredWorkoutTime: strings.TrimSpace(*workoutTime),
	}
	if msg := validateProfile(input); msg != "" {
		return errors.New(msg)
	}

	updated, err := a.Users.AttachProfile(ctx, user.ID, input)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.New("your account no longer exists; register again")
		}
		return err
	}

	a.notice("Profile saved. Your BMI is %s.", updated.Profile.BMI)
	return nil
}

func (a *App) community(ctx context.Context) error {
	a.heading("Community")
	stats := a.Community.Stats(ctx)
	rows := make([][]string, 0, len(stats))
	for _, stat := range stats {
		rows = append(rows, []string{stat.Label, stat.Value})
	}
	if err := a.renderTable([]string{"Stat", "Value"}, rows); err != nil {
		return err
	}

	members := a.Community.Members(ctx)
	memberRows := make([][]string, 0, len(members))
	for _, member := range members {
		level := models.FitnessLevelNotSet
		city := "-"
		if member.Onboarded() {
			level = member.Profile.FitnessLevel
			city = member.Profile.City
		}
		memberRows = append(memberRows, []string{
			utils.AvatarInitial(member.Username),
			member.Username + " " + member.Surname,
			level,
			city,
		})
	}
	return a.renderTable([]string{"", "Member", "Level", "City"}, memberRows)
}

func (a *App) leaderboard(ctx context.Context) error {
	a.heading("Leaderboard")
	entries := a.Community.Leaderboard(ctx)
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			strconv.Itoa(entry.Rank),
			entry.Avatar,
			entry.Username,
			strconv.Itoa(entry.Points),
		})
	}
	return a.renderTable([]string{"Rank", "", "Member", "Points"}, rows)
}

func (a *App) events() error {
	a.heading("Upcoming events")
	events := a.Community.Events()
	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rows = append(rows, []string{event.Title, event.Date, event.Location, event.Type})
	}
	return a.renderTable([]string{"Event", "When", "Where", "Type"}, rows)
}

func (a *App) meals() error {
	a.heading("Nutrition")
	meals := a.Community.Meals()
	rows := make([][]string, 0, len(meals))
	for _, meal := range meals {
		rows = append(rows, []string{meal.Type, meal.Name, strconv.Itoa(meal.Calories)})
	}
	return a.renderTable([]string{"Meal", "Dish", "Calories"}, rows)
}

func (a *App) chat(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("chat", flag.ContinueOnError)
	flags.SetOutput(a.Out)
	group := flags.String("group", defaultGroupID, "chat group id")
	send := flags.String("send", "", "message to post; omit to just read the log")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var messages []models.ChatMessage
	if *send != "" {
		user, err := a.currentUser(ctx)
		if err != nil {
			return err
		}
		messages = a.Chat.Append(ctx, *group, models.ChatMessage{
			ID:     utils.NewMessageID(),
			Sender: user.Username,
			Avatar: utils.AvatarInitial(user.Username),
			Text:   *send,
			IsMe:   true,
		})
	} else {
		messages = a.Chat.Messages(ctx, *group)
	}

	a.heading("#" + *group)
	for _, message := range messages {
		fmt.Fprintf(a.Out, "[%s] %s: %s\n", message.Avatar, message.Sender, message.Text)
	}
	return nil
}

func (a *App) coach(ctx context.Context, args []string) error {
	if a.AI == nil {
		return errors.New("AI coach is disabled; set GEMINI_API_KEY to enable it")
	}
	if len(args) == 0 {
		return errors.New("usage: fitconnect coach <ask|meals|workouts|article|insights>")
	}

	switch args[0] {
	case "ask":
		if len(args) < 2 {
			return errors.New("usage: fitconnect coach ask <question>")
		}
		user, err := a.currentUser(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.Out, a.AI.ChatReply(ctx, strings.Join(args[1:], " "), user))
		return nil

	case "meals":
		mealType := "Breakfast"
		if len(args) > 1 {
			mealType = args[1]
		}
		recipes, err := a.AI.MealSuggestions(ctx, mealType)
		if err != nil {
			return fmt.Errorf("could not fetch suggestions: %w", err)
		}
		rows := make([][]string, 0, len(recipes))
		for _, recipe := range recipes {
			rows = append(rows, []string{recipe.Title, recipe.Description, recipe.Details})
		}
		a.heading(mealType + " ideas")
		return a.renderTable([]string{"Meal", "Description", "Details"}, rows)

	case "workouts":
		user, err := a.currentUser(ctx)
		if err != nil {
			return err
		}
		workouts, err := a.AI.WorkoutLibrary(ctx, user)
		if err != nil {
			return fmt.Errorf("could not build your workout library: %w", err)
		}
		rows := make([][]string, 0, len(workouts))
		for _, workout := range workouts {
			rows = append(rows, []string{workout.Name, workout.Type, workout.Duration, workout.Intensity})
		}
		a.heading("Your workout library")
		return a.renderTable([]string{"Exercise", "Type", "Duration", "Intensity"}, rows)

	case "article":
		article, err := a.AI.HealthArticle(ctx)
		if err != nil {
			return fmt.Errorf("could not generate an article: %w", err)
		}
		a.heading(article.Title)
		fmt.Fprintln(a.Out, article.Content)
		return nil

	case "insights":
		user, err := a.currentUser(ctx)
		if err != nil {
			return err
		}
		summary, err := a.AI.DailyRecommendation(ctx, user)
		if err != nil {
			return fmt.Errorf("could not generate insights: %w", err)
		}
		fmt.Fprintln(a.Out, summary)
		return nil

	default:
		return fmt.Errorf("unknown coach command %q", args[0])
	}
}

func splitGoals(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	goals := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			goals = append(goals, trimmed)
		}
	}
	return goals
}
