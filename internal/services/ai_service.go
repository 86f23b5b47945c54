package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/youssefhk11/seneca-hackathon/internal/models"
)

// ContentService generates personalized content through an external
// generative-language model. Persistence never depends on it; the UI layer
// calls it directly.
type ContentService interface {
	ChatReply(ctx context.Context, prompt string, user *models.User) string
	ClassifyFitnessLevel(ctx context.Context, user *models.User) (string, error)
	MealSuggestions(ctx context.Context, mealType string) ([]models.Recipe, error)
	WorkoutLibrary(ctx context.Context, user *models.User) ([]models.Workout, error)
	HealthArticle(ctx context.Context) (models.Article, error)
	DailyRecommendation(ctx context.Context, user *models.User) (string, error)
}

const (
	chatSystemInstruction = "You are a friendly and encouraging AI fitness assistant for the FitConnect app. Provide safe, helpful, and motivating advice. Do not give medical advice. Keep responses concise and easy to understand."
	chatFallbackReply     = "Sorry, I'm having trouble connecting to the AI service. Please try again later."
)

// GeminiService talks to the Gemini generateContent REST endpoint.
type GeminiService struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

func NewGeminiService(baseURL, apiKey, model string, log *slog.Logger) *GeminiService {
	if log == nil {
		log = slog.Default()
	}
	return &GeminiService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: http.DefaultClient,
		log:        log,
	}
}

type aiPart struct {
	Text string `json:"text"`
}

type aiContent struct {
	Parts []aiPart `json:"parts"`
}

type aiSchema struct {
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	Properties  map[string]*aiSchema `json:"properties,omitempty"`
	Items       *aiSchema            `json:"items,omitempty"`
	Required    []string             `json:"required,omitempty"`
}

type aiGenerationConfig struct {
	Temperature      *float64  `json:"temperature,omitempty"`
	ResponseMIMEType string    `json:"responseMimeType,omitempty"`
	ResponseSchema   *aiSchema `json:"responseSchema,omitempty"`
}

type aiGenerateRequest struct {
	Contents          []aiContent         `json:"contents"`
	SystemInstruction *aiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *aiGenerationConfig `json:"generationConfig,omitempty"`
}

type aiGenerateResponse struct {
	Candidates []struct {
		Content aiContent `json:"content"`
	} `json:"candidates"`
}

func textContent(text string) aiContent {
	return aiContent{Parts: []aiPart{{Text: text}}}
}

func (s *GeminiService) generate(ctx context.Context, request aiGenerateRequest) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model)
	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("generate content: status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	var response aiGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generate content: empty response")
	}

	var text strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

func profileContext(user *models.User) string {
	if !user.Onboarded() {
		return "The user has not completed their profile yet."
	}
	p := user.Profile
	return fmt.Sprintf(`
Here is some context about the user you are talking to:
- Age: %d
- Weight: %g kg
- Height: %g cm
- Stated Fitness Level: %s
- Goals: %s
- Location: %s
Please tailor your response to be encouraging and relevant to their profile.`,
		p.Age, p.Weight, p.Height, p.FitnessLevel, strings.Join(p.Goals, ", "), p.City)
}

// ChatReply answers a free-text question, tailored to the user's profile
// when one exists. Transport failures degrade to a canned apology so the
// chat view always has something to show.
func (s *GeminiService) ChatReply(ctx context.Context, prompt string, user *models.User) string {
	request := aiGenerateRequest{
		Contents:          []aiContent{textContent(fmt.Sprintf("The user asked: %q. %s", prompt, profileContext(user)))},
		SystemInstruction: &aiContent{Parts: []aiPart{{Text: chatSystemInstruction}}},
	}

	reply, err := s.generate(ctx, request)
	if err != nil {
		s.log.Error("ai chat reply failed", "error", err)
		return chatFallbackReply
	}
	return reply
}

// ClassifyFitnessLevel asks the model to place the user into Beginner,
// Intermediate, or Advanced based on their profile data.
func (s *GeminiService) ClassifyFitnessLevel(ctx context.Context, user *models.User) (string, error) {
	if !user.Onboarded() {
		return "", fmt.Errorf("classify fitness level: profile not available")
	}
	p := user.Profile
	prompt := fmt.Sprintf(`
Based on the following user data, classify their fitness level into one of these categories: Beginner, Intermediate, or Advanced.
Provide only the category name as the response.

- Age: %d
- Weight: %g kg
- Height: %g cm
- Self-assessed fitness level: %s
- Goals: %s

Classification:`,
		p.Age, p.Weight, p.Height, p.FitnessLevel, strings.Join(p.Goals, ", "))

	temperature := 0.2
	level, err := s.generate(ctx, aiGenerateRequest{
		Contents:         []aiContent{textContent(prompt)},
		GenerationConfig: &aiGenerationConfig{Temperature: &temperature},
	})
	if err != nil {
		return "", err
	}

	level = strings.TrimSpace(level)
	switch level {
	case models.FitnessLevelBeginner, models.FitnessLevelIntermediate, models.FitnessLevelAdvanced:
		return level, nil
	default:
		return "", fmt.Errorf("classify fitness level: unexpected answer %q", level)
	}
}

// MealSuggestions generates three healthy meal ideas for the given meal
// type, constrained to a JSON schema so the response decodes directly.
func (s *GeminiService) MealSuggestions(ctx context.Context, mealType string) ([]models.Recipe, error) {
	prompt := fmt.Sprintf("Generate 3 healthy %s meal suggestions suitable for an active person. For each meal, provide a title, a short description, and details including an estimated calorie count.", mealType)

	text, err := s.generate(ctx, aiGenerateRequest{
		Contents: []aiContent{textContent(prompt)},
		GenerationConfig: &aiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &aiSchema{
				Type: "ARRAY",
				Items: &aiSchema{
					Type: "OBJECT",
					Properties: map[string]*aiSchema{
						"title":       {Type: "STRING"},
						"description": {Type: "STRING"},
						"details":     {Type: "STRING", Description: "Include calorie estimate, e.g., '~400 calories'"},
					},
					Required: []string{"title", "description", "details"},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err := json.Unmarshal([]byte(text), &recipes); err != nil {
		return nil, fmt.Errorf("decode meal suggestions: %w", err)
	}
	return recipes, nil
}

// WorkoutLibrary generates five exercises personalized to the user's
// fitness level and goals.
func (s *GeminiService) WorkoutLibrary(ctx context.Context, user *models.User) ([]models.Workout, error) {
	if !user.Onboarded() {
		return nil, fmt.Errorf("workout library: profile not available")
	}
	prompt := fmt.Sprintf(`Generate a list of 5 personalized workout exercises for a user with the following profile:
- Fitness Level: %s
- Goals: %s

For each exercise, provide a name, type (e.g., Strength, Cardio), duration or reps (e.g., "3 sets of 12 reps"), intensity (e.g., "Moderate"), and a brief description.`,
		user.Profile.FitnessLevel, strings.Join(user.Profile.Goals, ", "))

	text, err := s.generate(ctx, aiGenerateRequest{
		Contents: []aiContent{textContent(prompt)},
		GenerationConfig: &aiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &aiSchema{
				Type: "ARRAY",
				Items: &aiSchema{
					Type: "OBJECT",
					Properties: map[string]*aiSchema{
						"name":        {Type: "STRING"},
						"type":        {Type: "STRING"},
						"duration":    {Type: "STRING"},
						"intensity":   {Type: "STRING"},
						"description": {Type: "STRING"},
					},
					Required: []string{"name", "type", "duration", "intensity", "description"},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	var workouts []models.Workout
	if err := json.Unmarshal([]byte(text), &workouts); err != nil {
		return nil, fmt.Errorf("decode workout library: %w", err)
	}
	return workouts, nil
}

// HealthArticle generates a short wellness article with a title and body.
func (s *GeminiService) HealthArticle(ctx context.Context) (models.Article, error) {
	prompt := "Write a short, engaging, and informative health and wellness article. Provide a catchy title and a few paragraphs of content. The topic should be relevant to general fitness."

	text, err := s.generate(ctx, aiGenerateRequest{
		Contents: []aiContent{textContent(prompt)},
		GenerationConfig: &aiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &aiSchema{
				Type: "OBJECT",
				Properties: map[string]*aiSchema{
					"title":   {Type: "STRING"},
					"content": {Type: "STRING"},
				},
				Required: []string{"title", "content"},
			},
		},
	})
	if err != nil {
		return models.Article{}, err
	}

	var article models.Article
	if err := json.Unmarshal([]byte(text), &article); err != nil {
		return models.Article{}, fmt.Errorf("decode health article: %w", err)
	}
	return article, nil
}

// DailyRecommendation generates the nutrition/workout/sleep summary shown
// on the insights card.
func (s *GeminiService) DailyRecommendation(ctx context.Context, user *models.User) (string, error) {
	if !user.Onboarded() {
		return "", fmt.Errorf("daily recommendation: profile not available")
	}
	p := user.Profile
	prompt := fmt.Sprintf(`
Based on the user's data, generate a daily recommendation summary covering nutrition (calories, protein, carbs, fat), workout (duration in minutes, intensity on a 1-4 scale), and sleep (target duration in hours).
Provide realistic numbers based on their profile.

User data:
- Weight: %g kg
- Height: %g cm
- Goals: %s
- Average Workout Duration: %d min`,
		p.Weight, p.Height, strings.Join(p.Goals, ", "), p.AvgWorkoutDuration)

	return s.generate(ctx, aiGenerateRequest{Contents: []aiContent{textContent(prompt)}})
}
