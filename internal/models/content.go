package models

// Recipe is an AI-generated meal suggestion.
type Recipe struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

// Workout is one AI-generated exercise in the personalized library.
type Workout struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Duration    string `json:"duration"`
	Intensity   string `json:"intensity"`
	Description string `json:"description"`
}

// Article is an AI-generated health and wellness article.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
