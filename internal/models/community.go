package models

// Event types shown on the community calendar.
const (
	EventTypeRun      = "run"
	EventTypeYoga     = "yoga"
	EventTypeWorkshop = "workshop"
)

// Event is a static community event. Events are not persisted; the catalog
// ships with the app.
type Event struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

// Stat is one tile on the community stats bar. Value is a string or a count
// rendered as one; two of the four tiles are presentation constants rather
// than live aggregates.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LeaderboardEntry ranks a member on the community leaderboard. Rank and
// points are positional placeholders, not derived from real activity.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Avatar   string `json:"avatar"`
}

// Challenge is a static community challenge card.
type Challenge struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Reward      string `json:"reward"`
}

// Meal is one entry of the static nutrition catalog.
type Meal struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Type     string `json:"type"`
}

// ReportPoint is a single bar of the progress report charts.
type ReportPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ReportData backs the weekly/monthly progress report page.
type ReportData struct {
	WeeklyProgress  []ReportPoint `json:"weeklyProgress"`
	MonthlyProgress []ReportPoint `json:"monthlyProgress"`
}
