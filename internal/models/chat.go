package models

// ChatMessage is one entry in a group's append-only chat log. IDs are
// time-based (Unix milliseconds) and therefore monotonic within a group.
type ChatMessage struct {
	ID     int64  `json:"id"`
	Sender string `json:"sender"`
	Avatar string `json:"avatar"`
	Text   string `json:"text"`
	IsMe   bool   `json:"isMe"`
}
