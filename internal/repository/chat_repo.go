package repository

import (
	"context"

	"github.com/youssefhk11/seneca-hackathon/internal/models"
	"github.com/youssefhk11/seneca-hackathon/internal/storage"
)

// ChatRepository keeps one append-only message log per group, stored as a
// JSON sequence under fitconnect_chat_<groupId>.
type ChatRepository struct {
	db *storage.DB
}

func NewChatRepository(db *storage.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func chatKey(groupID string) string {
	return chatKeyPrefix + groupID
}

// seedMessages is the conversation every group log starts with.
func seedMessages() []models.ChatMessage {
	return []models.ChatMessage{
		{ID: 1, Sender: "Amina", Avatar: "A", Text: "Hey everyone! Who's up for the run at Belvédère this Saturday?", IsMe: false},
		{ID: 2, Sender: "Karim", Avatar: "K", Text: "I'm in! What time?", IsMe: false},
	}
}

// Messages returns the group's log in insertion order. The first read of an
// unseen (or unreadable) group materializes the seed conversation and
// persists it, so a second read returns the identical sequence.
func (r *ChatRepository) Messages(ctx context.Context, groupID string) []models.ChatMessage {
	var messages []models.ChatMessage
	if !r.db.Read(ctx, chatKey(groupID), &messages) {
		messages = seedMessages()
		r.db.Write(ctx, chatKey(groupID), messages)
	}
	return messages
}

// Append adds message to the end of the group's log, persists it, and
// returns the full updated sequence.
func (r *ChatRepository) Append(ctx context.Context, groupID string, message models.ChatMessage) []models.ChatMessage {
	messages := append(r.Messages(ctx, groupID), message)
	r.db.Write(ctx, chatKey(groupID), messages)
	return messages
}
