package store

import (
	"context"

	"github.com/sereno-app/sereno/internal/models"
)

// ConversationStore persists conversation records.
type ConversationStore interface {
	// SaveConversation inserts a new record.
	SaveConversation(ctx context.Context, c *models.Conversation) error

	// FindConversations returns at most limit records matching filter,
	// newest first.
	FindConversations(ctx context.Context, filter models.ConversationFilter, limit int) ([]*models.Conversation, error)
}

// QuizResultStore persists scored quiz attempts.
type QuizResultStore interface {
	SaveQuizResult(ctx context.Context, r *models.QuizResult) error
}

// Store is a backend holding both collections.
type Store interface {
	ConversationStore
	QuizResultStore

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
