package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sereno-app/sereno/internal/models"
)

// Store keeps records in process memory. Used for local runs and tests.
type Store struct {
	mu            sync.RWMutex
	conversations []*models.Conversation
	quizResults   []*models.QuizResult
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SaveConversation(ctx context.Context, c *models.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *c
	s.conversations = append(s.conversations, &copied)
	return nil
}

func (s *Store) FindConversations(ctx context.Context, filter models.ConversationFilter, limit int) ([]*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Conversation
	for _, c := range s.conversations {
		if filter.Matches(c) {
			copied := *c
			out = append(out, &copied)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) SaveQuizResult(ctx context.Context, r *models.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *r
	s.quizResults = append(s.quizResults, &copied)
	return nil
}

// QuizResults returns a snapshot of the stored quiz results.
func (s *Store) QuizResults() []*models.QuizResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.QuizResult, len(s.quizResults))
	copy(out, s.quizResults)
	return out
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}
