package history

import (
	"context"
	"fmt"

	"github.com/sereno-app/sereno/internal/models"
	"github.com/sereno-app/sereno/internal/store"
	"github.com/sereno-app/sereno/pkg/logger"
)

// DefaultLimit is how many conversations a history query returns.
const DefaultLimit = 20

// Stats summarises the returned page. Counts cover only the records in the
// report, not every stored match.
type Stats struct {
	Total                   int            `json:"total"`
	ByCategory              map[string]int `json:"byCategory"`
	NeedingProfessionalHelp int            `json:"needingProfessionalHelp"`
}

// Report groups the newest matching conversations by category.
type Report struct {
	Conversations map[string][]*models.Conversation `json:"conversations"`
	Stats         Stats                             `json:"stats"`
}

type Service struct {
	store store.ConversationStore
	limit int
}

func NewService(store store.ConversationStore, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{store: store, limit: limit}
}

// Query returns the newest conversations matching filter, grouped by
// category in newest-first order.
func (s *Service) Query(ctx context.Context, filter models.ConversationFilter) (*Report, error) {
	conversations, err := s.store.FindConversations(ctx, filter, s.limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}

	logger.Debug(logger.HISTORY, "History query returned %d conversations", len(conversations))

	return Summarize(conversations), nil
}

// Summarize groups conversations by category and counts them.
func Summarize(conversations []*models.Conversation) *Report {
	report := &Report{
		Conversations: make(map[string][]*models.Conversation),
		Stats: Stats{
			Total:      len(conversations),
			ByCategory: make(map[string]int),
		},
	}

	for _, c := range conversations {
		category := string(c.Category)
		report.Conversations[category] = append(report.Conversations[category], c)
		report.Stats.ByCategory[category]++
		if c.RecommendedProfessionalHelp {
			report.Stats.NeedingProfessionalHelp++
		}
	}
	return report
}
