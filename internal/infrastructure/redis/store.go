package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/sereno-app/sereno/internal/models"
)

const (
	conversationIndexKey = "sereno:conversations"
	quizResultIndexKey   = "sereno:quizresults"

	// scanBatch is how many index entries are fetched per round trip while
	// filtering history.
	scanBatch = 100
)

func conversationKey(id string) string {
	return "sereno:conversation:" + id
}

func quizResultKey(id string) string {
	return "sereno:quizresult:" + id
}

// Records are stored as JSON documents and indexed by creation time in a
// sorted set, so history reads walk the index newest first. Scores are unix
// microseconds; a float64 holds those exactly where nanoseconds would round.
// Records sharing a score fall back to member order.

func (s *Service) SaveConversation(ctx context.Context, c *models.Conversation) error {
	return s.insert(ctx, conversationKey(c.ID), conversationIndexKey, c.ID, c.CreatedAt.UnixMicro(), c)
}

func (s *Service) SaveQuizResult(ctx context.Context, r *models.QuizResult) error {
	return s.insert(ctx, quizResultKey(r.ID), quizResultIndexKey, r.ID, r.CreatedAt.UnixMicro(), r)
}

func (s *Service) insert(ctx context.Context, key, index, id string, score int64, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		pipe.ZAdd(ctx, index, redis.Z{Score: float64(score), Member: id})
		return nil
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("key", key).
			Msg("Critical Redis insert failed")
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}

func (s *Service) FindConversations(ctx context.Context, filter models.ConversationFilter, limit int) ([]*models.Conversation, error) {
	out := []*models.Conversation{}

	// A non-positive limit reads the whole index.
	for start := int64(0); limit <= 0 || len(out) < limit; start += scanBatch {
		ids, err := s.client.ZRevRange(ctx, conversationIndexKey, start, start+scanBatch-1).Result()
		if err != nil {
			return nil, fmt.Errorf("reading conversation index: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = conversationKey(id)
		}

		values, err := s.client.MGet(ctx, keys...).Result()
		if err != nil {
			return nil, fmt.Errorf("reading conversations: %w", err)
		}

		for i, v := range values {
			raw, ok := v.(string)
			if !ok {
				log.Warn().Str("id", ids[i]).Msg("Indexed conversation missing from Redis")
				continue
			}
			var c models.Conversation
			if err := json.Unmarshal([]byte(raw), &c); err != nil {
				return nil, fmt.Errorf("decoding conversation %s: %w", ids[i], err)
			}
			if !filter.Matches(&c) {
				continue
			}
			out = append(out, &c)
			if limit > 0 && len(out) == limit {
				break
			}
		}

		if len(ids) < scanBatch {
			break
		}
	}

	return out, nil
}
