package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sereno-app/sereno/internal/models"
	"github.com/sereno-app/sereno/pkg/logger"
	bolt "go.etcd.io/bbolt"
)

var (
	conversationsBucket = []byte("conversations")
	quizResultsBucket   = []byte("quizresults")
)

// keyTimeLayout sorts lexically in time order, so cursor order is
// chronological order.
const keyTimeLayout = "20060102T150405.000000000Z"

// Store keeps records in a single bbolt file for deployments without a
// database server.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) the database file at path.
func NewStore(path string) (*Store, error) {
	logger.Info(logger.STORE, "Opening bolt store at %s", path)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bolt directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{conversationsBucket, quizResultsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bolt buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func recordKey(createdAt time.Time, id string) []byte {
	return []byte(createdAt.UTC().Format(keyTimeLayout) + "/" + id)
}

func (s *Store) put(bucket []byte, key []byte, v interface{}) error {
	enc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, enc)
	})
}

func (s *Store) SaveConversation(ctx context.Context, c *models.Conversation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.put(conversationsBucket, recordKey(c.CreatedAt, c.ID), c)
}

func (s *Store) SaveQuizResult(ctx context.Context, r *models.QuizResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.put(quizResultsBucket, recordKey(r.CreatedAt, r.ID), r)
}

// FindConversations walks the bucket backwards from the newest key and stops
// once limit matches are collected.
func (s *Store) FindConversations(ctx context.Context, filter models.ConversationFilter, limit int) ([]*models.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := []*models.Conversation{}
	err := s.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(conversationsBucket).Cursor()
		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			var c models.Conversation
			if err := json.Unmarshal(v, &c); err != nil {
				logger.Warn(logger.STORE, "Skipping unreadable conversation %s: %v", k, err)
				continue
			}
			if !filter.Matches(&c) {
				continue
			}
			out = append(out, &c)
			if limit > 0 && len(out) == limit {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(conversationsBucket) == nil {
			return fmt.Errorf("bucket %s missing", conversationsBucket)
		}
		return nil
	})
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Close()
}
