package mongo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sereno-app/sereno/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	conversationsCollection = "conversations"
	quizResultsCollection   = "quizresults"
)

type Service struct {
	client        *mongo.Client
	conversations *mongo.Collection
	quizResults   *mongo.Collection
}

// NewService connects to uri and prepares both collections.
func NewService(ctx context.Context, uri, database string) (*Service, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error().Err(err).Str("database", database).Msg("Failed to establish MongoDB connection")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	db := client.Database(database)
	s := &Service{
		client:        client,
		conversations: db.Collection(conversationsCollection),
		quizResults:   db.Collection(quizResultsCollection),
	}

	// History reads always sort by creation time.
	_, err = s.conversations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create conversations createdAt index")
	}

	log.Info().Str("database", database).Msg("MongoDB store ready")
	return s, nil
}

func (s *Service) SaveConversation(ctx context.Context, c *models.Conversation) error {
	if _, err := s.conversations.InsertOne(ctx, c); err != nil {
		log.Error().Err(err).Str("id", c.ID).Msg("MongoDB conversation insert failed")
		return fmt.Errorf("inserting conversation: %w", err)
	}
	return nil
}

func (s *Service) FindConversations(ctx context.Context, filter models.ConversationFilter, limit int) ([]*models.Conversation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.conversations.Find(ctx, conversationQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("finding conversations: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*models.Conversation{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decoding conversations: %w", err)
	}
	return out, nil
}

func (s *Service) SaveQuizResult(ctx context.Context, r *models.QuizResult) error {
	if _, err := s.quizResults.InsertOne(ctx, r); err != nil {
		log.Error().Err(err).Str("topic", r.Topic).Msg("MongoDB quiz result insert failed")
		return fmt.Errorf("inserting quiz result: %w", err)
	}
	return nil
}

// Ping checks if MongoDB is accessible
func (s *Service) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (s *Service) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// conversationQuery builds the conjunctive filter document; absent fields
// are left out entirely.
func conversationQuery(filter models.ConversationFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Severity != "" {
		query["severity"] = filter.Severity
	}
	if filter.NeedsHelp {
		query["recommendedProfessionalHelp"] = true
	}
	return query
}
