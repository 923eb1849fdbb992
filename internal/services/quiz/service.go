package quiz

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sereno-app/sereno/internal/models"
	"github.com/sereno-app/sereno/internal/services/completion"
	"github.com/sereno-app/sereno/internal/store"
	"github.com/sereno-app/sereno/pkg/logger"
)

// Config holds the completion parameters for quiz generation.
type Config struct {
	Model       string
	Temperature float32
}

type Service struct {
	gateway completion.Gateway
	store   store.QuizResultStore
	config  Config
}

// NewService wires the workflow. A nil gateway is allowed; Generate then
// reports models.ErrNotConfigured.
func NewService(gateway completion.Gateway, store store.QuizResultStore, config Config) *Service {
	return &Service{
		gateway: gateway,
		store:   store,
		config:  config,
	}
}

// Generate asks the upstream model for a quiz on topic.
func (s *Service) Generate(ctx context.Context, topic string) (*models.Quiz, error) {
	if topic == "" {
		return nil, fmt.Errorf("%w: topic", models.ErrMissingInput)
	}
	if !models.IsQuizTopic(topic) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidTopic, topic)
	}
	if s.gateway == nil {
		return nil, models.ErrNotConfigured
	}

	logger.Info(logger.QUIZ, "Generating quiz on %s", topic)

	text, err := s.gateway.Complete(ctx, completion.Request{
		Model:       s.config.Model,
		Messages:    completion.WithPersona(GeneratorPersona, BuildPrompt(topic, models.QuizQuestionCount, models.QuizOptionCount)),
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generating quiz: %w", err)
	}

	quiz, err := DecodeQuiz(text)
	if err != nil {
		logger.Warn(logger.QUIZ, "Upstream returned an unusable quiz for %s: %v", topic, err)
		return nil, err
	}
	return quiz, nil
}

// SaveResult stores a scored attempt exactly as submitted and returns the
// score label shown to the student.
func (s *Service) SaveResult(ctx context.Context, result models.QuizResult) (string, error) {
	result.Stamp()

	if err := s.store.SaveQuizResult(ctx, &result); err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}

	logger.Info(logger.QUIZ, "Stored quiz result %s topic=%s score=%g", result.ID, result.Topic, result.Score)
	return ScoreLabel(result.Score), nil
}

// ScoreLabel formats a score out of the fixed question count. Whole scores
// print without a fraction, so 3 and 3.0 both read "3/5".
func ScoreLabel(score float64) string {
	return fmt.Sprintf("%s/%d", strconv.FormatFloat(score, 'f', -1, 64), models.QuizQuestionCount)
}
