package quiz

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sereno-app/sereno/internal/infrastructure/memory"
	"github.com/sereno-app/sereno/internal/models"
	"github.com/sereno-app/sereno/internal/services/completion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGateway mocks the completion gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Complete(ctx context.Context, req completion.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type failingStore struct{}

func (failingStore) SaveQuizResult(ctx context.Context, r *models.QuizResult) error {
	return errors.New("disk full")
}

var testConfig = Config{Model: "gpt-4", Temperature: 0.7}

func TestGenerateRejections(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		gateway bool
		wantErr error
	}{
		{"missing topic", "", true, models.ErrMissingInput},
		{"unknown topic", "Música", true, models.ErrInvalidTopic},
		{"wrong case", "deporte", true, models.ErrInvalidTopic},
		{"gateway not configured", "Arte", false, models.ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &MockGateway{}
			svc := NewService(nil, memory.NewStore(), testConfig)
			if tt.gateway {
				svc = NewService(gw, memory.NewStore(), testConfig)
			}

			quiz, err := svc.Generate(context.Background(), tt.topic)

			assert.Nil(t, quiz)
			assert.ErrorIs(t, err, tt.wantErr)
			gw.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Run("returns decoded quiz", func(t *testing.T) {
		gw := &MockGateway{}
		gw.On("Complete", mock.Anything, completion.Request{
			Model:       "gpt-4",
			Messages:    completion.WithPersona(GeneratorPersona, BuildPrompt("Deporte", 5, 4)),
			Temperature: 0.7,
		}).Return(quizJSON(repeat(question, 5)...), nil).Once()

		svc := NewService(gw, memory.NewStore(), testConfig)
		quiz, err := svc.Generate(context.Background(), "Deporte")
		require.NoError(t, err)

		require.Len(t, quiz.Questions, 5)
		for _, q := range quiz.Questions {
			assert.Len(t, q.Options, 4)
			assert.NotEmpty(t, q.CorrectAnswer)
			assert.Contains(t, q.Options, q.CorrectAnswer)
		}
		gw.AssertExpectations(t)
	})

	t.Run("malformed upstream payload", func(t *testing.T) {
		gw := &MockGateway{}
		gw.On("Complete", mock.Anything, mock.Anything).Return("no es json", nil)

		svc := NewService(gw, memory.NewStore(), testConfig)
		_, err := svc.Generate(context.Background(), "Ciencia")

		assert.ErrorIs(t, err, models.ErrMalformedUpstream)
	})

	t.Run("upstream failure", func(t *testing.T) {
		gw := &MockGateway{}
		gw.On("Complete", mock.Anything, mock.Anything).Return("", fmt.Errorf("%w: 401", models.ErrUpstream))

		svc := NewService(gw, memory.NewStore(), testConfig)
		_, err := svc.Generate(context.Background(), "Historia")

		assert.ErrorIs(t, err, models.ErrUpstream)
	})
}

func TestSaveResult(t *testing.T) {
	t.Run("stores as submitted", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewService(nil, store, testConfig)

		label, err := svc.SaveResult(context.Background(), models.QuizResult{
			Topic: "Deporte",
			Questions: []models.AnsweredQuestion{
				{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a", UserAnswer: "b"},
			},
			Score: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, "3/5", label)

		results := store.QuizResults()
		require.Len(t, results, 1)
		assert.Equal(t, "Deporte", results[0].Topic)
		assert.Equal(t, float64(3), results[0].Score)
		assert.NotEmpty(t, results[0].ID)
		assert.False(t, results[0].CreatedAt.IsZero())
		assert.Equal(t, "b", results[0].Questions[0].UserAnswer)
	})

	t.Run("no validation of score or topic", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewService(nil, store, testConfig)

		label, err := svc.SaveResult(context.Background(), models.QuizResult{Topic: "Música", Score: 9})
		require.NoError(t, err)
		assert.Equal(t, "9/5", label)
		assert.Len(t, store.QuizResults(), 1)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := NewService(nil, failingStore{}, testConfig)

		_, err := svc.SaveResult(context.Background(), models.QuizResult{Topic: "Arte", Score: 1})
		assert.ErrorIs(t, err, models.ErrPersistence)
	})
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "0/5"},
		{3, "3/5"},
		{3.0, "3/5"},
		{2.5, "2.5/5"},
		{5, "5/5"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreLabel(tt.score))
		})
	}
}
