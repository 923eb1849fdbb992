package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sereno-app/sereno/internal/config"
	"github.com/sereno-app/sereno/internal/infrastructure/bolt"
	"github.com/sereno-app/sereno/internal/infrastructure/memory"
	"github.com/sereno-app/sereno/internal/infrastructure/mongo"
	"github.com/sereno-app/sereno/internal/infrastructure/openai"
	"github.com/sereno-app/sereno/internal/infrastructure/redis"
	"github.com/sereno-app/sereno/internal/infrastructure/yandex"
	"github.com/sereno-app/sereno/internal/services/completion"
	"github.com/sereno-app/sereno/internal/services/conversation"
	"github.com/sereno-app/sereno/internal/services/history"
	"github.com/sereno-app/sereno/internal/services/quiz"
	"github.com/sereno-app/sereno/internal/store"
)

type Services struct {
	store               store.Store
	conversationService *conversation.Service
	historyService      *history.Service
	quizService         *quiz.Service
}

// InitializeServices connects the configured backends and builds every
// workflow. The gateway is optional; the store is not.
func InitializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	log.Info().Msg("Initializing core services")

	st, err := newStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s store: %w", cfg.StoreBackend, err)
	}
	log.Info().Str("backend", string(cfg.StoreBackend)).Msg("Initializing store")

	gateway, err := newGateway(cfg)
	if err != nil {
		_ = st.Close(ctx)
		return nil, fmt.Errorf("failed to initialize %s gateway: %w", cfg.LLMProvider, err)
	}
	if gateway == nil {
		log.Warn().Str("provider", string(cfg.LLMProvider)).Msg("Completion gateway not configured - chat and quiz generation will fail")
	}

	svcs := New(st, gateway, cfg)
	log.Info().Msg("All services initialized successfully")
	return svcs, nil
}

// New builds the workflows over already constructed dependencies.
func New(st store.Store, gateway completion.Gateway, cfg *config.Config) *Services {
	return &Services{
		store: st,
		conversationService: conversation.NewService(gateway, st, conversation.Config{
			Model:       cfg.ChatModel,
			MaxTokens:   cfg.ChatMaxTokens,
			Temperature: cfg.ChatTemperature,
		}),
		historyService: history.NewService(st, cfg.HistoryLimit),
		quizService: quiz.NewService(gateway, st, quiz.Config{
			Model:       cfg.QuizModel,
			Temperature: cfg.QuizTemperature,
		}),
	}
}

func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreMongo:
		svc, err := mongo.NewService(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return svc, nil
	case config.StoreRedis:
		svc, err := redis.NewService(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		return svc, nil
	case config.StoreBolt:
		st, err := bolt.NewStore(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		return st, nil
	case config.StoreMemory:
		log.Warn().Msg("Using in-memory store - records are lost on restart")
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// newGateway returns a nil interface, never a typed nil, when the provider
// lacks credentials.
func newGateway(cfg *config.Config) (completion.Gateway, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		if svc := openai.NewService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL); svc != nil {
			return svc, nil
		}
		return nil, nil
	case config.ProviderYandex:
		svc, err := yandex.NewService(cfg.YandexOAuthToken, cfg.YandexFolderID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, nil
		}
		if tuned := cfg.TunedCompletionSettings(); len(tuned) > 0 {
			log.Warn().Strs("settings", tuned).Msg("Yandex GPT uses the folder's default model and sampling - these settings have no effect")
		}
		return svc, nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}

// GetConversationService returns the conversation service
func (s *Services) GetConversationService() *conversation.Service {
	return s.conversationService
}

// GetHistoryService returns the history service
func (s *Services) GetHistoryService() *history.Service {
	return s.historyService
}

// GetQuizService returns the quiz service
func (s *Services) GetQuizService() *quiz.Service {
	return s.quizService
}

// GetStore returns the backing store
func (s *Services) GetStore() store.Store {
	return s.store
}

// Close releases the store connection.
func (s *Services) Close(ctx context.Context) error {
	return s.store.Close(ctx)
}
