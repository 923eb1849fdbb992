package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type StoreBackend string

const (
	StoreMongo  StoreBackend = "mongo"
	StoreRedis  StoreBackend = "redis"
	StoreBolt   StoreBackend = "bolt"
	StoreMemory StoreBackend = "memory"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	ChatModel       string  `env:"CHAT_MODEL" envDefault:"gpt-3.5-turbo"`
	ChatMaxTokens   int     `env:"CHAT_MAX_TOKENS" envDefault:"500"`
	ChatTemperature float32 `env:"CHAT_TEMPERATURE" envDefault:"0.7"`
	QuizModel       string  `env:"QUIZ_MODEL" envDefault:"gpt-4"`
	QuizTemperature float32 `env:"QUIZ_TEMPERATURE" envDefault:"0.7"`

	// Storage
	StoreBackend  StoreBackend `env:"STORE_BACKEND" envDefault:"mongo"`
	MongoURI      string       `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string       `env:"MONGODB_DATABASE" envDefault:"sereno"`
	RedisURL      string       `env:"REDIS_URL"`
	RedisPassword string       `env:"REDIS_PASSWORD"`
	BoltPath      string       `env:"BOLT_PATH" envDefault:"data/sereno.db"`
	HistoryLimit  int          `env:"HISTORY_LIMIT" envDefault:"20"`

	RateLimit RateLimitConfig
}

// RateLimitConfig holds the per-minute request budgets of each route group.
type RateLimitConfig struct {
	Enabled      bool          `env:"RATELIMIT_ENABLED" envDefault:"false"`
	Window       time.Duration `env:"RATELIMIT_WINDOW" envDefault:"1m"`
	Global       int           `env:"RATELIMIT_GLOBAL" envDefault:"1000"`
	Conversation int           `env:"RATELIMIT_CONVERSATION" envDefault:"60"`
	Quiz         int           `env:"RATELIMIT_QUIZ" envDefault:"30"`
	TrustProxy   bool          `env:"RATELIMIT_TRUST_PROXY" envDefault:"false"`
}

// Completion defaults, mirrored in the env tags above.
const (
	DefaultChatModel       = "gpt-3.5-turbo"
	DefaultChatMaxTokens   = 500
	DefaultChatTemperature = float32(0.7)
	DefaultQuizModel       = "gpt-4"
	DefaultQuizTemperature = float32(0.7)
)

// TunedCompletionSettings lists the completion settings changed from their
// defaults, by environment key.
func (c *Config) TunedCompletionSettings() []string {
	var tuned []string
	if c.ChatModel != DefaultChatModel {
		tuned = append(tuned, "CHAT_MODEL")
	}
	if c.ChatMaxTokens != DefaultChatMaxTokens {
		tuned = append(tuned, "CHAT_MAX_TOKENS")
	}
	if c.ChatTemperature != DefaultChatTemperature {
		tuned = append(tuned, "CHAT_TEMPERATURE")
	}
	if c.QuizModel != DefaultQuizModel {
		tuned = append(tuned, "QUIZ_MODEL")
	}
	if c.QuizTemperature != DefaultQuizTemperature {
		tuned = append(tuned, "QUIZ_TEMPERATURE")
	}
	return tuned
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderYandex:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}

	switch c.StoreBackend {
	case StoreMongo, StoreBolt, StoreMemory:
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	return nil
}
