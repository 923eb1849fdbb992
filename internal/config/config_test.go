package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		k := k
		old, had := os.LookupEnv(k)
		if err := os.Setenv(k, v); err != nil {
			t.Fatalf("Failed to set environment variable %s: %v", k, err)
		}
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
			} else {
				os.Unsetenv(k)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.ChatModel)
	assert.Equal(t, 500, cfg.ChatMaxTokens)
	assert.InDelta(t, 0.7, cfg.ChatTemperature, 0.0001)
	assert.Equal(t, "gpt-4", cfg.QuizModel)
	assert.Equal(t, StoreMongo, cfg.StoreBackend)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "overrides",
			envVars: map[string]string{
				"LLM_PROVIDER":           "yandex",
				"YANDEX_FOLDER_ID":       "folder",
				"STORE_BACKEND":          "memory",
				"HISTORY_LIMIT":          "5",
				"RATELIMIT_ENABLED":      "true",
				"RATELIMIT_CONVERSATION": "7",
				"CHAT_TEMPERATURE":       "0.2",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ProviderYandex, cfg.LLMProvider)
				assert.Equal(t, "folder", cfg.YandexFolderID)
				assert.Equal(t, StoreMemory, cfg.StoreBackend)
				assert.Equal(t, 5, cfg.HistoryLimit)
				assert.True(t, cfg.RateLimit.Enabled)
				assert.Equal(t, 7, cfg.RateLimit.Conversation)
				assert.InDelta(t, 0.2, cfg.ChatTemperature, 0.0001)
			},
		},
		{
			name: "bolt store",
			envVars: map[string]string{
				"STORE_BACKEND": "bolt",
				"BOLT_PATH":     "/var/lib/sereno/sereno.db",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, StoreBolt, cfg.StoreBackend)
				assert.Equal(t, "/var/lib/sereno/sereno.db", cfg.BoltPath)
			},
		},
		{
			name:    "unknown provider",
			envVars: map[string]string{"LLM_PROVIDER": "anthropic"},
			wantErr: true,
		},
		{
			name:    "unknown store",
			envVars: map[string]string{"STORE_BACKEND": "postgres"},
			wantErr: true,
		},
		{
			name:    "redis without url",
			envVars: map[string]string{"STORE_BACKEND": "redis", "REDIS_URL": ""},
			wantErr: true,
		},
		{
			name:    "non-positive history limit",
			envVars: map[string]string{"HISTORY_LIMIT": "0"},
			wantErr: true,
		},
		{
			name:    "malformed integer",
			envVars: map[string]string{"CHAT_MAX_TOKENS": "lots"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.envVars)

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestTunedCompletionSettings(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.TunedCompletionSettings())

	setEnv(t, map[string]string{
		"QUIZ_MODEL":      "yandexgpt",
		"CHAT_MAX_TOKENS": "800",
	})
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"CHAT_MAX_TOKENS", "QUIZ_MODEL"}, cfg.TunedCompletionSettings())
}
