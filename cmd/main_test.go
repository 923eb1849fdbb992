package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sereno-app/sereno/internal/config"
	"github.com/sereno-app/sereno/internal/services"
)

func TestMainServer(t *testing.T) {
	cfg := &config.Config{
		LLMProvider:  config.ProviderOpenAI,
		StoreBackend: config.StoreMemory,
		HistoryLimit: 20,
		RateLimit: config.RateLimitConfig{
			Enabled:      true,
			Window:       time.Minute,
			Global:       100,
			Conversation: 2,
			Quiz:         10,
		},
	}

	svcs, err := services.InitializeServices(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	defer svcs.Close(context.Background())

	// Start test server
	server := httptest.NewServer(setupRouter(svcs, cfg))
	defer server.Close()

	t.Run("health endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/health")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
		}
		if resp.Header.Get("X-Request-ID") == "" {
			t.Error("Expected X-Request-ID header to be set")
		}
	})

	t.Run("history endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/history")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Stats struct {
				Total int `json:"total"`
			} `json:"stats"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if body.Stats.Total != 0 {
			t.Errorf("Expected empty history, got %d", body.Stats.Total)
		}
	})

	t.Run("conversation rate limit", func(t *testing.T) {
		var last int
		for i := 0; i < 3; i++ {
			resp, err := http.Post(server.URL+"/", "application/json", strings.NewReader(`{"prompt":""}`))
			if err != nil {
				t.Fatalf("Failed to make request: %v", err)
			}
			resp.Body.Close()
			last = resp.StatusCode
		}

		if last != http.StatusTooManyRequests {
			t.Errorf("Expected status code %d, got %d", http.StatusTooManyRequests, last)
		}
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/invalid")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status code %d, got %d", http.StatusNotFound, resp.StatusCode)
		}
	})
}
