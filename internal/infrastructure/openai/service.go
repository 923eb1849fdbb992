package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sereno-app/sereno/internal/models"
	"github.com/sereno-app/sereno/internal/services/completion"
	"github.com/sereno-app/sereno/pkg/logger"
)

type Service struct {
	client *openai.Client
}

// NewService returns nil when no API key is configured, leaving callers to
// report the gateway as unavailable.
func NewService(apiKey, baseURL string) *Service {
	logger.Info(logger.COMPLETION, "Initialising OpenAI service")

	if apiKey == "" {
		logger.Warn(logger.COMPLETION, "OpenAI service not configured - OPENAI_API_KEY missing")
		return nil
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Service{
		client: openai.NewClientWithConfig(cfg),
	}
}

// Complete sends the request and returns the first choice's content.
func (s *Service) Complete(ctx context.Context, req completion.Request) (string, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	logger.Debug(logger.COMPLETION, "Requesting completion from %s with %d messages", req.Model, len(messages))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		logger.Error(logger.COMPLETION, "Failed to get chat completion: %v", err)
		return "", fmt.Errorf("%w: %w", models.ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices returned", models.ErrUpstream)
	}

	logger.Debug(logger.COMPLETION, "Completion used %d tokens", resp.Usage.TotalTokens)

	return resp.Choices[0].Message.Content, nil
}
