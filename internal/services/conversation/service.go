package conversation

import (
	"context"
	"fmt"

	"github.com/sereno-app/sereno/internal/classifier"
	"github.com/sereno-app/sereno/internal/models"
	"github.com/sereno-app/sereno/internal/services/completion"
	"github.com/sereno-app/sereno/internal/store"
	"github.com/sereno-app/sereno/pkg/logger"
)

// Config holds the completion parameters for conversation replies.
type Config struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

// Reply is what the student gets back.
type Reply struct {
	Response                    string  `json:"response"`
	RecommendedProfessionalHelp bool    `json:"recommendedProfessionalHelp"`
	HelpMessage                 *string `json:"helpMessage"`
}

type Service struct {
	gateway completion.Gateway
	store   store.ConversationStore
	config  Config
}

// NewService wires the workflow. A nil gateway is allowed; Respond then
// reports models.ErrNotConfigured.
func NewService(gateway completion.Gateway, store store.ConversationStore, config Config) *Service {
	return &Service{
		gateway: gateway,
		store:   store,
		config:  config,
	}
}

// Respond runs the intake pipeline for one prompt. Nothing is persisted
// unless every step succeeds.
func (s *Service) Respond(ctx context.Context, prompt string) (*Reply, error) {
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt", models.ErrMissingInput)
	}

	if s.gateway == nil {
		return nil, models.ErrNotConfigured
	}

	// Off-topic prompts never reach the upstream API.
	if !classifier.IsRelevant(prompt) {
		logger.Info(logger.CONVERSATION, "Rejected prompt outside the supported domain")
		return nil, models.ErrOffTopic
	}

	response, err := s.gateway.Complete(ctx, completion.Request{
		Model:       s.config.Model,
		Messages:    completion.WithPersona(TherapistPersona, prompt),
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generating reply: %w", err)
	}

	conv := models.NewConversation(prompt, response)
	result := classifier.Classify(prompt, response)
	result.Apply(conv)

	if err := conv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid conversation record: %w", models.ErrPersistence, err)
	}
	if err := s.store.SaveConversation(ctx, conv); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}

	logger.Info(logger.CONVERSATION, "Stored conversation %s category=%s severity=%s help=%t",
		conv.ID, conv.Category, conv.Severity, conv.RecommendedProfessionalHelp)

	reply := &Reply{
		Response:                    response,
		RecommendedProfessionalHelp: conv.RecommendedProfessionalHelp,
	}
	if reply.RecommendedProfessionalHelp {
		msg := HelpMessage
		reply.HelpMessage = &msg
	}
	return reply, nil
}
