package yandex

import (
	"context"
	"fmt"

	"github.com/Morwran/yagpt"
	"github.com/sereno-app/sereno/internal/models"
	"github.com/sereno-app/sereno/internal/services/completion"
	"github.com/sereno-app/sereno/pkg/logger"
)

type Service struct {
	ya       yagpt.YaGPTFace
	iamToken string
}

// NewService exchanges the OAuth token for an IAM token once at startup. It
// returns nil when credentials are missing.
func NewService(oauthToken, folderID string) (*Service, error) {
	logger.Info(logger.COMPLETION, "Initialising Yandex GPT service")

	if oauthToken == "" || folderID == "" {
		logger.Warn(logger.COMPLETION, "Yandex GPT service not configured - YANDEX_OAUTH_TOKEN or YANDEX_FOLDER_ID missing")
		return nil, nil
	}

	iam, err := yagpt.NewYaIam(oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init yandex iam: %w", err)
	}
	resp, err := iam.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to create iam token: %w", err)
	}

	ya, err := yagpt.NewYagpt(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to init yagpt: %w", err)
	}

	return &Service{
		ya:       ya,
		iamToken: resp.IamToken,
	}, nil
}

// Complete ignores the model and sampling fields of req; the folder's
// default model is used.
func (s *Service) Complete(ctx context.Context, req completion.Request) (string, error) {
	messages := make([]yagpt.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, yagpt.Message{Role: msg.Role, Content: msg.Content})
	}

	resp, err := s.ya.CompletionWithCtx(ctx, s.iamToken, messages)
	if err != nil {
		logger.Error(logger.COMPLETION, "yagpt completion failed: %v", err)
		return "", fmt.Errorf("%w: %w", models.ErrUpstream, err)
	}
	if resp == nil || len(resp.Alternatives) == 0 {
		return "", fmt.Errorf("%w: yagpt returned empty response", models.ErrUpstream)
	}

	return resp.Alternatives[0].Message.Content, nil
}
