// Package completion describes the upstream chat-completion call shared by
// the conversation and quiz workflows.
package completion

import "context"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a role-tagged entry of the conversation sent upstream.
type Message struct {
	Role    string
	Content string
}

// Request parameterises one completion call. Zero MaxTokens leaves the
// output length to the provider.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// Gateway returns the text of the first completion for a request.
// Implementations wrap every failure with models.ErrUpstream.
type Gateway interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// WithPersona builds the two-message exchange every workflow sends: a fixed
// system persona followed by the user's prompt.
func WithPersona(persona, prompt string) []Message {
	return []Message{
		{Role: RoleSystem, Content: persona},
		{Role: RoleUser, Content: prompt},
	}
}
