package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/comigor/hellollm/internal/config"
	"github.com/comigor/hellollm/internal/logger"
	"github.com/comigor/hellollm/internal/prompt"
)

// Session dispatches conversations to one model. Every call is a fresh round
// trip; errors come back exactly as the provider reported them.
type Session struct {
	client        Client
	model         string
	developerRole string
}

// Option customises a Session.
type Option func(*Session)

// WithClient replaces the go-openai transport.
func WithClient(c Client) Option {
	return func(s *Session) { s.client = c }
}

// New builds a session from cfg. It fails before any transport is created
// when no credential is present.
func New(cfg config.LLMConfig, opts ...Option) (*Session, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm session: %w", config.ErrMissingCredential)
	}

	s := &Session{
		model:         cfg.Model,
		developerRole: cfg.DeveloperRole,
	}
	if s.model == "" {
		s.model = config.DefaultModel
	}
	if s.developerRole == "" {
		s.developerRole = string(prompt.RoleDeveloper)
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = NewClient(cfg)
	}
	return s, nil
}

// Model returns the model identifier requests are sent with.
func (s *Session) Model() string { return s.model }

// WithModel returns a copy of s that targets model. An empty model keeps the current one.
func (s *Session) WithModel(model string) *Session {
	cp := *s
	if model != "" {
		cp.model = model
	}
	return &cp
}

// GetResponse sends conv and returns the provider's response.
func (s *Session) GetResponse(ctx context.Context, conv prompt.Conversation) (openai.ChatCompletionResponse, error) {
	if err := conv.Validate(); err != nil {
		return openai.ChatCompletionResponse{}, err
	}

	logger.L.Debug("dispatching completion", "model", s.model, "messages", len(conv))
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: s.toWire(conv),
	})
	if err != nil {
		logger.L.Error("LLM call failed", "model", s.model, "error", err)
		return openai.ChatCompletionResponse{}, err
	}
	logger.L.Debug("LLM response received", "id", resp.ID, "choices", len(resp.Choices))
	return resp, nil
}

func (s *Session) toWire(conv prompt.Conversation) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(conv))
	for _, m := range conv {
		role := string(m.Role)
		if m.Role == prompt.RoleDeveloper {
			role = s.developerRole
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}
