package llm

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/comigor/hellollm/internal/prompt"
)

// Client is minimal subset of openai.Client used by the session; it is easy to mock in tests.
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Completer turns a conversation into a completion. Callers depend on this
// rather than on a concrete session so a stand-in can be substituted.
type Completer interface {
	GetResponse(ctx context.Context, conv prompt.Conversation) (openai.ChatCompletionResponse, error)
}
