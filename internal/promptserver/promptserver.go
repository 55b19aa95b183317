// Package promptserver publishes the lesson catalog as MCP prompts so other
// MCP clients can reuse the walkthrough conversations.
package promptserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/comigor/hellollm/internal/lesson"
	"github.com/comigor/hellollm/internal/logger"
	"github.com/comigor/hellollm/internal/prompt"
)

const (
	serverName    = "hellollm-lessons"
	serverVersion = "0.1.0"
)

// New builds an MCP server with one prompt per lesson in r.
func New(r *lesson.Registry) *server.MCPServer {
	s := server.NewMCPServer(serverName, serverVersion, server.WithPromptCapabilities(false))
	for _, l := range r.List() {
		s.AddPrompt(mcp.NewPrompt(l.Name, mcp.WithPromptDescription(l.Title)), Handler(r))
	}
	return s
}

// ServeStdio runs the server on stdin/stdout until the client disconnects.
func ServeStdio(r *lesson.Registry) error {
	logger.L.Info("serving lesson prompts over stdio", "prompts", len(r.List()))
	return server.ServeStdio(New(r))
}

// Handler resolves prompts/get requests against r.
func Handler(r *lesson.Registry) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		l, err := r.Get(req.Params.Name)
		if err != nil {
			return nil, err
		}
		return Convert(l), nil
	}
}

// Convert maps a lesson onto an MCP prompt. MCP has no developer or system
// role, so developer turns are folded into the description.
func Convert(l lesson.Lesson) *mcp.GetPromptResult {
	var (
		personas []string
		messages []mcp.PromptMessage
	)
	for _, m := range l.Conversation {
		switch m.Role {
		case prompt.RoleDeveloper:
			personas = append(personas, m.Content)
		case prompt.RoleAssistant:
			messages = append(messages, mcp.NewPromptMessage(mcp.RoleAssistant, mcp.NewTextContent(m.Content)))
		default:
			messages = append(messages, mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(m.Content)))
		}
	}

	desc := l.Title
	if len(personas) > 0 {
		desc = fmt.Sprintf("%s\n\nDeveloper instructions: %s", desc, strings.Join(personas, "\n"))
	}
	return mcp.NewGetPromptResult(desc, messages)
}
