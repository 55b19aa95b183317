package promptserver

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/comigor/hellollm/internal/lesson"
)

func textOf(t *testing.T, m mcp.PromptMessage) string {
	t.Helper()
	tc, ok := m.Content.(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", m.Content)
	return tc.Text
}

func TestConvert_FewShot(t *testing.T) {
	l, err := lesson.Default().Get("few-shot")
	require.NoError(t, err)

	res := Convert(l)
	require.Equal(t, l.Title, res.Description)
	require.Len(t, res.Messages, 3)
	require.Equal(t, mcp.RoleUser, res.Messages[0].Role)
	require.Equal(t, mcp.RoleAssistant, res.Messages[1].Role)
	require.Equal(t, "'Boy, that there is a stimple drill'.", textOf(t, res.Messages[1]))
	require.Equal(t, mcp.RoleUser, res.Messages[2].Role)
}

func TestConvert_DeveloperFoldedIntoDescription(t *testing.T) {
	l, err := lesson.Default().Get("persona-irate")
	require.NoError(t, err)

	res := Convert(l)
	require.Contains(t, res.Description, "You are irate and extremely hungry.")
	require.Len(t, res.Messages, 1)
	require.Equal(t, "Do you prefer crushed ice or cubed ice?", textOf(t, res.Messages[0]))
}

func TestHandler(t *testing.T) {
	h := Handler(lesson.Default())

	var req mcp.GetPromptRequest
	req.Params.Name = "first-prompt"
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, lesson.FirstPrompt, textOf(t, res.Messages[0]))

	req.Params.Name = "nope"
	_, err = h(context.Background(), req)
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	require.NotNil(t, New(lesson.Default()))
}
