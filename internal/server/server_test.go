package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/comigor/hellollm/internal/prompt"
)

type mockCompleter struct {
	resp openai.ChatCompletionResponse
	err  error
	seen []prompt.Conversation
}

func (m *mockCompleter) GetResponse(ctx context.Context, conv prompt.Conversation) (openai.ChatCompletionResponse, error) {
	m.seen = append(m.seen, conv)
	return m.resp, m.err
}

func reply(text string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: text}}},
	}
}

func TestInference_OK(t *testing.T) {
	mock := &mockCompleter{resp: reply("Cubed! Obviously!")}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("Do you prefer crushed ice or cubed ice?"))
	req.Header.Set(DeveloperHeader, "You are joyful and having an awesome day!")
	rec := httptest.NewRecorder()

	NewMux(mock).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Cubed! Obviously!", rec.Body.String())
	require.Equal(t, prompt.Conversation{
		prompt.Developer("You are joyful and having an awesome day!"),
		prompt.User("Do you prefer crushed ice or cubed ice?"),
	}, mock.seen[0])
}

func TestInference_UserOnly(t *testing.T) {
	mock := &mockCompleter{resp: reply("ok")}
	rec := httptest.NewRecorder()
	NewMux(mock).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hi")))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, prompt.Conversation{prompt.User("hi")}, mock.seen[0])
}

func TestInference_ProviderError(t *testing.T) {
	mock := &mockCompleter{err: errors.New("boom")}
	rec := httptest.NewRecorder()
	NewMux(mock).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hi")))

	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestInference_NoChoices(t *testing.T) {
	mock := &mockCompleter{}
	rec := httptest.NewRecorder()
	NewMux(mock).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hi")))

	require.Equal(t, http.StatusBadGateway, rec.Code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestInference_BadBody(t *testing.T) {
	mock := &mockCompleter{resp: reply("unused")}
	rec := httptest.NewRecorder()
	NewMux(mock).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", failingReader{}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, mock.seen)
}

func TestInference_MethodNotAllowed(t *testing.T) {
	mock := &mockCompleter{resp: reply("unused")}
	rec := httptest.NewRecorder()
	NewMux(mock).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Empty(t, mock.seen)
}
