package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comigor/hellollm/internal/config"
)

const completionJSON = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "model": "gpt-4.1-nano",
  "choices": [{"index": 0, "message": {"role": "assistant", "content": "hello"}, "finish_reason": "stop"}],
  "usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
}`

// fakeProvider counts requests and answers every one with completionJSON.
func fakeProvider(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionJSON))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func setup(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("HELLOLLM_LLM_API_KEY", "")

	cfg := "llm:\n  base_url: " + baseURL + "/v1\nrender:\n  style: plain\nhistory:\n  path: " + filepath.Join(dir, "history.db") + "\n"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))
	t.Setenv("CONFIG_PATH", path)
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	styleFlag = ""
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAsk_MissingCredentialMakesNoCall(t *testing.T) {
	srv, hits := fakeProvider(t)
	setup(t, srv.URL)

	_, err := run(t, "ask", "hi")
	require.ErrorIs(t, err, config.ErrMissingCredential)
	require.EqualValues(t, 0, hits.Load())
}

func TestAsk_RendersReply(t *testing.T) {
	srv, hits := fakeProvider(t)
	dir := setup(t, srv.URL)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultAPIKeyFile), []byte("sk-test\n"), 0o600))

	out, err := run(t, "ask", "-d", "You are joyful and having an awesome day!", "Do you prefer crushed ice or cubed ice?")
	require.NoError(t, err)
	require.Equal(t, "hello\n", out)
	require.EqualValues(t, 1, hits.Load())
}

func TestAsk_Raw(t *testing.T) {
	srv, _ := fakeProvider(t)
	setup(t, srv.URL)
	t.Setenv("OPENAI_API_KEY", "sk-env")

	out, err := run(t, "ask", "--raw", "hi")
	require.NoError(t, err)
	require.Contains(t, out, `"chatcmpl-1"`)
	require.Contains(t, out, `"total_tokens": 4`)
}

func TestWalkthrough_SelectedLessons(t *testing.T) {
	srv, hits := fakeProvider(t)
	setup(t, srv.URL)
	t.Setenv("OPENAI_API_KEY", "sk-env")

	out, err := run(t, "walkthrough", "persona-irate", "persona-joyful")
	require.NoError(t, err)
	require.Contains(t, out, "Adding a developer message")
	require.Contains(t, out, "Swapping only the developer message")
	require.EqualValues(t, 2, hits.Load())
}

func TestWalkthrough_UnknownLessonMakesNoCall(t *testing.T) {
	srv, hits := fakeProvider(t)
	setup(t, srv.URL)
	t.Setenv("OPENAI_API_KEY", "sk-env")

	_, err := run(t, "walkthrough", "does-not-exist")
	require.EqualError(t, err, "lesson not found: does-not-exist")
	require.EqualValues(t, 0, hits.Load())
}

func TestLessons(t *testing.T) {
	out, err := run(t, "lessons")
	require.NoError(t, err)
	require.Contains(t, out, "first-prompt")
	require.Contains(t, out, "chain-of-thought-fixed")
}
