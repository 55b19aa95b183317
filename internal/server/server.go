// Package server exposes the session over HTTP: the request body is the
// user prompt and the response body is the completion text.
package server

import (
	"io"
	"net/http"

	"github.com/comigor/hellollm/internal/llm"
	"github.com/comigor/hellollm/internal/logger"
	"github.com/comigor/hellollm/internal/prompt"
	"github.com/comigor/hellollm/internal/render"
)

// DeveloperHeader carries an optional developer message for the request.
const DeveloperHeader = "X-Developer-Prompt"

// NewMux returns the inference router.
func NewMux(c llm.Completer) *http.ServeMux {
	mux := http.NewServeMux()

	// main inference endpoint
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.L.Error("read body error", "err", err)
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		logger.L.Info("inference request", "bytes", len(body))

		var conv prompt.Conversation
		if dev := r.Header.Get(DeveloperHeader); dev != "" {
			conv = append(conv, prompt.Developer(dev))
		}
		conv = append(conv, prompt.User(string(body)))

		resp, err := c.GetResponse(r.Context(), conv)
		if err != nil {
			logger.L.Error("completion error", "err", err)
			http.Error(w, "failed to process request", http.StatusBadGateway)
			return
		}

		text, err := render.Text(resp)
		if err != nil {
			logger.L.Error("empty completion", "err", err)
			http.Error(w, "provider returned no choices", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte(text))
	})

	return mux
}
