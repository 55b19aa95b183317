package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comigor/hellollm/internal/config"
	"github.com/comigor/hellollm/internal/history"
	"github.com/comigor/hellollm/internal/llm"
	"github.com/comigor/hellollm/internal/logger"
	"github.com/comigor/hellollm/internal/render"
)

var styleFlag string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hellollm",
		Short: "Chat-completion playground for prompt engineering",
		Long: `hellollm sends role-tagged prompts to an OpenAI-compatible chat endpoint
and renders the first completion as terminal markdown.

The API key is read once at startup from OpenAI_key.txt (see llm.api_key_file)
or the OPENAI_API_KEY environment variable.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&styleFlag, "style", "", "render style: auto, dark, light, notty, plain")

	root.AddCommand(
		newAskCmd(),
		newWalkthroughCmd(),
		newLessonsCmd(),
		newServeCmd(),
		newMCPCmd(),
		newHistoryCmd(),
	)
	return root
}

// app bundles what dispatching commands need.
type app struct {
	cfg     *config.Config
	session *llm.Session
	printer *render.Printer
	store   *history.Store
}

// bootstrap loads configuration and the credential. Any failure here is
// reported before a network call is attempted.
func bootstrap(out io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		return nil, err
	}
	logger.SetLevel(cfg.Log.Level)

	session, err := llm.New(cfg.LLM)
	if err != nil {
		return nil, err
	}

	opts := render.DefaultOptions().WithStyle(cfg.Render.Style).WithWidth(cfg.Render.Width)
	if styleFlag != "" {
		opts = opts.WithStyle(styleFlag)
	}
	printer, err := render.NewPrinter(out, opts)
	if err != nil {
		return nil, fmt.Errorf("render setup: %w", err)
	}

	a := &app{cfg: cfg, session: session, printer: printer}
	if cfg.History.Path != "" {
		a.store = history.New(cfg.History.Path)
	}
	return a, nil
}

func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logger.L.Warn("history close error", "error", err)
		}
	}
}
