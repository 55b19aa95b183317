package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/comigor/hellollm/internal/lesson"
	"github.com/comigor/hellollm/internal/logger"
	"github.com/comigor/hellollm/internal/promptserver"
	"github.com/comigor/hellollm/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve completions over HTTP (POST / with the prompt as body)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.Close()

			serverAddr := fmt.Sprintf("%s:%s", a.cfg.Server.Host, a.cfg.Server.Port)
			srv := &http.Server{Addr: serverAddr, Handler: server.NewMux(a.session)}

			go func() {
				<-cmd.Context().Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.L.Warn("server shutdown error", "error", err)
				}
			}()

			logger.L.Info("starting server", "address", serverAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.L.Error("failed to start server", "error", err)
				return err
			}
			return nil
		},
	}
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Expose the lessons as MCP prompts over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return promptserver.ServeStdio(lesson.Default())
		},
	}
}
