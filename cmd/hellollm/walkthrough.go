package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comigor/hellollm/internal/history"
	"github.com/comigor/hellollm/internal/lesson"
	"github.com/comigor/hellollm/internal/logger"
	"github.com/comigor/hellollm/internal/walkthrough"
)

func newWalkthroughCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "walkthrough [lesson...]",
		Short: "Replay the prompt-engineering lessons against the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons, err := lesson.Default().Select(args...)
			if err != nil {
				return err
			}

			a, err := bootstrap(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.Close()

			session := a.session.WithModel(model)
			var opts []walkthrough.Option
			if a.store != nil {
				sessionID := history.NewSessionID()
				opts = append(opts, walkthrough.WithTranscript(a.store, sessionID, session.Model()))
				logger.L.Info("recording walkthrough", "session", sessionID)
			}

			return walkthrough.New(session, a.printer, cmd.OutOrStdout(), opts...).Run(cmd.Context(), lessons)
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "model to use (overrides config)")
	return cmd
}

func newLessonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "List the walkthrough lessons",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, l := range lesson.Default().List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", l.Name, l.Title)
			}
		},
	}
}
