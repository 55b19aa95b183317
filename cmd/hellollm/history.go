package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comigor/hellollm/internal/config"
	"github.com/comigor/hellollm/internal/history"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <session-id>",
		Short: "Print a recorded transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return err
			}
			if cfg.History.Path == "" {
				return errors.New("history is disabled: set history.path in config.yaml")
			}

			store := history.New(cfg.History.Path)
			defer store.Close()

			msgs := store.List(args[0])
			if len(msgs) == 0 {
				return errors.New("no messages for session " + args[0])
			}
			for _, m := range msgs {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", m.CreatedAt.Format("2006-01-02 15:04:05"), m.Role, m.Content)
			}
			return nil
		},
	}
}
