package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/comigor/hellollm/internal/history"
	"github.com/comigor/hellollm/internal/logger"
	"github.com/comigor/hellollm/internal/prompt"
	"github.com/comigor/hellollm/internal/render"
	"github.com/comigor/hellollm/internal/tui"
)

func newAskCmd() *cobra.Command {
	var (
		developer string
		examples  []string
		model     string
		raw       bool
		usage     bool
	)

	cmd := &cobra.Command{
		Use:   "ask [prompt]",
		Short: "Send a single prompt and render the reply",
		Example: `  hellollm ask "What is the difference between the LangChain and LlamaIndex?"
  hellollm ask -d "You are irate and extremely hungry." "Do you prefer crushed ice or cubed ice?"
  hellollm ask --example "Define 'stimple'=>'Boy, that there is a stimple drill'." "Use 'stimple' in a sentence"
  hellollm ask   # opens an input box`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.Close()

			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				text, err = tui.Prompt("Enter your prompt", "")
				if err != nil {
					return err
				}
			}

			conv := prompt.Conversation{}
			if developer != "" {
				conv = append(conv, prompt.Developer(developer))
			}
			for _, ex := range examples {
				q, ans, _ := strings.Cut(ex, "=>")
				conv = append(conv, prompt.User(q), prompt.Assistant(ans))
			}
			conv = append(conv, prompt.User(text))

			session := a.session.WithModel(model)
			resp, err := session.GetResponse(cmd.Context(), conv)
			if err != nil {
				return err
			}

			if raw {
				return render.Raw(cmd.OutOrStdout(), resp)
			}
			if err := a.printer.PrettyPrint(resp); err != nil {
				return err
			}
			if usage {
				cmd.PrintErrln(render.Usage(resp))
			}

			if a.store != nil {
				sessionID := history.NewSessionID()
				reply, _ := render.Text(resp)
				a.store.Record(sessionID, session.Model(), conv, reply)
				logger.L.Info("transcript saved", "session", sessionID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&developer, "developer", "d", "", "developer (system) message")
	cmd.Flags().StringArrayVarP(&examples, "example", "e", nil, "few-shot example as 'question=>answer' (repeatable)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model to use (overrides config)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the full response payload as JSON")
	cmd.Flags().BoolVar(&usage, "usage", false, "print token usage to stderr")
	return cmd
}
