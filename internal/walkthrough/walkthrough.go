// Package walkthrough replays lessons against a model, one at a time.
package walkthrough

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/qmuntal/stateless"
	"github.com/sashabaranov/go-openai"

	"github.com/comigor/hellollm/internal/history"
	"github.com/comigor/hellollm/internal/lesson"
	"github.com/comigor/hellollm/internal/llm"
	"github.com/comigor/hellollm/internal/logger"
	"github.com/comigor/hellollm/internal/render"
)

// FSM states
const (
	StateReadyToDispatch = "ReadyToDispatch"
	StateRendering       = "Rendering"
	StateDone            = "Done"  // Terminal: every lesson rendered
	StateError           = "Error" // Terminal: first failure stops the run
)

// FSM triggers
const (
	TriggerStart         = "Start"
	TriggerResponded     = "Responded"
	TriggerRendered      = "Rendered"
	TriggerFinished      = "Finished"
	TriggerErrorOccurred = "ErrorOccurred"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// Runner walks through lessons, dispatching and rendering each in turn.
type Runner struct {
	completer llm.Completer
	printer   *render.Printer
	out       io.Writer

	store     *history.Store
	sessionID string
	model     string
}

// Option customises a Runner.
type Option func(*Runner)

// WithTranscript appends every exchange to store under sessionID.
func WithTranscript(store *history.Store, sessionID, model string) Option {
	return func(r *Runner) {
		r.store = store
		r.sessionID = sessionID
		r.model = model
	}
}

// New creates a Runner. Headings go to out, completions to printer.
func New(c llm.Completer, printer *render.Printer, out io.Writer, opts ...Option) *Runner {
	r := &Runner{completer: c, printer: printer, out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run replays lessons in order and returns the first error unchanged.
func (r *Runner) Run(ctx context.Context, lessons []lesson.Lesson) error {
	type fsmContext struct {
		index     int
		response  openai.ChatCompletionResponse
		lastError error
	}
	fsmCtx := &fsmContext{}

	fsm := stateless.NewStateMachine(StateReadyToDispatch)

	// State: ReadyToDispatch
	// Action: print the next lesson heading and send its conversation.
	// Transitions:
	//   - On Responded -> Rendering
	//   - On Finished -> Done
	//   - On ErrorOccurred -> Error
	fsm.Configure(StateReadyToDispatch).
		PermitReentry(TriggerStart).
		OnEntry(func(ctx context.Context, args ...any) error {
			if fsmCtx.index >= len(lessons) {
				return fsm.FireCtx(ctx, TriggerFinished)
			}
			l := lessons[fsmCtx.index]
			logger.L.Debug("walkthrough: dispatching lesson", "lesson", l.Name, "step", fsmCtx.index+1)

			fmt.Fprintln(r.out, headingStyle.Render(fmt.Sprintf("%d. %s", fsmCtx.index+1, l.Title)))
			if l.Note != "" {
				if err := r.printer.Markdown("_" + l.Note + "_"); err != nil {
					fsmCtx.lastError = err
					return fsm.FireCtx(ctx, TriggerErrorOccurred)
				}
			}

			resp, err := r.completer.GetResponse(ctx, l.Conversation)
			if err != nil {
				logger.L.Error("walkthrough: lesson failed", "lesson", l.Name, "error", err)
				fsmCtx.lastError = err
				return fsm.FireCtx(ctx, TriggerErrorOccurred)
			}
			fsmCtx.response = resp
			return fsm.FireCtx(ctx, TriggerResponded)
		}).
		Permit(TriggerResponded, StateRendering).
		Permit(TriggerFinished, StateDone).
		Permit(TriggerErrorOccurred, StateError)

	// State: Rendering
	// Action: display the first choice and record the exchange.
	// Transitions:
	//   - On Rendered -> ReadyToDispatch (next lesson)
	//   - On ErrorOccurred -> Error
	fsm.Configure(StateRendering).
		OnEntry(func(ctx context.Context, args ...any) error {
			l := lessons[fsmCtx.index]
			if err := r.printer.PrettyPrint(fsmCtx.response); err != nil {
				fsmCtx.lastError = err
				return fsm.FireCtx(ctx, TriggerErrorOccurred)
			}
			if r.store != nil {
				text, _ := render.Text(fsmCtx.response)
				r.store.Record(r.sessionID, r.model, l.Conversation, text)
			}
			fsmCtx.index++
			return fsm.FireCtx(ctx, TriggerRendered)
		}).
		Permit(TriggerRendered, StateReadyToDispatch).
		Permit(TriggerErrorOccurred, StateError)

	fsm.Configure(StateDone)
	fsm.Configure(StateError)

	if err := fsm.FireCtx(ctx, TriggerStart); err != nil {
		return fmt.Errorf("walkthrough state machine: %w", err)
	}

	state, err := fsm.State(ctx)
	if err != nil {
		return err
	}
	switch state {
	case StateDone:
		return nil
	case StateError:
		return fsmCtx.lastError
	default:
		return errors.New("walkthrough stopped in unexpected state")
	}
}
