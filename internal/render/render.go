package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"
)

// ErrNoChoices is returned when a response carries no completion to display.
var ErrNoChoices = errors.New("response has no choices: index out of range")

// Text returns the content of the first choice.
func Text(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// Printer is a write-only display sink for completions.
type Printer struct {
	w        io.Writer
	renderer *glamour.TermRenderer
}

// NewPrinter builds a Printer writing to w. Style "plain" skips markdown rendering.
func NewPrinter(w io.Writer, opts Options) (*Printer, error) {
	p := &Printer{w: w}
	if opts.Style == StylePlain {
		return p, nil
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultOptions().Width
	}
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		styleOpt = glamour.WithStylePath(opts.Style)
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	p.renderer = r
	return p, nil
}

// Markdown renders content and writes it to the sink.
func (p *Printer) Markdown(content string) error {
	if p.renderer == nil {
		_, err := io.WriteString(p.w, content+"\n")
		return err
	}
	out, err := p.renderer.Render(content)
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.w, out)
	return err
}

// PrettyPrint displays the first choice of resp.
func (p *Printer) PrettyPrint(resp openai.ChatCompletionResponse) error {
	text, err := Text(resp)
	if err != nil {
		return err
	}
	return p.Markdown(text)
}

// Raw writes the full response payload as indented JSON.
func Raw(w io.Writer, resp openai.ChatCompletionResponse) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, gjson.GetBytes(b, "@pretty").Raw)
	return err
}

// Usage summarises the model and token counts of resp on one line.
func Usage(resp openai.ChatCompletionResponse) string {
	b, err := json.Marshal(resp)
	if err != nil {
		return ""
	}
	res := gjson.GetManyBytes(b, "model", "usage.prompt_tokens", "usage.completion_tokens", "usage.total_tokens", "choices.0.finish_reason")

	var sb strings.Builder
	model := res[0].String()
	if model == "" {
		model = "unknown model"
	}
	fmt.Fprintf(&sb, "%s: %d prompt + %d completion = %d tokens", model, res[1].Int(), res[2].Int(), res[3].Int())
	if reason := res[4].String(); reason != "" {
		fmt.Fprintf(&sb, " (%s)", reason)
	}
	return sb.String()
}
