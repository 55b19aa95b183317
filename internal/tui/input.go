// Package tui holds the interactive prompt box.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user leaves the prompt without submitting.
var ErrCancelled = errors.New("prompt cancelled")

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// InputModel is a single-line prompt editor.
type InputModel struct {
	label     string
	input     textinput.Model
	submitted bool
	cancelled bool
}

// NewInputModel creates a focused input pre-filled with value.
func NewInputModel(label, value string, width int) InputModel {
	ti := textinput.New()
	ti.Placeholder = "Enter your prompt"
	ti.SetValue(value)
	ti.CursorEnd()
	if width > 0 {
		ti.Width = width
	}
	ti.Focus()
	return InputModel{label: label, input: ti}
}

func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m InputModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n%s\n",
		labelStyle.Render(m.label),
		m.input.View(),
		hintStyle.Render("enter to send • esc to cancel"))
}

// Value returns the submitted prompt or ErrCancelled.
func (m InputModel) Value() (string, error) {
	if !m.submitted {
		return "", ErrCancelled
	}
	return m.input.Value(), nil
}

// Prompt runs the input box on the terminal and returns what the user entered.
func Prompt(label, value string, opts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(NewInputModel(label, value, 80), opts...).Run()
	if err != nil {
		return "", err
	}
	return final.(InputModel).Value()
}
