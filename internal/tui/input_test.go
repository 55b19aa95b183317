package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m InputModel, msg tea.Msg) (InputModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(InputModel), cmd
}

func TestInput_SubmitInitialValue(t *testing.T) {
	m := NewInputModel("Enter your prompt", "Write a brief text on climate change.", 40)
	require.Contains(t, m.View(), "Enter your prompt")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())

	v, err := m.Value()
	require.NoError(t, err)
	require.Equal(t, "Write a brief text on climate change.", v)
	require.Empty(t, m.View())
}

func TestInput_Typing(t *testing.T) {
	m := NewInputModel("Prompt", "", 0)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	v, err := m.Value()
	require.NoError(t, err)
	require.Equal(t, "hi", v)
}

func TestInput_EmptyEnterIsIgnored(t *testing.T) {
	m := NewInputModel("Prompt", "   ", 0)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)

	_, err := m.Value()
	require.ErrorIs(t, err, ErrCancelled)
}

func TestInput_Cancel(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewInputModel("Prompt", "something", 0)
		m, cmd := press(t, m, tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)

		_, err := m.Value()
		require.ErrorIs(t, err, ErrCancelled)
	}
}
