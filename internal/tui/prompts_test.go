package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gixerrors "gix.dev/gix/internal/errors"
)

func newTextModel(defaultValue string, validators ...Validator) textInputModel {
	ti := textinput.New()
	ti.Focus()
	return textInputModel{
		textInput:    ti,
		prompt:       "Enter the end commit hash (leave blank for HEAD):",
		defaultValue: defaultValue,
		validators:   validators,
	}
}

func typeText(m textInputModel, text string) textInputModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(textInputModel)
}

func press(m tea.Model, key tea.KeyType) tea.Model {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next
}

func TestTextInputModelDefault(t *testing.T) {
	m := press(newTextModel("HEAD"), tea.KeyEnter).(textInputModel)

	assert.True(t, m.done)
	assert.Equal(t, "HEAD", m.answer)
}

func TestTextInputModelValidation(t *testing.T) {
	m := newTextModel("", NonEmpty("Commit message cannot be empty."))

	m = press(m, tea.KeyEnter).(textInputModel)
	require.False(t, m.done, "invalid answer keeps the prompt open")
	assert.Equal(t, "Commit message cannot be empty.", m.invalid)
	assert.Contains(t, m.View(), "Commit message cannot be empty.")

	m = typeText(m, "squashed")
	assert.Empty(t, m.invalid, "typing clears the error")

	m = press(m, tea.KeyEnter).(textInputModel)
	assert.True(t, m.done)
	assert.Equal(t, "squashed", m.answer)
}

func TestTextInputModelCancel(t *testing.T) {
	m := press(newTextModel(""), tea.KeyCtrlC).(textInputModel)

	assert.True(t, m.done)
	assert.ErrorIs(t, m.err, gixerrors.ErrCancelled)
	assert.Empty(t, m.View())
}

func TestConfirmModel(t *testing.T) {
	t.Run("enter keeps default", func(t *testing.T) {
		m := press(confirmModel{prompt: "Proceed?"}, tea.KeyEnter).(confirmModel)
		assert.False(t, m.choice)
	})

	t.Run("y accepts", func(t *testing.T) {
		next, _ := confirmModel{prompt: "Proceed?"}.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
		assert.True(t, next.(confirmModel).choice)
	})

	t.Run("view shows default", func(t *testing.T) {
		assert.Contains(t, confirmModel{prompt: "Proceed?"}.View(), "[y/N]")
		assert.Contains(t, confirmModel{prompt: "Proceed?", choice: true}.View(), "[Y/n]")
	})

	t.Run("esc cancels", func(t *testing.T) {
		m := press(confirmModel{prompt: "Proceed?"}, tea.KeyEsc).(confirmModel)
		assert.ErrorIs(t, m.err, gixerrors.ErrCancelled)
	})
}

func TestTerminalPrompterNonInteractive(t *testing.T) {
	p := NewTerminalPrompter(true)

	_, err := p.Text("Enter the start commit hash:", "")
	assert.ErrorIs(t, err, ErrInteractiveDisabled)
	_, err = p.Confirm("Proceed?", false)
	assert.ErrorIs(t, err, ErrInteractiveDisabled)
	_, err = p.Select("Push?", []string{"Yes", "No"}, 0)
	assert.ErrorIs(t, err, ErrInteractiveDisabled)
}

func TestTerminalPrompterStreams(t *testing.T) {
	t.Run("non-terminal streams disable prompts", func(t *testing.T) {
		var out bytes.Buffer
		p := NewTerminalPrompter(false, WithPromptStreams(strings.NewReader("y\n"), &out, &out))

		_, err := p.Text("Enter the start commit hash:", "")
		assert.ErrorIs(t, err, ErrInteractiveDisabled)
		_, err = p.Confirm("Proceed?", false)
		assert.ErrorIs(t, err, ErrInteractiveDisabled)
		_, err = p.Select("Push?", []string{"Yes", "No"}, 0)
		assert.ErrorIs(t, err, ErrInteractiveDisabled)
		assert.Empty(t, out.String())
	})

	t.Run("text prompt reads from the given input", func(t *testing.T) {
		var out bytes.Buffer
		p := NewTerminalPrompter(false, WithPromptStreams(strings.NewReader("abc123\r"), &out, &out))

		answer, err := p.runText(newTextModel("HEAD"))
		require.NoError(t, err)
		assert.Equal(t, "abc123", answer)
	})

	t.Run("nil streams keep the defaults", func(t *testing.T) {
		p := NewTerminalPrompter(false, WithPromptStreams(nil, nil, nil))
		assert.NotNil(t, p.in)
		assert.NotNil(t, p.out)
		assert.NotNil(t, p.errOut)
	})
}

func TestScriptedPrompter(t *testing.T) {
	p := NewScriptedPrompter().
		WithText("", "  ", "abc123", "").
		WithConfirm(true).
		WithSelect(1)

	answer, err := p.Text("Enter the start commit hash:", "", NonEmpty("Start commit hash is required."))
	require.NoError(t, err)
	assert.Equal(t, "abc123", answer)
	assert.Equal(t, []string{"Start commit hash is required.", "Start commit hash is required."}, p.ValidationErrors())

	answer, err = p.Text("Enter the end commit hash (leave blank for HEAD):", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "HEAD", answer)

	ok, err := p.Confirm("Proceed?", false)
	require.NoError(t, err)
	assert.True(t, ok)

	idx, err := p.Select("Push?", []string{"Yes", "No"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = p.Confirm("again?", false)
	assert.ErrorIs(t, err, ErrInteractiveDisabled)

	assert.Len(t, p.Asked(), 5)
}
