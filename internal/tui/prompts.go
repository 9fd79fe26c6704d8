package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gixerrors "gix.dev/gix/internal/errors"
)

// ErrInteractiveDisabled is returned when a prompt is needed but gix is not
// attached to a terminal or GIX_NON_INTERACTIVE is set.
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled; pass the value as a flag")

// Prompter collects answers from the user.
type Prompter interface {
	// Text asks for a line of input. An empty answer takes defaultValue; the
	// result must pass every validator.
	Text(prompt, defaultValue string, validators ...Validator) (string, error)
	// Confirm asks a yes/no question.
	Confirm(prompt string, defaultValue bool) (bool, error)
	// Select asks the user to pick one option and returns its index.
	Select(prompt string, options []string, defaultIndex int) (int, error)
}

// TerminalPrompter prompts on a terminal, by default the process's own.
type TerminalPrompter struct {
	NonInteractive bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// PrompterOption configures a TerminalPrompter.
type PrompterOption func(*TerminalPrompter)

// WithPromptStreams reads answers from in and draws prompts on out.
// Nil streams keep the process defaults.
func WithPromptStreams(in io.Reader, out, errOut io.Writer) PrompterOption {
	return func(p *TerminalPrompter) {
		if in != nil {
			p.in = in
		}
		if out != nil {
			p.out = out
		}
		if errOut != nil {
			p.errOut = errOut
		}
	}
}

// NewTerminalPrompter creates a TerminalPrompter.
func NewTerminalPrompter(nonInteractive bool, opts ...PrompterOption) *TerminalPrompter {
	p := &TerminalPrompter{
		NonInteractive: nonInteractive,
		in:             os.Stdin,
		out:            os.Stdout,
		errOut:         os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// checkInteractiveAllowed refuses to prompt unless both streams are terminals.
func (p *TerminalPrompter) checkInteractiveAllowed() error {
	if p.NonInteractive || !streamsAreTerminals(p.in, p.out) {
		return ErrInteractiveDisabled
	}
	return nil
}

func (p *TerminalPrompter) run(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
}

// textInputModel is a single-line prompt that re-asks until validators pass.
type textInputModel struct {
	textInput    textinput.Model
	prompt       string
	defaultValue string
	validators   []Validator
	answer       string
	invalid      string
	done         bool
	err          error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			answer := resolveAnswer(m.textInput.Value(), m.defaultValue)
			if err := Validate(answer, m.validators...); err != nil {
				m.invalid = err.Error()
				return m, nil
			}
			m.answer = answer
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = gixerrors.ErrCancelled
			m.done = true
			return m, tea.Quit
		}
	}

	m.invalid = ""
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	if m.invalid != "" {
		b.WriteString("\n")
		b.WriteString(FormatError(m.invalid))
	}
	b.WriteString("\n\n")
	b.WriteString(ColorDim("(Press Enter to submit, Ctrl+C to cancel)"))
	return lipgloss.NewStyle().Margin(1, 0).Render(b.String())
}

// Text implements Prompter.
func (p *TerminalPrompter) Text(prompt, defaultValue string, validators ...Validator) (string, error) {
	if err := p.checkInteractiveAllowed(); err != nil {
		return "", err
	}

	ti := textinput.New()
	ti.Placeholder = defaultValue
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80

	return p.runText(textInputModel{
		textInput:    ti,
		prompt:       prompt,
		defaultValue: defaultValue,
		validators:   validators,
	})
}

func (p *TerminalPrompter) runText(m textInputModel) (string, error) {
	model, err := p.run(m)
	if err != nil {
		return "", err
	}

	final, ok := model.(textInputModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if final.err != nil {
		return "", final.err
	}
	return final.answer, nil
}

// confirmModel is a simple yes/no confirmation prompt model
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = gixerrors.ErrCancelled
			m.done = true
			return m, tea.Quit
		case tea.KeyRunes:
			switch strings.ToLower(string(msg.Runes)) {
			case "y":
				m.choice = true
				m.done = true
				return m, tea.Quit
			case "n":
				m.choice = false
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yesNo := "[y/N]"
	if m.choice {
		yesNo = "[Y/n]"
	}
	return lipgloss.NewStyle().Margin(1, 0).Render(fmt.Sprintf("%s %s", m.prompt, yesNo))
}

// Confirm implements Prompter.
func (p *TerminalPrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	if err := p.checkInteractiveAllowed(); err != nil {
		return false, err
	}

	model, err := p.run(confirmModel{prompt: prompt, choice: defaultValue})
	if err != nil {
		return false, err
	}

	final, ok := model.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type")
	}
	if final.err != nil {
		return false, final.err
	}
	return final.choice, nil
}

// Select implements Prompter.
func (p *TerminalPrompter) Select(prompt string, options []string, defaultIndex int) (int, error) {
	if err := p.checkInteractiveAllowed(); err != nil {
		return 0, err
	}
	if len(options) == 0 {
		return 0, fmt.Errorf("no options provided")
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	in, inOK := p.in.(terminal.FileReader)
	out, outOK := p.out.(terminal.FileWriter)
	if !inOK || !outOK {
		return 0, ErrInteractiveDisabled
	}

	var choice int
	err := survey.AskOne(&survey.Select{
		Message: prompt,
		Options: options,
		Default: options[defaultIndex],
	}, &choice, survey.WithStdio(in, out, p.errOut))
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, gixerrors.ErrCancelled
		}
		return 0, err
	}
	return choice, nil
}

var _ Prompter = (*TerminalPrompter)(nil)
