// Package app asks the user which countries to report on.
package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/covid-tracker/internal/normalize"
	"github.com/j-veylop/covid-tracker/internal/ui/styles"
)

// ErrCancelled is returned when the user leaves the prompt without answering.
var ErrCancelled = errors.New("prompt cancelled")

const (
	// Question is asked before the input field.
	Question = "Which countries do you want to watch?"
	// retryHint is shown when an answer names no countries.
	retryHint = "No countries recognised, try again (e.g. china, italy, usa)."
)

func defaultsHint() string {
	return fmt.Sprintf("Comma separated. Press Enter or type 'yes' for: %s",
		strings.Join(normalize.DefaultTargets, ", "))
}

// PromptModel is a single-field Bubble Tea model that resolves an answer
// into canonical targets, asking again while the answer is unusable.
type PromptModel struct {
	input     textinput.Model
	targets   []string
	hint      string
	attempts  int
	done      bool
	cancelled bool
}

// NewPrompt creates a focused prompt.
func NewPrompt() *PromptModel {
	ti := textinput.New()
	ti.Placeholder = "china, italy, usa"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return &PromptModel{input: ti}
}

// Init starts the cursor blink.
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PromptModel) submit() (tea.Model, tea.Cmd) {
	m.attempts++
	targets := normalize.Resolve(m.input.Value())
	if targets == nil {
		m.hint = retryHint
		m.input.Reset()
		return m, nil
	}
	m.targets = targets
	m.hint = ""
	m.done = true
	return m, tea.Quit
}

// View renders the question, input and any retry hint.
func (m *PromptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.FocusedStyle.Render(Question))
	b.WriteString("\n")
	b.WriteString(styles.BlurredStyle.Render(defaultsHint()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.hint != "" {
		b.WriteString(styles.HintStyle.Render(m.hint))
		b.WriteString("\n")
	}
	return b.String()
}

// Targets returns the resolved country names once the prompt is done.
func (m *PromptModel) Targets() []string {
	return m.targets
}

// Attempts returns how many answers were submitted.
func (m *PromptModel) Attempts() int {
	return m.attempts
}

// Cancelled reports whether the user quit without answering.
func (m *PromptModel) Cancelled() bool {
	return m.cancelled
}

// Ask runs the interactive prompt on in/out and returns the chosen targets.
func Ask(in io.Reader, out io.Writer) ([]string, error) {
	p := tea.NewProgram(NewPrompt(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running prompt: %w", err)
	}

	m, ok := final.(*PromptModel)
	if !ok || m.Cancelled() || len(m.Targets()) == 0 {
		return nil, ErrCancelled
	}
	return m.Targets(), nil
}
