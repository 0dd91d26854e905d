// Package tui provides the Bubble Tea prompt form.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davidrencse/Folder-Generator/internal/model"
	"github.com/davidrencse/Folder-Generator/internal/prompt"
)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("aborted")

type step int

const (
	stepTopic step = iota
	stepBaseDir
	stepCount
	stepDone
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	answeredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea form that collects run answers.
type Model struct {
	topics       []model.Topic
	defaultCount int

	step    step
	input   textinput.Model
	answers model.Answers
	err     error
}

// NewModel constructs a form for the given topics.
func NewModel(topics []model.Topic, defaultCount int) *Model {
	m := &Model{
		topics:       topics,
		defaultCount: defaultCount,
		input:        newInput(),
	}
	m.setPrompt()
	return m
}

func newInput() textinput.Model {
	input := textinput.New()
	input.CharLimit = 0
	input.Focus()
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrAborted
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	switch m.step {
	case stepTopic:
		chosen, err := prompt.SelectTopic(value)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.answers.Topic = chosen
	case stepBaseDir:
		baseDir := prompt.CleanBaseDir(value)
		if baseDir == "" {
			m.err = prompt.ErrNoBaseDir
			return m, tea.Quit
		}
		m.answers.BaseDir = baseDir
	case stepCount:
		m.answers.CountInput = strings.TrimSpace(value)
	}
	m.step++
	if m.step == stepDone {
		return m, tea.Quit
	}
	m.input.Reset()
	m.setPrompt()
	return m, nil
}

func (m *Model) setPrompt() {
	switch m.step {
	case stepTopic:
		m.input.Prompt = prompt.TopicPrompt
		m.input.Placeholder = fmt.Sprintf("1-%d", len(m.topics))
	case stepBaseDir:
		m.input.Prompt = prompt.BaseDirPrompt
		m.input.Placeholder = ""
	case stepCount:
		m.input.Prompt = prompt.CountPrompt(m.defaultCount)
		m.input.Placeholder = fmt.Sprintf("%d", m.defaultCount)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(prompt.MenuHeader))
	b.WriteByte('\n')
	for _, t := range m.topics {
		b.WriteString(keyStyle.Render(t.Key + "."))
		b.WriteByte(' ')
		b.WriteString(labelStyle.Render(t.Label))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	if m.step > stepTopic {
		b.WriteString(answeredStyle.Render(prompt.TopicPrompt + m.answers.Topic.Key))
		b.WriteByte('\n')
	}
	if m.step > stepBaseDir {
		b.WriteString(answeredStyle.Render(prompt.BaseDirPrompt + m.answers.BaseDir))
		b.WriteByte('\n')
	}
	if m.step < stepDone && m.err == nil {
		b.WriteString(m.input.View())
		b.WriteByte('\n')
		b.WriteString(hintStyle.Render("enter to confirm · esc to cancel"))
		b.WriteByte('\n')
	}
	return b.String()
}

// Answers returns the collected answers, or the error that ended the form.
func (m *Model) Answers() (model.Answers, error) {
	if m.err != nil {
		return model.Answers{}, m.err
	}
	if m.step != stepDone {
		return model.Answers{}, ErrAborted
	}
	return m.answers, nil
}

// Run shows the form on the given terminal streams and returns the answers.
func Run(in io.Reader, out io.Writer, topics []model.Topic, defaultCount int) (model.Answers, error) {
	form := NewModel(topics, defaultCount)
	program := tea.NewProgram(form, tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return model.Answers{}, fmt.Errorf("failed to run TUI: %w", err)
	}
	done, ok := final.(*Model)
	if !ok {
		return model.Answers{}, fmt.Errorf("unexpected TUI model %T", final)
	}
	return done.Answers()
}
