// Package tui is the terminal rendition of the sentiment form.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spacesedan/sentiview/internal/form"
	"github.com/spacesedan/sentiview/internal/models"
)

const (
	title       = "Sentiment Analysis"
	description = "Analyze the sentiment of your text using our advanced LSTM model"
	placeholder = "Enter your review here..."
	helpText    = "ctrl+s analyze • esc quit"
)

type analysisDoneMsg struct {
	result models.AnalysisResult
	err    error
}

type Model struct {
	textarea textarea.Model
	spinner  spinner.Model
	styles   Styles

	state    form.State
	analyzer form.Analyzer
}

func New(analyzer form.Analyzer) Model {
	styles := DefaultStyles()

	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{
		textarea: ta,
		spinner:  sp,
		styles:   styles,
		analyzer: analyzer,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		}

	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.textarea.SetWidth(msg.Width - 8)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analysisDoneMsg:
		m.state.Finish(msg.result, msg.err)
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.state.SetReview(m.textarea.Value())
	return m, cmd
}

// submit mirrors the disabled button: nothing happens while a request is in
// flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state.Loading {
		return m, nil
	}

	input, ok := m.state.Begin()
	if !ok {
		return m, nil
	}

	return m, tea.Batch(m.spinner.Tick, m.analyze(input))
}

func (m Model) analyze(input models.AnalysisRequest) tea.Cmd {
	analyzer := m.analyzer
	return func() tea.Msg {
		result, err := analyzer.Analyze(context.Background(), input)
		return analysisDoneMsg{result: result, err: err}
	}
}

func (m Model) View() string {
	v := m.state.View()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title) + "\n")
	b.WriteString(m.styles.Description.Render(description) + "\n\n")
	b.WriteString(m.styles.Input.Render(m.textarea.View()) + "\n\n")

	switch {
	case v.Loading:
		b.WriteString(m.spinner.View() + " " + m.styles.Disabled.Render(v.SubmitLabel))
	case v.SubmitDisabled:
		b.WriteString(m.styles.Disabled.Render(v.SubmitLabel))
	default:
		b.WriteString(m.styles.Button.Render(v.SubmitLabel))
	}
	b.WriteString("\n")

	if v.ShowError {
		b.WriteString("\n" + m.styles.Error.Render(v.Error) + "\n")
	}

	if v.ShowResult {
		style := m.styles.Negative
		if v.Positive {
			style = m.styles.Positive
		}
		b.WriteString("\n" + style.Render("Sentiment: "+v.Sentiment) + "\n")
		b.WriteString(m.styles.Confidence.Render("Confidence: "+v.ConfidenceText) + "\n")
	}

	b.WriteString("\n" + m.styles.Help.Render(helpText) + "\n")
	return b.String()
}
