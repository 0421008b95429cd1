package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/intent-apparatus/internal/app"
	"github.com/doeshing/intent-apparatus/internal/domain"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")) // purple
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")) // green
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")) // red
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")) // gray
	bannerStyle = lipgloss.NewStyle().Bold(true)
)

// outcomeMsg carries a processed command result back into the program.
type outcomeMsg struct {
	outcome domain.CommandOutcome
}

// replModel is the Bubble Tea model for the interactive session.
type replModel struct {
	container  *app.Container
	input      textinput.Model
	transcript []string
	width      int
	height     int
	busy       bool
}

func newReplModel(container *app.Container) replModel {
	ti := textinput.New()
	ti.Placeholder = `click at 100, 200`
	ti.CharLimit = 200
	ti.Focus()

	_, _, info := container.Session.ScreenInfo()
	banner := fmt.Sprintf("Intent Apparatus REPL. Backend: %s. %s", container.Actuator.Describe(), info)
	return replModel{
		container: container,
		input:     ti,
		transcript: []string{
			bannerStyle.Render(banner),
			mutedStyle.Render("Keywords: history, clear, examples, screen, help, quit"),
		},
	}
}

// Init implements tea.Model.
func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

// processCmd interprets and executes one command off the UI loop.
func processCmd(container *app.Container, command string) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg{outcome: container.Session.ProcessCommand(command)}
	}
}

// Update implements tea.Model.
func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line == "" || m.busy {
				return m, nil
			}
			m.input.SetValue("")
			m.appendBlock(promptStyle.Render("> ") + line)

			var buf strings.Builder
			handled, quit := replKeyword(&buf, m.container, line)
			if quit {
				return m, tea.Quit
			}
			if handled {
				m.appendBlock(strings.TrimRight(buf.String(), "\n"))
				return m, nil
			}

			m.busy = true
			return m, processCmd(m.container, line)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case outcomeMsg:
		m.busy = false
		m.appendOutcome(msg.outcome)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) appendBlock(block string) {
	m.transcript = append(m.transcript, strings.Split(block, "\n")...)
}

func (m *replModel) appendOutcome(outcome domain.CommandOutcome) {
	style := failStyle
	if outcome.Status == domain.StatusSuccess {
		style = okStyle
	}
	m.appendBlock(style.Render("Status: " + outcome.Status))
	m.appendBlock(outcome.Message)
	if outcome.Screenshot != "" {
		m.appendBlock(mutedStyle.Render("Follow-up screenshot: " + outcome.Screenshot))
	}
}

// View implements tea.Model.
func (m replModel) View() string {
	lines := m.transcript
	if m.busy {
		lines = append(lines, mutedStyle.Render("working..."))
	}
	// Keep the newest lines visible above the input row.
	if m.height > 2 {
		visible := m.height - 2
		if len(lines) > visible {
			lines = lines[len(lines)-visible:]
		}
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

func runReplTUI(container *app.Container) error {
	p := tea.NewProgram(newReplModel(container), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	return nil
}
