package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func NewDashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash <scenario.yaml>",
		Short: "Interactive observer console",
		Long:  `Open a terminal console over the scenario: type observer commands, watch the timeline and the command log react.`,
		Args:  cobra.ExactArgs(1),
		RunE:  makeDashRunner(),
	}

	return cmd
}

func makeDashRunner() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		w, err := loadWorld(args[0])
		if err != nil {
			return err
		}

		program := tea.NewProgram(newDashModel(w), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("run console: %w", err)
		}
		return nil
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type dashModel struct {
	world   *world
	input   textinput.Model
	view    viewport.Model
	history []string
	ready   bool
}

func newDashModel(w *world) *dashModel {
	input := textinput.New()
	input.Placeholder = "observer command (merge, split, reject, tag floor <name>, mask certainty < x, log)"
	input.Prompt = promptStyle.Render("> ")
	input.Focus()

	m := &dashModel{
		world: w,
		input: input,
	}
	m.history = append(m.history, strings.TrimRight(w.summary(), "\n"))
	return m
}

func (m *dashModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 7
		if height < 3 {
			height = 3
		}
		if !m.ready {
			m.view = viewport.New(msg.Width-4, height)
			m.ready = true
		} else {
			m.view.Width = msg.Width - 4
			m.view.Height = height
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.view, cmd = m.view.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *dashModel) submit() {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return
	}
	m.input.Reset()

	m.history = append(m.history, promptStyle.Render("> "+raw))

	var sb strings.Builder
	if err := m.world.runCommand(&sb, raw); err != nil {
		m.history = append(m.history, errorStyle.Render(err.Error()))
	} else {
		m.history = append(m.history, strings.TrimRight(sb.String(), "\n"))
	}
	m.refresh()
}

func (m *dashModel) refresh() {
	if !m.ready {
		return
	}
	m.view.SetContent(strings.Join(m.history, "\n"))
	m.view.GotoBottom()
}

func (m *dashModel) View() string {
	if !m.ready {
		return "loading..."
	}

	status := statusStyle.Render(fmt.Sprintf(
		"agents: %d  nodes: %d  conflicts: %d  tags: %d",
		len(m.world.agents),
		m.world.timeline.Len(),
		len(m.world.sess.Conflicts),
		len(m.world.engine.FloorTags()),
	))

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s",
		titleStyle.Render("meshy - observer mode"),
		status,
		paneStyle.Render(m.view.View()),
		m.input.View(),
		statusStyle.Render("enter: execute  esc: quit"),
	)
}
