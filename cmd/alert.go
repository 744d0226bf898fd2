package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var dismissKey = key.NewBinding(
	key.WithKeys("enter", "esc", "q", "ctrl+c"),
	key.WithHelp("enter", "dismiss"),
)

// alertModel is a single modal error box that quits on any dismiss key.
type alertModel struct {
	title   string
	message string
	width   int
}

func newAlertModel(title, message string) alertModel {
	return alertModel{title: title, message: message, width: 60}
}

func (m alertModel) Init() tea.Cmd { return nil }

func (m alertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(72, max(30, msg.Width-4))
	case tea.KeyMsg:
		if key.Matches(msg, dismissKey) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m alertModel) View() string {
	return renderAlert(m.title, m.message, m.width) + "\n"
}

func renderAlert(title, message string, width int) string {
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		Render(fmt.Sprintf("runpack · %s", title))
	body := lipgloss.NewStyle().
		Width(width - 4).
		Render(message)
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render(fmt.Sprintf("%s to %s", dismissKey.Help().Key, dismissKey.Help().Desc))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF6B6B")).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, "", body, "", hint))
}

// terminalNotifier shows alerts as a modal box, blocking until dismissed
// when attached to a terminal.
type terminalNotifier struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

func newTerminalNotifier() *terminalNotifier {
	return &terminalNotifier{
		in:          os.Stdin,
		out:         os.Stderr,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd()),
	}
}

func (n *terminalNotifier) Alert(title, message string) {
	if !n.interactive {
		fmt.Fprintln(n.out, renderAlert(title, message, 60))
		return
	}
	p := tea.NewProgram(newAlertModel(title, message), tea.WithInput(n.in), tea.WithOutput(n.out))
	if _, err := p.Run(); err != nil {
		logrus.Warnf("alert could not be shown: %v", err)
		fmt.Fprintln(n.out, renderAlert(title, message, 60))
	}
}
