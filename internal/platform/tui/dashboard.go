package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

// Dashboard layout constants, in character cells.
const (
	sidePaneWidth = 24
	logPaneRows   = 6
)

// placeholderPanes are the games slotted into the side column. Only the
// runner is playable; the rest reserve their panes.
var placeholderPanes = []string{
	"Tetris",
	"Breakout",
	"Defend the Planet",
	"Space",
	"Pacman",
}

var (
	paneBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	paneDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// DashboardModel frames a live game next to the reserved game panes and a
// scrolling log pane. The embedded game model keeps running untouched; the
// dashboard only reshapes its viewport and rearranges the output.
type DashboardModel struct {
	inner  Model
	width  int
	height int
}

// NewDashboard creates a dashboard hosting the given game.
func NewDashboard(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) DashboardModel {
	return DashboardModel{
		inner: NewModel(game, store, cfg),
	}
}

// Init starts the embedded game loop.
func (m DashboardModel) Init() tea.Cmd {
	return m.inner.Init()
}

// Update forwards messages to the embedded game, rewriting resize events so
// the game only sees its own pane.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		msg = tea.WindowSizeMsg{
			Width:  m.gamePaneWidth(),
			Height: m.gamePaneHeight(),
		}
	}

	next, cmd := m.inner.Update(msg)
	if inner, ok := next.(Model); ok {
		m.inner = inner
	}
	if m.inner.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

// gamePaneWidth returns the character columns available to the game,
// excluding the side column and pane borders.
func (m DashboardModel) gamePaneWidth() int {
	w := m.width - sidePaneWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

// gamePaneHeight returns the character rows available to the game,
// excluding the log pane and pane borders.
func (m DashboardModel) gamePaneHeight() int {
	h := m.height - logPaneRows - 4
	if h < 8 {
		h = 8
	}
	return h
}

// View composes the three pane groups: the live game on the left, reserved
// panes on the right, the log strip along the bottom.
func (m DashboardModel) View() string {
	if m.inner.quitting {
		return ""
	}

	gamePane := paneBorderStyle.Render(m.inner.View())
	sidePane := m.renderSidePanes()
	logPane := m.renderLogPane()

	top := lipgloss.JoinHorizontal(lipgloss.Top, gamePane, sidePane)
	return lipgloss.JoinVertical(lipgloss.Left, top, logPane)
}

// renderSidePanes stacks one small framed box per reserved game.
func (m DashboardModel) renderSidePanes() string {
	boxes := make([]string, 0, len(placeholderPanes))
	box := paneBorderStyle.Width(sidePaneWidth)

	for _, title := range placeholderPanes {
		content := paneTitleStyle.Render(title) + "\n" + paneDimStyle.Render("coming soon")
		boxes = append(boxes, box.Render(content))
	}

	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

// renderLogPane shows the newest diagnostic lines, most recent last.
func (m DashboardModel) renderLogPane() string {
	lines := m.inner.logs.Lines()
	visible := logPaneRows - 2
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	content := paneTitleStyle.Render("Log")
	if len(lines) > 0 {
		content += "\n" + strings.Join(lines, "\n")
	} else {
		content += "\n" + paneDimStyle.Render("nothing yet")
	}

	width := m.width - 2
	if width < 20 {
		width = 20
	}
	return paneBorderStyle.Width(width).Render(content)
}

// RunDashboard starts the dashboard program.
func RunDashboard(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewDashboard(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
