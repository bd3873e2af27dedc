package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/solution"
	"github.com/vovakirdan/pixel-dash/internal/sprite"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

// Terminal rows reserved around the game raster.
const (
	headerRows = 1
	footerRows = 1
)

// originX is the canvas column where game x = 0 sits, giving the runner a
// fixed margin from the left edge.
const originX = 20

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model that runs one game: it owns the input state,
// the autopilot solution track, the pixel canvas, and the tick loop.
type Model struct {
	game   registry.Game
	canvas *sprite.Canvas
	store  *storage.Store
	config core.RuntimeConfig

	keys   core.Keys
	sol    *solution.Solution
	mapper *KeyMapper
	logs   *LogRing

	gameState  core.GameState
	paused     bool
	quitting   bool
	scoreSaved bool
}

// NewModel creates a model for the given game. The config viewport is in
// game pixels; use PixelViewport to derive it from a terminal size.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	canvas := sprite.NewCanvas(cfg.Viewport())
	canvas.SetOrigin(core.NewPos(originX, cfg.ScreenH-1))

	game.Reset(cfg)

	return Model{
		game:      game,
		canvas:    canvas,
		store:     store,
		config:    cfg,
		sol:       solution.New(),
		mapper:    NewKeyMapper(cfg.TickRate),
		logs:      NewLogRing(32),
		gameState: game.State(),
	}
}

// PixelViewport converts a terminal size in character cells to the game
// pixel raster: one pixel per column, two pixels per row after reserving the
// header and footer lines.
func PixelViewport(cols, rows int) (int, int) {
	usable := rows - headerRows - footerRows
	if usable < 1 {
		usable = 1
	}
	return cols, usable * 2
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mapper.Apply(msg, &m.keys) {
	case CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case CmdPause:
		m.paused = !m.paused

	case CmdRestart:
		if m.gameState.GameOver {
			m = m.restart()
		}

	case CmdScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleResize recomputes the pixel raster from the new terminal size.
// A live game is restarted since obstacle positions are viewport-relative.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW, m.config.ScreenH = PixelViewport(msg.Width, msg.Height)
	m.canvas.Resize(m.config.Viewport())
	m.canvas.SetOrigin(core.NewPos(originX, m.config.ScreenH-1))

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation tick. The game reads the input state and
// the solution window during Step; both advance only afterwards, exactly
// once per tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.quitting {
		return m, tickCmd(m.config.TickRate)
	}

	ctx := &registry.Context{
		Size:     m.config.Viewport(),
		Keys:     m.keys,
		Solution: m.sol,
		Logf:     m.logs.Append,
	}

	result := m.game.Step(ctx)
	m.gameState = result.State

	m.keys.Update()
	m.mapper.Tick(&m.keys)
	m.sol.Update()

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.game.ID(), m.gameState.Score, m.config.Seed)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a fresh run with a new seed and a rewound solution track.
func (m Model) restart() Model {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.sol = solution.New()
	m.keys = core.NewKeys()
	m.mapper.Reset()
	m.scoreSaved = false
	m.paused = false
	return m
}

// saveScreenshot dumps the current raster as plain text.
func (m *Model) saveScreenshot() {
	m.canvas.Clear()
	m.game.Render(m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".pixeldash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(PlainCanvas(m.canvas)), 0o600)
}

// View renders the header, the game raster, and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	m.game.Render(m.canvas)

	header := headerStyle.Render(fmt.Sprintf(" %s  score %d", m.game.Title(), m.gameState.Score))
	switch {
	case m.gameState.GameOver:
		header += statusStyle.Render("  GAME OVER (r to restart)")
	case m.paused:
		header += statusStyle.Render("  PAUSED")
	}

	footer := footerStyle.Render(" space jump · s duck · p pause · q quit")
	if last := m.logs.Last(); last != "" {
		footer += footerStyle.Render("  | " + last)
	}

	return header + "\n" + RenderCanvas(m.canvas) + "\n" + footer
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
