package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/sched"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// screenshotDir is relative to the home directory.
var screenshotDir = filepath.Join(".runner", "screenshots")

// Options configures a Model.
type Options struct {
	Game    config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Nil runs without the board
	Logger  *log.Logger    // Nil discards logs
	Player  string         // Name recorded with finished runs
}

// Model is the Bubble Tea model hosting one runner game.
type Model struct {
	engine *runner.Engine
	loop   *sched.Loop
	scene  *runner.Scene
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	player string
	config core.RuntimeConfig

	keys      KeyMap
	boardKeys BoardKeyMap
	help      help.Model
	board     Board
	showBoard bool

	lastTick time.Time
	runSaved bool // Whether the run has been saved for current game over
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh engine.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	loop := sched.New()
	scene := runner.NewScene(opts.Game)
	engine := runner.New(runner.Options{
		Config:  opts.Game,
		Frames:  loop,
		Timers:  loop,
		Surface: scene,
		Seed:    cfg.Seed,
		Logger:  logger,
	})

	h := help.New()
	h.ShowAll = false

	return Model{
		engine:    engine,
		loop:      loop,
		scene:     scene,
		screen:    core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 0)),
		store:     opts.Store,
		logger:    logger,
		player:    player,
		config:    cfg,
		keys:      DefaultKeyMap(),
		boardKeys: DefaultBoardKeyMap(),
		help:      h,
		board:     NewBoard(opts.Store, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init starts the tick loop. The session starts on the first jump.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.showBoard {
			m.engine.HandleInput(MouseAction(msg))
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBoard {
		return m.handleBoardKey(msg)
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBoard:
		m.showBoard = true
		m.board.Refresh()
	default:
		m.engine.HandleInput(action)
	}

	return m, nil
}

// handleBoardKey processes keys while the run board is shown.
// The game keeps running underneath.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.boardKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.boardKeys.Back):
		m.showBoard = false
		return m, nil
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg, m.boardKeys)
	return m, cmd
}

// handleResize processes window resize events. Game state lives in field
// coordinates, so only the drawing surfaces change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
	m.board.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick fires the timers due since the last tick, then runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.loop.Advance(stepFor(m.lastTick, now, m.config.TickRate))
	m.lastTick = now
	m.loop.Frame()

	state := m.engine.State()
	switch {
	case state.GameOver && !m.runSaved:
		m.saveRun()
		m.runSaved = true
	case !state.GameOver:
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished session in the store.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	s := m.engine.Snapshot()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.Run{
		Player:  m.player,
		Score:   s.Score,
		Frames:  s.Frames,
		Spawned: s.Spawned,
	})
	if m.showBoard {
		m.board.Refresh()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.scene.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), screenshotDir)
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", runner.ID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	m.logger.Debug("screenshot saved", "path", path)
}

// Engine returns the hosted engine.
func (m Model) Engine() *runner.Engine {
	return m.engine
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.showBoard {
		return m.board.View() + "\n" + helpStyle.Render(m.help.View(m.boardKeys))
	}

	m.scene.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click jumps
	)

	_, err := p.Run()
	return err
}
