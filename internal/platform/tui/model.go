// Package tui provides the Bubble Tea integration for tetris.
// It handles the terminal UI loop, input mapping, and run bookkeeping.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// helpHeight is the number of terminal lines reserved below the game for
// the short help line.
const helpHeight = 1

// TickMsg is sent to trigger a game simulation tick.
// ID ties the tick to the GameModel that scheduled it.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastModelID atomic.Int64

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// GameModel runs one game: ticks, input, rendering, and run history.
// Used directly for local play and embedded in SessionModel over SSH.
type GameModel struct {
	id         int64
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	backToMenu bool
	allowBack  bool // Back to menu is only offered inside a menu flow
}

// NewGameModel creates a model for the given game. store and logger may be nil.
func NewGameModel(game core.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == "" {
		player = "local"
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		id:         lastModelID.Add(1),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keys:       DefaultGameKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// WithBackToMenu enables the back-to-menu key.
func (m GameModel) WithBackToMenu() GameModel {
	m.allowBack = true
	return m
}

// start resets the game for a new run.
func (m *GameModel) start() {
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.started = time.Now()
	m.logger.Debug("run started", "game", m.game.ID(), "player", m.player)
}

// helpLines returns how many lines the help view currently takes.
func (m GameModel) helpLines() int {
	if !m.help.ShowAll {
		return helpHeight
	}
	lines := 0
	for _, group := range m.keys.FullHelp() {
		lines = max(lines, len(group))
	}
	return lines
}

// gameConfig returns the runtime config with the help lines taken off.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-m.helpLines(), 0)
	return cfg
}

// Init starts the tick loop. The game is reset in Start or on the first tick.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.id, m.config.TickRate)
}

// Start resets the game and returns the initial command.
// Call it instead of Init when the model was built by value.
func (m *GameModel) Start() tea.Cmd {
	m.start()
	return m.Init()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		// Ticks from a previous game in the same program are dropped
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun("quit")
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.allowBack && m.gameState.Paused {
			m.saveRun("menu")
			m.backToMenu = true
		}
		return m, nil
	}

	m.inputFrame.Set(m.keys.Action(msg))
	return m, nil
}

// handleResize adapts the screen without restarting the run.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the screen and game to the space above the help view.
func (m *GameModel) fitScreen() {
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	if !m.started.IsZero() {
		m.game.Resize(cfg.ScreenW, cfg.ScreenH)
	}
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.started.IsZero() {
		m.start()
	}

	// Restart closes the current run and starts a fresh engine
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun("restart")
		m.start()
		m.inputFrame.Clear()
		return m, tickCmd(m.id, m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Locked {
		m.logger.Debug("piece locked", "locks", m.gameState.Locked, "gravity_ticks", m.gameState.GravityTicks)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.id, m.config.TickRate)
}

// Record returns the history record for the current run.
func (m GameModel) Record() storage.Run {
	duration := 0
	if m.config.TickRate > 0 {
		duration = int(m.gameState.Ticks / uint64(m.config.TickRate))
	}
	return storage.Run{
		GameID:       m.game.ID(),
		Player:       m.player,
		Locks:        m.gameState.Locked,
		GravityTicks: m.gameState.GravityTicks,
		Duration:     duration,
	}
}

// saveRun records the current run. Runs that never ticked are skipped.
// Best effort: a failed save is logged and play continues.
func (m GameModel) saveRun(reason string) {
	if m.gameState.Ticks == 0 {
		return
	}
	run := m.Record()
	if m.store == nil {
		m.logger.Debug("run not saved, no store", "reason", reason, "locks", run.Locks)
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "reason", reason, "locks", run.Locks, "duration", run.Duration)
}

// saveScreenshot writes the current screen as text to ~/.tetris/screenshots.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.started.IsZero() {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local Bubble Tea program for the given game.
func Run(game core.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg, "local")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
