// Package tetris adapts the falling-block engine to the platform Game interface.
package tetris

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

const (
	gameID    = "tetris"
	hudHeight = 1
)

// Game implements the tetris game on top of core.Engine.
type Game struct {
	cfg        config.TetrisConfig
	engine     *core.Engine
	difficulty *config.DifficultyManager

	// Glyphs and colours resolved from cfg
	filled      rune
	empty       rune
	activeColor platformcore.Color
	lockedColor platformcore.Color

	// Timing
	tickRate      int
	tick          uint64
	gravityTicks  int
	gravityTicker int // Counts platform ticks until the next gravity step

	// Screen dimensions
	screenW int
	screenH int

	// Board placement
	boardOffsetX int
	boardOffsetY int

	paused   bool
	tooSmall bool
}

// New creates a game using the given configuration.
// The configuration is expected to have passed Validate.
func New(cfg config.TetrisConfig) *Game {
	return &Game{
		cfg:         cfg,
		difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		filled:      firstRune(cfg.Render.Filled, '#'),
		empty:       firstRune(cfg.Render.Empty, '.'),
		activeColor: cfg.ActiveColor(),
		lockedColor: cfg.LockedColor(),
	}
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new run with a fresh engine.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.engine = core.NewWithSpawn(g.cfg.SpawnPoint())
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.tick = 0
	g.gravityTicks = 0
	g.gravityTicker = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the board placement. Play state is kept.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	// The board is centred in the area below the HUD
	boxW, boxH := g.boardSize()
	areaH := height - hudHeight
	box := platformcore.CenteredRect(width, areaH, boxW, boxH)
	if !box.Fits(width, areaH) {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardOffsetX = box.X
	g.boardOffsetY = hudHeight + box.Y
}

// boardSize returns the outer size of the bordered board on screen.
func (g *Game) boardSize() (int, int) {
	return core.Width*g.cfg.Render.CellWidth + 2, core.Height + 2
}

// Engine returns the underlying engine.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// GravityInterval returns the current time between gravity steps.
func (g *Game) GravityInterval() time.Duration {
	return g.difficulty.GravityInterval(
		time.Duration(g.cfg.Gravity.IntervalMs)*time.Millisecond,
		time.Duration(g.cfg.Gravity.MinIntervalMs)*time.Millisecond,
		g.engine.Locks(),
		g.tick,
	)
}

// Step advances the game by one platform tick.
// The frame's movement is applied before gravity.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	g.tick++

	if dir, ok := directionFor(input.Movement()); ok {
		g.engine.ApplyIntent(dir)
	}

	locked := false
	g.gravityTicker++
	if g.gravityTicker >= config.TicksPerStep(g.GravityInterval(), g.tickRate) {
		g.gravityTicker = 0
		g.gravityTicks++
		locked = g.engine.Tick() == core.TickLocked
	}

	return platformcore.StepResult{State: g.State(), Locked: locked}
}

// directionFor maps a movement action onto an engine direction.
func directionFor(a platformcore.Action) (core.Direction, bool) {
	switch a {
	case platformcore.ActionLeft:
		return core.DirLeft, true
	case platformcore.ActionRight:
		return core.DirRight, true
	case platformcore.ActionDown:
		return core.DirDown, true
	case platformcore.ActionRotate:
		return core.DirRotateCW, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	locks := 0
	if g.engine != nil {
		locks = g.engine.Locks()
	}
	return platformcore.GameState{
		Locked:       locks,
		GravityTicks: g.gravityTicks,
		Ticks:        g.tick,
		Paused:       g.paused,
	}
}

// Render draws the game onto the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)

	if g.paused {
		g.renderOverlay(dst, "PAUSED", "P to resume")
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf("Locked: %d  Gravity: %dms  Time: %ds",
		g.engine.Locks(),
		g.GravityInterval().Milliseconds(),
		g.tick/uint64(g.tickRate),
	)
	if g.difficulty.IsEnabled() {
		level := g.difficulty.Level(g.engine.Locks(), g.tick)
		hud += fmt.Sprintf("  Level: %d%%", int(level*100))
	}
	dst.DrawTextCentered(0, hud)
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	boxW, boxH := g.boardSize()
	dst.DrawBox(platformcore.NewRect(g.boardOffsetX, g.boardOffsetY, boxW, boxH), platformcore.ColorGray)

	board := g.engine.Board()
	view := g.engine.RenderGrid()
	cw := g.cfg.Render.CellWidth

	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			c := core.C(x, y)
			sx := g.boardOffsetX + 1 + x*cw
			sy := g.boardOffsetY + 1 + y

			switch {
			case board.At(c) == core.Occupied:
				g.drawCell(dst, sx, sy, g.filled, g.lockedColor)
			case view.At(c) == core.Occupied:
				g.drawCell(dst, sx, sy, g.filled, g.activeColor)
			default:
				dst.SetColored(sx, sy, g.empty, platformcore.ColorGray)
			}
		}
	}
}

// drawCell fills one board cell, cell_width characters wide.
func (g *Game) drawCell(dst *platformcore.Screen, sx, sy int, r rune, c platformcore.Color) {
	for i := 0; i < g.cfg.Render.CellWidth; i++ {
		dst.SetColored(sx+i, sy, r, c)
	}
}

// renderOverlay blanks a three-row band inside the board and writes the
// title and hint above and below a rule.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, hint string) {
	boxW, boxH := g.boardSize()
	mid := g.boardOffsetY + boxH/2
	band := platformcore.NewRect(g.boardOffsetX+1, mid-1, boxW-2, 3)

	dst.DrawRect(band, ' ')
	dst.DrawTextCentered(band.Y, title)
	dst.DrawHLine(band.X, mid, band.W, '─')
	dst.DrawTextCentered(band.Bottom()-1, hint)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	boxW, boxH := g.boardSize()
	mid := g.screenH / 2
	dst.DrawTextCentered(mid-1, "Window too small")
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d, have %dx%d", boxW, boxH+hudHeight, g.screenW, g.screenH))
}
