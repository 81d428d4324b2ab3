package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for tests and debug logging.
type Snapshot struct {
	Tick           uint64
	GravityTicks   int
	Locks          int
	Active         string // Piece description, or "none"
	GravityEveryMs int64
	Grid           core.Grid // Board with the active piece drawn in
	State          GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	active := "none"
	if p, ok := g.engine.Active(); ok {
		active = p.String()
	}

	return Snapshot{
		Tick:           g.tick,
		GravityTicks:   g.gravityTicks,
		Locks:          g.engine.Locks(),
		Active:         active,
		GravityEveryMs: g.GravityInterval().Milliseconds(),
		Grid:           g.engine.RenderGrid(),
		State:          state,
	}
}
