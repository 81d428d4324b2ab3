package core

// Spawn describes where new pieces appear. Every spawned piece uses the same
// kind at rotation 0.
type Spawn struct {
	Kind Kind
	X    int
	Y    int
}

// DefaultSpawn returns the standard spawn: an L piece with its frame at (3,0).
func DefaultSpawn() Spawn {
	return Spawn{Kind: KindL, X: 3, Y: 0}
}

// Piece returns the piece created by this spawn.
func (s Spawn) Piece() Piece {
	return Piece{Kind: s.Kind, Rotation: 0, X: s.X, Y: s.Y}
}

// TickOutcome reports what a gravity tick did.
type TickOutcome uint8

const (
	// TickIdle means there was no active piece.
	TickIdle TickOutcome = iota
	// TickFell means the active piece moved down one row.
	TickFell
	// TickLocked means descent was blocked: the piece was locked and a new one spawned.
	TickLocked
)

// String returns the string representation of an outcome.
func (o TickOutcome) String() string {
	switch o {
	case TickIdle:
		return "idle"
	case TickFell:
		return "fell"
	case TickLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// State is the complete engine state.
type State struct {
	Board  Grid
	Active ActivePiece
	Spawn  Spawn
	Locks  int // Pieces locked so far
}

// Engine owns the board and the active piece.
// It is not safe for concurrent use; callers drive it from a single goroutine.
type Engine struct {
	board  Grid
	active ActivePiece
	spawn  Spawn
	locks  int
}

// New creates an engine with an empty board and a freshly spawned piece.
func New() *Engine {
	return NewWithSpawn(DefaultSpawn())
}

// NewWithSpawn creates an empty engine that spawns pieces as described by s.
func NewWithSpawn(s Spawn) *Engine {
	e := &Engine{spawn: s}
	e.spawnPiece()
	return e
}

// FromState restores an engine from a previously captured state.
// The state is taken as-is; no validation is performed.
func FromState(s State) *Engine {
	return &Engine{
		board:  s.Board,
		active: s.Active,
		spawn:  s.Spawn,
		locks:  s.Locks,
	}
}

// State returns a copy of the engine state.
func (e *Engine) State() State {
	return State{
		Board:  e.board,
		Active: e.active,
		Spawn:  e.spawn,
		Locks:  e.locks,
	}
}

// Board returns a copy of the locked cells, without the active piece.
func (e *Engine) Board() Grid {
	return e.board
}

// Active returns the falling piece and whether one exists.
func (e *Engine) Active() (Piece, bool) {
	return e.active.Get()
}

// Locks returns the number of pieces locked so far.
func (e *Engine) Locks() int {
	return e.locks
}

// IsValidPosition reports whether the candidate may be placed on the board.
// A cell is rejected if it is left of column 0, right of the last column,
// below the last row, or on an occupied cell. Cells above row 0 are allowed.
func (e *Engine) IsValidPosition(candidate Piece) bool {
	for _, c := range candidate.Cells() {
		if c.X < 0 || c.X >= Width || c.Y >= Height {
			return false
		}
		if c.Y >= 0 && e.board[c.Y][c.X] == Occupied {
			return false
		}
	}
	return true
}

// ApplyIntent moves or rotates the active piece if the result is valid.
// Returns true if the piece changed. Rejected intents leave the state untouched.
func (e *Engine) ApplyIntent(d Direction) bool {
	p, ok := e.active.Get()
	if !ok {
		return false
	}
	candidate := d.Apply(p)
	if candidate == p || !e.IsValidPosition(candidate) {
		return false
	}
	e.active = Present(candidate)
	return true
}

// Tick advances gravity by one row. When the piece cannot descend it is
// locked into the board and the next piece is spawned before Tick returns.
func (e *Engine) Tick() TickOutcome {
	p, ok := e.active.Get()
	if !ok {
		return TickIdle
	}
	next := p.Moved(0, 1)
	if e.IsValidPosition(next) {
		e.active = Present(next)
		return TickFell
	}
	e.lock(p)
	e.spawnPiece()
	return TickLocked
}

// RenderGrid returns the board with the active piece overlaid.
// Piece cells outside the grid are skipped. The engine state is not modified.
func (e *Engine) RenderGrid() Grid {
	g := e.board
	if p, ok := e.active.Get(); ok {
		for _, c := range p.Cells() {
			g.Fill(c)
		}
	}
	return g
}

// lock copies the piece's cells into the board and clears the active piece.
// Cells outside the grid are dropped.
func (e *Engine) lock(p Piece) {
	for _, c := range p.Cells() {
		e.board.Fill(c)
	}
	e.active = Absent()
	e.locks++
}

// spawnPiece places a new piece at the spawn point without checking it.
// If the spawn area is occupied the next tick locks the piece in place.
func (e *Engine) spawnPiece() {
	e.active = Present(e.spawn.Piece())
}
