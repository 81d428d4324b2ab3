package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// gravityEvery is the number of platform ticks per gravity step with the
// default 200ms interval at 60 ticks per second.
const gravityEvery = 12

func newGame(t *testing.T, w, h int) *Game {
	t.Helper()
	g := New(config.DefaultTetrisConfig())
	g.Reset(platformcore.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60})
	return g
}

func step(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	input := platformcore.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	return g.Step(input)
}

func TestResetSpawnsPiece(t *testing.T) {
	g := newGame(t, 80, 24)
	snap := g.Snapshot()

	if snap.Active != "L/0@(3,0)" {
		t.Errorf("Active = %q, expected L/0@(3,0)", snap.Active)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %q, expected playing", snap.State)
	}
	if snap.GravityEveryMs != 200 {
		t.Errorf("GravityEveryMs = %d, expected 200", snap.GravityEveryMs)
	}
}

func TestGravityPacing(t *testing.T) {
	g := newGame(t, 80, 24)

	for i := 0; i < gravityEvery-1; i++ {
		step(g)
	}
	if g.Snapshot().GravityTicks != 0 {
		t.Fatalf("gravity should not fire before %d ticks", gravityEvery)
	}

	step(g)
	snap := g.Snapshot()
	if snap.GravityTicks != 1 {
		t.Errorf("GravityTicks = %d, expected 1", snap.GravityTicks)
	}
	if snap.Active != "L/0@(3,1)" {
		t.Errorf("Active = %q, expected L/0@(3,1)", snap.Active)
	}
}

func TestMovementAppliedOncePerStep(t *testing.T) {
	g := newGame(t, 80, 24)

	step(g, platformcore.ActionLeft, platformcore.ActionRight)
	if got := g.Snapshot().Active; got != "L/0@(2,0)" {
		t.Errorf("Active = %q, expected only the first movement applied", got)
	}

	step(g, platformcore.ActionRotate)
	if got := g.Snapshot().Active; got != "L/1@(2,0)" {
		t.Errorf("Active = %q, expected rotation applied", got)
	}
}

func TestMovementBeforeGravity(t *testing.T) {
	g := newGame(t, 80, 24)

	for i := 0; i < gravityEvery-1; i++ {
		step(g)
	}
	step(g, platformcore.ActionDown)

	// Soft drop then gravity in the same tick
	if got := g.Snapshot().Active; got != "L/0@(3,2)" {
		t.Errorf("Active = %q, expected L/0@(3,2)", got)
	}
}

func TestLockReported(t *testing.T) {
	g := newGame(t, 80, 24)

	lockedAt := 0
	for i := 1; i <= gravityEvery*30; i++ {
		if step(g).Locked {
			lockedAt = i
			break
		}
	}

	// L rests at y=17 after 17 falls and locks on the 18th gravity step
	if lockedAt != gravityEvery*18 {
		t.Fatalf("locked at tick %d, expected %d", lockedAt, gravityEvery*18)
	}

	snap := g.Snapshot()
	if snap.Locks != 1 {
		t.Errorf("Locks = %d, expected 1", snap.Locks)
	}
	if snap.Active != "L/0@(3,0)" {
		t.Errorf("a new piece should spawn after lock, got %q", snap.Active)
	}
	if g.State().Locked != 1 {
		t.Errorf("State().Locked = %d, expected 1", g.State().Locked)
	}
}

func TestPauseFreezesPlay(t *testing.T) {
	g := newGame(t, 80, 24)

	step(g, platformcore.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	for i := 0; i < gravityEvery*3; i++ {
		step(g, platformcore.ActionLeft)
	}
	snap := g.Snapshot()
	if snap.Tick != 0 || snap.GravityTicks != 0 || snap.Active != "L/0@(3,0)" {
		t.Errorf("paused game advanced: %+v", snap)
	}
	if snap.State != StatePaused {
		t.Errorf("State = %q, expected paused", snap.State)
	}

	step(g, platformcore.ActionPause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := newGame(t, 20, 10)

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("State = %q, expected paused_small_window", g.Snapshot().State)
	}

	step(g, platformcore.ActionLeft)
	if g.State().Ticks != 0 {
		t.Error("game should not advance while the window is too small")
	}

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Error("enlarging the window should resume play")
	}
}

func TestResizeKeepsPlay(t *testing.T) {
	g := newGame(t, 80, 24)
	step(g, platformcore.ActionRight)

	g.Resize(100, 40)
	if got := g.Snapshot().Active; got != "L/0@(4,0)" {
		t.Errorf("resize should keep the active piece, got %q", got)
	}
}

func TestResetStartsFreshEngine(t *testing.T) {
	g := newGame(t, 80, 24)
	for i := 0; i < gravityEvery*18; i++ {
		step(g)
	}
	if g.Engine().Locks() != 1 {
		t.Fatalf("expected one lock before reset")
	}

	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	board := g.Engine().Board()
	if g.Engine().Locks() != 0 || board.OccupiedCount() != 0 {
		t.Error("reset should start with an empty board")
	}
}

func TestRenderBoard(t *testing.T) {
	g := newGame(t, 80, 24)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	// Board box is 22x22, centred horizontally under a one-line HUD
	if screen.Get(29, 1) != '┌' || screen.Get(50, 22) != '┘' {
		t.Fatalf("board frame misplaced:\n%s", screen.String())
	}
	if !strings.HasPrefix(strings.TrimSpace(screen.Row(0)), "Locked: 0") {
		t.Errorf("HUD = %q", screen.Row(0))
	}

	// Active L covers (4,1),(5,1),(6,1),(4,2); each cell is two columns wide
	for _, c := range []core.Coord{core.C(4, 1), core.C(5, 1), core.C(6, 1), core.C(4, 2)} {
		sx, sy := 30+c.X*2, 2+c.Y
		for i := 0; i < 2; i++ {
			cell := screen.GetCell(sx+i, sy)
			if cell.Rune != '#' || cell.Color != platformcore.ColorCyan {
				t.Errorf("cell %v column %d = %+v, expected cyan '#'", c, i, cell)
			}
		}
	}

	if screen.Get(30, 2) != '.' {
		t.Errorf("empty cell should render '.', got %q", screen.Get(30, 2))
	}
}

func TestRenderLockedColor(t *testing.T) {
	g := newGame(t, 80, 24)
	for i := 0; i < gravityEvery*18; i++ {
		step(g)
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	// Locked L at y=17 occupies (4,18); screen row 2+18
	cell := screen.GetCell(30+4*2, 2+18)
	if cell.Rune != '#' || cell.Color != platformcore.ColorWhite {
		t.Errorf("locked cell = %+v, expected white '#'", cell)
	}
}

func TestRenderPauseOverlay(t *testing.T) {
	g := newGame(t, 80, 24)
	step(g, platformcore.ActionPause)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(11), "PAUSED") || !strings.Contains(screen.Row(13), "P to resume") {
		t.Fatalf("paused game should show the pause overlay:\n%s", screen.String())
	}

	// The band inside the box is blanked and split by a rule; the frame stays
	if screen.Get(30, 11) != ' ' {
		t.Errorf("overlay band should be blank, got %q", screen.Get(30, 11))
	}
	if screen.Get(30, 12) != '─' || screen.Get(49, 12) != '─' {
		t.Errorf("overlay rule should span the board interior:\n%s", screen.Row(12))
	}
	if screen.Get(29, 12) != '│' || screen.Get(50, 12) != '│' {
		t.Errorf("board frame should survive the overlay:\n%s", screen.Row(12))
	}
}

func hudLine(g *Game) string {
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	return screen.Row(0)
}

func TestHUDHidesLevelWithoutDifficulty(t *testing.T) {
	g := newGame(t, 80, 24)
	if strings.Contains(hudLine(g), "Level") {
		t.Errorf("HUD should not show a level when difficulty is off: %q", hudLine(g))
	}
}

func TestDifficultySpeedsGravity(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "locks", MaxAt: 1},
		Scaling:     config.ScalingConfig{SpeedMultiplier: 1.0},
	}
	g := New(cfg)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	if g.GravityInterval() != 200*time.Millisecond {
		t.Fatalf("interval = %v before any lock", g.GravityInterval())
	}
	if !strings.Contains(hudLine(g), "Level: 0%") {
		t.Errorf("HUD = %q, expected Level: 0%%", hudLine(g))
	}
	for !step(g).Locked {
	}
	if g.GravityInterval() != 100*time.Millisecond {
		t.Errorf("interval = %v after max locks, expected 100ms", g.GravityInterval())
	}
	if !strings.Contains(hudLine(g), "Level: 100%") {
		t.Errorf("HUD = %q, expected Level: 100%%", hudLine(g))
	}
}
