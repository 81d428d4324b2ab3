package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// parseGrid builds a board from rows of '#' (occupied) and any other
// character (empty). Rows are aligned to the floor, so short fixtures
// describe the bottom of the board.
func parseGrid(rows ...string) core.Grid {
	var g core.Grid
	offset := core.Height - len(rows)
	for i, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				g.Fill(core.C(x, offset+i))
			}
		}
	}
	return g
}

func TestParseGridAlignsToFloor(t *testing.T) {
	g := parseGrid(
		"#.........",
		"##########",
	)

	assert.Equal(t, core.Occupied, g.At(core.C(0, 18)))
	assert.Equal(t, core.Empty, g.At(core.C(1, 18)))
	assert.Equal(t, core.Width+1, g.OccupiedCount())
	assert.Equal(t, core.Empty, g.At(core.C(-1, 0)), "out-of-bounds reads are empty")
}
