package core

import (
	"fmt"
	"strings"
)

// Board dimensions in cells.
const (
	Width  = 10
	Height = 20
)

// Coord represents a 2D coordinate.
// X increases to the right, Y increases downward (row 0 is the top).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by other.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Cell is the content of one grid square. Locked cells carry no kind.
type Cell uint8

const (
	Empty Cell = iota
	Occupied
)

// Grid is the fixed-size board, indexed [row][col].
// It is a value type: assignment copies every cell.
type Grid [Height][Width]Cell

// InBounds returns true if the coordinate lies inside the grid.
func InBounds(c Coord) bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

// At returns the cell at the given coordinate.
// Returns Empty for out-of-bounds coordinates.
func (g *Grid) At(c Coord) Cell {
	if !InBounds(c) {
		return Empty
	}
	return g[c.Y][c.X]
}

// Fill marks the cell at the given coordinate as occupied.
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Fill(c Coord) {
	if InBounds(c) {
		g[c.Y][c.X] = Occupied
	}
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] == Occupied {
				n++
			}
		}
	}
	return n
}

// OccupiedCoords returns all occupied coordinates ordered by row then column.
func (g *Grid) OccupiedCoords() []Coord {
	coords := make([]Coord, 0)
	for y := range g {
		for x := range g[y] {
			if g[y][x] == Occupied {
				coords = append(coords, C(x, y))
			}
		}
	}
	return coords
}

// String renders the grid as rows of "# " and ". ".
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width*2 + 1))
	for y := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g[y] {
			if g[y][x] == Occupied {
				sb.WriteString("# ")
			} else {
				sb.WriteString(". ")
			}
		}
	}
	return sb.String()
}
