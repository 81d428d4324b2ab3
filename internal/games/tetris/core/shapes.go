// Package core provides the falling-block engine: the tetromino shape table,
// the locked-cell grid and the active piece state machine.
// This package is UI-agnostic and performs no I/O.
package core

import "fmt"

// Kind identifies one of the seven tetromino geometries.
type Kind uint8

const (
	KindI Kind = iota
	KindL
	KindJ
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

// Rotations is the number of orientations per kind.
const Rotations = 4

// FrameSize is the side length of the square frame every orientation fits in.
const FrameSize = 4

// CellsPerPiece is the number of occupied cells in every orientation.
const CellsPerPiece = 4

var kindNames = [KindCount]string{"I", "L", "J", "O", "S", "T", "Z"}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if int(k) < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind parses a single-letter kind name ("I", "L", ...).
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if s == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// AllKinds returns every kind in table order.
func AllKinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Rotation is an orientation index in [0, Rotations).
type Rotation uint8

// Next returns the clockwise successor, wrapping after the last orientation.
func (r Rotation) Next() Rotation {
	return (r + 1) % Rotations
}

// Matrix is the 4x4 occupancy of one orientation, indexed [row][col].
type Matrix [FrameSize][FrameSize]bool

// Count returns the number of occupied cells.
func (m Matrix) Count() int {
	n := 0
	for _, row := range m {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// String renders the matrix as four rows of '#' and '.'.
func (m Matrix) String() string {
	b := make([]byte, 0, FrameSize*(FrameSize+1))
	for y, row := range m {
		if y > 0 {
			b = append(b, '\n')
		}
		for _, filled := range row {
			if filled {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}

// layouts lists every orientation top row first; '#' marks an occupied cell.
var layouts = [KindCount][Rotations][FrameSize]string{
	KindI: {
		{"....", "####", "....", "...."},
		{".#..", ".#..", ".#..", ".#.."},
		{"....", "....", "####", "...."},
		{"..#.", "..#.", "..#.", "..#."},
	},
	KindL: {
		{"....", ".###", ".#..", "...."},
		{"..#.", "..#.", "..##", "...."},
		{"....", "...#", ".###", "...."},
		{".##.", "..#.", "..#.", "...."},
	},
	KindJ: {
		{"....", ".###", "...#", "...."},
		{"..##", "..#.", "..#.", "...."},
		{".#..", ".###", "....", "...."},
		{"..#.", "..#.", ".##.", "...."},
	},
	KindO: {
		{"....", ".##.", ".##.", "...."},
		{"....", ".##.", ".##.", "...."},
		{"....", ".##.", ".##.", "...."},
		{"....", ".##.", ".##.", "...."},
	},
	KindS: {
		{"....", "..##", ".##.", "...."},
		{"..#.", "..##", "...#", "...."},
		{"....", "..##", ".##.", "...."},
		{".#..", ".##.", "..#.", "...."},
	},
	KindT: {
		{"....", ".###", "..#.", "...."},
		{"..#.", "..##", "..#.", "...."},
		{"..#.", ".###", "....", "...."},
		{"..#.", ".##.", "..#.", "...."},
	},
	KindZ: {
		{"....", ".##.", "..##", "...."},
		{"...#", "..##", "..#.", "...."},
		{"....", ".##.", "..##", "...."},
		{".#..", ".##.", "..#.", "...."},
	},
}

var (
	shapes     [KindCount][Rotations]Matrix
	shapeCells [KindCount][Rotations][CellsPerPiece]Coord
)

func init() {
	for k := range layouts {
		for r := range layouts[k] {
			n := 0
			for y, row := range layouts[k][r] {
				for x, ch := range row {
					if ch != '#' {
						continue
					}
					if n == CellsPerPiece {
						panic(fmt.Sprintf("core: shape %s rotation %d has more than %d cells", Kind(k), r, CellsPerPiece))
					}
					shapes[k][r][y][x] = true
					shapeCells[k][r][n] = C(x, y)
					n++
				}
			}
			if n != CellsPerPiece {
				panic(fmt.Sprintf("core: shape %s rotation %d has %d cells", Kind(k), r, n))
			}
		}
	}
}

// Shape returns the occupancy matrix for a kind and rotation.
// The rotation must already be normalized to [0, Rotations).
func Shape(k Kind, r Rotation) Matrix {
	return shapes[k][r]
}

// ShapeCells returns the frame-relative offsets of the occupied cells,
// ordered by row then column.
func ShapeCells(k Kind, r Rotation) [CellsPerPiece]Coord {
	return shapeCells[k][r]
}
