package core

import "fmt"

// Piece is a tetromino placed on the board. X and Y locate the top-left
// corner of its 4x4 frame and may lie outside the grid.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	X        int
	Y        int
}

// Pos returns the frame origin as a coordinate.
func (p Piece) Pos() Coord {
	return C(p.X, p.Y)
}

// Cells returns the board coordinates of the piece's occupied cells.
func (p Piece) Cells() [CellsPerPiece]Coord {
	cells := ShapeCells(p.Kind, p.Rotation)
	origin := p.Pos()
	for i := range cells {
		cells[i] = cells[i].Add(origin)
	}
	return cells
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece turned one step clockwise in place.
func (p Piece) Rotated() Piece {
	p.Rotation = p.Rotation.Next()
	return p
}

// String returns a compact description such as "L/0@(3,0)".
func (p Piece) String() string {
	return fmt.Sprintf("%s/%d@%s", p.Kind, p.Rotation, p.Pos())
}

// ActivePiece holds the falling piece or nothing. The zero value is absent.
type ActivePiece struct {
	piece   Piece
	present bool
}

// Present wraps a piece as an active piece.
func Present(p Piece) ActivePiece {
	return ActivePiece{piece: p, present: true}
}

// Absent returns an empty active piece.
func Absent() ActivePiece {
	return ActivePiece{}
}

// Get returns the piece and whether one is present.
func (a ActivePiece) Get() (Piece, bool) {
	return a.piece, a.present
}

// IsPresent reports whether a piece is present.
func (a ActivePiece) IsPresent() bool {
	return a.present
}

// String returns the piece description or "absent".
func (a ActivePiece) String() string {
	if !a.present {
		return "absent"
	}
	return a.piece.String()
}

// Direction is a player intent applied to the active piece.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirDown
	DirRotateCW
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirRotateCW:
		return "RotateCW"
	default:
		return "Unknown"
	}
}

// Apply returns the candidate produced by applying the direction to p.
// Exactly one field changes; unknown directions return p unchanged.
func (d Direction) Apply(p Piece) Piece {
	switch d {
	case DirLeft:
		return p.Moved(-1, 0)
	case DirRight:
		return p.Moved(1, 0)
	case DirDown:
		return p.Moved(0, 1)
	case DirRotateCW:
		return p.Rotated()
	default:
		return p
	}
}
