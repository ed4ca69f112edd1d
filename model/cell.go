package model

import "github.com/pkg/errors"

// Cell is the state of a single grid position. The zero value is Dead.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

const (
	deadChar  = ' '
	aliveChar = '#'
)

var (
	// ErrInvalidSize is returned for negative dimensions or mismatched cell counts.
	ErrInvalidSize = errors.New("invalid size")
	// ErrOutOfBounds is returned when a coordinate falls outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidRange is returned when a crop or merge window does not fit the grid.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidCell is returned by ParseCell for bytes that are not a cell.
	ErrInvalidCell = errors.New("invalid cell")
)

// ParseCell converts the character form of a cell (' ' or '#') into a Cell.
func ParseCell(b byte) (Cell, error) {
	switch b {
	case deadChar:
		return Dead, nil
	case aliveChar:
		return Alive, nil
	}
	return Dead, errors.Wrapf(ErrInvalidCell, "[ParseCell] unexpected byte %q", b)
}

// Char returns the character a cell is rendered and stored as.
func (c Cell) Char() byte {
	if c.IsAlive() {
		return aliveChar
	}
	return deadChar
}

// IsAlive reports whether c is Alive.
func (c Cell) IsAlive() bool { return c != Dead }

// normalize maps anything that is not Dead onto Alive
func (c Cell) normalize() Cell {
	if c == Dead {
		return Dead
	}
	return Alive
}
