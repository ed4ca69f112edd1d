package model

import (
	"github.com/pkg/errors"
)

// Grid is a width x height buffer of cells stored row-major in a flat slice.
// The zero value is a valid 0x0 grid.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a new grid with the specified dimensions, every cell Dead
func NewGrid(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// NewSquareGrid creates a size x size grid
func NewSquareGrid(size int) (*Grid, error) {
	return NewGrid(size, size)
}

// NewEmptyGrid creates a 0x0 grid
func NewEmptyGrid() *Grid {
	return &Grid{}
}

// MakeGrid builds a grid from a row-major cell slice. The slice is copied and
// every cell is normalized to Dead or Alive.
func MakeGrid(width, height int, cells []Cell) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[MakeGrid]")
	}
	if len(cells) != width*height {
		return nil, errors.Wrapf(ErrInvalidSize, "[MakeGrid] %d cells for %dx%d", len(cells), width, height)
	}
	for i, c := range cells {
		g.cells[i] = c.normalize()
	}
	return g, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// TotalCells returns width * height
func (g *Grid) TotalCells() int {
	return g.width * g.height
}

// AliveCount returns the number of living cells
func (g *Grid) AliveCount() (count int) {
	for _, c := range g.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// DeadCount returns the number of dead cells
func (g *Grid) DeadCount() int {
	return g.TotalCells() - g.AliveCount()
}

// Cells returns a copy of the row-major cell buffer
func (g *Grid) Cells() []Cell {
	return append([]Cell(nil), g.cells...)
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns a reference to the cell backing (x, y).
func (g *Grid) At(x, y int) (*Cell, error) {
	if !g.inBounds(x, y) {
		return nil, errors.Wrapf(ErrOutOfBounds, "[At] (%d,%d) in %dx%d", x, y, g.width, g.height)
	}
	return &g.cells[g.index(x, y)], nil
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (Cell, error) {
	c, err := g.At(x, y)
	if err != nil {
		return Dead, err
	}
	return *c, nil
}

// Set sets a cell. Any value other than Dead is stored as Alive.
func (g *Grid) Set(x, y int, cell Cell) error {
	c, err := g.At(x, y)
	if err != nil {
		return err
	}
	*c = cell.normalize()
	return nil
}

// Resize rebuilds the grid at the new size anchored at the top-left corner.
// Cells inside both the old and new bounds are kept, new cells are Dead.
func (g *Grid) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return errors.Wrapf(ErrInvalidSize, "[Resize] %dx%d", width, height)
	}

	cells := make([]Cell, width*height)
	keepW, keepH := min(width, g.width), min(height, g.height)
	for y := range keepH {
		copy(cells[y*width:y*width+keepW], g.cells[g.index(0, y):g.index(keepW, y)])
	}

	g.width, g.height, g.cells = width, height, cells
	return nil
}

// ResizeSquare resizes the grid to size x size
func (g *Grid) ResizeSquare(size int) error {
	return g.Resize(size, size)
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  g.Cells(),
	}
}

// Equal reports whether both grids have the same shape and contents
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Crop returns a new grid holding the half-open window [x0,x1) x [y0,y1).
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if !g.validCorner(x0, y0) || !g.validCorner(x1, y1) || x1 < x0 || y1 < y0 {
		return nil, errors.Wrapf(ErrInvalidRange, "[Crop] (%d,%d)-(%d,%d) in %dx%d",
			x0, y0, x1, y1, g.width, g.height)
	}

	width := x1 - x0
	cropped := &Grid{width: width, height: y1 - y0, cells: make([]Cell, width*(y1-y0))}
	for y := y0; y < y1; y++ {
		copy(cropped.cells[cropped.index(0, y-y0):], g.cells[g.index(x0, y):g.index(x1, y)])
	}
	return cropped, nil
}

// Merge overlays other onto g with its top-left corner at (x0, y0). With
// aliveOnly set, only Alive cells of other are written.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if !g.validCorner(x0, y0) || !g.validCorner(x0+other.width, y0+other.height) {
		return errors.Wrapf(ErrInvalidRange, "[Merge] %dx%d at (%d,%d) in %dx%d",
			other.width, other.height, x0, y0, g.width, g.height)
	}

	for y := range other.height {
		for x := range other.width {
			c := other.cells[other.index(x, y)]
			if aliveOnly && !c.IsAlive() {
				continue
			}
			g.cells[g.index(x0+x, y0+y)] = c
		}
	}
	return nil
}

// validCorner checks a corner of a half-open window, so the grid's own
// width and height are accepted.
func (g *Grid) validCorner(x, y int) bool {
	return x >= 0 && y >= 0 && x <= g.width && y <= g.height
}

// Rotate returns a copy rotated clockwise by rotation * 90 degrees.
func (g *Grid) Rotate(rotation int) *Grid {
	switch ((rotation % 4) + 4) % 4 {
	case 1:
		rotated := &Grid{width: g.height, height: g.width, cells: make([]Cell, len(g.cells))}
		for y := range g.height {
			for x := range g.width {
				rotated.cells[rotated.index(g.height-1-y, x)] = g.cells[g.index(x, y)]
			}
		}
		return rotated
	case 2:
		rotated := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
		for i, c := range g.cells {
			rotated.cells[len(g.cells)-1-i] = c
		}
		return rotated
	case 3:
		rotated := &Grid{width: g.height, height: g.width, cells: make([]Cell, len(g.cells))}
		for y := range g.height {
			for x := range g.width {
				rotated.cells[rotated.index(y, g.width-1-x)] = g.cells[g.index(x, y)]
			}
		}
		return rotated
	default:
		return g.Clone()
	}
}

// BoundingBox returns the half-open box [x0,x1) x [y0,y1) enclosing every
// living cell. ok is false when nothing is alive.
func (g *Grid) BoundingBox() (x0, y0, x1, y1 int, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[g.index(x, y)].IsAlive() {
				continue
			}
			if !ok {
				x0, y0, x1, y1, ok = x, y, x+1, y+1, true
				continue
			}
			x0, x1 = min(x0, x), max(x1, x+1)
			y0, y1 = min(y0, y), max(y1, y+1)
		}
	}
	return
}

// Trim crops the grid to its bounding box. A grid with no living cells trims to 0x0.
func (g *Grid) Trim() *Grid {
	x0, y0, x1, y1, ok := g.BoundingBox()
	if !ok {
		return NewEmptyGrid()
	}
	// a bounding box always lies inside the grid, Crop cannot fail
	trimmed, _ := g.Crop(x0, y0, x1, y1)
	return trimmed
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

func (g *Grid) String() string {
	return Render(g)
}
