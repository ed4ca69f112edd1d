package model

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-world/rules"
)

// World advances a grid through Game of Life generations using two equally
// sized buffers. The next generation is written into next and the buffers
// are swapped once every cell is computed.
type World struct {
	current *Grid
	next    *Grid

	workers int
	pool    *GridPool
}

// Option configures a World
type Option func(*World)

// WithWorkers splits each generation across n goroutines by rows.
// Values below 2 keep stepping on the calling goroutine.
func WithWorkers(n int) Option {
	return func(w *World) {
		w.workers = n
	}
}

// WithPool draws both buffers from pool and hands them back on Resize and Release
func WithPool(pool *GridPool) Option {
	return func(w *World) {
		w.pool = pool
	}
}

// NewWorld creates a world of the given size with every cell Dead
func NewWorld(width, height int, opts ...Option) (*World, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewWorld] %dx%d", width, height)
	}
	w := newWorld(opts)
	w.current = w.buffer(width, height)
	w.next = w.buffer(width, height)
	return w, nil
}

// NewSquareWorld creates a size x size world
func NewSquareWorld(size int, opts ...Option) (*World, error) {
	return NewWorld(size, size, opts...)
}

// NewWorldFromGrid creates a world whose current state is a copy of g
func NewWorldFromGrid(g *Grid, opts ...Option) *World {
	w := newWorld(opts)
	w.current = w.buffer(g.width, g.height)
	copy(w.current.cells, g.cells)
	w.next = w.buffer(g.width, g.height)
	return w
}

func newWorld(opts []Option) *World {
	w := &World{workers: 1}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) buffer(width, height int) *Grid {
	if w.pool != nil {
		return w.pool.Get(width, height)
	}
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}
}

// Width returns the width of the world
func (w *World) Width() int { return w.current.Width() }

// Height returns the height of the world
func (w *World) Height() int { return w.current.Height() }

// TotalCells returns width * height
func (w *World) TotalCells() int { return w.current.TotalCells() }

// AliveCount returns the number of living cells in the current state
func (w *World) AliveCount() int { return w.current.AliveCount() }

// DeadCount returns the number of dead cells in the current state
func (w *World) DeadCount() int { return w.current.DeadCount() }

// State returns a copy of the current generation
func (w *World) State() *Grid {
	return w.current.Clone()
}

// Resize resizes the current state, keeping the top-left region, and
// reallocates the next buffer to match.
func (w *World) Resize(width, height int) error {
	if err := w.current.Resize(width, height); err != nil {
		return errors.Wrap(err, "[World.Resize]")
	}
	w.pool.Put(w.next)
	w.next = w.buffer(width, height)
	return nil
}

// Set writes a cell of the current generation in place
func (w *World) Set(x, y int, cell Cell) error {
	return errors.Wrap(w.current.Set(x, y, cell), "[World.Set]")
}

// Release hands both buffers back to the world's pool. The world must not be
// used afterwards.
func (w *World) Release() {
	w.pool.Put(w.current)
	w.pool.Put(w.next)
	w.current, w.next = nil, nil
}

// ResizeSquare resizes the world to size x size
func (w *World) ResizeSquare(size int) error {
	return w.Resize(size, size)
}

// countNeighbours counts the living cells in the Moore neighbourhood of (x, y).
// Toroidal worlds wrap at the edges, bounded ones treat the outside as dead.
func (w *World) countNeighbours(x, y int, toroidal bool) int {
	g := w.current
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if toroidal {
				nx = (nx + g.width) % g.width
				ny = (ny + g.height) % g.height
			} else if !g.inBounds(nx, ny) {
				continue
			}
			if g.cells[g.index(nx, ny)].IsAlive() {
				count++
			}
		}
	}
	return count
}

// stepRows writes rows [startRow, endRow) of the next generation
func (w *World) stepRows(startRow, endRow int, toroidal bool) {
	for y := startRow; y < endRow; y++ {
		for x := range w.current.width {
			i := w.current.index(x, y)
			if rules.ApplyConwayRules(w.countNeighbours(x, y, toroidal), w.current.cells[i].IsAlive()) {
				w.next.cells[i] = Alive
			} else {
				w.next.cells[i] = Dead
			}
		}
	}
}

// Step computes one generation and swaps it in as the current state.
func (w *World) Step(toroidal bool) {
	height := w.current.height
	if w.workers < 2 || height < 2 {
		w.stepRows(0, height, toroidal)
	} else {
		var (
			eg            errgroup.Group
			rowsPerWorker = (height + w.workers - 1) / w.workers // Ceiling division
		)
		for i := range w.workers {
			var (
				startRow = i * rowsPerWorker
				endRow   = min(startRow+rowsPerWorker, height)
			)
			if startRow >= height {
				break
			}
			eg.Go(func() error {
				w.stepRows(startRow, endRow, toroidal)
				return nil
			})
		}
		// workers never fail, Wait is only a join
		_ = eg.Wait()
	}

	w.current, w.next = w.next, w.current
}

// Advance applies Step the given number of times. Zero steps is a no-op.
func (w *World) Advance(steps int, toroidal bool) error {
	if steps < 0 {
		return errors.Wrapf(ErrInvalidRange, "[Advance] negative steps %d", steps)
	}
	for range steps {
		w.Step(toroidal)
	}
	return nil
}
