package model

import (
	"sync"
	"sync/atomic"
)

// GridPool recycles grid buffers between resizes and restarts
type GridPool struct {
	pool     sync.Pool
	returned atomic.Int64
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-Dead grid of the given shape. Dimensions must be non-negative.
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put returns a grid to the pool. The caller must not use g afterwards.
func (p *GridPool) Put(g *Grid) {
	if p == nil || g == nil {
		return
	}
	p.returned.Add(1)
	p.pool.Put(g)
}

// Returned reports how many grids have been handed back with Put
func (p *GridPool) Returned() int64 {
	return p.returned.Load()
}

// reset reshapes g to width x height, reusing its buffer when it is large enough
func (g *Grid) reset(width, height int) {
	n := width * height
	if cap(g.cells) < n {
		g.cells = make([]Cell, n)
	} else {
		g.cells = g.cells[:n]
		clear(g.cells)
	}
	g.width, g.height = width, height
}
