// Package zoo builds grids holding well known Game of Life creatures and
// moves grids in and out of the ASCII and packed binary file formats.
package zoo

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-world/model"
)

const (
	PatternGlider               = "glider"
	PatternRPentomino           = "r_pentomino"
	PatternLightWeightSpaceship = "light_weight_spaceship"
	PatternRandom               = "random"
)

var (
	// ErrUnknownPattern is returned by Lookup for names it does not know
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrMalformed is returned when decoding a grid file fails
	ErrMalformed = errors.New("malformed grid file")
)

// point is an (x, y) offset inside a pattern's bounding box
type point struct{ x, y int }

// fromPoints builds a width x height grid with the given cells alive
func fromPoints(width, height int, alive ...point) *model.Grid {
	cells := make([]model.Cell, width*height)
	for _, p := range alive {
		cells[p.y*width+p.x] = model.Alive
	}
	g, err := model.MakeGrid(width, height, cells)
	if err != nil {
		panic(err) // patterns are fixed, this is a programming error
	}
	return g
}

/*
Glider returns a 3x3 grid holding a glider travelling down and right.

	+---+
	| # |
	|  #|
	|###|
	+---+
*/
func Glider() *model.Grid {
	return fromPoints(3, 3, point{1, 0}, point{2, 1}, point{0, 2}, point{1, 2}, point{2, 2})
}

/*
RPentomino returns a 3x3 grid holding an r-pentomino.

	+---+
	| ##|
	|## |
	| # |
	+---+
*/
func RPentomino() *model.Grid {
	return fromPoints(3, 3, point{1, 0}, point{2, 0}, point{0, 1}, point{1, 1}, point{1, 2})
}

/*
LightWeightSpaceship returns a 5x4 grid holding a light weight spaceship.

	+-----+
	| #  #|
	|#    |
	|#   #|
	|#### |
	+-----+
*/
func LightWeightSpaceship() *model.Grid {
	return fromPoints(5, 4,
		point{1, 0}, point{4, 0},
		point{0, 1},
		point{0, 2}, point{4, 2},
		point{0, 3}, point{1, 3}, point{2, 3}, point{3, 3},
	)
}

// Lookup returns the named creature in a grid the size of its bounding box
func Lookup(name string) (*model.Grid, error) {
	switch name {
	case PatternGlider:
		return Glider(), nil
	case PatternRPentomino:
		return RPentomino(), nil
	case PatternLightWeightSpaceship:
		return LightWeightSpaceship(), nil
	}
	return nil, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
}

// Random fills a new grid, each cell alive with probability density
func Random(width, height int, density float64, rng *rand.Rand) (*model.Grid, error) {
	g, err := model.NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[Random]")
	}
	for y := range height {
		for x := range width {
			if rng.Float64() < density {
				_ = g.Set(x, y, model.Alive)
			}
		}
	}
	return g, nil
}
