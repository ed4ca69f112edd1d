package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid from rows of ' ' and '#'
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	g, err := NewGrid(width, len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, width)
		for x := range row {
			c, err := ParseCell(row[x])
			require.NoError(t, err)
			require.NoError(t, g.Set(x, y, c))
		}
	}
	return g
}

func TestNewGrid(t *testing.T) {
	t.Parallel()

	t.Run("rectangular", func(t *testing.T) {
		t.Parallel()
		g, err := NewGrid(4, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, g.Width())
		assert.Equal(t, 3, g.Height())
		assert.Equal(t, 12, g.TotalCells())
		assert.Equal(t, 0, g.AliveCount())
		assert.Equal(t, 12, g.DeadCount())
	})

	t.Run("square", func(t *testing.T) {
		t.Parallel()
		g, err := NewSquareGrid(5)
		require.NoError(t, err)
		assert.Equal(t, 5, g.Width())
		assert.Equal(t, 5, g.Height())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		g := NewEmptyGrid()
		assert.Equal(t, 0, g.TotalCells())
		assert.Empty(t, g.Cells())
		var zero Grid
		assert.True(t, zero.Equal(g))
	})

	t.Run("negative size", func(t *testing.T) {
		t.Parallel()
		for _, dims := range [][2]int{{-1, 2}, {2, -1}, {-3, -3}} {
			_, err := NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidSize)
		}
		_, err := NewSquareGrid(-1)
		assert.True(t, errors.Is(err, ErrInvalidSize))
	})
}

func TestMakeGrid(t *testing.T) {
	t.Parallel()

	t.Run("normalizes cells", func(t *testing.T) {
		t.Parallel()
		g, err := MakeGrid(2, 2, []Cell{Dead, Alive, Cell(7), Dead})
		require.NoError(t, err)
		if diff := cmp.Diff([]Cell{Dead, Alive, Alive, Dead}, g.Cells()); diff != "" {
			t.Errorf("cells mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("copies input", func(t *testing.T) {
		t.Parallel()
		cells := []Cell{Alive, Dead}
		g, err := MakeGrid(2, 1, cells)
		require.NoError(t, err)
		cells[0] = Dead
		c, err := g.Get(0, 0)
		require.NoError(t, err)
		assert.Equal(t, Alive, c)
	})

	t.Run("wrong cell count", func(t *testing.T) {
		t.Parallel()
		_, err := MakeGrid(2, 2, []Cell{Dead})
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("negative size", func(t *testing.T) {
		t.Parallel()
		_, err := MakeGrid(-1, 0, nil)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})
}

func TestGrid_GetSet(t *testing.T) {
	t.Parallel()

	g, err := NewGrid(3, 2)
	require.NoError(t, err)

	require.NoError(t, g.Set(2, 1, Alive))
	c, err := g.Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Alive, c)
	assert.Equal(t, []Cell{Dead, Dead, Dead, Dead, Dead, Alive}, g.Cells(), "row-major layout")

	require.NoError(t, g.Set(0, 0, Cell(42)))
	c, err = g.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Alive, c, "non-dead values are stored as alive")
	assert.Equal(t, 2, g.AliveCount())
	assert.Equal(t, g.TotalCells(), g.AliveCount()+g.DeadCount())

	ref, err := g.At(1, 0)
	require.NoError(t, err)
	*ref = Alive
	c, err = g.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, Alive, c)

	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}} {
		_, err := g.Get(xy[0], xy[1])
		assert.ErrorIs(t, err, ErrOutOfBounds, "get %v", xy)
		assert.ErrorIs(t, g.Set(xy[0], xy[1], Alive), ErrOutOfBounds, "set %v", xy)
		_, err = g.At(xy[0], xy[1])
		assert.ErrorIs(t, err, ErrOutOfBounds, "at %v", xy)
	}
	assert.Equal(t, 3, g.AliveCount())
}

func TestGrid_Resize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
		want          []string
	}{
		{"shrink", 2, 1, []string{"# "}},
		{"grow", 4, 3, []string{"# # ", " ## ", "    "}},
		{"narrow and tall", 1, 3, []string{"#", " ", " "}},
		{"to empty", 0, 0, nil},
		{"same", 3, 2, []string{"# #", " ##"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gridFromRows(t, "# #", " ##")
			require.NoError(t, g.Resize(tt.width, tt.height))
			assert.Equal(t, tt.width, g.Width())
			assert.Equal(t, tt.height, g.Height())
			assert.Len(t, g.Cells(), tt.width*tt.height)
			assert.True(t, gridFromRows(t, tt.want...).Equal(g), "got\n%s", g)
		})
	}

	t.Run("square", func(t *testing.T) {
		t.Parallel()
		g := gridFromRows(t, "# #", " ##")
		require.NoError(t, g.ResizeSquare(2))
		assert.True(t, gridFromRows(t, "# ", " #").Equal(g))
	})

	t.Run("negative leaves grid untouched", func(t *testing.T) {
		t.Parallel()
		g := gridFromRows(t, "# #", " ##")
		before := g.Clone()
		assert.ErrorIs(t, g.Resize(-1, 2), ErrInvalidSize)
		assert.True(t, before.Equal(g))
	})

	t.Run("round trip keeps overlap", func(t *testing.T) {
		t.Parallel()
		g := gridFromRows(t, "##  #", " # # ", "#####", "  #  ")
		resized := g.Clone()
		require.NoError(t, resized.Resize(2, 6))
		require.NoError(t, resized.Resize(g.Width(), g.Height()))
		for y := range g.Height() {
			for x := range g.Width() {
				got, err := resized.Get(x, y)
				require.NoError(t, err)
				if x < 2 {
					want, _ := g.Get(x, y)
					assert.Equal(t, want, got, "(%d,%d)", x, y)
				} else {
					assert.Equal(t, Dead, got, "(%d,%d)", x, y)
				}
			}
		}
	})
}

func TestGrid_Crop(t *testing.T) {
	t.Parallel()

	g := gridFromRows(t,
		"#  #",
		" ## ",
		"#  #",
	)

	t.Run("window", func(t *testing.T) {
		t.Parallel()
		c, err := g.Crop(1, 0, 3, 2)
		require.NoError(t, err)
		assert.True(t, gridFromRows(t, "  ", "##").Equal(c), "got\n%s", c)
	})

	t.Run("whole grid uses exclusive upper bound", func(t *testing.T) {
		t.Parallel()
		c, err := g.Crop(0, 0, 4, 3)
		require.NoError(t, err)
		assert.True(t, g.Equal(c))
	})

	t.Run("empty window", func(t *testing.T) {
		t.Parallel()
		c, err := g.Crop(2, 1, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Width())
		assert.Equal(t, 2, c.Height())
	})

	t.Run("invalid ranges", func(t *testing.T) {
		t.Parallel()
		before := g.Clone()
		for _, r := range [][4]int{
			{-1, 0, 2, 2},
			{0, -1, 2, 2},
			{0, 0, 5, 2},
			{0, 0, 2, 4},
			{3, 0, 1, 2},
			{0, 2, 2, 1},
		} {
			_, err := g.Crop(r[0], r[1], r[2], r[3])
			assert.ErrorIs(t, err, ErrInvalidRange, "crop %v", r)
		}
		assert.True(t, before.Equal(g))
	})
}

func TestGrid_Merge(t *testing.T) {
	t.Parallel()

	stamp := gridFromRows(t, "# ", " #")

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()
		g := gridFromRows(t, "###", "###", "###")
		require.NoError(t, g.Merge(stamp, 1, 1, false))
		assert.True(t, gridFromRows(t, "###", "## ", "# #").Equal(g), "got\n%s", g)
	})

	t.Run("alive only", func(t *testing.T) {
		t.Parallel()
		g := gridFromRows(t, "   ", "  #", "   ")
		aliveBefore := g.AliveCount()
		require.NoError(t, g.Merge(stamp, 1, 1, true))
		assert.True(t, gridFromRows(t, "   ", " ##", "  #").Equal(g), "got\n%s", g)
		assert.GreaterOrEqual(t, g.AliveCount(), aliveBefore)
	})

	t.Run("alive only never kills", func(t *testing.T) {
		t.Parallel()
		g := gridFromRows(t, "###", "###", "###")
		require.NoError(t, g.Merge(stamp, 0, 0, true))
		assert.Equal(t, 9, g.AliveCount())
	})

	t.Run("flush with far edge", func(t *testing.T) {
		t.Parallel()
		g, err := NewGrid(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.Merge(stamp, 1, 1, false))
		assert.Equal(t, 2, g.AliveCount())
	})

	t.Run("invalid ranges", func(t *testing.T) {
		t.Parallel()
		g, err := NewGrid(3, 3)
		require.NoError(t, err)
		for _, xy := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
			assert.ErrorIs(t, g.Merge(stamp, xy[0], xy[1], false), ErrInvalidRange, "merge at %v", xy)
		}
		assert.Equal(t, 0, g.AliveCount())
	})

	t.Run("crop then merge restores grid", func(t *testing.T) {
		t.Parallel()
		g := gridFromRows(t, "# # ", " ## ", "#  #", " ###")
		c, err := g.Crop(1, 1, 3, 4)
		require.NoError(t, err)
		restored := g.Clone()
		require.NoError(t, restored.Merge(NewEmptyGrid(), 0, 0, false))
		blank, err := NewGrid(2, 3)
		require.NoError(t, err)
		require.NoError(t, restored.Merge(blank, 1, 1, false))
		require.NoError(t, restored.Merge(c, 1, 1, false))
		assert.True(t, g.Equal(restored))
	})
}

func TestGrid_Rotate(t *testing.T) {
	t.Parallel()

	g := gridFromRows(t,
		"## ",
		"  #",
	)

	tests := []struct {
		name     string
		rotation int
		want     []string
	}{
		{"zero", 0, []string{"## ", "  #"}},
		{"clockwise", 1, []string{" #", " #", "# "}},
		{"half turn", 2, []string{"#  ", " ##"}},
		{"counter clockwise", 3, []string{" #", "# ", "# "}},
		{"full turn", 4, []string{"## ", "  #"}},
		{"negative one", -1, []string{" #", "# ", "# "}},
		{"negative two", -2, []string{"#  ", " ##"}},
		{"negative three", -3, []string{" #", " #", "# "}},
		{"large", 1_000_000_001, []string{" #", " #", "# "}},
		{"large negative", -1_000_000_002, []string{"#  ", " ##"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := g.Rotate(tt.rotation)
			assert.True(t, gridFromRows(t, tt.want...).Equal(got), "got\n%s", got)
		})
	}

	t.Run("four quarter turns", func(t *testing.T) {
		t.Parallel()
		got := g.Rotate(1).Rotate(1).Rotate(1).Rotate(1)
		assert.True(t, g.Equal(got))
		assert.Equal(t, Render(g), Render(g.Rotate(4)))
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()
		rotated := g.Rotate(0)
		require.NoError(t, rotated.Set(2, 1, Dead))
		c, err := g.Get(2, 1)
		require.NoError(t, err)
		assert.Equal(t, Alive, c)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		for k := range 4 {
			assert.Equal(t, 0, NewEmptyGrid().Rotate(k).TotalCells())
		}
	})
}

func TestGrid_BoundingBox(t *testing.T) {
	t.Parallel()

	g := gridFromRows(t,
		"     ",
		"  #  ",
		" #   ",
		"     ",
	)
	x0, y0, x1, y1, ok := g.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, [4]int{1, 1, 3, 3}, [4]int{x0, y0, x1, y1})
	assert.True(t, gridFromRows(t, " #", "# ").Equal(g.Trim()))

	empty, err := NewGrid(3, 3)
	require.NoError(t, err)
	_, _, _, _, ok = empty.BoundingBox()
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Trim().TotalCells())
}

func TestGrid_CloneAndClear(t *testing.T) {
	t.Parallel()

	g := gridFromRows(t, "##", " #")
	clone := g.Clone()
	g.Clear()
	assert.Equal(t, 0, g.AliveCount())
	assert.Equal(t, 3, clone.AliveCount())
	assert.False(t, g.Equal(clone))
	assert.False(t, g.Equal(gridFromRows(t, "  ")))
}

func TestParseCell(t *testing.T) {
	t.Parallel()

	c, err := ParseCell('#')
	require.NoError(t, err)
	assert.Equal(t, Alive, c)
	assert.Equal(t, byte('#'), c.Char())

	c, err = ParseCell(' ')
	require.NoError(t, err)
	assert.Equal(t, Dead, c)
	assert.Equal(t, byte(' '), c.Char())

	_, err = ParseCell('x')
	assert.ErrorIs(t, err, ErrInvalidCell)
}
