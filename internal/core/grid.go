package core

import (
	"errors"
	"math"
	"slices"
)

// ErrInvalidArgument reports a non-positive grid side or a negative step
// count before any simulation work happens.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOutOfMemory reports that a board allocation cannot be represented.
var ErrOutOfMemory = errors.New("out of memory")

// Grid stores a square toroidal board of 0/1 cell values in row-major order.
// The side length is fixed for the grid's lifetime and the backing slice
// always holds exactly N*N entries.
type Grid struct {
	n    int
	data []uint8
}

// NewGrid allocates an all-dead board with side length n.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, ErrInvalidArgument
	}
	if n > math.MaxInt/n {
		return nil, ErrOutOfMemory
	}
	return &Grid{n: n, data: make([]uint8, n*n)}, nil
}

// N returns the side length.
func (g *Grid) N() int { return g.n }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.n + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.n + g.n) % g.n
	y = (y%g.n + g.n) % g.n
	return x, y
}

// At returns the cell value at (x, y) with toroidal wrapping.
func (g *Grid) At(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set writes the cell value at (x, y) with toroidal wrapping.
func (g *Grid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, data: slices.Clone(g.data)}
}

// CopyFrom overwrites this grid's cells with those of src. The side lengths
// must match.
func (g *Grid) CopyFrom(src *Grid) error {
	if src == nil || src.n != g.n {
		return ErrInvalidArgument
	}
	copy(g.data, src.data)
	return nil
}

// Equal reports whether both grids have the same side and identical cells.
func (g *Grid) Equal(other *Grid) bool {
	return other != nil && g.n == other.n && slices.Equal(g.data, other.data)
}

// Alive counts the live cells on the board.
func (g *Grid) Alive() int {
	total := 0
	for _, c := range g.data {
		if c != 0 {
			total++
		}
	}
	return total
}
