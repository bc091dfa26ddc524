// Package engine computes one Game of Life generation at a time over a
// toroidal board. Each realization reads the full source grid and writes
// every cell of a distinct destination grid, so a step is visible only as a
// whole once the call returns.
package engine

import (
	"golbench/internal/core"
)

// Stats accounts for every cell touched during one generation update.
type Stats struct {
	Births    int
	Deaths    int
	Unchanged int
}

// Total returns the number of cells the step accounted for.
func (s Stats) Total() int { return s.Births + s.Deaths + s.Unchanged }

// Add accumulates another partial count into s.
func (s *Stats) Add(o Stats) {
	s.Births += o.Births
	s.Deaths += o.Deaths
	s.Unchanged += o.Unchanged
}

// Engine advances a board by exactly one generation. Step never mutates src
// and fully populates dst before returning.
type Engine interface {
	Name() string
	Step(src, dst *core.Grid) (Stats, error)
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// neighborSum counts the live cells in the wrapped 8-neighborhood of (x, y).
// The modulo arithmetic holds for any n >= 1; at n=1 every direction aliases
// the cell itself, so a lone live cell sees eight live neighbors.
func neighborSum(cells []uint8, n, x, y int) int {
	up := (y - 1 + n) % n
	down := (y + 1) % n
	left := (x - 1 + n) % n
	right := (x + 1) % n
	return int(cells[up*n+left]) + int(cells[up*n+x]) + int(cells[up*n+right]) +
		int(cells[y*n+left]) + int(cells[y*n+right]) +
		int(cells[down*n+left]) + int(cells[down*n+x]) + int(cells[down*n+right])
}

// nextCell applies the life rule table to one cell.
//
//	dead,  sum == 3         -> alive (birth)
//	dead,  sum != 3         -> dead  (barren)
//	alive, sum < 2          -> dead  (loneliness)
//	alive, sum > 3          -> dead  (overpopulation)
//	alive, sum == 2 or 3    -> alive (survival)
func nextCell(cur uint8, sum int) uint8 {
	if cur == 0 {
		if sum == 3 {
			return 1
		}
		return 0
	}
	if sum < 2 || sum > 3 {
		return 0
	}
	return 1
}

// checkStep validates the source/destination pair shared by all realizations.
func checkStep(src, dst *core.Grid) error {
	if src == nil || dst == nil || src.N() != dst.N() {
		return core.ErrInvalidArgument
	}
	if &src.Cells()[0] == &dst.Cells()[0] {
		return core.ErrInvalidArgument
	}
	return nil
}
