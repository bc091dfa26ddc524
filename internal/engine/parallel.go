package engine

import (
	"strconv"
	"sync"

	"golbench/internal/core"
)

// DefaultTile is the side length of the square cell block each execution
// unit owns when no decomposition factor is configured.
const DefaultTile = 8

// Parallel fans the board out over a 2-D grid of goroutines, one per tile of
// cells. Units share nothing mutable: each reads src and writes a disjoint
// block of dst, so the step needs no locks or atomics, only the WaitGroup
// barrier before the destination becomes visible.
type Parallel struct {
	tile int
}

// NewParallel returns a parallel engine with the given tile side length.
func NewParallel(tile int) *Parallel {
	if tile <= 0 {
		tile = DefaultTile
	}
	return &Parallel{tile: tile}
}

// Name returns the engine identifier.
func (p *Parallel) Name() string { return "parallel" }

// Tile reports the configured tile side length.
func (p *Parallel) Tile() int { return p.tile }

// Step computes the next generation of src into dst.
func (p *Parallel) Step(src, dst *core.Grid) (Stats, error) {
	if err := checkStep(src, dst); err != nil {
		return Stats{}, err
	}
	n := src.N()
	in, out := src.Cells(), dst.Cells()

	// The tile grid rounds up, so the launched units may cover more index
	// space than the board has. The bounds guard below is what keeps the
	// overhang harmless; it is a hard invariant, not an optimization.
	tiles := (n + p.tile - 1) / p.tile

	// Per-tile partial counts live in disjoint slots, summed only after the
	// barrier, so the accounting stays lock-free too.
	partial := make([]Stats, tiles*tiles)

	var wg sync.WaitGroup
	for ty := 0; ty < tiles; ty++ {
		for tx := 0; tx < tiles; tx++ {
			wg.Add(1)
			go func(tx, ty int) {
				defer wg.Done()
				var st Stats
				for y := ty * p.tile; y < (ty+1)*p.tile; y++ {
					if y >= n {
						break
					}
					for x := tx * p.tile; x < (tx+1)*p.tile; x++ {
						if x >= n {
							break
						}
						idx := y*n + x
						sum := neighborSum(in, n, x, y)
						next := nextCell(in[idx], sum)
						out[idx] = next
						switch {
						case next > in[idx]:
							st.Births++
						case next < in[idx]:
							st.Deaths++
						default:
							st.Unchanged++
						}
					}
				}
				partial[ty*tiles+tx] = st
			}(tx, ty)
		}
	}
	wg.Wait()

	var st Stats
	for _, s := range partial {
		st.Add(s)
	}
	return st, nil
}

func init() {
	Register("parallel", func(cfg map[string]string) Engine {
		tile := DefaultTile
		if v, ok := cfg["tile"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				tile = parsed
			}
		}
		return NewParallel(tile)
	})
}
