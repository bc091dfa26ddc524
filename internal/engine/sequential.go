package engine

import (
	"fmt"

	"golbench/internal/core"
)

// Sequential is the single-threaded reference realization. It walks the
// board in row-major order and double-checks its own cell accounting.
type Sequential struct{}

// NewSequential returns the sequential engine.
func NewSequential() *Sequential { return &Sequential{} }

// Name returns the engine identifier.
func (s *Sequential) Name() string { return "sequential" }

// Step computes the next generation of src into dst.
func (s *Sequential) Step(src, dst *core.Grid) (Stats, error) {
	if err := checkStep(src, dst); err != nil {
		return Stats{}, err
	}
	n := src.N()
	in, out := src.Cells(), dst.Cells()

	var st Stats
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
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

	// Every cell must be accounted for exactly once. A mismatch means the
	// update loop itself is broken, not the caller's input.
	if st.Total() != n*n {
		panic(fmt.Sprintf("engine: sequential step accounted for %d of %d cells", st.Total(), n*n))
	}
	return st, nil
}

func init() {
	Register("sequential", func(cfg map[string]string) Engine {
		return NewSequential()
	})
}
