// Package driver owns the two-buffer stepping loop that advances a board a
// fixed number of generations.
package driver

import (
	"fmt"
	"time"

	"golbench/internal/core"
	"golbench/internal/engine"
)

// Result reports the outcome of a completed run.
type Result struct {
	// Final holds the board after the last generation. The caller owns it.
	Final *core.Grid
	// Steps is the number of generations actually applied.
	Steps int
	// Elapsed spans the whole stepping loop, not any single generation.
	Elapsed time.Duration
	// StepTimes holds one duration per generation when recording is on.
	StepTimes []time.Duration
	// Totals accumulates the engines' per-step cell accounting.
	Totals engine.Stats
}

// Driver runs an engine for a requested generation count over two privately
// owned buffers whose roles swap after every step.
type Driver struct {
	Engine engine.Engine
	// RecordSteps enables per-generation timing in Result.StepTimes. The
	// whole-run Elapsed measurement is always taken.
	RecordSteps bool
}

// Run applies the engine exactly steps times starting from initial and
// returns the resulting board with timing. The initial grid is copied, never
// aliased, so the caller's board is untouched. steps == 0 performs no engine
// call and returns a copy of the initial state.
func (d *Driver) Run(initial *core.Grid, steps int) (*Result, error) {
	if d.Engine == nil || initial == nil {
		return nil, core.ErrInvalidArgument
	}
	if steps < 0 {
		return nil, fmt.Errorf("run %d generations: %w", steps, core.ErrInvalidArgument)
	}

	// Buffer 0 starts as generation 0; after step k the freshest state is in
	// buffer (k+1) mod 2, so the result lands in buffer steps mod 2.
	var bufs [2]*core.Grid
	bufs[0] = initial.Clone()
	next, err := core.NewGrid(initial.N())
	if err != nil {
		return nil, err
	}
	bufs[1] = next

	res := &Result{Steps: steps}
	if d.RecordSteps && steps > 0 {
		res.StepTimes = make([]time.Duration, 0, steps)
	}

	start := time.Now()
	for k := 0; k < steps; k++ {
		src, dst := bufs[k%2], bufs[(k+1)%2]
		var stepStart time.Time
		if d.RecordSteps {
			stepStart = time.Now()
		}
		st, err := d.Engine.Step(src, dst)
		if err != nil {
			return nil, fmt.Errorf("generation %d: %w", k, err)
		}
		if d.RecordSteps {
			res.StepTimes = append(res.StepTimes, time.Since(stepStart))
		}
		res.Totals.Add(st)
	}
	res.Elapsed = time.Since(start)
	res.Final = bufs[steps%2]
	return res, nil
}
