package engine

import (
	"testing"

	"golbench/internal/core"
)

func benchStep(b *testing.B, eng Engine, n int) {
	cur, err := core.NewGrid(n)
	if err != nil {
		b.Fatal(err)
	}
	cur.Randomize(1)
	nxt, err := core.NewGrid(n)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Step(cur, nxt); err != nil {
			b.Fatal(err)
		}
		cur, nxt = nxt, cur
	}
}

func BenchmarkSequential256(b *testing.B) { benchStep(b, NewSequential(), 256) }

func BenchmarkParallel256(b *testing.B) { benchStep(b, NewParallel(0), 256) }

func BenchmarkParallel256Tile32(b *testing.B) { benchStep(b, NewParallel(32), 256) }
