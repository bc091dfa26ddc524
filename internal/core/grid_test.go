package core

import (
	"errors"
	"testing"
)

func TestNewGridRejectsBadSides(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewGrid(n); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("NewGrid(%d): err = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestNewGridAllocatesSquare(t *testing.T) {
	g, err := NewGrid(7)
	if err != nil {
		t.Fatal(err)
	}
	if g.N() != 7 || len(g.Cells()) != 49 {
		t.Fatalf("N=%d len=%d, want 7 and 49", g.N(), len(g.Cells()))
	}
	if g.Alive() != 0 {
		t.Fatalf("fresh board has %d live cells", g.Alive())
	}
}

func TestWrap(t *testing.T) {
	g, _ := NewGrid(4)
	cases := []struct{ x, y, wx, wy int }{
		{0, 0, 0, 0},
		{-1, -1, 3, 3},
		{4, 4, 0, 0},
		{-5, 6, 3, 2},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Errorf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestAtSetWrapAround(t *testing.T) {
	g, _ := NewGrid(4)
	g.Set(-1, -1, 1)
	if g.At(3, 3) != 1 {
		t.Fatal("Set(-1,-1) did not land on (3,3)")
	}
	if g.At(-1, -1) != 1 {
		t.Fatal("At(-1,-1) did not wrap to (3,3)")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := NewGrid(3)
	g.Set(1, 1, 1)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from source")
	}
	c.Set(0, 0, 1)
	if g.At(0, 0) != 0 {
		t.Fatal("mutating the clone changed the source")
	}
}

func TestCopyFrom(t *testing.T) {
	g, _ := NewGrid(3)
	g.Set(2, 2, 1)
	dst, _ := NewGrid(3)
	if err := dst.CopyFrom(g); err != nil {
		t.Fatal(err)
	}
	if !dst.Equal(g) {
		t.Fatal("CopyFrom did not reproduce the source")
	}
	other, _ := NewGrid(4)
	if err := other.CopyFrom(g); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("CopyFrom with mismatched sides: err = %v", err)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a, _ := NewGrid(16)
	b, _ := NewGrid(16)
	a.Randomize(99)
	b.Randomize(99)
	if !a.Equal(b) {
		t.Fatal("same seed produced different boards")
	}

	a.Clear()
	if a.Alive() != 0 {
		t.Fatal("Clear left live cells")
	}
	a.Randomize(99)
	if !a.Equal(b) {
		t.Fatal("Randomize after Clear not deterministic")
	}
}
