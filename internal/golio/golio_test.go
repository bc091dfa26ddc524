package golio

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"golbench/internal/core"
)

func TestRoundTrip(t *testing.T) {
	g, err := core.NewGrid(6)
	if err != nil {
		t.Fatal(err)
	}
	g.Randomize(3)

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 4*6*6 {
		t.Fatalf("encoded %d bytes, want %d", buf.Len(), 4*6*6)
	}

	got, err := Read(&buf, 6)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g) {
		t.Fatal("decoded board differs from the original")
	}
}

func TestReadShortFile(t *testing.T) {
	g, _ := core.NewGrid(4)
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatal(err)
	}
	// A 4x4 file cannot supply a 5x5 board.
	if _, err := Read(&buf, 5); !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		t.Fatalf("short read: err = %v", err)
	}
}

func TestReadNonzeroMeansAlive(t *testing.T) {
	raw := []byte{
		7, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 255, 255, 255, 255,
	}
	g, err := Read(bytes.NewReader(raw), 2)
	if err != nil {
		t.Fatal(err)
	}
	if g.At(0, 0) != 1 || g.At(1, 1) != 1 {
		t.Fatal("nonzero values did not decode as alive")
	}
	if g.At(1, 0) != 0 || g.At(0, 1) != 0 {
		t.Fatal("zero values did not decode as dead")
	}
}

func TestFileRoundTrip(t *testing.T) {
	g, err := core.NewGrid(8)
	if err != nil {
		t.Fatal(err)
	}
	g.Randomize(21)

	path := filepath.Join(t.TempDir(), "table8x8.bin")
	if err := WriteFile(path, g); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g) {
		t.Fatal("file round trip changed the board")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.bin"), 4); err == nil {
		t.Fatal("reading a missing file succeeded")
	}
}

func TestOutputName(t *testing.T) {
	if got := OutputName(64); got != "table64x64_new.bin" {
		t.Fatalf("OutputName(64) = %q", got)
	}
}
