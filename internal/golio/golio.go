// Package golio reads and writes flat binary board files: N*N little-endian
// 32-bit values in row-major order, one per cell, nonzero meaning alive.
package golio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golbench/internal/core"
)

// Read decodes a board of side n from r. It fails if fewer than n*n values
// are present; trailing data is left unread.
func Read(r io.Reader, n int) (*core.Grid, error) {
	g, err := core.NewGrid(n)
	if err != nil {
		return nil, err
	}
	cells := g.Cells()
	row := make([]byte, 4*n)
	for y := 0; y < n; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("read row %d of %dx%d board: %w", y, n, n, err)
		}
		for x := 0; x < n; x++ {
			if binary.LittleEndian.Uint32(row[4*x:]) != 0 {
				cells[y*n+x] = 1
			}
		}
	}
	return g, nil
}

// ReadFile loads a board of side n from the named file.
func ReadFile(path string, n int) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Read(bufio.NewReader(f), n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Write encodes the board to w in the same format Read accepts.
func Write(w io.Writer, g *core.Grid) error {
	n := g.N()
	cells := g.Cells()
	row := make([]byte, 4*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			binary.LittleEndian.PutUint32(row[4*x:], uint32(cells[y*n+x]))
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d of %dx%d board: %w", y, n, n, err)
		}
	}
	return nil
}

// WriteFile saves the board to the named file, creating or truncating it.
func WriteFile(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := Write(w, g); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// OutputName returns the conventional result filename for a board of side n,
// chosen so the input file is not overwritten.
func OutputName(n int) string {
	return fmt.Sprintf("table%dx%d_new.bin", n, n)
}
