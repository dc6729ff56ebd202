// Package grid owns the result buffer and the validating loop driver.
package grid

import "fmt"

// Buffer is a flat, row-major result buffer of rows*cols signed integers,
// indexed by i*cols+j. It is allocated once per run and fully overwritten
// by the driver. Not safe for concurrent use; the driver is single-threaded.
type Buffer struct {
	rows  int
	cols  int
	cells []int
}

// NewBuffer allocates a rows x cols buffer in one upfront allocation.
func NewBuffer(rows, cols int) (*Buffer, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid buffer dimensions %dx%d", rows, cols)
	}
	return &Buffer{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}, nil
}

// Rows returns the row count.
func (b *Buffer) Rows() int { return b.rows }

// Cols returns the column count.
func (b *Buffer) Cols() int { return b.cols }

// Len returns the total cell count.
func (b *Buffer) Len() int { return len(b.cells) }

// Index returns the flat offset of cell (i, j).
func (b *Buffer) Index(i, j int) int { return i*b.cols + j }

// At returns the value stored at cell (i, j).
func (b *Buffer) At(i, j int) int { return b.cells[b.Index(i, j)] }

// Set stores v at cell (i, j).
func (b *Buffer) Set(i, j, v int) { b.cells[b.Index(i, j)] = v }

// Row returns the backing slice of row i.
func (b *Buffer) Row(i int) []int {
	return b.cells[i*b.cols : (i+1)*b.cols]
}

// Cells returns the backing slice in row-major order.
func (b *Buffer) Cells() []int { return b.cells }
