// Package report emits benchmark results in the exact byte format of the
// original programs: one %f elapsed line, then (for variants that dump)
// every buffer cell terminated by a carriage return. The CR terminator is
// kept for output compatibility; on a terminal the dump overwrites itself
// line by line.
package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"gridbench/internal/grid"
)

// cellTerminator follows every dumped cell value.
const cellTerminator = "\r"

// Reporter writes results to a single destination, normally stdout.
type Reporter struct {
	w io.Writer
}

// New returns a reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Elapsed prints the interval as fractional seconds with six decimals,
// newline-terminated.
func (r *Reporter) Elapsed(d time.Duration) error {
	_, err := fmt.Fprintf(r.w, "%f\n", d.Seconds())
	return err
}

// Dump prints every buffer cell in row-major order, each followed by a
// carriage return. Buffered; a full add1 grid is a million cells.
func (r *Reporter) Dump(buf *grid.Buffer) error {
	bw := bufio.NewWriter(r.w)
	for _, v := range buf.Cells() {
		if _, err := fmt.Fprintf(bw, "%d%s", v, cellTerminator); err != nil {
			return err
		}
	}
	return bw.Flush()
}
