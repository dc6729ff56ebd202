package grid

import (
	"fmt"

	"go.uber.org/zap"

	"gridbench/internal/kernel"
)

// MismatchError reports a computed value that disagrees with the
// independent reference formula. The run that produced it stops at the
// first bad cell; no partial results are reported.
type MismatchError struct {
	Kernel string
	I, J   int
	Got    int
	Want   int
	detail string
}

func (e *MismatchError) Error() string {
	if e.detail != "" {
		return e.detail
	}
	return fmt.Sprintf("kernel %s: cell (%d,%d): got %d, want %d", e.Kernel, e.I, e.J, e.Got, e.Want)
}

// Driver runs a kernel across its iteration grid in row-major order,
// validating every computed value before storing it.
type Driver struct {
	kern   kernel.Kernel
	buf    *Buffer
	strict bool
	logger *zap.Logger
}

// NewDriver builds a driver for kern writing into buf. The buffer must be
// N x N for the kernel's declared domain bound. strict enables the opt-in
// domain check on every call; the default (off) keeps the timed loop
// shape of the original programs. A nil logger disables logging.
func NewDriver(kern kernel.Kernel, buf *Buffer, strict bool, logger *zap.Logger) (*Driver, error) {
	if buf.Rows() != kern.N || buf.Cols() != kern.N {
		return nil, fmt.Errorf("buffer is %dx%d, kernel %s needs %dx%d",
			buf.Rows(), buf.Cols(), kern.Name, kern.N, kern.N)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{kern: kern, buf: buf, strict: strict, logger: logger}, nil
}

// Run fills the buffer. Arity-1 kernels iterate i,j over N x N computing
// kernel(j); arity-2 kernels add an outer repetition dimension, iterating
// k,i,j over N x N x N computing kernel(i,j) and overwriting the same
// N x N cells each pass. The first mismatch aborts the run with a
// *MismatchError.
func (d *Driver) Run() error {
	n := d.kern.N
	d.logger.Debug("grid run starting",
		zap.String("kernel", d.kern.Name),
		zap.Int("n", n),
		zap.Int("cells", d.buf.Len()))

	passes := 1
	if d.kern.Arity == 2 {
		passes = n
	}
	for k := 0; k < passes; k++ {
		for i := 0; i < n; i++ {
			row := d.buf.Row(i)
			for j := 0; j < n; j++ {
				if d.strict {
					if err := d.checkDomain(i, j); err != nil {
						return err
					}
				}
				got := d.kern.Compute(i, j)
				want := d.kern.Reference(row, i, j)
				if got != want {
					return &MismatchError{
						Kernel: d.kern.Name,
						I:      i,
						J:      j,
						Got:    got,
						Want:   want,
						detail: d.kern.Diagnostic(i, j, got),
					}
				}
				row[j] = got
			}
		}
	}

	d.logger.Debug("grid run complete", zap.String("kernel", d.kern.Name))
	return nil
}

func (d *Driver) checkDomain(i, j int) error {
	if j < 0 || j >= d.kern.N {
		return fmt.Errorf("kernel %s: input %d outside [0, %d)", d.kern.Name, j, d.kern.N)
	}
	if d.kern.Arity == 2 && (i < 0 || i >= d.kern.N) {
		return fmt.Errorf("kernel %s: input %d outside [0, %d)", d.kern.Name, i, d.kern.N)
	}
	return nil
}
