// Package bench wires kernel, buffer, stopwatch and reporter into one
// benchmark run.
package bench

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gridbench/internal/grid"
	"gridbench/internal/kernel"
	"gridbench/internal/report"
	"gridbench/internal/timing"
)

// Options tunes a single run.
type Options struct {
	// Dump prints the buffer contents after the elapsed line.
	Dump bool
	// Strict enables the driver's domain check on every kernel call.
	Strict bool
	// Logger receives run lifecycle events. Nil disables logging.
	Logger *zap.Logger
}

// Result summarizes one completed run.
type Result struct {
	RunID   string
	Variant string
	N       int
	Cells   int
	Elapsed time.Duration
}

// Runner executes one kernel variant end to end.
type Runner struct {
	kern     kernel.Kernel
	reporter *report.Reporter
	opts     Options
}

// NewRunner builds a runner for kern reporting through rep.
func NewRunner(kern kernel.Kernel, rep *report.Reporter, opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Runner{kern: kern, reporter: rep, opts: opts}
}

// Run allocates the buffer, times the grid fill, prints the elapsed line
// and optionally the buffer dump. Only the fill is timed; reporting
// happens after the stopwatch stops, as in the original programs.
func (r *Runner) Run() (*Result, error) {
	buf, err := grid.NewBuffer(r.kern.N, r.kern.N)
	if err != nil {
		return nil, fmt.Errorf("allocating %s buffer: %w", r.kern.Name, err)
	}
	drv, err := grid.NewDriver(r.kern, buf, r.opts.Strict, r.opts.Logger)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:   uuid.NewString(),
		Variant: r.kern.Name,
		N:       r.kern.N,
		Cells:   buf.Len(),
	}
	r.opts.Logger.Debug("benchmark starting",
		zap.String("run_id", res.RunID),
		zap.String("variant", res.Variant),
		zap.Int("n", res.N))

	sw := timing.Start()
	runErr := drv.Run()
	res.Elapsed = sw.Stop()
	if runErr != nil {
		return nil, runErr
	}

	if err := r.reporter.Elapsed(res.Elapsed); err != nil {
		return nil, fmt.Errorf("reporting elapsed time: %w", err)
	}
	if r.opts.Dump {
		if err := r.reporter.Dump(buf); err != nil {
			return nil, fmt.Errorf("dumping buffer: %w", err)
		}
	}

	r.opts.Logger.Debug("benchmark complete",
		zap.String("run_id", res.RunID),
		zap.String("variant", res.Variant),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}
