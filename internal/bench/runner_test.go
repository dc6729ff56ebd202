package bench

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridbench/internal/grid"
	"gridbench/internal/kernel"
	"gridbench/internal/report"
)

var elapsedLine = regexp.MustCompile(`^\d+\.\d{6}$`)

func TestRunnerAdd1(t *testing.T) {
	var out bytes.Buffer
	runner := NewRunner(kernel.Add1(8), report.New(&out), Options{Dump: true})

	res, err := runner.Run()
	require.NoError(t, err)

	assert.Equal(t, "add1", res.Variant)
	assert.Equal(t, 8, res.N)
	assert.Equal(t, 64, res.Cells)
	assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err, "run ID must be a valid UUID")

	line, rest, found := strings.Cut(out.String(), "\n")
	require.True(t, found)
	assert.Regexp(t, elapsedLine, line)
	// 64 cells, each carriage-return terminated; rows hold 1..8.
	assert.Equal(t, 64, strings.Count(rest, "\r"))
	assert.True(t, strings.HasPrefix(rest, "1\r2\r3\r4\r5\r6\r7\r8\r"))
}

func TestRunnerNoDump(t *testing.T) {
	var out bytes.Buffer
	runner := NewRunner(kernel.Sum(4), report.New(&out), Options{})

	_, err := runner.Run()
	require.NoError(t, err)

	line, rest, found := strings.Cut(out.String(), "\n")
	require.True(t, found)
	assert.Regexp(t, elapsedLine, line)
	assert.Empty(t, rest)
}

func TestRunnerDeterministic(t *testing.T) {
	dump := func() string {
		var out bytes.Buffer
		_, err := NewRunner(kernel.Fib(12), report.New(&out), Options{Dump: true}).Run()
		require.NoError(t, err)
		_, rest, _ := strings.Cut(out.String(), "\n")
		return rest
	}
	assert.Equal(t, dump(), dump())
}

func TestRunnerMismatch(t *testing.T) {
	faulty := kernel.Kernel{
		Name:  "faulty",
		N:     4,
		Arity: 1,
		Compute: func(_, j int) int {
			return j
		},
		Reference: func(_ []int, _, j int) int {
			return j + 1
		},
		Diagnostic: func(_, j, got int) string {
			return fmt.Sprintf("BRUH.... you got %d + 1 = %d", j, got)
		},
	}

	var out bytes.Buffer
	_, err := NewRunner(faulty, report.New(&out), Options{Dump: true}).Run()
	require.Error(t, err)

	var mismatch *grid.MismatchError
	assert.True(t, errors.As(err, &mismatch))
	// Nothing is reported on a failed run.
	assert.Empty(t, out.String())
}

func TestRunnerStrict(t *testing.T) {
	var out bytes.Buffer
	res, err := NewRunner(kernel.Add1(6), report.New(&out), Options{Strict: true}).Run()
	require.NoError(t, err)
	assert.Equal(t, 36, res.Cells)
}
