// Package kernel defines the numeric functions under benchmark.
//
// Each kernel is a pure, total function over the bounded integer domain
// [0, N). The original C programs asserted the bound through compiler
// optimizer hints; here it is a documented precondition that the grid
// driver can optionally verify in strict mode. Callers must not pass
// inputs outside the declared domain.
package kernel

import "fmt"

// Default grid sizes of the original benchmark programs.
const (
	DefaultAdd1N = 1000
	DefaultFibN  = 30
	DefaultSumN  = 30
)

// Kernel describes one function under benchmark.
//
// Compute is the code path being timed. Reference derives the expected
// value for a cell independently of Compute; the driver compares the two
// and treats any difference as a fatal correctness regression.
type Kernel struct {
	// Name identifies the variant (add1, fib, sum).
	Name string

	// N bounds the input domain: valid inputs lie in [0, N).
	N int

	// Arity is 1 for kernels of the column index alone (add1, fib)
	// and 2 for kernels of both grid indices (sum).
	Arity int

	// Compute evaluates the kernel for cell (i, j).
	// Precondition: 0 <= i < N and 0 <= j < N. Arity-1 kernels read
	// only j. The compute path carries no range check so the timed
	// loop keeps the shape of the original programs.
	Compute func(i, j int) int

	// Reference returns the expected value for cell (i, j). The row
	// slice holds the cells of row i stored so far, which lets the
	// Fibonacci check read the previous two entries.
	Reference func(row []int, i, j int) int

	// Diagnostic renders the mismatch message of the original program
	// for cell (i, j) with computed value got.
	Diagnostic func(i, j, got int) string
}

// Add1 returns the increment kernel over [0, n).
func Add1(n int) Kernel {
	return Kernel{
		Name:  "add1",
		N:     n,
		Arity: 1,
		Compute: func(_, j int) int {
			return j + 1
		},
		Reference: func(_ []int, _, j int) int {
			return j + 1
		},
		Diagnostic: func(_, j, got int) string {
			return fmt.Sprintf("BRUH.... you got %d + 1 = %d", j, got)
		},
	}
}

// Fib returns the naive double-recursion Fibonacci kernel over [0, n),
// with fib(0)=0 and fib(1)=1. Exponential time; this is the point.
func Fib(n int) Kernel {
	return Kernel{
		Name:  "fib",
		N:     n,
		Arity: 1,
		Compute: func(_, j int) int {
			return fib(j)
		},
		Reference: func(row []int, i, j int) int {
			// The independent formula sums the previous two
			// stored entries; the base cases are fixed.
			switch j {
			case 0:
				return 0
			case 1:
				return 1
			default:
				return row[j-1] + row[j-2]
			}
		},
		Diagnostic: func(_, j, got int) string {
			return fmt.Sprintf("BRUH.... you got %dth fib was %d", j, got)
		},
	}
}

// Sum returns the two-argument sum kernel over [0, n) x [0, n). Its grid
// carries an extra repetition dimension, so one run evaluates n*n*n calls
// over n*n distinct cells.
func Sum(n int) Kernel {
	return Kernel{
		Name:  "sum",
		N:     n,
		Arity: 2,
		Compute: func(i, j int) int {
			return i + j
		},
		Reference: func(_ []int, i, j int) int {
			return i + j
		},
		Diagnostic: func(i, j, got int) string {
			return fmt.Sprintf("BRUH.... %d + %d = %d", i, j, got)
		},
	}
}

func fib(a int) int {
	if a == 0 {
		return 0
	}
	if a == 1 {
		return 1
	}
	return fib(a-1) + fib(a-2)
}
