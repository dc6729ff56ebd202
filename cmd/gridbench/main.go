package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gridbench/internal/bench"
	"gridbench/internal/config"
	"gridbench/internal/kernel"
	"gridbench/internal/report"
)

var (
	// Global flags
	verbose bool
	strict  bool
	size    int

	// Per-variant dump flags
	add1Dump bool
	fibDump  bool
	sumDump  bool

	// Suite flags
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gridbench",
	Short: "gridbench - grid micro-benchmarks for range-contracted kernels",
	Long: `gridbench times simple numeric kernels (increment, naive Fibonacci,
two-argument sum) over fixed-size grids, validating every computed cell
against an independently derived reference value.

Each subcommand reproduces one of the original standalone benchmark
programs: one elapsed-seconds line on stdout, optionally followed by the
buffer contents. A validation mismatch prints a diagnostic to stderr and
exits nonzero.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// add1Cmd runs the increment benchmark
var add1Cmd = &cobra.Command{
	Use:   "add1",
	Short: "Benchmark the increment kernel (default N=1000)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVariant(cmd, kernel.Add1(sizeOr(kernel.DefaultAdd1N)), add1Dump)
	},
}

// fibCmd runs the naive recursive Fibonacci benchmark
var fibCmd = &cobra.Command{
	Use:   "fib",
	Short: "Benchmark the naive recursive Fibonacci kernel (default N=30)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVariant(cmd, kernel.Fib(sizeOr(kernel.DefaultFibN)), fibDump)
	},
}

// sumCmd runs the two-argument sum benchmark
var sumCmd = &cobra.Command{
	Use:   "sum",
	Short: "Benchmark the two-argument sum kernel (default N=30, N repetitions)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVariant(cmd, kernel.Sum(sizeOr(kernel.DefaultSumN)), sumDump)
	},
}

// allCmd runs the whole suite
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the full benchmark suite",
	Long: `Runs add1, fib and sum in order. With --config, per-variant grid
sizes, dump and skip settings come from a YAML file; otherwise the suite
uses the defaults of the original programs.`,
	RunE: runSuite,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Check kernel inputs against the declared domain")
	rootCmd.PersistentFlags().IntVar(&size, "size", 0, "Grid size N (0 = variant default)")

	add1Cmd.Flags().BoolVar(&add1Dump, "dump", true, "Print buffer contents after the elapsed line")
	fibCmd.Flags().BoolVar(&fibDump, "dump", true, "Print buffer contents after the elapsed line")
	sumCmd.Flags().BoolVar(&sumDump, "dump", false, "Print buffer contents after the elapsed line")

	allCmd.Flags().StringVar(&configPath, "config", "", "Suite config file (YAML)")

	rootCmd.AddCommand(add1Cmd)
	rootCmd.AddCommand(fibCmd)
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(allCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sizeOr resolves the --size flag against a variant default.
func sizeOr(def int) int {
	if size > 0 {
		return size
	}
	return def
}

// runVariant executes a single kernel benchmark.
func runVariant(cmd *cobra.Command, kern kernel.Kernel, dump bool) error {
	runner := bench.NewRunner(kern, report.New(cmd.OutOrStdout()), bench.Options{
		Dump:   dump,
		Strict: strict,
		Logger: logger,
	})
	res, err := runner.Run()
	if err != nil {
		return err
	}
	logger.Debug("variant finished",
		zap.String("run_id", res.RunID),
		zap.String("variant", res.Variant),
		zap.Duration("elapsed", res.Elapsed))
	return nil
}

// runSuite executes every non-skipped variant from the suite config.
func runSuite(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if cfg.Strict {
		strict = true
	}
	if cfg.Verbose && !verbose {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		if l, err := zcfg.Build(); err == nil {
			logger = l
		}
	}

	suite := []struct {
		variant config.VariantConfig
		kern    func(n int) kernel.Kernel
	}{
		{cfg.Add1, kernel.Add1},
		{cfg.Fib, kernel.Fib},
		{cfg.Sum, kernel.Sum},
	}
	for _, entry := range suite {
		if entry.variant.Skip {
			continue
		}
		if err := runVariant(cmd, entry.kern(entry.variant.N), entry.variant.Dump); err != nil {
			return err
		}
	}
	return nil
}
