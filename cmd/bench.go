package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/analogrelay/go-rust-interop/arithffi/internal/bench"
	"github.com/analogrelay/go-rust-interop/arithffi/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark add_numbers or factorial calls",
	Long: `Runs concurrent workers that repeatedly call one operation through the
selected implementation (go, cgo or channel) for a fixed duration.
Every result is checked against the pure Go value.
Measures and reports throughput and latency metrics.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := benchConfig(cmd.Flags())
	if err != nil {
		return err
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json: %w", err)
	}

	results, err := bench.Run(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	if asJSON {
		return bench.WriteJSON(cmd.OutOrStdout(), results)
	}
	bench.PrintResults(cmd.OutOrStdout(), cfg, results)
	return nil
}

// benchConfig layers explicitly set flags over the config file.
func benchConfig(flags *pflag.FlagSet) (bench.Config, error) {
	file, err := config.Load(configPath)
	if err != nil {
		return bench.Config{}, err
	}
	b := file.Bench

	if flags.Changed("op") {
		if b.Op, err = flags.GetString("op"); err != nil {
			return bench.Config{}, fmt.Errorf("failed to get op: %w", err)
		}
	}
	if flags.Changed("impl") {
		if b.Impl, err = flags.GetString("impl"); err != nil {
			return bench.Config{}, fmt.Errorf("failed to get impl: %w", err)
		}
	}
	if flags.Changed("workers") {
		if b.Workers, err = flags.GetInt("workers"); err != nil {
			return bench.Config{}, fmt.Errorf("failed to get workers: %w", err)
		}
	}
	if flags.Changed("duration") {
		if b.Duration, err = flags.GetDuration("duration"); err != nil {
			return bench.Config{}, fmt.Errorf("failed to get duration: %w", err)
		}
	}
	if flags.Changed("progress") {
		if b.Progress, err = flags.GetDuration("progress"); err != nil {
			return bench.Config{}, fmt.Errorf("failed to get progress: %w", err)
		}
	}
	if flags.Changed("a") {
		if b.A, err = flags.GetInt32("a"); err != nil {
			return bench.Config{}, fmt.Errorf("failed to get a: %w", err)
		}
	}
	if flags.Changed("b") {
		if b.B, err = flags.GetInt32("b"); err != nil {
			return bench.Config{}, fmt.Errorf("failed to get b: %w", err)
		}
	}
	if flags.Changed("n") {
		if b.N, err = flags.GetUint32("n"); err != nil {
			return bench.Config{}, fmt.Errorf("failed to get n: %w", err)
		}
	}

	return bench.Config{
		Op:               b.Op,
		Impl:             b.Impl,
		Workers:          b.Workers,
		Duration:         b.Duration,
		ProgressInterval: b.Progress,
		A:                b.A,
		B:                b.B,
		N:                b.N,
	}, nil
}

func init() {
	rootCmd.AddCommand(benchCmd)
	addBenchFlags(benchCmd.Flags())
}

func addBenchFlags(flags *pflag.FlagSet) {
	flags.StringP("op", "o", "add", "Operation to call: add or factorial")
	flags.StringP("impl", "i", "go", "Implementation to call: go, cgo or channel")
	flags.IntP("workers", "w", runtime.NumCPU(), "Number of concurrent workers")
	flags.DurationP("duration", "t", 10*time.Second, "Duration to run the benchmark")
	flags.DurationP("progress", "p", 5*time.Second, "Interval between progress log lines (0 disables)")
	flags.Int32("a", 2, "First operand for add")
	flags.Int32("b", 3, "Second operand for add")
	flags.Uint32("n", 20, "Operand for factorial")
	flags.Bool("json", false, "Print results as JSON")
}
