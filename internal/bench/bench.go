// Package bench measures call throughput of the arithmetic through the pure
// Go path, the cgo path and a channel-served goroutine.
package bench

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	arith "github.com/analogrelay/go-rust-interop/arithffi"
	"github.com/analogrelay/go-rust-interop/arithffi/internal/cref"
	"go.uber.org/zap"
)

// Operations.
const (
	OpAdd       = "add"
	OpFactorial = "factorial"
)

// Implementations.
const (
	ImplGo      = "go"
	ImplCgo     = "cgo"
	ImplChannel = "channel"
)

// maxMismatches bounds how many wrong results are reported.
const maxMismatches = 16

// Config describes one benchmark run.
type Config struct {
	Op               string
	Impl             string
	Workers          int
	Duration         time.Duration
	ProgressInterval time.Duration
	A, B             int32
	N                uint32
}

// Validate checks that cfg describes a runnable benchmark.
func (c Config) Validate() error {
	switch c.Op {
	case OpAdd, OpFactorial:
	default:
		return fmt.Errorf("unknown op %q (want %s or %s)", c.Op, OpAdd, OpFactorial)
	}
	switch c.Impl {
	case ImplGo, ImplChannel:
	case ImplCgo:
		if !cref.Available {
			return errors.New("impl cgo requires a cgo-enabled build")
		}
	default:
		return fmt.Errorf("unknown impl %q (want %s, %s or %s)", c.Impl, ImplGo, ImplCgo, ImplChannel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.Duration)
	}
	return nil
}

// Results summarizes a completed benchmark run.
type Results struct {
	TotalOps     int           `json:"totalOps"`
	ElapsedTime  time.Duration `json:"elapsedTime"`
	OpsPerSecond float64       `json:"opsPerSecond"`
	LatencyNs    float64       `json:"latencyNs"`
}

// call performs one operation and returns its result widened to uint64,
// so add and factorial share the worker loop.
type call func() uint64

// Run executes the benchmark until cfg.Duration elapses or ctx is done.
// Every result is compared with the pure Go value; mismatches fail the run.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	endTime := startTime.Add(cfg.Duration)

	benchCtx, cancel := context.WithDeadline(ctx, endTime)

	fn, want, stop := newCall(benchCtx, cfg)
	defer func() {
		cancel()
		stop()
	}()

	logger.Info("benchmark started",
		zap.String("op", cfg.Op),
		zap.String("impl", cfg.Impl),
		zap.Int("workers", cfg.Workers),
		zap.Duration("duration", cfg.Duration))

	// Shared counters for all workers
	var totalOps int64
	var totalLatency int64

	var mu sync.Mutex
	var mismatches []error

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			errs := worker(benchCtx, fn, want, &totalOps, &totalLatency)
			if len(errs) == 0 {
				return
			}
			mu.Lock()
			for _, err := range errs {
				if len(mismatches) < maxMismatches {
					mismatches = append(mismatches, fmt.Errorf("worker %d: %w", workerID, err))
				}
			}
			mu.Unlock()
		}(i)
	}

	var progressDone sync.WaitGroup
	if cfg.ProgressInterval > 0 {
		progressTicker := time.NewTicker(cfg.ProgressInterval)
		defer progressTicker.Stop()

		progressDone.Add(1)
		go func() {
			defer progressDone.Done()
			for {
				select {
				case <-progressTicker.C:
					currentOps := atomic.LoadInt64(&totalOps)
					elapsed := time.Since(startTime)
					remaining := time.Until(endTime)
					if remaining > 0 {
						logger.Info("progress",
							zap.Int64("ops", currentOps),
							zap.Float64("opsPerSec", float64(currentOps)/elapsed.Seconds()),
							zap.Duration("remaining", remaining.Round(time.Second)))
					}
				case <-benchCtx.Done():
					return
				}
			}
		}()
	}

	<-benchCtx.Done()
	wg.Wait()
	progressDone.Wait()

	actualElapsed := time.Since(startTime)
	finalOps := atomic.LoadInt64(&totalOps)
	finalLatency := atomic.LoadInt64(&totalLatency)

	if len(mismatches) > 0 {
		return nil, errors.Join(mismatches...)
	}
	if finalOps == 0 {
		return nil, fmt.Errorf("no operations completed")
	}

	results := &Results{
		TotalOps:     int(finalOps),
		ElapsedTime:  actualElapsed,
		OpsPerSecond: float64(finalOps) / actualElapsed.Seconds(),
		LatencyNs:    float64(finalLatency) / float64(finalOps),
	}
	logger.Debug("benchmark finished", zap.Int("totalOps", results.TotalOps))
	return results, nil
}

// worker calls fn until ctx is done. It returns at most maxMismatches
// errors for results that differ from want.
func worker(ctx context.Context, fn call, want uint64, totalOps, totalLatency *int64) []error {
	var errs []error
	for {
		select {
		case <-ctx.Done():
			return errs
		default:
			opStart := time.Now()
			got := fn()
			opLatency := time.Since(opStart)

			// A channel call cut short by cancellation has no result.
			if ctx.Err() != nil {
				return errs
			}

			if got != want {
				if len(errs) < maxMismatches {
					errs = append(errs, fmt.Errorf("got %d, want %d", got, want))
				}
				continue
			}

			atomic.AddInt64(totalOps, 1)
			atomic.AddInt64(totalLatency, opLatency.Nanoseconds())
		}
	}
}

// newCall builds the call for cfg along with the expected result and a
// function releasing anything the call holds.
func newCall(ctx context.Context, cfg Config) (call, uint64, func()) {
	var goFn, cFn call
	switch cfg.Op {
	case OpAdd:
		a, b := cfg.A, cfg.B
		goFn = func() uint64 { return uint64(uint32(arith.Add(a, b))) }
		cFn = func() uint64 { return uint64(uint32(cref.Add(a, b))) }
	default:
		n := cfg.N
		goFn = func() uint64 { return arith.Factorial(n) }
		cFn = func() uint64 { return cref.Factorial(n) }
	}
	want := goFn()

	switch cfg.Impl {
	case ImplCgo:
		return cFn, want, func() {}
	case ImplChannel:
		s := newServer(ctx, goFn)
		return s.call, want, s.close
	default:
		return goFn, want, func() {}
	}
}
