package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// PrintResults writes a human summary followed by a markdown table row.
func PrintResults(w io.Writer, cfg Config, results *Results) {
	fmt.Fprintf(w, "\n=== Benchmark Results ===\n")
	fmt.Fprintf(w, "Op: %s\n", cfg.Op)
	fmt.Fprintf(w, "Implementation: %s\n", cfg.Impl)
	fmt.Fprintf(w, "Total ops: %d\n", results.TotalOps)
	fmt.Fprintf(w, "Total elapsed time: %v\n", results.ElapsedTime.Round(time.Millisecond))
	fmt.Fprintf(w, "Ops/sec: %.2f\n", results.OpsPerSecond)
	fmt.Fprintf(w, "Latency (mean): %.2f ns\n", results.LatencyNs)
	fmt.Fprintf(w, "========================\n")

	fmt.Fprintf(w, "\n=== Markdown Table ===\n")
	fmt.Fprintf(w, "| Op | Implementation | Total Ops | Duration (ms) | Ops/sec | Latency (ns) |\n")
	fmt.Fprintf(w, "|----|----------------|-----------|---------------|---------|--------------|\n")
	fmt.Fprintf(w, "| %s | %s | %d | %d | %.2f | %.2f |\n",
		cfg.Op,
		cfg.Impl,
		results.TotalOps,
		results.ElapsedTime.Milliseconds(),
		results.OpsPerSecond,
		results.LatencyNs)
	fmt.Fprintf(w, "======================\n")
}

// WriteJSON writes results as indented JSON.
func WriteJSON(w io.Writer, results *Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}
