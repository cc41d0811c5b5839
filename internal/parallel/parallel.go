// Package parallel splits the row loops of CPU kernels across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
// The zero value runs everything sequentially.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinWork    int  // Minimum work units per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinWork:    1 << 15, // Roughly a 32x32x32 matmul.
	}
}

// ForRange calls f over disjoint row ranges [lo, hi) covering [0, n).
//
// cost is the work per row; the loop runs on the calling goroutine when
// parallelism is disabled or n*cost is below cfg.MinWork. Ranges never
// overlap, so f may write its rows without synchronization.
func ForRange(n, cost int, f func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}
	chunks := numChunks(n, cost, cfg)
	if chunks <= 1 {
		// Sequential fallback.
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + chunks - 1) / chunks

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// numChunks picks how many ranges to split n rows of the given cost into.
func numChunks(n, cost int, cfg Config) int {
	if !cfg.Enabled || cfg.NumWorkers <= 1 {
		return 1
	}
	total := n * max(cost, 1)
	if total < cfg.MinWork {
		return 1
	}
	chunks := cfg.NumWorkers
	if cfg.MinWork > 0 {
		chunks = min(chunks, total/cfg.MinWork)
	}
	return max(min(chunks, n), 1)
}
