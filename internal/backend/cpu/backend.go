// Package cpu implements the array kernels on CPU: elementwise and scalar
// algebra, matrix multiplication and contraction, and tolerance comparison.
package cpu

import (
	"sync/atomic"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Name returns the backend name.
func Name() string {
	return "CPU"
}

var parallelConfig atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	parallelConfig.Store(&cfg)
}

// SetParallelConfig replaces the fan-out settings used by the kernels and
// returns the previous ones.
func SetParallelConfig(cfg parallel.Config) parallel.Config {
	return *parallelConfig.Swap(&cfg)
}

// ParallelConfig returns the fan-out settings used by the kernels.
func ParallelConfig() parallel.Config {
	return *parallelConfig.Load()
}
