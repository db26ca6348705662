package cpu

import (
	"testing"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/stretchr/testify/require"
)

// fromSlice builds a base Array or fails the test.
func fromSlice[T tensor.Numeric](t *testing.T, data []T, shape tensor.Shape) *tensor.Array[T] {
	t.Helper()
	a, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return a
}

// requireClose fails the test if got and want differ anywhere.
func requireClose[T tensor.Numeric](t *testing.T, want, got *tensor.Array[T]) {
	t.Helper()
	m, err := Compare(got, want)
	require.NoError(t, err)
	require.Nil(t, m, "arrays differ: %v", m)
}

// arange returns [0, 1, ..., n-1] as float64.
func arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// forEachParallelism runs fn once sequentially and once with forced fan-out.
func forEachParallelism(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	configs := map[string]parallel.Config{
		"sequential": parallel.Sequential(),
		"parallel":   {Enabled: true, NumWorkers: 3, MinChunkSize: 1},
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			prev := SetParallelConfig(cfg)
			defer SetParallelConfig(prev)
			fn(t)
		})
	}
}
