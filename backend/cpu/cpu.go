// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Parallelism controls how kernels fan out across goroutines.
//
//   - Enabled: whether kernels may use more than one goroutine
//   - NumWorkers: upper bound on goroutines per kernel call
//   - MinChunkSize: minimum output elements per goroutine
type Parallelism = parallel.Config

// DefaultParallelism returns settings based on the CPU count.
func DefaultParallelism() Parallelism {
	return parallel.DefaultConfig()
}

// SetParallelism replaces the kernel fan-out settings and returns the previous ones.
//
// Example:
//
//	prev := cpu.SetParallelism(cpu.Parallelism{Enabled: true, NumWorkers: 4, MinChunkSize: 1024})
//	defer cpu.SetParallelism(prev)
func SetParallelism(p Parallelism) Parallelism {
	return internalcpu.SetParallelConfig(p)
}

// CurrentParallelism returns the kernel fan-out settings in effect.
func CurrentParallelism() Parallelism {
	return internalcpu.ParallelConfig()
}

// Name returns the backend name.
func Name() string {
	return internalcpu.Name()
}
