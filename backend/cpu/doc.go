// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu configures the pure Go CPU kernels behind package tensor.
//
// # Overview
//
// Every array operation runs on the CPU kernels:
//   - Pure Go implementation (no CGO)
//   - Elementwise and scalar algebra over strided views
//   - Naive dense matrix multiplication and general contraction
//   - float32, float64, int32 and int64 support
//
// # Parallelism
//
// Elementwise kernels, dense matrix multiplication and contraction split
// their output across goroutines once it is large enough. Each goroutine
// writes a disjoint part of a freshly allocated result, so operands are only
// read. Comparison always runs sequentially so that the reported mismatch is
// the first one in row-major order.
//
//	import "github.com/born-ml/ndarray/backend/cpu"
//
//	prev := cpu.SetParallelism(cpu.Parallelism{Enabled: false})
//	defer cpu.SetParallelism(prev)
//
// # Thread Safety
//
// SetParallelism may be called concurrently with running kernels; a kernel
// uses the settings in effect when it started. Arrays themselves are not
// safe for concurrent mutation.
package cpu
