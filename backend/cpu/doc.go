// Copyright 2026 The Cortex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - float64 storage, row-major
//   - gonum kernels for element-wise arithmetic and reductions
//   - LU factorization with partial pivoting for determinants
//
// # Basic Usage
//
//	import (
//	    "github.com/cortex-lang/cortex/backend/cpu"
//	    "github.com/cortex-lang/cortex/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.Randn(tensor.Shape{4, 4})
//	    det, err := backend.Det(x)
//	}
//
// # Thread Safety
//
// The CPU backend holds no state and may be shared between goroutines.
// Callers must not mutate a tensor while another goroutine reads it.
package cpu
