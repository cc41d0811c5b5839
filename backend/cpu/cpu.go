// Copyright 2026 The Cortex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/cortex-lang/cortex/internal/backend/cpu"
	"github.com/cortex-lang/cortex/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of all tensor operations.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/cortex-lang/cortex/backend/cpu"
//	    "github.com/cortex-lang/cortex/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.Full(tensor.Shape{2, 3}, -1)
//	    y, err := backend.ReLU(x)
//	}
func New() *Backend {
	return internalcpu.New()
}
