// Copyright 2026 The Cortex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/cortex-lang/cortex/internal/backend/cpu"
	"github.com/cortex-lang/cortex/internal/tensor"
)

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go
//
// Example:
//
//	import (
//	    "github.com/cortex-lang/cortex/backend/cpu"
//	    "github.com/cortex-lang/cortex/tensor"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.Ones(tensor.Shape{2, 3})
//	y, err := backend.Softmax(x)
type Backend = tensor.Backend

// defaultBackend serves the package-level operation functions.
var defaultBackend Backend = cpu.New()

// Default returns the backend used by the package-level operation functions.
func Default() Backend {
	return defaultBackend
}
