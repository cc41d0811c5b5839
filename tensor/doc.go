// Copyright 2026 The Cortex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API of the Cortex numeric tensor runtime.
//
// # Overview
//
// Tensors are dense, contiguous, row-major arrays of float64 values. Every
// operation returns a freshly allocated result and leaves its inputs
// untouched; failures are reported as errors wrapping one of the Err* kinds.
//
// # Basic Usage
//
//	import "github.com/cortex-lang/cortex/tensor"
//
//	func main() {
//	    x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    id, _ := tensor.Eye(2)
//
//	    y, err := tensor.MatMul(x, id)
//	    if errors.Is(err, tensor.ErrShapeMismatch) {
//	        // ...
//	    }
//	    fmt.Print(y) // Tensor shape: [2, 2] ...
//	}
//
// # Error Reporting
//
// There is no process-wide error slot. Hosts that want last-error style
// reporting keep one ErrorChannel per interpreter and feed it results:
//
//	var ch tensor.ErrorChannel
//	q, err := tensor.Div(a, b)
//	if ch.Record(err) != nil {
//	    msg, _ := ch.LastError()
//	    fmt.Println(msg)
//	}
//
// # Element Counts, Not Shapes
//
// Element-wise binary operations and losses compare element counts only:
// a [2, 3] tensor and a [3, 2] tensor are combined position by position
// over their flat buffers, and the result takes the first operand's shape.
// There is no broadcasting.
//
// # Available Operations
//
// Element-wise: Add, Sub, Mul, Div, Pow, AddScalar, MulScalar, Exp, Log,
// Sqrt, Sin, Cos, Tan.
//
// Linear algebra: MatMul, Transpose, Det, Trace.
//
// Reductions: Sum, Mean, Std, Var, Min, Max.
//
// Activations: ReLU, Sigmoid, Tanh, Softmax.
//
// Losses: MSELoss, CrossEntropyLoss, BinaryCrossEntropyLoss.
//
// Shape transforms: Reshape, Slice.
package tensor
