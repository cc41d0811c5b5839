// Copyright 2026 The Cortex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/cortex-lang/cortex/internal/tensor"
)

// Type aliases for public API

// Tensor is a dense, contiguous, row-major tensor of float64 values.
//
// Example:
//
//	x, err := tensor.Zeros(tensor.Shape{2, 3})
//	x.Set(1.5, 1, 2)
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// OpError describes a failed tensor operation.
type OpError = tensor.OpError

// ErrorChannel is a per-caller last-error slot.
type ErrorChannel = tensor.ErrorChannel

// Error kinds. Test an operation's error with errors.Is.
var (
	ErrNullOperand     = tensor.ErrNullOperand
	ErrInvalidArgument = tensor.ErrInvalidArgument
	ErrAllocation      = tensor.ErrAllocation
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrInvalidRank     = tensor.ErrInvalidRank
	ErrDivisionByZero  = tensor.ErrDivisionByZero
	ErrDomain          = tensor.ErrDomain
	ErrEmptyTensor     = tensor.ErrEmptyTensor
	ErrInvalidRange    = tensor.ErrInvalidRange
)

// Creation functions

// Create allocates a zero-filled tensor with the given shape.
func Create(shape Shape) (*Tensor, error) {
	return tensor.Create(shape)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x, err := tensor.Zeros(tensor.Shape{2, 3})
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full(tensor.Shape{2, 3}, 3.14)
func Full(shape Shape, value float64) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor holding a copy of data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	identity, err := tensor.Eye(3)
func Eye(n int) (*Tensor, error) {
	return tensor.Eye(n)
}

// Arange creates a 1D tensor of floor((stop-start)/step) values
// start, start+step, ...
//
// Example:
//
//	x, err := tensor.Arange(0, 10, 2) // [0, 2, 4, 6, 8]
func Arange(start, stop, step float64) (*Tensor, error) {
	return tensor.Arange(start, stop, step)
}

// Randn creates a tensor of standard normal samples from a time-seeded source.
func Randn(shape Shape) (*Tensor, error) {
	return tensor.Randn(shape)
}

// RandnFrom creates a tensor of standard normal samples drawn from rng.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	w, err := tensor.RandnFrom(rng, tensor.Shape{3, 1})
func RandnFrom(rng *rand.Rand, shape Shape) (*Tensor, error) {
	return tensor.RandnFrom(rng, shape)
}
