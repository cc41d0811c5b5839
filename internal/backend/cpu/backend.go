// Package cpu implements the CPU backend for the Cortex tensor runtime.
package cpu

import (
	"github.com/cortex-lang/cortex/internal/parallel"
	"github.com/cortex-lang/cortex/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
//
// It holds no mutable state; a single instance may be shared freely as
// long as callers serialize access to any one tensor. Every operation runs
// on the calling goroutine unless the backend was built by NewWithConfig
// with parallelism enabled.
type CPUBackend struct {
	par parallel.Config
}

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// New creates a new single-threaded CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
// With cfg.Enabled, MatMul splits the output rows of large products across
// goroutines; results are bit-identical to the single-threaded kernel.
//
// Example:
//
//	backend := cpu.NewWithConfig(parallel.DefaultConfig())
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{par: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// requireOperand fails with ErrNullOperand when x is absent or released.
func requireOperand(op string, x *tensor.Tensor) error {
	if !x.Valid() {
		return tensor.Errorf(op, tensor.ErrNullOperand, "tensor is nil")
	}
	return nil
}

// requirePair validates the operands of an element-wise binary op.
// Only the element counts are compared; a [2,3] and a [3,2] tensor are
// combined position by position over their flat buffers.
func requirePair(op string, a, b *tensor.Tensor) error {
	if !a.Valid() || !b.Valid() {
		return tensor.Errorf(op, tensor.ErrNullOperand, "both operands are required")
	}
	if a.Size() != b.Size() {
		return tensor.Errorf(op, tensor.ErrShapeMismatch,
			"%v (%d elements) vs %v (%d elements)", a.Shape(), a.Size(), b.Shape(), b.Size())
	}
	return nil
}

// requireNonEmpty validates the operand of a reduction.
func requireNonEmpty(op string, x *tensor.Tensor) error {
	if !x.Valid() {
		return tensor.Errorf(op, tensor.ErrEmptyTensor, "tensor is nil")
	}
	if x.Size() == 0 {
		return tensor.Errorf(op, tensor.ErrEmptyTensor, "tensor %v has no elements", x.Shape())
	}
	return nil
}

// requireMatrix validates that t is a 2D tensor.
func requireMatrix(op string, t *tensor.Tensor) error {
	if err := requireOperand(op, t); err != nil {
		return err
	}
	if t.NDim() != 2 {
		return tensor.Errorf(op, tensor.ErrInvalidRank, "expected 2D tensor, got %dD", t.NDim())
	}
	return nil
}

// requireSquare validates that t is a square 2D tensor.
func requireSquare(op string, t *tensor.Tensor) error {
	if err := requireMatrix(op, t); err != nil {
		return err
	}
	if s := t.Shape(); s[0] != s[1] {
		return tensor.Errorf(op, tensor.ErrShapeMismatch, "expected square matrix, got %v", s)
	}
	return nil
}
