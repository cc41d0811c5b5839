// Package tensor provides the core tensor type, factories and error kinds for the Cortex runtime.
package tensor

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Tensor is a dense, contiguous, row-major tensor of float64 values.
//
// A Tensor exclusively owns its buffer and shape. Operations never retain
// or share a caller's buffer: every result is freshly allocated.
//
// Example:
//
//	t, err := tensor.Zeros(tensor.Shape{3, 4})
//	if err != nil {
//	    return err
//	}
//	t.Set(1.5, 1, 2) // Row 1, column 2
type Tensor struct {
	data         []float64
	shape        Shape
	stride       []int
	requiresGrad bool // Reserved for gradient tracking; has no effect on any operation.
}

// Create allocates a zero-filled tensor with the given shape.
//
// The shape must have at least one axis and no negative extents; otherwise
// the error matches both ErrAllocation and ErrInvalidArgument. A shape whose
// element count cannot be addressed fails with ErrAllocation.
func Create(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, &OpError{Op: "create", Err: errInvalidShape, Details: err.Error()}
	}
	n, ok := shape.CheckedNumElements()
	if !ok {
		return nil, Errorf("create", ErrAllocation, "shape %v has too many elements", shape)
	}

	return &Tensor{
		data:   make([]float64, n),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Shape returns the tensor's shape.
// The returned slice must not be modified.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NDim returns the number of axes.
func (t *Tensor) NDim() int {
	return len(t.shape)
}

// Size returns the total number of elements.
func (t *Tensor) Size() int {
	return len(t.data)
}

// Strides returns the tensor's row-major strides.
func (t *Tensor) Strides() []int {
	return t.stride
}

// Data returns the flat row-major buffer.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// RequiresGrad reports the gradient-tracking tag.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// SetRequiresGrad sets the gradient-tracking tag.
// The tag is carried through copies but does not change any computation.
func (t *Tensor) SetRequiresGrad(v bool) {
	t.requiresGrad = v
}

// Valid reports whether t is present and has not been released.
func (t *Tensor) Valid() bool {
	return t != nil && t.shape != nil
}

// Copy returns an independent tensor with the same shape, data, and
// gradient tag. Fails with ErrInvalidArgument if t is absent.
func (t *Tensor) Copy() (*Tensor, error) {
	if !t.Valid() {
		return nil, Errorf("copy", ErrInvalidArgument, "cannot copy a nil tensor")
	}
	return t.clone(), nil
}

// clone is Copy for a tensor already known to be valid.
func (t *Tensor) clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{
		data:         data,
		shape:        t.shape.Clone(),
		stride:       append([]int(nil), t.stride...),
		requiresGrad: t.requiresGrad,
	}
}

// Release drops the tensor's buffer and shape. It is safe to call on a nil
// tensor and to call more than once. A released tensor is treated as an
// absent operand by every operation.
func (t *Tensor) Release() {
	if t == nil {
		return
	}
	t.data = nil
	t.shape = nil
	t.stride = nil
	t.requiresGrad = false
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return offset
}

// Dump writes a diagnostic rendering of the tensor's shape and flat values:
//
//	Tensor shape: [2, 2]
//	Data: [1.000000, 0.000000, 0.000000, 1.000000]
//
// The format is for humans only and is not meant to be parsed back.
func (t *Tensor) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if !t.Valid() {
		bw.WriteString("NULL tensor\n")
		return bw.Flush()
	}

	fmt.Fprintf(bw, "Tensor shape: %v\n", t.shape)
	bw.WriteString("Data: [")
	for i, v := range t.data {
		if i > 0 {
			bw.WriteString(", ")
		}
		fmt.Fprintf(bw, "%.6f", v)
	}
	bw.WriteString("]\n")
	return bw.Flush()
}

// String returns the same rendering as Dump.
func (t *Tensor) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb)
	return sb.String()
}
