package cpu

import (
	"github.com/cortex-lang/cortex/internal/tensor"
)

// Reshape returns a tensor with a copy of t's data under a new shape.
//
// Elements are never reordered: the flat buffer is reinterpreted as-is.
// The new shape must describe exactly t.Size() elements.
//
// Example:
//
//	x, _ := tensor.Arange(0, 12, 1)                  // Shape: [12]
//	y, _ := backend.Reshape(x, tensor.Shape{3, 4})   // Shape: [3, 4]
func (cpu *CPUBackend) Reshape(t *tensor.Tensor, newShape tensor.Shape) (*tensor.Tensor, error) {
	if err := requireOperand("reshape", t); err != nil {
		return nil, err
	}
	if err := newShape.Validate(); err != nil {
		return nil, tensor.Errorf("reshape", tensor.ErrInvalidArgument, "%v", err)
	}
	if n, ok := newShape.CheckedNumElements(); !ok || n != t.Size() {
		return nil, tensor.Errorf("reshape", tensor.ErrShapeMismatch,
			"incompatible shapes: %v -> %v (different number of elements)", t.Shape(), newShape)
	}

	result, err := tensor.FromSlice(t.Data(), newShape)
	if err != nil {
		return nil, err
	}
	result.SetRequiresGrad(t.RequiresGrad())
	return result, nil
}

// Slice extracts the hyper-rectangle [start[i], end[i]) along every axis
// into a new tensor of shape end[i]-start[i].
//
// start and end must each have one entry per axis (ErrInvalidArgument).
// Bounds outside [0, shape[i]] or start[i] > end[i] fail with ErrInvalidRange.
//
// Example:
//
//	x, _ := tensor.Arange(0, 12, 1)
//	m, _ := backend.Reshape(x, tensor.Shape{3, 4})
//	s, _ := backend.Slice(m, []int{1, 1}, []int{3, 3}) // [[5, 6], [9, 10]]
func (cpu *CPUBackend) Slice(t *tensor.Tensor, start, end []int) (*tensor.Tensor, error) {
	if err := requireOperand("slice", t); err != nil {
		return nil, err
	}

	shape := t.Shape()
	ndim := len(shape)
	if len(start) != ndim || len(end) != ndim {
		return nil, tensor.Errorf("slice", tensor.ErrInvalidArgument,
			"expected %d start and end indices, got %d and %d", ndim, len(start), len(end))
	}

	outShape := make(tensor.Shape, ndim)
	for i := range shape {
		if start[i] < 0 || end[i] > shape[i] || start[i] > end[i] {
			return nil, tensor.Errorf("slice", tensor.ErrInvalidRange,
				"axis %d: [%d, %d) not within [0, %d)", i, start[i], end[i], shape[i])
		}
		outShape[i] = end[i] - start[i]
	}

	result, err := tensor.Create(outShape)
	if err != nil {
		return nil, err
	}
	result.SetRequiresGrad(t.RequiresGrad())
	if result.Size() == 0 {
		return result, nil
	}

	copyRegion(result.Data(), t.Data(), t.Strides(), start, outShape)
	return result, nil
}

// copyRegion copies the region of src starting at start with extent
// outShape into dst, one contiguous innermost row at a time.
func copyRegion(dst, src []float64, srcStrides, start []int, outShape tensor.Shape) {
	ndim := len(outShape)
	rowLen := outShape[ndim-1]
	idx := make([]int, ndim) // Position within the region, innermost axis fixed at 0

	for out := 0; out < len(dst); out += rowLen {
		offset := 0
		for d := 0; d < ndim; d++ {
			offset += (start[d] + idx[d]) * srcStrides[d]
		}
		copy(dst[out:out+rowLen], src[offset:offset+rowLen])

		// Advance the odometer over all but the innermost axis
		for d := ndim - 2; d >= 0; d-- {
			idx[d]++
			if idx[d] < outShape[d] {
				break
			}
			idx[d] = 0
		}
	}
}
