package tensor

import (
	"fmt"
	"math/bits"
	"strings"
)

// Shape represents the dimensions of a tensor.
// Every valid tensor has at least one axis; an extent of 0 is allowed
// and yields a zero-element tensor.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// It does not check for overflow; use CheckedNumElements for untrusted shapes.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// NDim returns the number of axes.
func (s Shape) NDim() int {
	return len(s)
}

// Validate checks that the shape has at least one axis and no negative extents.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("shape must have at least one dimension")
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String renders the shape as "[2, 3]".
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, dim := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", dim)
	}
	sb.WriteByte(']')
	return sb.String()
}

// CheckedNumElements multiplies the extents and reports whether the
// product is addressable as a single buffer. The shape must already be
// validated.
func (s Shape) CheckedNumElements() (int, bool) {
	n := uint(1)
	for _, dim := range s {
		hi, lo := bits.Mul(n, uint(dim))
		if hi != 0 || lo > uint(maxElements) {
			return 0, false
		}
		n = lo
	}
	return int(n), true
}

// maxElements bounds a single buffer so that its byte size fits in an int.
const maxElements = int(^uint(0)>>1) / 8
