package tensor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// Create Tests

func TestCreate(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		size  int
	}{
		{"1D", Shape{5}, 5},
		{"2D", Shape{2, 3}, 6},
		{"3D", Shape{2, 3, 4}, 24},
		{"zero extent", Shape{3, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := Create(tt.shape)
			require.NoError(t, err)

			assertEqualShape(t, tt.shape, x.Shape(), "Create shape")
			assert.Equal(t, len(tt.shape), x.NDim())
			assert.Equal(t, tt.size, x.Size())
			assert.Len(t, x.Data(), tt.size)
			assert.False(t, x.RequiresGrad())
			for i, v := range x.Data() {
				assert.Zero(t, v, "element %d", i)
			}
		})
	}
}

func TestCreateInvalidShape(t *testing.T) {
	for _, shape := range []Shape{nil, {}, {2, -1}} {
		x, err := Create(shape)
		assert.Nil(t, x)
		require.Error(t, err, "shape %v", shape)
		assert.ErrorIs(t, err, ErrAllocation)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestCreateOverflow(t *testing.T) {
	huge := int(^uint(0) >> 2)
	x, err := Create(Shape{huge, huge})
	assert.Nil(t, x)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.False(t, errors.Is(err, ErrInvalidArgument))
}

func TestCreateCopiesShape(t *testing.T) {
	shape := Shape{2, 2}
	x, err := Create(shape)
	require.NoError(t, err)

	shape[0] = 7
	assertEqualShape(t, Shape{2, 2}, x.Shape(), "shape must not alias the caller's slice")
}

func TestCheckedNumElements(t *testing.T) {
	n, ok := Shape{2, 3, 4}.CheckedNumElements()
	assert.True(t, ok)
	assert.Equal(t, 24, n)

	n, ok = Shape{5, 0}.CheckedNumElements()
	assert.True(t, ok)
	assert.Zero(t, n)

	_, ok = Shape{1<<62 + 1, 4}.CheckedNumElements()
	assert.False(t, ok, "wrapped product must be rejected")
}

// Copy Tests

func TestCopyIsIndependent(t *testing.T) {
	src, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	src.SetRequiresGrad(true)

	dst, err := src.Copy()
	require.NoError(t, err)
	assertEqualShape(t, src.Shape(), dst.Shape(), "Copy shape")
	assert.Equal(t, src.Data(), dst.Data())
	assert.True(t, dst.RequiresGrad())

	dst.Set(100, 0, 0)
	dst.Data()[3] = -1
	assert.Equal(t, []float64{1, 2, 3, 4}, src.Data())
}

func TestCopyNil(t *testing.T) {
	var x *Tensor
	c, err := x.Copy()
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// Release Tests

func TestRelease(t *testing.T) {
	x, err := Ones(Shape{2, 2})
	require.NoError(t, err)
	require.True(t, x.Valid())

	x.Release()
	assert.False(t, x.Valid())
	assert.Nil(t, x.Data())

	// Multiple releases and nil receivers should be safe
	x.Release()
	var nilTensor *Tensor
	nilTensor.Release()

	_, err = x.Copy()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// Accessor Tests

func TestAtSet(t *testing.T) {
	x, err := Zeros(Shape{3, 4})
	require.NoError(t, err)

	x.Set(42, 1, 2)
	assert.Equal(t, 42.0, x.At(1, 2))
	assert.Equal(t, 42.0, x.Data()[1*4+2])
	assert.Equal(t, []int{4, 1}, x.Strides())
}

func TestAtPanics(t *testing.T) {
	x, err := Zeros(Shape{2, 2})
	require.NoError(t, err)

	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.At(0) })
	assert.Panics(t, func() { x.Set(1, -1, 0) })
}

// Dump Tests

func TestDump(t *testing.T) {
	x, err := Eye(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, x.Dump(&buf))
	assert.Equal(t, "Tensor shape: [2, 2]\nData: [1.000000, 0.000000, 0.000000, 1.000000]\n", buf.String())
	assert.Equal(t, buf.String(), x.String())
}

func TestDumpNil(t *testing.T) {
	var x *Tensor
	assert.Equal(t, "NULL tensor\n", x.String())
}
