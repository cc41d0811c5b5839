package tensor

import (
	"math"
	"math/rand"
	"time"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros(Shape{3, 4})
func Zeros(shape Shape) (*Tensor, error) {
	// Data is already zero-initialized by make()
	return Create(shape)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t, err := tensor.Ones(Shape{2, 3})
func Ones(shape Shape) (*Tensor, error) {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full(Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) (*Tensor, error) {
	t, err := Create(shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if n, ok := shape.CheckedNumElements(); ok && shape.Validate() == nil && n != len(data) {
		return nil, Errorf("from_slice", ErrShapeMismatch,
			"shape %v requires %d elements, but got %d", shape, n, len(data))
	}
	t, err := Create(shape)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	t, err := tensor.Eye(3) // 3x3 identity matrix
func Eye(n int) (*Tensor, error) {
	if n < 0 {
		return nil, Errorf("eye", ErrInvalidArgument, "size must be non-negative, got %d", n)
	}
	t, err := Create(Shape{n, n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t, nil
}

// Arange creates a 1D tensor with floor((stop-start)/step) elements,
// element i being start + i*step.
//
// step must be non-zero and point from start towards stop; otherwise
// Arange fails with ErrInvalidArgument. start == stop yields an empty tensor.
//
// Example:
//
//	t, err := tensor.Arange(0, 10, 2) // [0, 2, 4, 6, 8]
func Arange(start, stop, step float64) (*Tensor, error) {
	if step == 0 {
		return nil, Errorf("arange", ErrInvalidArgument, "step must be non-zero")
	}
	count := math.Floor((stop - start) / step)
	if math.IsNaN(count) || count < 0 {
		return nil, Errorf("arange", ErrInvalidArgument,
			"step %g does not lead from %g to %g", step, start, stop)
	}
	if count > float64(maxElements) {
		return nil, Errorf("arange", ErrAllocation, "%g elements requested", count)
	}

	t, err := Create(Shape{int(count)})
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = start + float64(i)*step
	}
	return t, nil
}

// Randn creates a tensor with random values from a standard normal
// distribution, using a time-seeded source.
// Note: Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
//
// Example:
//
//	t, err := tensor.Randn(Shape{100, 100})
func Randn(shape Shape) (*Tensor, error) {
	//nolint:gosec // G404: ML uses math/rand intentionally
	return RandnFrom(rand.New(rand.NewSource(time.Now().UnixNano())), shape)
}

// RandnFrom is Randn drawing from rng, for reproducible samples.
//
// Values are produced with the Box-Muller transform: each pair of
// outputs consumes two uniform draws.
func RandnFrom(rng *rand.Rand, shape Shape) (*Tensor, error) {
	t, err := Create(shape)
	if err != nil {
		return nil, err
	}

	data := t.data
	for i := 0; i < len(data); i += 2 {
		u1 := 1 - rng.Float64() // (0, 1], keeps the log finite
		u2 := rng.Float64()
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = r * math.Cos(2.0*math.Pi*u2)
		if i+1 < len(data) {
			data[i+1] = r * math.Sin(2.0*math.Pi*u2)
		}
	}
	return t, nil
}
