package tensor

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeros(t *testing.T) {
	x, err := Zeros(Shape{2, 3})
	require.NoError(t, err)

	assertEqualShape(t, Shape{2, 3}, x.Shape(), "Zeros shape")
	assert.Equal(t, 6, x.Size())
	assert.Equal(t, make([]float64, 6), x.Data())
}

func TestOnes(t *testing.T) {
	x, err := Ones(Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, x.Data())
}

func TestFull(t *testing.T) {
	x, err := Full(Shape{3}, 3.14)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.14, 3.14, 3.14}, x.Data())
}

func TestFromSlice(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(src, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6.0, x.At(1, 2))

	// Copied, not aliased
	src[0] = 99
	assert.Equal(t, 1.0, x.At(0, 0))
}

func TestFromSliceMismatch(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	assert.Nil(t, x)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromSlice(nil, Shape{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// Eye Tests

func TestEye(t *testing.T) {
	x, err := Eye(3)
	require.NoError(t, err)
	assertEqualShape(t, Shape{3, 3}, x.Shape(), "Eye shape")

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, x.At(i, j), "eye[%d,%d]", i, j)
		}
	}
}

func TestEyeEdgeCases(t *testing.T) {
	x, err := Eye(0)
	require.NoError(t, err)
	assertEqualShape(t, Shape{0, 0}, x.Shape(), "Eye(0) shape")
	assert.Equal(t, 0, x.Size())

	_, err = Eye(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// Arange Tests

func TestArange(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step float64
		want              []float64
	}{
		{"unit step", 0, 4, 1, []float64{0, 1, 2, 3}},
		{"step 2", 0, 10, 2, []float64{0, 2, 4, 6, 8}},
		{"fractional size floors", 0, 1, 0.3, []float64{0, 0.3, 0.6}},
		{"descending", 5, 2, -1, []float64{5, 4, 3}},
		{"empty", 3, 3, 1, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := Arange(tt.start, tt.stop, tt.step)
			require.NoError(t, err)
			assertEqualShape(t, Shape{len(tt.want)}, x.Shape(), "Arange shape")
			assert.InDeltaSlice(t, tt.want, x.Data(), 1e-12)
		})
	}
}

func TestArangeInvalid(t *testing.T) {
	_, err := Arange(0, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Arange(0, 10, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Arange(math.NaN(), 1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// Randn Tests

func TestRandn(t *testing.T) {
	x, err := RandnFrom(rand.New(rand.NewSource(42)), Shape{100, 50})
	require.NoError(t, err)
	assertEqualShape(t, Shape{100, 50}, x.Shape(), "Randn shape")

	data := x.Data()
	var sum float64
	for _, v := range data {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		sum += v
	}
	mean := sum / float64(len(data))

	var sumSq float64
	for _, v := range data {
		sumSq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sumSq / float64(len(data)))

	assert.InDelta(t, 0, mean, 0.1)
	assert.InDelta(t, 1, std, 0.1)
}

func TestRandnReproducible(t *testing.T) {
	a, err := RandnFrom(rand.New(rand.NewSource(7)), Shape{5})
	require.NoError(t, err)
	b, err := RandnFrom(rand.New(rand.NewSource(7)), Shape{5})
	require.NoError(t, err)
	assert.Equal(t, a.Data(), b.Data())
}

func TestRandnOddSize(t *testing.T) {
	x, err := Randn(Shape{3})
	require.NoError(t, err)
	assert.Equal(t, 3, x.Size())
}
