package cpu

import (
	"github.com/cortex-lang/cortex/internal/parallel"
	"github.com/cortex-lang/cortex/internal/tensor"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
//
// Each entry is accumulated over k in increasing order, so results are
// bit-for-bit reproducible. A backend built with parallelism enabled
// splits the output rows of large products across goroutines; this never
// changes the summation order.
func (cpu *CPUBackend) MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if !a.Valid() || !b.Valid() {
		return nil, tensor.Errorf("matmul", tensor.ErrNullOperand, "both operands are required")
	}
	if a.NDim() != 2 || b.NDim() != 2 {
		return nil, tensor.Errorf("matmul", tensor.ErrInvalidRank,
			"only 2D tensors supported, got %dD and %dD", a.NDim(), b.NDim())
	}

	m, k := a.Shape()[0], a.Shape()[1]
	kAlt, n := b.Shape()[0], b.Shape()[1]
	if k != kAlt {
		return nil, tensor.Errorf("matmul", tensor.ErrShapeMismatch, "[%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}

	result, err := tensor.Create(tensor.Shape{m, n})
	if err != nil {
		return nil, err
	}
	c, aData, bData := result.Data(), a.Data(), b.Data()
	parallel.ForRange(m, k*n, func(lo, hi int) {
		matmulFloat64(c, aData, bData, lo, hi, k, n)
	}, cpu.par)
	return result, nil
}

// matmulFloat64 performs naive matrix multiplication for rows [lo, hi).
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmulFloat64(c, a, b []float64, lo, hi, k, n int) {
	for i := lo; i < hi; i++ {
		for j := 0; j < n; j++ {
			sum := float64(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// Transpose swaps the two axes of a 2D tensor: result[j,i] = t[i,j].
func (cpu *CPUBackend) Transpose(t *tensor.Tensor) (*tensor.Tensor, error) {
	if err := requireMatrix("transpose", t); err != nil {
		return nil, err
	}

	rows, cols := t.Shape()[0], t.Shape()[1]
	result, err := tensor.Create(tensor.Shape{cols, rows})
	if err != nil {
		return nil, err
	}

	src := t.Data()
	dst := result.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
	return result, nil
}
