package cpu

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cortex-lang/cortex/internal/tensor"
)

// Det returns the determinant of a square 2D tensor.
//
// The matrix is factorized by Gaussian elimination with partial pivoting
// (PLU), and the determinant is the signed product of U's diagonal.
// A 0×0 matrix has determinant 1.
func (cpu *CPUBackend) Det(t *tensor.Tensor) (float64, error) {
	if err := requireSquare("det", t); err != nil {
		return 0, err
	}

	n := t.Shape()[0]
	if n == 0 {
		return 1, nil
	}

	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, t.Data())) // Factorize copies its input
	return lu.Det(), nil
}

// Trace returns the sum of the diagonal of a square 2D tensor.
// A 0×0 matrix has trace 0.
func (cpu *CPUBackend) Trace(t *tensor.Tensor) (float64, error) {
	if err := requireSquare("trace", t); err != nil {
		return 0, err
	}

	n := t.Shape()[0]
	if n == 0 {
		return 0, nil
	}
	return mat.Trace(mat.NewDense(n, n, t.Data())), nil
}
