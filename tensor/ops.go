// Copyright 2026 The Cortex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Operations on the default backend.
//
// Each function forwards to Default(); see Backend for the contract.

// Element-wise binary operations

// Add returns a + b element-wise.
func Add(a, b *Tensor) (*Tensor, error) { return defaultBackend.Add(a, b) }

// Sub returns a - b element-wise.
func Sub(a, b *Tensor) (*Tensor, error) { return defaultBackend.Sub(a, b) }

// Mul returns a * b element-wise.
func Mul(a, b *Tensor) (*Tensor, error) { return defaultBackend.Mul(a, b) }

// Div returns a / b element-wise. Fails with ErrDivisionByZero if any
// element of b is zero.
func Div(a, b *Tensor) (*Tensor, error) { return defaultBackend.Div(a, b) }

// Pow returns a raised to b element-wise.
func Pow(a, b *Tensor) (*Tensor, error) { return defaultBackend.Pow(a, b) }

// AddScalar returns x + s.
func AddScalar(x *Tensor, s float64) (*Tensor, error) { return defaultBackend.AddScalar(x, s) }

// MulScalar returns x * s.
func MulScalar(x *Tensor, s float64) (*Tensor, error) { return defaultBackend.MulScalar(x, s) }

// Unary math

// Exp returns e**x element-wise.
func Exp(x *Tensor) (*Tensor, error) { return defaultBackend.Exp(x) }

// Log returns the natural logarithm element-wise. Fails with ErrDomain on any element <= 0.
func Log(x *Tensor) (*Tensor, error) { return defaultBackend.Log(x) }

// Sqrt returns the square root element-wise. Fails with ErrDomain on any negative element.
func Sqrt(x *Tensor) (*Tensor, error) { return defaultBackend.Sqrt(x) }

// Sin returns the sine element-wise.
func Sin(x *Tensor) (*Tensor, error) { return defaultBackend.Sin(x) }

// Cos returns the cosine element-wise.
func Cos(x *Tensor) (*Tensor, error) { return defaultBackend.Cos(x) }

// Tan returns the tangent element-wise.
func Tan(x *Tensor) (*Tensor, error) { return defaultBackend.Tan(x) }

// Linear algebra

// MatMul multiplies an [m, k] matrix by a [k, n] matrix.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b, _ := tensor.Ones(tensor.Shape{3, 2})
//	c, err := tensor.MatMul(a, b) // [[6, 6], [15, 15]]
func MatMul(a, b *Tensor) (*Tensor, error) { return defaultBackend.MatMul(a, b) }

// Transpose swaps the axes of a 2D tensor.
func Transpose(t *Tensor) (*Tensor, error) { return defaultBackend.Transpose(t) }

// Det returns the determinant of a square matrix.
func Det(t *Tensor) (float64, error) { return defaultBackend.Det(t) }

// Trace returns the sum of the diagonal of a square matrix.
func Trace(t *Tensor) (float64, error) { return defaultBackend.Trace(t) }

// Reductions

// Sum returns the sum of all elements.
func Sum(x *Tensor) (float64, error) { return defaultBackend.Sum(x) }

// Mean returns the arithmetic mean of all elements.
func Mean(x *Tensor) (float64, error) { return defaultBackend.Mean(x) }

// Std returns the population standard deviation.
func Std(x *Tensor) (float64, error) { return defaultBackend.Std(x) }

// Var returns the population variance.
func Var(x *Tensor) (float64, error) { return defaultBackend.Var(x) }

// Min returns the smallest element.
func Min(x *Tensor) (float64, error) { return defaultBackend.Min(x) }

// Max returns the largest element.
func Max(x *Tensor) (float64, error) { return defaultBackend.Max(x) }

// Activations

// ReLU returns max(0, x) element-wise.
func ReLU(x *Tensor) (*Tensor, error) { return defaultBackend.ReLU(x) }

// Sigmoid returns 1/(1+exp(-x)) element-wise.
func Sigmoid(x *Tensor) (*Tensor, error) { return defaultBackend.Sigmoid(x) }

// Tanh returns the hyperbolic tangent element-wise.
func Tanh(x *Tensor) (*Tensor, error) { return defaultBackend.Tanh(x) }

// Softmax normalizes the flattened tensor so its elements sum to 1.
func Softmax(x *Tensor) (*Tensor, error) { return defaultBackend.Softmax(x) }

// Losses

// MSELoss returns the mean squared error between pred and target.
func MSELoss(pred, target *Tensor) (float64, error) { return defaultBackend.MSELoss(pred, target) }

// CrossEntropyLoss returns -(1/n) * sum(target * log(pred)), skipping pred <= 0.
func CrossEntropyLoss(pred, target *Tensor) (float64, error) {
	return defaultBackend.CrossEntropyLoss(pred, target)
}

// BinaryCrossEntropyLoss returns the binary cross-entropy with predictions clamped to [1e-8, 1-1e-8].
func BinaryCrossEntropyLoss(pred, target *Tensor) (float64, error) {
	return defaultBackend.BinaryCrossEntropyLoss(pred, target)
}

// Shape transforms

// Reshape copies t's data under a new shape with the same element count.
func Reshape(t *Tensor, shape Shape) (*Tensor, error) { return defaultBackend.Reshape(t, shape) }

// Slice extracts [start[i], end[i]) along every axis of t.
func Slice(t *Tensor, start, end []int) (*Tensor, error) {
	return defaultBackend.Slice(t, start, end)
}
