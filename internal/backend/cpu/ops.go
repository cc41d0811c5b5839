package cpu

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cortex-lang/cortex/internal/tensor"
)

// Add performs element-wise addition.
// The result is a copy of a with b added position by position.
func (cpu *CPUBackend) Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return combine("add", a, b, floats.Add)
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return combine("subtract", a, b, floats.Sub)
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return combine("multiply", a, b, floats.Mul)
}

// Div performs element-wise division.
//
// Fails with ErrDivisionByZero as soon as a divisor element is exactly 0;
// the partially computed result is released and nothing is returned.
func (cpu *CPUBackend) Div(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := requirePair("divide", a, b); err != nil {
		return nil, err
	}

	result, err := a.Copy()
	if err != nil {
		return nil, err
	}

	dst := result.Data()
	for i, d := range b.Data() {
		if d == 0 {
			result.Release()
			return nil, tensor.Errorf("divide", tensor.ErrDivisionByZero, "divisor element %d is zero", i)
		}
		dst[i] /= d
	}
	return result, nil
}

// Pow raises each element of a to the power of the matching element of b.
// Domain errors produce NaN per IEEE 754 and are not reported as failures.
func (cpu *CPUBackend) Pow(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return combine("power", a, b, func(dst, s []float64) {
		for i, e := range s {
			dst[i] = math.Pow(dst[i], e)
		}
	})
}

// combine validates a and b, copies a, and applies kernel(dst, b).
func combine(op string, a, b *tensor.Tensor, kernel func(dst, s []float64)) (*tensor.Tensor, error) {
	if err := requirePair(op, a, b); err != nil {
		return nil, err
	}

	result, err := a.Copy()
	if err != nil {
		return nil, err
	}
	kernel(result.Data(), b.Data())
	return result, nil
}

// mapUnary validates x, copies it, and replaces every element with fn(v).
func mapUnary(op string, x *tensor.Tensor, fn func(float64) float64) (*tensor.Tensor, error) {
	if err := requireOperand(op, x); err != nil {
		return nil, err
	}

	result, err := x.Copy()
	if err != nil {
		return nil, err
	}
	data := result.Data()
	for i, v := range data {
		data[i] = fn(v)
	}
	return result, nil
}
