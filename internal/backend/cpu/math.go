package cpu

import (
	"math"

	"github.com/cortex-lang/cortex/internal/tensor"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.Tensor) (*tensor.Tensor, error) {
	return mapUnary("exp", x, math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
// Fails with ErrDomain on the first non-positive element.
func (cpu *CPUBackend) Log(x *tensor.Tensor) (*tensor.Tensor, error) {
	return mapChecked("log", x, func(v float64) bool { return v > 0 }, "non-positive", math.Log)
}

// Sqrt computes element-wise square root: sqrt(x).
// Fails with ErrDomain on the first negative element.
func (cpu *CPUBackend) Sqrt(x *tensor.Tensor) (*tensor.Tensor, error) {
	return mapChecked("sqrt", x, func(v float64) bool { return v >= 0 }, "negative", math.Sqrt)
}

// Sin computes element-wise sine: sin(x).
func (cpu *CPUBackend) Sin(x *tensor.Tensor) (*tensor.Tensor, error) {
	return mapUnary("sin", x, math.Sin)
}

// Cos computes element-wise cosine: cos(x).
func (cpu *CPUBackend) Cos(x *tensor.Tensor) (*tensor.Tensor, error) {
	return mapUnary("cos", x, math.Cos)
}

// Tan computes element-wise tangent: tan(x).
func (cpu *CPUBackend) Tan(x *tensor.Tensor) (*tensor.Tensor, error) {
	return mapUnary("tan", x, math.Tan)
}

// mapChecked is mapUnary for functions with a restricted domain. Like Div,
// it computes into a copy and releases it on the first invalid element.
func mapChecked(op string, x *tensor.Tensor, inDomain func(float64) bool, what string,
	fn func(float64) float64,
) (*tensor.Tensor, error) {
	if err := requireOperand(op, x); err != nil {
		return nil, err
	}

	result, err := x.Copy()
	if err != nil {
		return nil, err
	}
	data := result.Data()
	for i, v := range data {
		if !inDomain(v) {
			result.Release()
			return nil, tensor.Errorf(op, tensor.ErrDomain, "%s value at index %d: %f", what, i, v)
		}
		data[i] = fn(v)
	}
	return result, nil
}
