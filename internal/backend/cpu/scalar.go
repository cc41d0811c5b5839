package cpu

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cortex-lang/cortex/internal/tensor"
)

// AddScalar adds scalar to every element of a copy of x.
func (cpu *CPUBackend) AddScalar(x *tensor.Tensor, scalar float64) (*tensor.Tensor, error) {
	if err := requireOperand("add_scalar", x); err != nil {
		return nil, err
	}

	result, err := x.Copy()
	if err != nil {
		return nil, err
	}
	floats.AddConst(scalar, result.Data())
	return result, nil
}

// MulScalar multiplies every element of a copy of x by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.Tensor, scalar float64) (*tensor.Tensor, error) {
	if err := requireOperand("multiply_scalar", x); err != nil {
		return nil, err
	}

	result, err := x.Copy()
	if err != nil {
		return nil, err
	}
	floats.Scale(scalar, result.Data())
	return result, nil
}
