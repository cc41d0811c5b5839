package cpu

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cortex-lang/cortex/internal/tensor"
)

// ReLU computes max(0, x) element-wise.
func (cpu *CPUBackend) ReLU(x *tensor.Tensor) (*tensor.Tensor, error) {
	return mapUnary("relu", x, func(v float64) float64 {
		return math.Max(0, v)
	})
}

// Sigmoid computes 1/(1+exp(-x)) element-wise.
func (cpu *CPUBackend) Sigmoid(x *tensor.Tensor) (*tensor.Tensor, error) {
	return mapUnary("sigmoid", x, func(v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	})
}

// Tanh computes the hyperbolic tangent element-wise.
func (cpu *CPUBackend) Tanh(x *tensor.Tensor) (*tensor.Tensor, error) {
	return mapUnary("tanh", x, math.Tanh)
}

// Softmax computes exp(x_i) / sum(exp(x_j)) over the whole flattened
// tensor, not per row. The global maximum is subtracted before
// exponentiating so large inputs do not overflow.
func (cpu *CPUBackend) Softmax(x *tensor.Tensor) (*tensor.Tensor, error) {
	if err := requireOperand("softmax", x); err != nil {
		return nil, err
	}

	result, err := x.Copy()
	if err != nil {
		return nil, err
	}
	data := result.Data()
	if len(data) == 0 {
		return result, nil
	}

	maxVal := floats.Max(data)

	var sum float64
	for i, v := range data {
		e := math.Exp(v - maxVal)
		data[i] = e
		sum += e
	}

	for i := range data {
		data[i] /= sum
	}
	return result, nil
}
