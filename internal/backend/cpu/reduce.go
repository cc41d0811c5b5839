package cpu

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cortex-lang/cortex/internal/tensor"
)

// Sum returns the sum of all elements.
// Fails with ErrEmptyTensor for a nil or zero-element tensor.
func (cpu *CPUBackend) Sum(x *tensor.Tensor) (float64, error) {
	if err := requireNonEmpty("sum", x); err != nil {
		return 0, err
	}
	return plainSum(x.Data()), nil
}

// Mean returns sum/size.
func (cpu *CPUBackend) Mean(x *tensor.Tensor) (float64, error) {
	if err := requireNonEmpty("mean", x); err != nil {
		return 0, err
	}
	return plainSum(x.Data()) / float64(x.Size()), nil
}

// Std returns the population standard deviation, sqrt(Σ(x-mean)²/size).
func (cpu *CPUBackend) Std(x *tensor.Tensor) (float64, error) {
	if err := requireNonEmpty("std", x); err != nil {
		return 0, err
	}
	return populationStd(x.Data()), nil
}

// Var returns the population variance, defined as Std squared.
func (cpu *CPUBackend) Var(x *tensor.Tensor) (float64, error) {
	if err := requireNonEmpty("var", x); err != nil {
		return 0, err
	}
	std := populationStd(x.Data())
	return std * std, nil
}

// Min returns the smallest element.
func (cpu *CPUBackend) Min(x *tensor.Tensor) (float64, error) {
	if err := requireNonEmpty("min", x); err != nil {
		return 0, err
	}
	return floats.Min(x.Data()), nil
}

// Max returns the largest element.
func (cpu *CPUBackend) Max(x *tensor.Tensor) (float64, error) {
	if err := requireNonEmpty("max", x); err != nil {
		return 0, err
	}
	return floats.Max(x.Data()), nil
}

// populationStd computes the two-pass population standard deviation of a
// non-empty slice.
func populationStd(data []float64) float64 {
	n := float64(len(data))
	mean := plainSum(data) / n

	var sumSq float64
	for _, v := range data {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / n)
}

// plainSum adds data left to right with a single accumulator.
// floats.Sum reassociates the additions, which changes rounding.
func plainSum(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum
}
