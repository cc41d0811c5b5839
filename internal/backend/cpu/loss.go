package cpu

import (
	"math"

	"github.com/cortex-lang/cortex/internal/tensor"
)

// bceEpsilon bounds predictions away from 0 and 1 before taking logs.
const bceEpsilon = 1e-8

// MSELoss computes mean squared error: (1/n) * sum((pred - target)^2).
func (cpu *CPUBackend) MSELoss(pred, target *tensor.Tensor) (float64, error) {
	if err := requireLossPair("mse_loss", pred, target); err != nil {
		return 0, err
	}

	t := target.Data()
	var sum float64
	for i, p := range pred.Data() {
		diff := p - t[i]
		sum += diff * diff
	}
	return sum / float64(pred.Size()), nil
}

// CrossEntropyLoss computes -(1/n) * sum(target * log(pred)).
// Elements with pred <= 0 contribute nothing.
func (cpu *CPUBackend) CrossEntropyLoss(pred, target *tensor.Tensor) (float64, error) {
	if err := requireLossPair("cross_entropy_loss", pred, target); err != nil {
		return 0, err
	}

	t := target.Data()
	var loss float64
	for i, p := range pred.Data() {
		if p > 0 {
			loss -= t[i] * math.Log(p)
		}
	}
	return loss / float64(pred.Size()), nil
}

// BinaryCrossEntropyLoss computes
// -(1/n) * sum(target*log(p) + (1-target)*log(1-p)),
// with each prediction p clamped to [1e-8, 1-1e-8].
func (cpu *CPUBackend) BinaryCrossEntropyLoss(pred, target *tensor.Tensor) (float64, error) {
	if err := requireLossPair("binary_cross_entropy_loss", pred, target); err != nil {
		return 0, err
	}

	t := target.Data()
	var loss float64
	for i, p := range pred.Data() {
		p = math.Max(bceEpsilon, math.Min(1-bceEpsilon, p))
		loss -= t[i]*math.Log(p) + (1-t[i])*math.Log(1-p)
	}
	return loss / float64(pred.Size()), nil
}

// requireLossPair validates loss operands. Zero-element operands are
// rejected so the mean never divides by zero.
func requireLossPair(op string, pred, target *tensor.Tensor) error {
	if err := requirePair(op, pred, target); err != nil {
		return err
	}
	if pred.Size() == 0 {
		return tensor.Errorf(op, tensor.ErrEmptyTensor, "operands have no elements")
	}
	return nil
}
