// Copyright 2026 The Cortex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortex-lang/cortex/backend/cpu"
	"github.com/cortex-lang/cortex/tensor"
)

// TestBackendInterface verifies that cpu.Backend implements tensor.Backend.
func TestBackendInterface(t *testing.T) {
	var _ tensor.Backend = cpu.New()
	assert.Equal(t, "CPU", tensor.Default().Name())
}

// TestIdentityMatMul multiplies a [2,2] tensor by the identity.
func TestIdentityMatMul(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	id, err := tensor.Eye(2)
	require.NoError(t, err)

	c, err := tensor.MatMul(a, id)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, c.Data())
}

// TestDivisionByZeroReported routes a failure through an ErrorChannel.
func TestDivisionByZeroReported(t *testing.T) {
	a, err := tensor.Ones(tensor.Shape{2})
	require.NoError(t, err)
	b, err := tensor.Zeros(tensor.Shape{2})
	require.NoError(t, err)

	var ch tensor.ErrorChannel
	q, err := tensor.Div(a, b)
	require.Error(t, ch.Record(err))
	assert.Nil(t, q)

	msg, ok := ch.LastError()
	assert.True(t, ok)
	assert.NotEmpty(t, msg)

	var opErr *tensor.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, tensor.ErrDivisionByZero, opErr.Err)
}

// TestSoftmaxSumsToOne checks the softmax/sum pipeline on a large input.
func TestSoftmaxSumsToOne(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1000, 1001, 1002}, tensor.Shape{3})
	require.NoError(t, err)

	y, err := tensor.Softmax(x)
	require.NoError(t, err)
	total, err := tensor.Sum(y)
	require.NoError(t, err)

	assert.InDelta(t, 1, total, 1e-12)
	for _, v := range y.Data() {
		assert.False(t, math.IsNaN(v))
	}
}

// TestArangeReshapeSlice chains factories and shape transforms.
func TestArangeReshapeSlice(t *testing.T) {
	seq, err := tensor.Arange(0, 12, 1)
	require.NoError(t, err)
	m, err := tensor.Reshape(seq, tensor.Shape{3, 4})
	require.NoError(t, err)

	s, err := tensor.Slice(m, []int{1, 1}, []int{3, 3})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, s.Shape())
	assert.Equal(t, []float64{5, 6, 9, 10}, s.Data())
}

// TestMSELossSelf checks that a tensor has zero loss against a copy of itself.
func TestMSELossSelf(t *testing.T) {
	x, err := tensor.Randn(tensor.Shape{4, 4})
	require.NoError(t, err)
	y, err := x.Copy()
	require.NoError(t, err)

	loss, err := tensor.MSELoss(x, y)
	require.NoError(t, err)
	assert.Zero(t, loss)
}
