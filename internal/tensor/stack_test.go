package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinytorch-ml/tinytorch/internal/backend/cpu"
	"github.com/tinytorch-ml/tinytorch/internal/tensor"
)

func TestStackLeadingAxis(t *testing.T) {
	backend := cpu.New()

	a := mustNew(t, []float64{1, 2, 3}, backend)
	b := mustNew(t, []float64{4, 5, 6}, backend)

	s := tensor.Stack([]*tensor.Tensor{a, b}, 0)
	assert.True(t, tensor.Shape{2, 3}.Equal(s.Shape()))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, s.Data())
	assert.Equal(t, tensor.OpStack, s.Op())
	assert.Len(t, s.Children(), 2)
}

func TestStackTrailingAxis(t *testing.T) {
	backend := cpu.New()

	a := mustNew(t, []float64{1, 2, 3}, backend)
	b := mustNew(t, []float64{4, 5, 6}, backend)

	s := tensor.Stack([]*tensor.Tensor{a, b}, 1)
	assert.True(t, tensor.Shape{3, 2}.Equal(s.Shape()))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, s.Data())
}

func TestStackNegativeAxis(t *testing.T) {
	backend := cpu.New()

	a := mustNew(t, []float64{1, 2}, backend)
	b := mustNew(t, []float64{3, 4}, backend)

	s := tensor.Stack([]*tensor.Tensor{a, b}, -1)
	assert.True(t, tensor.Shape{2, 2}.Equal(s.Shape()))
	assert.Equal(t, []float64{1, 3, 2, 4}, s.Data())
}

func TestStackSingleTensor(t *testing.T) {
	backend := cpu.New()

	a := mustNew(t, []float64{1, 2, 3}, backend)
	s := tensor.Stack([]*tensor.Tensor{a}, 0)
	assert.True(t, tensor.Shape{1, 3}.Equal(s.Shape()))
	assert.Equal(t, []float64{1, 2, 3}, s.Data())
}

func TestStackPanics(t *testing.T) {
	backend := cpu.New()

	a := mustNew(t, []float64{1, 2}, backend)
	b := mustNew(t, []float64{1, 2, 3}, backend)

	assert.Panics(t, func() { tensor.Stack(nil, 0) }, "empty list")
	assert.Panics(t, func() { tensor.Stack([]*tensor.Tensor{a, b}, 0) }, "shape mismatch")
	assert.Panics(t, func() { tensor.Stack([]*tensor.Tensor{a, a}, 2) }, "axis out of range")
}
