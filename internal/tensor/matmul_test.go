package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinytorch-ml/tinytorch/internal/backend/cpu"
	"github.com/tinytorch-ml/tinytorch/internal/tensor"
)

func TestMatMul2D(t *testing.T) {
	backend := cpu.New()

	a := mustNew(t, [][]float64{{1, 2}, {3, 4}}, backend)
	b := mustNew(t, [][]float64{{5, 6}, {7, 8}}, backend)

	c := a.MatMul(b)
	assert.True(t, tensor.Shape{2, 2}.Equal(c.Shape()))
	assert.Equal(t, []float64{19, 22, 43, 50}, c.Data())
	assert.Equal(t, tensor.OpMatMul, c.Op())
}

func TestMatMulNonSquare(t *testing.T) {
	backend := cpu.New()

	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, backend)     // (2, 3)
	b := mustNew(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}, backend) // (3, 2)

	c := a.MatMul(b)
	assert.True(t, tensor.Shape{2, 2}.Equal(c.Shape()))
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
}

func TestMatMulMatrixVector(t *testing.T) {
	backend := cpu.New()

	a := mustNew(t, [][]float64{{1, 2}, {3, 4}}, backend)
	v := mustNew(t, []float64{5, 6}, backend)

	mv := a.MatMul(v)
	assert.True(t, tensor.Shape{2}.Equal(mv.Shape()))
	assert.Equal(t, []float64{17, 39}, mv.Data())

	vm := v.MatMul(a)
	assert.True(t, tensor.Shape{2}.Equal(vm.Shape()))
	assert.Equal(t, []float64{23, 34}, vm.Data())
}

func TestMatMulDotProduct(t *testing.T) {
	backend := cpu.New()

	a := mustNew(t, []float64{1, 2}, backend)
	b := mustNew(t, []float64{3, 4}, backend)

	dot := a.MatMul(b)
	assert.True(t, tensor.Shape{}.Equal(dot.Shape()), "dot product must be a scalar, got %v", dot.Shape())
	assert.Equal(t, 11.0, dot.Item())
}

func TestMatMulPanics(t *testing.T) {
	backend := cpu.New()

	scalar := mustNew(t, 2.0, backend)
	vec := mustNew(t, []float64{1, 2, 3}, backend)
	mat := mustNew(t, [][]float64{{1, 2}, {3, 4}}, backend)

	assert.Panics(t, func() { scalar.MatMul(vec) }, "rank-0 left operand")
	assert.Panics(t, func() { vec.MatMul(scalar) }, "rank-0 right operand")
	assert.Panics(t, func() { vec.MatMul(mat) }, "inner dimension mismatch")
	assert.Panics(t, func() { mat.MatMul(vec) }, "inner dimension mismatch")
}
