// Copyright 2025 TinyTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/tinytorch-ml/tinytorch/internal/tensor"
)

// Type aliases for the public API

// Tensor is a differentiable n-dimensional array. Operations on
// tensors build a computation graph; Backward propagates gradients
// through it.
type Tensor = tensor.Tensor

// RawTensor is the flat data container underneath a Tensor, with no
// gradient tracking. Backends operate on RawTensors.
type RawTensor = tensor.RawTensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a 2×3 matrix; Shape{} is a scalar.
type Shape = tensor.Shape

// Backend is the compute interface a device implementation satisfies.
type Backend = tensor.Backend

// Operation tags a tensor node with the operator that produced it.
type Operation = tensor.Operation

// Operation constants.
const (
	OpNone    Operation = tensor.OpNone
	OpAdd     Operation = tensor.OpAdd
	OpSub     Operation = tensor.OpSub
	OpMul     Operation = tensor.OpMul
	OpDiv     Operation = tensor.OpDiv
	OpPow     Operation = tensor.OpPow
	OpMatMul  Operation = tensor.OpMatMul
	OpSum     Operation = tensor.OpSum
	OpLog     Operation = tensor.OpLog
	OpStack   Operation = tensor.OpStack
	OpTanh    Operation = tensor.OpTanh
	OpSigmoid Operation = tensor.OpSigmoid
	OpReLU    Operation = tensor.OpReLU
	OpLinear  Operation = tensor.OpLinear
)

// New creates a leaf tensor from a Go value: a float64, a (possibly
// nested) slice of numeric values, or an existing *RawTensor.
//
// Example:
//
//	x, err := tensor.New([][]float64{{1, 2, 3}, {4, 5, 6}}, backend)
func New(data any, b Backend) (*Tensor, error) {
	return tensor.New(data, b)
}

// FromSlice creates a leaf tensor from flat row-major data and a shape.
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	return tensor.FromSlice(data, shape, b)
}

// FromRaw wraps an existing RawTensor as a leaf tensor.
func FromRaw(raw *RawTensor, b Backend) *Tensor {
	return tensor.FromRaw(raw, b)
}

// NewRaw allocates a zero-filled RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, b Backend) *Tensor {
	return tensor.Zeros(shape, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return tensor.Ones(shape, b)
}

// Full creates a tensor filled with the given value.
func Full(shape Shape, value float64, b Backend) *Tensor {
	return tensor.Full(shape, value, b)
}

// Randn creates a tensor of standard normal samples drawn from rng.
func Randn(shape Shape, rng *rand.Rand, b Backend) *Tensor {
	return tensor.Randn(shape, rng, b)
}

// Stack joins equal-shape tensors along a new axis.
func Stack(tensors []*Tensor, axis int) *Tensor {
	return tensor.Stack(tensors, axis)
}

// ScalarAdd computes scalar + t. Addition commutes, so this is t + scalar.
func ScalarAdd(scalar float64, t *Tensor) *Tensor {
	return tensor.ScalarAdd(scalar, t)
}

// ScalarSub computes scalar - t element-wise.
func ScalarSub(scalar float64, t *Tensor) *Tensor {
	return tensor.ScalarSub(scalar, t)
}

// ScalarMul computes scalar * t. Multiplication commutes, so this is t * scalar.
func ScalarMul(scalar float64, t *Tensor) *Tensor {
	return tensor.ScalarMul(scalar, t)
}

// ScalarDiv computes scalar / t element-wise.
func ScalarDiv(scalar float64, t *Tensor) *Tensor {
	return tensor.ScalarDiv(scalar, t)
}

// BroadcastShapes computes the broadcast result shape for a and b
// following NumPy rules. The bool reports whether any broadcasting
// takes place; the error is non-nil when the shapes are incompatible.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
