// Copyright 2025 TinyTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"

	"github.com/tinytorch-ml/tinytorch/tensor"
)

// Activation selects the nonlinearity applied to a neuron's output.
type Activation int

// Supported activations.
const (
	Linear Activation = iota
	Tanh
	Sigmoid
	ReLU
)

// String returns the lowercase activation name.
func (a Activation) String() string {
	switch a {
	case Linear:
		return "linear"
	case Tanh:
		return "tanh"
	case Sigmoid:
		return "sigmoid"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// apply runs the activation on t, recording it in the graph.
func (a Activation) apply(t *tensor.Tensor) *tensor.Tensor {
	switch a {
	case Linear:
		return t.Linear()
	case Tanh:
		return t.Tanh()
	case Sigmoid:
		return t.Sigmoid()
	case ReLU:
		return t.ReLU()
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}
