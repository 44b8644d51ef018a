// Copyright 2025 TinyTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/tinytorch-ml/tinytorch/tensor"
)

// Module is the base interface for all neural network components.
//
// Every module must implement:
//   - Forward: compute the output from an input tensor
//   - Parameters: return all trainable parameters
//
// Modules compose: an MLP's Parameters are the concatenation of its
// layers' Parameters, which in turn come from individual neurons.
type Module interface {
	// Forward computes the output of the module given an input tensor.
	Forward(x *tensor.Tensor) *tensor.Tensor

	// Parameters returns the trainable parameters of the module.
	// The returned tensors are the live graph leaves: gradients land
	// on them after Backward, and updating their data changes the
	// module.
	Parameters() []*tensor.Tensor
}

// Compile-time interface checks.
var (
	_ Module = (*Neuron)(nil)
	_ Module = (*Layer)(nil)
	_ Module = (*MLP)(nil)
)
