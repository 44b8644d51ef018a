// Copyright 2025 TinyTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tinytorch-ml/tinytorch/tensor"
)

// Neuron is a single unit computing activation(w·x + b).
//
// Weights have shape (1, nInput) so that w*x broadcasts over a batched
// input of shape (batch, nInput); summing along axis 1 yields the
// per-sample dot product.
type Neuron struct {
	w          *tensor.Tensor // (1, nInput)
	b          *tensor.Tensor // (1,)
	nInput     int
	activation Activation
}

// NewNeuron creates a neuron with nInput inputs.
//
// Weights are drawn from a Gaussian scaled by sqrt(2/(nInput+1))
// (Xavier initialization); the bias starts at zero. The rng makes
// initialization reproducible: two neurons built from identically
// seeded generators are identical.
func NewNeuron(nInput int, activation Activation, rng *rand.Rand, backend tensor.Backend) *Neuron {
	w := tensor.Randn(tensor.Shape{1, nInput}, rng, backend).WithLabel("w")
	scale := math.Sqrt(2.0 / float64(nInput+1))
	data := w.Data()
	for i := range data {
		data[i] *= scale
	}

	b := tensor.Zeros(tensor.Shape{1}, backend).WithLabel("b")

	return &Neuron{
		w:          w,
		b:          b,
		nInput:     nInput,
		activation: activation,
	}
}

// Forward computes activation(w·x + b).
//
// Input shape: (batch, nInput). Output shape: (batch,).
func (n *Neuron) Forward(x *tensor.Tensor) *tensor.Tensor {
	out := n.w.Mul(x).Sum(1).Add(n.b)
	return n.activation.apply(out)
}

// Parameters returns the weight and bias tensors.
func (n *Neuron) Parameters() []*tensor.Tensor {
	return []*tensor.Tensor{n.w, n.b}
}

// String returns a summary like "Neuron(3 inputs, tanh)".
func (n *Neuron) String() string {
	return fmt.Sprintf("Neuron(%d inputs, %s)", n.nInput, n.activation)
}
