// Copyright 2025 TinyTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"
	"math/rand"

	"github.com/tinytorch-ml/tinytorch/tensor"
)

// Layer is a group of neurons sharing the same input.
type Layer struct {
	neurons    []*Neuron
	nInput     int
	activation Activation
}

// NewLayer creates a layer of nNeurons neurons, each taking nInput
// inputs and applying the same activation.
func NewLayer(nInput, nNeurons int, activation Activation, rng *rand.Rand, backend tensor.Backend) *Layer {
	neurons := make([]*Neuron, nNeurons)
	for i := range neurons {
		neurons[i] = NewNeuron(nInput, activation, rng, backend)
	}
	return &Layer{
		neurons:    neurons,
		nInput:     nInput,
		activation: activation,
	}
}

// Forward runs every neuron on x and stacks their outputs along a new
// trailing axis.
//
// Input shape: (batch, nInput). Output shape: (batch, nNeurons).
func (l *Layer) Forward(x *tensor.Tensor) *tensor.Tensor {
	outs := make([]*tensor.Tensor, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Forward(x)
	}
	return tensor.Stack(outs, 1)
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*tensor.Tensor {
	params := make([]*tensor.Tensor, 0, 2*len(l.neurons))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// String returns a summary like "Layer(4 neurons, tanh)".
func (l *Layer) String() string {
	return fmt.Sprintf("Layer(%d neurons, %s)", len(l.neurons), l.activation)
}
