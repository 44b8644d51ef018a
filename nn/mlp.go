// Copyright 2025 TinyTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/tinytorch-ml/tinytorch/tensor"
)

// LayerSpec describes one layer of an MLP: its width and activation.
type LayerSpec struct {
	Neurons    int
	Activation Activation
}

// MLP is a multi-layer perceptron: layers applied in sequence, each
// consuming the previous layer's output.
type MLP struct {
	layers []*Layer
	nInput int
	specs  []LayerSpec
}

// NewMLP creates an MLP taking nInput features. Each spec adds a layer
// whose input width is the previous layer's neuron count.
func NewMLP(nInput int, specs []LayerSpec, rng *rand.Rand, backend tensor.Backend) *MLP {
	layers := make([]*Layer, len(specs))
	width := nInput
	for i, spec := range specs {
		layers[i] = NewLayer(width, spec.Neurons, spec.Activation, rng, backend)
		width = spec.Neurons
	}
	return &MLP{
		layers: layers,
		nInput: nInput,
		specs:  append([]LayerSpec(nil), specs...),
	}
}

// Forward runs the input through every layer in order.
//
// Input shape: (batch, nInput). Output shape: (batch, lastWidth).
func (m *MLP) Forward(x *tensor.Tensor) *tensor.Tensor {
	out := x
	for _, layer := range m.layers {
		out = layer.Forward(out)
	}
	return out
}

// Parameters returns the parameters of every layer in order.
func (m *MLP) Parameters() []*tensor.Tensor {
	var params []*tensor.Tensor
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// String returns a summary like "MLP(3 -> [4/tanh -> 1/sigmoid])".
func (m *MLP) String() string {
	parts := make([]string, len(m.specs))
	for i, spec := range m.specs {
		parts[i] = fmt.Sprintf("%d/%s", spec.Neurons, spec.Activation)
	}
	return fmt.Sprintf("MLP(%d -> [%s])", m.nInput, strings.Join(parts, " -> "))
}
