// Copyright 2025 TinyTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on top of
// differentiable tensors.
//
// # Overview
//
// The package follows the classic neuron/layer/network decomposition:
//   - Neuron: a single unit computing activation(w·x + b)
//   - Layer: a group of neurons sharing an input
//   - MLP: a stack of layers applied in sequence
//
// All three implement the Module interface, so parameters can be
// collected uniformly for optimization.
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/tinytorch-ml/tinytorch/backend/cpu"
//	    "github.com/tinytorch-ml/tinytorch/nn"
//	    "github.com/tinytorch-ml/tinytorch/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    rng := rand.New(rand.NewSource(42))
//
//	    model := nn.NewMLP(3, []nn.LayerSpec{
//	        {Neurons: 4, Activation: nn.Tanh},
//	        {Neurons: 1, Activation: nn.Sigmoid},
//	    }, rng, backend)
//
//	    x, _ := tensor.New([][]float64{{0.5, -0.2, 0.1}}, backend)
//	    out := model.Forward(x)
//
//	    out.Sum().Backward()
//	    for _, p := range model.Parameters() {
//	        _ = p.Grad() // use gradients for an update step
//	    }
//	}
package nn
