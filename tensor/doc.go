// Copyright 2025 TinyTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides differentiable n-dimensional tensors.
//
// # Overview
//
// Tensors are the fundamental data structure in TinyTorch. Every
// operation on a tensor records its provenance, so calling Backward on
// any result walks the computation graph in reverse and fills the Grad
// of every tensor that contributed to it. This package provides:
//   - Dense float64 tensors of arbitrary rank (including rank-0 scalars)
//   - NumPy-style broadcasting for element-wise arithmetic
//   - Reverse-mode automatic differentiation
//   - Device abstraction through the Backend interface
//
// # Basic Usage
//
//	import (
//	    "github.com/tinytorch-ml/tinytorch/backend/cpu"
//	    "github.com/tinytorch-ml/tinytorch/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.New([][]float64{{1, 2}, {3, 4}}, backend)
//	    y, _ := tensor.New([][]float64{{5, 6}, {7, 8}}, backend)
//
//	    loss := x.MatMul(y).Sum()
//	    loss.Backward()
//
//	    fmt.Println(x.Grad()) // dloss/dx
//	}
//
// # Gradients
//
// Gradients accumulate across Backward calls. Call ZeroGrad on each
// parameter between optimization steps to reset them.
package tensor
