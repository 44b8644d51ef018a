// Copyright 2025 TinyTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float64 computation throughout
//   - NumPy-compatible broadcasting
//   - Linear-algebra rank rules for matrix multiplication
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
//	    x := tensor.Ones(tensor.Shape{2, 3}, backend)
//	    y := tensor.Full(tensor.Shape{2, 3}, 2.0, backend)
//	    z := x.Add(y)
//
//	    z.Sum().Backward()
//	}
package cpu
