package cpu

import (
	"fmt"

	"github.com/tinytorch-ml/tinytorch/internal/tensor"
)

// SumAll sums every element into a scalar tensor of shape ().
func (cpu *CPUBackend) SumAll(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{})
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	var sum float64
	for _, v := range x.Data() {
		sum += v
	}
	result.Data()[0] = sum
	return result
}

// SumAxes sums along the given axes without keeping the reduced
// dimensions. Negative axes count from the end; duplicate or
// out-of-range axes panic. Reducing over every axis yields a scalar.
func (cpu *CPUBackend) SumAxes(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	reduced := make([]bool, ndim)
	for _, axis := range axes {
		if axis < 0 {
			axis += ndim
		}
		if axis < 0 || axis >= ndim {
			panic(fmt.Sprintf("sum: axis %d out of range for %dD tensor", axis, ndim))
		}
		if reduced[axis] {
			panic(fmt.Sprintf("sum: duplicate axis %d", axis))
		}
		reduced[axis] = true
	}

	outShape := make(tensor.Shape, 0, ndim)
	for i, dim := range shape {
		if !reduced[i] {
			outShape = append(outShape, dim)
		}
	}

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	inStrides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	out := result.Data()

	for flat, v := range x.Data() {
		// Map the input coordinate onto the reduced output index.
		outIdx := 0
		rem := flat
		outDim := 0
		for d := 0; d < ndim; d++ {
			coord := rem / inStrides[d]
			rem %= inStrides[d]
			if !reduced[d] {
				outIdx += coord * outStrides[outDim]
				outDim++
			}
		}
		out[outIdx] += v
	}
	return result
}
