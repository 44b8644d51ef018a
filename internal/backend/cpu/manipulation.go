package cpu

import (
	"fmt"

	"github.com/tinytorch-ml/tinytorch/internal/tensor"
)

// Stack joins equal-shape tensors along a new axis.
//
// For k inputs of shape S, the result has shape S[:axis] + (k,) + S[axis:].
// Negative axes count from the end of the result shape.
func (cpu *CPUBackend) Stack(tensors []*tensor.RawTensor, axis int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("stack: at least one tensor required")
	}

	shape := tensors[0].Shape()
	ndim := len(shape) + 1 // Result rank

	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		panic(fmt.Sprintf("stack: axis %d out of range for %dD result", axis, ndim))
	}

	for i, t := range tensors {
		if !t.Shape().Equal(shape) {
			panic(fmt.Sprintf("stack: tensor %d has shape %v, expected %v", i, t.Shape(), shape))
		}
	}

	outShape := make(tensor.Shape, 0, ndim)
	outShape = append(outShape, shape[:axis]...)
	outShape = append(outShape, len(tensors))
	outShape = append(outShape, shape[axis:]...)

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("stack: %v", err))
	}

	outer := 1
	for _, dim := range shape[:axis] {
		outer *= dim
	}
	inner := 1
	for _, dim := range shape[axis:] {
		inner *= dim
	}

	out := result.Data()
	k := len(tensors)
	for i, t := range tensors {
		data := t.Data()
		for o := 0; o < outer; o++ {
			copy(out[(o*k+i)*inner:(o*k+i+1)*inner], data[o*inner:(o+1)*inner])
		}
	}
	return result
}

// Take slices out one position along an axis, removing that axis.
// It is the inverse of Stack: Take(Stack(ts, axis), axis, i) == ts[i].
func (cpu *CPUBackend) Take(x *tensor.RawTensor, axis, index int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		panic(fmt.Sprintf("take: axis %d out of range for %dD tensor", axis, ndim))
	}
	if index < 0 || index >= shape[axis] {
		panic(fmt.Sprintf("take: index %d out of range for axis %d (size %d)", index, axis, shape[axis]))
	}

	outShape := make(tensor.Shape, 0, ndim-1)
	outShape = append(outShape, shape[:axis]...)
	outShape = append(outShape, shape[axis+1:]...)

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("take: %v", err))
	}

	outer := 1
	for _, dim := range shape[:axis] {
		outer *= dim
	}
	n := shape[axis]
	inner := 1
	for _, dim := range shape[axis+1:] {
		inner *= dim
	}

	out := result.Data()
	data := x.Data()
	for o := 0; o < outer; o++ {
		copy(out[o*inner:(o+1)*inner], data[(o*n+index)*inner:(o*n+index+1)*inner])
	}
	return result
}

// Reshape returns a tensor with the same data but a different shape.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}
	if x.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			x.Shape(), newShape))
	}

	result, err := tensor.NewRaw(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	copy(result.Data(), x.Data())
	return result
}

// Transpose permutes the tensor's dimensions. With no axes the order of
// all dimensions is reversed (standard transpose for 2D).
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, axis := range axes {
		if axis < 0 || axis >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", axis, ndim))
		}
		if seen[axis] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", axis))
		}
		seen[axis] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, axis := range axes {
		newShape[i] = shape[axis]
	}

	result, err := tensor.NewRaw(newShape)
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	inStrides := shape.ComputeStrides()
	outStrides := newShape.ComputeStrides()
	out := result.Data()
	data := x.Data()

	for flat := range out {
		// Decompose the output index and map through the permutation.
		inIdx := 0
		rem := flat
		for d := 0; d < ndim; d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			inIdx += coord * inStrides[axes[d]]
		}
		out[flat] = data[inIdx]
	}
	return result
}

// Expand broadcast-copies x to the target shape following NumPy
// alignment rules (x's shape is right-aligned against the target).
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if !x.Shape().BroadcastableTo(shape) {
		panic(fmt.Sprintf("expand: shape %v not broadcastable to %v", x.Shape(), shape))
	}

	result, err := tensor.NewRaw(shape)
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	outStrides := shape.ComputeStrides()
	inStrides := computeBroadcastStridesForShape(x.Shape(), shape)
	out := result.Data()
	data := x.Data()

	for i := range out {
		out[i] = data[computeFlatIndex(i, outStrides, inStrides)]
	}
	return result
}
