package tensor

// Stack joins a sequence of equal-shape tensors into one higher-rank
// tensor along a new axis. The children set holds every input tensor.
// Panics if the list is empty, the shapes differ, or the axis is out of
// range for the result rank.
func Stack(tensors []*Tensor, axis int) *Tensor {
	if len(tensors) == 0 {
		panic("stack: at least one tensor required")
	}

	raws := make([]*RawTensor, len(tensors))
	for i, t := range tensors {
		raws[i] = t.raw
	}

	b := tensors[0].backend
	raw := b.Stack(raws, axis)
	if axis < 0 {
		axis += len(raw.Shape())
	}
	n := newNode(raw, b, OpStack, tensors...)
	n.stackAxis = axis
	return n
}
