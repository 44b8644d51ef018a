package tensor

// Sum reduces the tensor by summation. With no axes it reduces over all
// axes to a scalar; otherwise it reduces over the given axes (negative
// axes count from the end). No dimensions are kept. The reduced axes are
// retained on the node so Backward can broadcast gradients back.
func (t *Tensor) Sum(axes ...int) *Tensor {
	if len(axes) == 0 {
		raw := t.backend.SumAll(t.raw)
		return newNode(raw, t.backend, OpSum, t)
	}

	raw := t.backend.SumAxes(t.raw, axes)
	n := newNode(raw, t.backend, OpSum, t)
	n.sumAxes = normalizeAxes(axes, len(t.Shape()))
	return n
}

// normalizeAxes resolves negative axes against ndim. Range checking is the
// backend's job; by the time this runs SumAxes has already validated.
func normalizeAxes(axes []int, ndim int) []int {
	normalized := make([]int, len(axes))
	for i, axis := range axes {
		if axis < 0 {
			axis += ndim
		}
		normalized[i] = axis
	}
	return normalized
}
