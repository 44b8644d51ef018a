package tensor

// Log computes the element-wise natural logarithm. The forward value for
// non-positive input is whatever the backend returns (NaN or -Inf); the
// engine does not validate the domain.
func (t *Tensor) Log() *Tensor {
	raw := t.backend.Log(t.raw)
	return newNode(raw, t.backend, OpLog, t)
}

// Tanh applies the hyperbolic tangent element-wise.
func (t *Tensor) Tanh() *Tensor {
	raw := t.backend.Tanh(t.raw)
	return newNode(raw, t.backend, OpTanh, t)
}

// Sigmoid applies the logistic sigmoid 1/(1+e^-x) element-wise.
func (t *Tensor) Sigmoid() *Tensor {
	raw := t.backend.Sigmoid(t.raw)
	return newNode(raw, t.backend, OpSigmoid, t)
}

// ReLU applies max(0, x) element-wise.
func (t *Tensor) ReLU() *Tensor {
	raw := t.backend.ReLU(t.raw)
	return newNode(raw, t.backend, OpReLU, t)
}

// Linear is the identity activation. It still allocates a node so that
// every activation variant is a recorded unary operation.
func (t *Tensor) Linear() *Tensor {
	return newNode(t.raw.Clone(), t.backend, OpLinear, t)
}
