package tensor

// Add performs element-wise addition with broadcasting.
func (t *Tensor) Add(other *Tensor) *Tensor {
	raw := t.backend.Add(t.raw, other.raw)
	return newNode(raw, t.backend, OpAdd, t, other)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	raw := t.backend.Sub(t.raw, other.raw)
	return newNode(raw, t.backend, OpSub, t, other)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	raw := t.backend.Mul(t.raw, other.raw)
	return newNode(raw, t.backend, OpMul, t, other)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor) Div(other *Tensor) *Tensor {
	raw := t.backend.Div(t.raw, other.raw)
	return newNode(raw, t.backend, OpDiv, t, other)
}

// scalarNode tags a derived node with its captured scalar operand.
// The scalar rides on the node as metadata; it never becomes a graph leaf.
func scalarNode(raw *RawTensor, b Backend, op Operation, operand *Tensor, scalar float64, scalarLeft bool) *Tensor {
	n := newNode(raw, b, op, operand)
	n.scalar = scalar
	n.scalarLeft = scalarLeft
	n.hasScalar = true
	return n
}

// AddScalar computes t + scalar.
func (t *Tensor) AddScalar(scalar float64) *Tensor {
	raw := t.backend.AddScalar(t.raw, scalar)
	return scalarNode(raw, t.backend, OpAdd, t, scalar, false)
}

// SubScalar computes t - scalar.
func (t *Tensor) SubScalar(scalar float64) *Tensor {
	raw := t.backend.SubScalar(t.raw, scalar)
	return scalarNode(raw, t.backend, OpSub, t, scalar, false)
}

// MulScalar computes t * scalar.
func (t *Tensor) MulScalar(scalar float64) *Tensor {
	raw := t.backend.MulScalar(t.raw, scalar)
	return scalarNode(raw, t.backend, OpMul, t, scalar, false)
}

// DivScalar computes t / scalar.
func (t *Tensor) DivScalar(scalar float64) *Tensor {
	raw := t.backend.DivScalar(t.raw, scalar)
	return scalarNode(raw, t.backend, OpDiv, t, scalar, false)
}

// ScalarAdd computes scalar + t, the reflected form of AddScalar.
// Addition commutes, so the node is equivalent to t.AddScalar(scalar).
func ScalarAdd(scalar float64, t *Tensor) *Tensor {
	return t.AddScalar(scalar)
}

// ScalarMul computes scalar * t, the reflected form of MulScalar.
func ScalarMul(scalar float64, t *Tensor) *Tensor {
	return t.MulScalar(scalar)
}

// ScalarSub computes scalar - t.
func ScalarSub(scalar float64, t *Tensor) *Tensor {
	raw := t.backend.AddScalar(t.backend.MulScalar(t.raw, -1), scalar)
	return scalarNode(raw, t.backend, OpSub, t, scalar, true)
}

// ScalarDiv computes scalar / t.
func ScalarDiv(scalar float64, t *Tensor) *Tensor {
	raw := t.backend.MulScalar(t.backend.Pow(t.raw, -1), scalar)
	return scalarNode(raw, t.backend, OpDiv, t, scalar, true)
}

// Neg returns -t. Negation is multiplication by -1 and routes through the
// regular MulScalar machinery: the result carries OpMul, not a dedicated
// negation tag.
func (t *Tensor) Neg() *Tensor {
	return t.MulScalar(-1)
}

// Pow raises every element to the given exponent.
func (t *Tensor) Pow(exponent float64) *Tensor {
	raw := t.backend.Pow(t.raw, exponent)
	n := newNode(raw, t.backend, OpPow, t)
	n.exponent = exponent
	return n
}
