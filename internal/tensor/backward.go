package tensor

import "fmt"

// Backward runs reverse-mode gradient propagation from this node.
//
// The DAG reachable through children edges is walked once in reverse
// topological order. The root's gradient is seeded with ones of the
// root's shape; each visited node distributes its gradient to its
// operands via the producing operation's local derivative, reducing
// across any broadcasting that happened in the forward pass.
//
// Contributions within one pass are summed when a tensor feeds several
// downstream consumers, and each node's per-pass gradient is then added
// onto its persistent accumulator: calling Backward again without
// ZeroGrad accumulates further. Resetting between iterations is the
// caller's responsibility.
func (t *Tensor) Backward() {
	order := topoOrder(t)

	// Per-pass gradients, keyed by node identity.
	grads := make(map[*Tensor]*RawTensor, len(order))

	seed, err := NewRaw(t.Shape())
	if err != nil {
		panic(fmt.Sprintf("backward: failed to create seed gradient: %v", err))
	}
	for i := range seed.data {
		seed.data[i] = 1
	}
	grads[t] = seed

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		grad, ok := grads[node]
		if !ok {
			continue
		}

		for j, contribution := range node.operandGrads(grad) {
			operand := node.operands[j]
			if existing, ok := grads[operand]; ok {
				grads[operand] = node.backend.Add(existing, contribution)
			} else {
				grads[operand] = contribution
			}
		}
	}

	for node, grad := range grads {
		node.accumulateGrad(grad)
	}
}

// topoOrder returns the nodes reachable from root in topological order
// (operands before consumers). Each node appears once regardless of how
// many consumers reference it.
func topoOrder(root *Tensor) []*Tensor {
	var order []*Tensor
	visited := make(map[*Tensor]struct{})

	var visit func(*Tensor)
	visit = func(node *Tensor) {
		if _, ok := visited[node]; ok {
			return
		}
		visited[node] = struct{}{}
		for _, operand := range node.operands {
			visit(operand)
		}
		order = append(order, node)
	}
	visit(root)
	return order
}

// accumulateGrad adds g into the node's persistent gradient accumulator.
func (t *Tensor) accumulateGrad(g *RawTensor) {
	if t.grad == nil {
		t.grad = g.Clone()
		return
	}
	t.grad = t.backend.Add(t.grad, g)
}

// operandGrads computes the gradient contribution for every operand of
// this node given the node's own gradient g. The returned slice is
// parallel to t.operands. Dispatch is a single exhaustive switch over the
// closed operation set.
func (t *Tensor) operandGrads(g *RawTensor) []*RawTensor {
	b := t.backend

	switch t.op {
	case OpNone:
		return nil

	case OpAdd:
		if t.hasScalar {
			// d(x + s)/dx = 1
			return []*RawTensor{g.Clone()}
		}
		a, c := t.operands[0], t.operands[1]
		return []*RawTensor{
			reduceBroadcast(g, a.Shape(), b),
			reduceBroadcast(g, c.Shape(), b),
		}

	case OpSub:
		if t.hasScalar {
			if t.scalarLeft {
				// d(s - x)/dx = -1
				return []*RawTensor{b.MulScalar(g, -1)}
			}
			return []*RawTensor{g.Clone()}
		}
		a, c := t.operands[0], t.operands[1]
		return []*RawTensor{
			reduceBroadcast(g, a.Shape(), b),
			reduceBroadcast(b.MulScalar(g, -1), c.Shape(), b),
		}

	case OpMul:
		if t.hasScalar {
			// d(s * x)/dx = s
			return []*RawTensor{b.MulScalar(g, t.scalar)}
		}
		a, c := t.operands[0], t.operands[1]
		return []*RawTensor{
			reduceBroadcast(b.Mul(g, c.raw), a.Shape(), b),
			reduceBroadcast(b.Mul(g, a.raw), c.Shape(), b),
		}

	case OpDiv:
		if t.hasScalar {
			x := t.operands[0]
			if t.scalarLeft {
				// d(s / x)/dx = -s / x²
				return []*RawTensor{b.MulScalar(b.Div(g, b.Mul(x.raw, x.raw)), -t.scalar)}
			}
			// d(x / s)/dx = 1/s
			return []*RawTensor{b.DivScalar(g, t.scalar)}
		}
		a, c := t.operands[0], t.operands[1]
		// d(a/c)/da = 1/c, d(a/c)/dc = -a/c²
		gradA := b.Div(g, c.raw)
		gradC := b.MulScalar(b.Div(b.Mul(g, a.raw), b.Mul(c.raw, c.raw)), -1)
		return []*RawTensor{
			reduceBroadcast(gradA, a.Shape(), b),
			reduceBroadcast(gradC, c.Shape(), b),
		}

	case OpPow:
		// d(x^n)/dx = n * x^(n-1)
		x := t.operands[0]
		return []*RawTensor{b.MulScalar(b.Mul(g, b.Pow(x.raw, t.exponent-1)), t.exponent)}

	case OpMatMul:
		return t.matmulGrads(g)

	case OpSum:
		// Broadcast the gradient back across the reduced axes.
		x := t.operands[0]
		return []*RawTensor{expandToReduced(g, x.Shape(), t.sumAxes, b)}

	case OpLog:
		// d(log x)/dx = 1/x
		x := t.operands[0]
		return []*RawTensor{b.Div(g, x.raw)}

	case OpTanh:
		// d(tanh x)/dx = 1 - tanh(x)², using the forward output
		y := t.raw
		return []*RawTensor{b.Mul(g, b.AddScalar(b.MulScalar(b.Mul(y, y), -1), 1))}

	case OpSigmoid:
		// d(σ(x))/dx = σ(x)(1 - σ(x)), using the forward output
		y := t.raw
		return []*RawTensor{b.Mul(g, b.Mul(y, b.AddScalar(b.MulScalar(y, -1), 1)))}

	case OpReLU:
		x := t.operands[0]
		return []*RawTensor{b.Mul(g, reluMask(x.raw))}

	case OpLinear:
		return []*RawTensor{g.Clone()}

	case OpStack:
		// Each input receives its slice of g along the stack axis.
		contributions := make([]*RawTensor, len(t.operands))
		for i := range t.operands {
			contributions[i] = b.Take(g, t.stackAxis, i)
		}
		return contributions

	default:
		panic(fmt.Sprintf("backward: unhandled operation %s", t.op))
	}
}

// matmulGrads implements the rank-dependent chain rule for MatMul.
func (t *Tensor) matmulGrads(g *RawTensor) []*RawTensor {
	b := t.backend
	a, c := t.operands[0], t.operands[1]
	aShape, cShape := a.Shape(), c.Shape()

	switch {
	case len(aShape) == 2 && len(cShape) == 2:
		// grad_a = g @ cᵀ, grad_c = aᵀ @ g
		return []*RawTensor{
			b.MatMul(g, b.Transpose(c.raw, 1, 0)),
			b.MatMul(b.Transpose(a.raw, 1, 0), g),
		}

	case len(aShape) == 2 && len(cShape) == 1:
		// a (M, K) @ c (K,) → g (M,)
		// grad_a = outer(g, c), grad_c = aᵀ @ g
		m, k := aShape[0], aShape[1]
		gradA := b.MatMul(b.Reshape(g, Shape{m, 1}), b.Reshape(c.raw, Shape{1, k}))
		gradC := b.MatMul(b.Transpose(a.raw, 1, 0), g)
		return []*RawTensor{gradA, gradC}

	case len(aShape) == 1 && len(cShape) == 2:
		// a (K,) @ c (K, N) → g (N,)
		// grad_a = c @ g, grad_c = outer(a, g)
		k, n := cShape[0], cShape[1]
		gradA := b.MatMul(c.raw, g)
		gradC := b.MatMul(b.Reshape(a.raw, Shape{k, 1}), b.Reshape(g, Shape{1, n}))
		return []*RawTensor{gradA, gradC}

	default:
		// 1D dot product: g is scalar, grad_a = g*c, grad_c = g*a
		scale := g.data[0]
		return []*RawTensor{
			b.MulScalar(c.raw, scale),
			b.MulScalar(a.raw, scale),
		}
	}
}

// reduceBroadcast reduces a gradient down to targetShape, undoing any
// broadcasting the forward pass performed: leading dimensions the target
// lacks are summed away, then dimensions where the target is 1 are summed
// with the dimension kept.
func reduceBroadcast(grad *RawTensor, targetShape Shape, b Backend) *RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad.Clone()
	}

	if len(targetShape) == 0 {
		return b.SumAll(grad)
	}

	result := grad
	for len(result.Shape()) > len(targetShape) {
		result = b.SumAxes(result, []int{0})
	}

	shape := result.Shape()
	for i := 0; i < len(targetShape); i++ {
		if targetShape[i] == 1 && shape[i] > 1 {
			kept := shape.Clone()
			kept[i] = 1
			result = b.Reshape(b.SumAxes(result, []int{i}), kept)
			shape = result.Shape()
		}
	}

	if !result.Shape().Equal(targetShape) {
		result = b.Reshape(result, targetShape)
	}
	return result
}

// expandToReduced broadcasts a SUM gradient back to the child's original
// shape. sumAxes nil means the reduction covered all axes.
func expandToReduced(grad *RawTensor, childShape Shape, sumAxes []int, b Backend) *RawTensor {
	if len(childShape) == 0 {
		return grad.Clone()
	}

	// Rebuild the keep-dims shape: 1 at every reduced axis.
	kept := childShape.Clone()
	if sumAxes == nil {
		for i := range kept {
			kept[i] = 1
		}
	} else {
		for _, axis := range sumAxes {
			kept[axis] = 1
		}
	}

	return b.Expand(b.Reshape(grad, kept), childShape)
}

// reluMask returns 1 where x > 0 and 0 elsewhere.
func reluMask(x *RawTensor) *RawTensor {
	mask, err := NewRaw(x.Shape())
	if err != nil {
		panic(fmt.Sprintf("relu: failed to create mask: %v", err))
	}
	for i, v := range x.data {
		if v > 0 {
			mask.data[i] = 1
		}
	}
	return mask
}
