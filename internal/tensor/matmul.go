package tensor

// MatMul performs matrix multiplication with rank-dependent semantics:
//
//   - 2D × 2D: matrix product (M, K) @ (K, N) → (M, N)
//   - 2D × 1D: matrix-vector product (M, K) @ (K,) → (M,)
//   - 1D × 2D: vector-matrix product (K,) @ (K, N) → (N,)
//   - 1D × 1D: dot product (K,) @ (K,) → () scalar
//
// A rank-0 (scalar) operand on either side panics; use Mul or MulScalar
// for scalar scaling.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	raw := t.backend.MatMul(t.raw, other.raw)
	return newNode(raw, t.backend, OpMatMul, t, other)
}
