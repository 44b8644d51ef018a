package tensor

// Backend defines the interface the dense-array compute layer must
// implement. The engine delegates all numeric work here; shape and value
// errors panic inside the backend with descriptive messages.
//
// Implementations:
//   - backend/cpu: pure Go float64 kernels
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar float64) *RawTensor // x + scalar.
	SubScalar(x *RawTensor, scalar float64) *RawTensor // x - scalar.
	MulScalar(x *RawTensor, scalar float64) *RawTensor // x * scalar.
	DivScalar(x *RawTensor, scalar float64) *RawTensor // x / scalar.

	// Pow raises every element to the given exponent.
	Pow(x *RawTensor, exponent float64) *RawTensor

	// Matrix operations. MatMul follows linear-algebra rank rules:
	// 2D×2D matrix product, 2D×1D / 1D×2D matrix-vector products, and
	// 1D×1D dot product (scalar result). Rank-0 operands panic.
	MatMul(a, b *RawTensor) *RawTensor

	// Reduction operations.
	SumAll(x *RawTensor) *RawTensor             // Total sum (scalar result).
	SumAxes(x *RawTensor, axes []int) *RawTensor // Sum along axes, no keep-dims.

	// Math operations (element-wise).
	Exp(x *RawTensor) *RawTensor     // Exponential.
	Log(x *RawTensor) *RawTensor     // Natural logarithm.
	Tanh(x *RawTensor) *RawTensor    // Hyperbolic tangent.
	Sigmoid(x *RawTensor) *RawTensor // Logistic sigmoid.
	ReLU(x *RawTensor) *RawTensor    // max(0, x).

	// Manipulation operations.
	Stack(tensors []*RawTensor, axis int) *RawTensor // Join along a new axis.
	Take(x *RawTensor, axis, index int) *RawTensor   // Slice out one position along axis.

	// Shape operations.
	Reshape(x *RawTensor, newShape Shape) *RawTensor // Reshape tensor.
	Transpose(x *RawTensor, axes ...int) *RawTensor  // Permute dimensions.
	Expand(x *RawTensor, shape Shape) *RawTensor     // Broadcast copy to shape.

	// Metadata.
	Name() string // Backend name (e.g., "CPU").
}
