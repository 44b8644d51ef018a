package tensor

import (
	"fmt"
	"math/rand"
)

// Tensor is a dense n-dimensional array augmented with provenance for
// gradient tracking. Every operator allocates a new node recording the
// operation tag and the set of operand tensors; a node's data is never
// mutated after construction.
//
// Identity is reference-based: two tensors are the same graph node iff
// they are the same *Tensor. The children set is keyed by node pointer,
// so duplicate operands (t.Mul(t)) collapse to a single child.
type Tensor struct {
	raw     *RawTensor
	backend Backend

	op       Operation
	children map[*Tensor]struct{}
	operands []*Tensor // role-ordered operand record, used by backward
	label    string

	grad *RawTensor // accumulated by Backward; nil until touched

	// Per-operation metadata needed to replay the local derivative.
	scalar     float64 // captured scalar operand (scalar arithmetic forms)
	scalarLeft bool    // true when the scalar was the left operand
	hasScalar  bool
	exponent   float64 // OpPow
	sumAxes    []int   // OpSum; nil means all axes
	stackAxis  int     // OpStack
}

// newLeaf wraps a RawTensor into a leaf node (OpNone, no children).
func newLeaf(raw *RawTensor, b Backend) *Tensor {
	return &Tensor{
		raw:      raw,
		backend:  b,
		op:       OpNone,
		children: map[*Tensor]struct{}{},
	}
}

// newNode wraps the result of an operation into a derived node.
// The children set is the deduplicated identity set of the operands.
func newNode(raw *RawTensor, b Backend, op Operation, operands ...*Tensor) *Tensor {
	children := make(map[*Tensor]struct{}, len(operands))
	for _, operand := range operands {
		children[operand] = struct{}{}
	}
	return &Tensor{
		raw:      raw,
		backend:  b,
		op:       op,
		children: children,
		operands: operands,
	}
}

// New builds a leaf tensor from any numeric scalar or arbitrarily nested
// slice/array of numerics. Ragged or empty sequences are rejected.
func New(data any, b Backend) (*Tensor, error) {
	if raw, ok := data.(*RawTensor); ok {
		return newLeaf(raw.Clone(), b), nil
	}
	raw, err := fromNested(data)
	if err != nil {
		return nil, fmt.Errorf("new tensor: %w", err)
	}
	return newLeaf(raw, b), nil
}

// FromSlice creates a leaf tensor from a flat slice and a shape.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	copy(raw.data, data)
	return newLeaf(raw, b), nil
}

// FromRaw wraps an existing RawTensor into a leaf node without copying.
func FromRaw(raw *RawTensor, b Backend) *Tensor {
	return newLeaf(raw, b)
}

// Zeros creates a leaf tensor filled with zeros.
func Zeros(shape Shape, b Backend) *Tensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return newLeaf(raw, b)
}

// Ones creates a leaf tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return Full(shape, 1, b)
}

// Full creates a leaf tensor filled with a specific value.
func Full(shape Shape, value float64, b Backend) *Tensor {
	t := Zeros(shape, b)
	for i := range t.raw.data {
		t.raw.data[i] = value
	}
	return t
}

// Randn creates a leaf tensor with values drawn from the standard normal
// distribution N(0, 1) using the supplied generator. The RNG is threaded
// explicitly so initialization stays deterministic and testable.
func Randn(shape Shape, rng *rand.Rand, b Backend) *Tensor {
	t := Zeros(shape, b)
	for i := range t.raw.data {
		t.raw.data[i] = rng.NormFloat64()
	}
	return t
}

// WithLabel attaches a descriptive label to the tensor and returns it for
// chaining. Labels never affect computation or identity.
func (t *Tensor) WithLabel(label string) *Tensor {
	t.label = label
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// Data returns the flat element buffer (row-major).
func (t *Tensor) Data() []float64 {
	return t.raw.Data()
}

// Raw returns the underlying RawTensor.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend this tensor is bound to.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// Op returns the operation tag that produced this tensor.
// Leaves report OpNone.
func (t *Tensor) Op() Operation {
	return t.op
}

// Children returns the identity-keyed set of direct operand tensors.
// Leaves have an empty set. The map must not be modified.
func (t *Tensor) Children() map[*Tensor]struct{} {
	return t.children
}

// Label returns the user-supplied label, or "" when absent.
func (t *Tensor) Label() string {
	return t.label
}

// Grad returns the gradient accumulated by Backward, or nil if no
// backward pass has touched this node since the last ZeroGrad.
func (t *Tensor) Grad() *RawTensor {
	return t.grad
}

// ZeroGrad clears the gradient accumulator. Callers are responsible for
// resetting gradients between training iterations; Backward always
// accumulates on top of whatever is present.
func (t *Tensor) ZeroGrad() {
	t.grad = nil
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.raw.NumElements()
}

// Item returns the value of a scalar (shape ()) tensor.
// Panics otherwise.
func (t *Tensor) Item() float64 {
	if len(t.Shape()) != 0 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.Shape()))
	}
	return t.raw.data[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.raw.At(indices...)
}

// String returns the representation Tensor(shape=<shape>), identical for
// both %v and %s formatting.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(shape=%s)", t.Shape())
}
