package tensor

import (
	"fmt"
	"reflect"
)

// RawTensor is the low-level dense array representation: a flat float64
// buffer with a shape and row-major strides. It carries no provenance;
// graph bookkeeping lives on Tensor.
type RawTensor struct {
	data   []float64
	shape  Shape
	stride []int
}

// NewRaw creates a new RawTensor with the given shape.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Data returns the flat element buffer.
// WARNING: direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// At returns the element at the given multi-dimensional indices.
// Panics if the number of indices or any index is out of range.
func (r *RawTensor) At(indices ...int) float64 {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		offset += idx * r.stride[i]
	}
	return r.data[offset]
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]float64, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
	}
}

var float64Type = reflect.TypeOf(float64(0))

// fromNested converts an arbitrary nested-sequence numeric value into a
// RawTensor. Accepted inputs: any int/uint/float scalar, or arbitrarily
// nested slices/arrays thereof with uniform lengths per level.
func fromNested(value any) (*RawTensor, error) {
	if value == nil {
		return nil, fmt.Errorf("cannot build tensor from nil")
	}

	rv := reflect.ValueOf(value)
	shape, err := nestedShape(rv)
	if err != nil {
		return nil, err
	}

	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}

	pos := 0
	if err := fillNested(rv, shape, 0, raw.data, &pos); err != nil {
		return nil, err
	}
	return raw, nil
}

// nestedShape derives the shape of a nested value by walking its first
// elements. Lengths are verified against this shape during fillNested.
func nestedShape(rv reflect.Value) (Shape, error) {
	shape := Shape{}
	for rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if rv.Len() == 0 {
			return nil, fmt.Errorf("cannot build tensor from empty sequence")
		}
		shape = append(shape, rv.Len())
		rv = rv.Index(0)
		for rv.Kind() == reflect.Interface {
			rv = rv.Elem()
		}
	}
	if !rv.Type().ConvertibleTo(float64Type) {
		return nil, fmt.Errorf("cannot build tensor from %s", rv.Kind())
	}
	return shape, nil
}

// fillNested flattens a nested value into data, verifying that every
// level matches the derived shape (ragged input is rejected).
func fillNested(rv reflect.Value, shape Shape, depth int, data []float64, pos *int) error {
	for rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	if depth == len(shape) {
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			return fmt.Errorf("ragged nested sequence: unexpected sequence at depth %d", depth)
		}
		if !rv.Type().ConvertibleTo(float64Type) {
			return fmt.Errorf("cannot build tensor from %s", rv.Kind())
		}
		data[*pos] = rv.Convert(float64Type).Float()
		*pos++
		return nil
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("ragged nested sequence: expected sequence at depth %d, got %s", depth, rv.Kind())
	}
	if rv.Len() != shape[depth] {
		return fmt.Errorf("ragged nested sequence: length %d at depth %d, expected %d", rv.Len(), depth, shape[depth])
	}

	for i := 0; i < rv.Len(); i++ {
		if err := fillNested(rv.Index(i), shape, depth+1, data, pos); err != nil {
			return err
		}
	}
	return nil
}
