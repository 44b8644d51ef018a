package cpu

import (
	"math"
	"testing"

	"github.com/tinytorch-ml/tinytorch/internal/tensor"
)

func rawFrom(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape)
	if err != nil {
		t.Fatalf("NewRaw(%v): %v", shape, err)
	}
	copy(raw.Data(), data)
	return raw
}

func assertRawEqual(t *testing.T, want []float64, got *tensor.RawTensor, msg string) {
	t.Helper()
	data := got.Data()
	if len(data) != len(want) {
		t.Fatalf("%s: length %d, want %d", msg, len(data), len(want))
	}
	for i := range want {
		if math.Abs(data[i]-want[i]) > 1e-12 {
			t.Errorf("%s: data[%d] = %v, want %v", msg, i, data[i], want[i])
		}
	}
}

func TestBackendName(t *testing.T) {
	if got := New().Name(); got != "CPU" {
		t.Errorf("Name() = %q, want %q", got, "CPU")
	}
}

func TestBinarySameShape(t *testing.T) {
	backend := New()
	a := rawFrom(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := rawFrom(t, []float64{5, 6, 7, 8}, tensor.Shape{2, 2})

	assertRawEqual(t, []float64{6, 8, 10, 12}, backend.Add(a, b), "add")
	assertRawEqual(t, []float64{-4, -4, -4, -4}, backend.Sub(a, b), "sub")
	assertRawEqual(t, []float64{5, 12, 21, 32}, backend.Mul(a, b), "mul")
	assertRawEqual(t, []float64{0.2, 2.0 / 6.0, 3.0 / 7.0, 0.5}, backend.Div(a, b), "div")
}

func TestBinaryBroadcast(t *testing.T) {
	backend := New()

	matrix := rawFrom(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	row := rawFrom(t, []float64{10, 20, 30}, tensor.Shape{3})

	sum := backend.Add(matrix, row)
	if !sum.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("broadcast shape = %v, want (2, 3)", sum.Shape())
	}
	assertRawEqual(t, []float64{11, 22, 33, 14, 25, 36}, sum, "matrix + row")

	col := rawFrom(t, []float64{1, 2}, tensor.Shape{2, 1})
	prod := backend.Mul(matrix, col)
	assertRawEqual(t, []float64{1, 2, 3, 8, 10, 12}, prod, "matrix * column")
}

func TestBinaryScalarBroadcast(t *testing.T) {
	backend := New()

	vec := rawFrom(t, []float64{1, 2, 3}, tensor.Shape{3})
	scalar := rawFrom(t, []float64{10}, tensor.Shape{})

	sum := backend.Add(vec, scalar)
	if !sum.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("shape = %v, want (3)", sum.Shape())
	}
	assertRawEqual(t, []float64{11, 12, 13}, sum, "vector + scalar tensor")
}

func TestBinaryIncompatiblePanics(t *testing.T) {
	backend := New()
	a := rawFrom(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := rawFrom(t, []float64{1, 2}, tensor.Shape{2})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for incompatible shapes")
		}
	}()
	backend.Add(a, b)
}

func TestScalarOps(t *testing.T) {
	backend := New()
	x := rawFrom(t, []float64{2, 4, 8}, tensor.Shape{3})

	assertRawEqual(t, []float64{3, 5, 9}, backend.AddScalar(x, 1), "add scalar")
	assertRawEqual(t, []float64{1, 3, 7}, backend.SubScalar(x, 1), "sub scalar")
	assertRawEqual(t, []float64{4, 8, 16}, backend.MulScalar(x, 2), "mul scalar")
	assertRawEqual(t, []float64{1, 2, 4}, backend.DivScalar(x, 2), "div scalar")
	assertRawEqual(t, []float64{4, 16, 64}, backend.Pow(x, 2), "pow")
}

func TestUnaryMath(t *testing.T) {
	backend := New()

	x := rawFrom(t, []float64{0, 1, 2}, tensor.Shape{3})
	assertRawEqual(t, []float64{1, math.E, math.Exp(2)}, backend.Exp(x), "exp")

	y := rawFrom(t, []float64{1, math.E, 10}, tensor.Shape{3})
	assertRawEqual(t, []float64{0, 1, math.Log(10)}, backend.Log(y), "log")

	z := rawFrom(t, []float64{-1, 0, 1}, tensor.Shape{3})
	assertRawEqual(t, []float64{math.Tanh(-1), 0, math.Tanh(1)}, backend.Tanh(z), "tanh")
	assertRawEqual(t, []float64{1 / (1 + math.E), 0.5, 1 / (1 + math.Exp(-1))}, backend.Sigmoid(z), "sigmoid")
	assertRawEqual(t, []float64{0, 0, 1}, backend.ReLU(z), "relu")
}
