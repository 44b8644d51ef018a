package tensor_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tinytorch-ml/tinytorch/internal/backend/cpu"
	"github.com/tinytorch-ml/tinytorch/internal/tensor"
)

// checkGradients compares the analytic gradient of f's scalar output
// against central finite differences at every element of x.
//
// f must build a fresh graph from x on each call, since perturbing the
// leaf data and re-running forward is what produces the numerical
// estimate.
func checkGradients(t *testing.T, x *tensor.Tensor, f func(*tensor.Tensor) *tensor.Tensor, epsilon, tolerance float64) {
	t.Helper()

	x.ZeroGrad()
	f(x).Backward()
	analytic := append([]float64(nil), x.Grad().Data()...)

	data := x.Data()
	for i := range data {
		orig := data[i]

		data[i] = orig + epsilon
		plus := f(x).Item()

		data[i] = orig - epsilon
		minus := f(x).Item()

		data[i] = orig
		numerical := (plus - minus) / (2 * epsilon)

		if math.Abs(analytic[i]-numerical) > tolerance {
			t.Errorf("element %d: analytic gradient %v differs from numerical %v by %v",
				i, analytic[i], numerical, analytic[i]-numerical)
		}
	}
}

func TestGradientCheckSquare(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{-1.5, 0.5, 2.0}, tensor.Shape{3}, backend)

	checkGradients(t, x, func(x *tensor.Tensor) *tensor.Tensor {
		return x.Mul(x).Sum()
	}, 1e-6, 1e-5)
}

func TestGradientCheckComposite(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{0.3, -0.7, 1.2, 0.1}, tensor.Shape{4}, backend)

	// f(x) = sum((x + 2) * 3 / (x² + 1))
	checkGradients(t, x, func(x *tensor.Tensor) *tensor.Tensor {
		return x.AddScalar(2).MulScalar(3).Div(x.Pow(2).AddScalar(1)).Sum()
	}, 1e-6, 1e-5)
}

func TestGradientCheckActivationChain(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{-0.8, 0.2, 0.9}, tensor.Shape{3}, backend)

	checkGradients(t, x, func(x *tensor.Tensor) *tensor.Tensor {
		return x.Tanh().Sigmoid().Sum()
	}, 1e-6, 1e-5)
}

func TestGradientCheckBroadcast(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{0.5, -1.0, 1.5}, tensor.Shape{3, 1}, backend)

	rng := rand.New(rand.NewSource(11))
	other := tensor.Randn(tensor.Shape{3, 4}, rng, backend)

	checkGradients(t, x, func(x *tensor.Tensor) *tensor.Tensor {
		return x.Mul(other).Sum()
	}, 1e-6, 1e-5)
}

func TestGradientCheckMatMul(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{0.2, -0.4, 0.6, 0.8, -1.0, 1.2}, tensor.Shape{2, 3}, backend)

	rng := rand.New(rand.NewSource(23))
	other := tensor.Randn(tensor.Shape{3, 2}, rng, backend)

	checkGradients(t, x, func(x *tensor.Tensor) *tensor.Tensor {
		return x.MatMul(other).Sum()
	}, 1e-6, 1e-5)
}

func TestGradientCheckSumAxis(t *testing.T) {
	backend := cpu.New()
	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)

	checkGradients(t, x, func(x *tensor.Tensor) *tensor.Tensor {
		return x.Sum(1).Pow(2).Sum()
	}, 1e-6, 1e-4)
}
