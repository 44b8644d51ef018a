package cpu

import (
	"math"

	"github.com/tinytorch-ml/tinytorch/internal/tensor"
)

// AddScalar computes x + scalar element-wise.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return unary(x, func(v float64) float64 { return v + scalar })
}

// SubScalar computes x - scalar element-wise.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return unary(x, func(v float64) float64 { return v - scalar })
}

// MulScalar computes x * scalar element-wise.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return unary(x, func(v float64) float64 { return v * scalar })
}

// DivScalar computes x / scalar element-wise.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return unary(x, func(v float64) float64 { return v / scalar })
}

// Pow raises every element to the given exponent.
func (cpu *CPUBackend) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	return unary(x, func(v float64) float64 { return math.Pow(v, exponent) })
}

// Exp computes e^x element-wise.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, math.Exp)
}

// Log computes the natural logarithm element-wise. Non-positive input
// yields NaN or -Inf per IEEE-754; the domain is the caller's problem.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, math.Log)
}

// Tanh computes the hyperbolic tangent element-wise.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, math.Tanh)
}

// Sigmoid computes the logistic sigmoid 1/(1+e^-x) element-wise.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, func(v float64) float64 { return 1.0 / (1.0 + math.Exp(-v)) })
}

// ReLU computes max(0, x) element-wise.
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return unary(x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})
}
