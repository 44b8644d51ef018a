package cpu

import (
	"fmt"

	"github.com/tinytorch-ml/tinytorch/internal/tensor"
)

// MatMul performs matrix multiplication with linear-algebra rank rules:
//
//	(M, K) @ (K, N) → (M, N)
//	(M, K) @ (K,)   → (M,)
//	(K,)   @ (K, N) → (N,)
//	(K,)   @ (K,)   → ()  dot product
//
// Rank-0 operands are rejected: scaling by a scalar tensor is Mul's job,
// not MatMul's. Ranks above 2 are unsupported.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()

	if len(aShape) == 0 || len(bShape) == 0 {
		panic(fmt.Sprintf("matmul: scalar operand not allowed (shapes %v @ %v)", aShape, bShape))
	}
	if len(aShape) > 2 || len(bShape) > 2 {
		panic(fmt.Sprintf("matmul: only 1D and 2D operands supported (shapes %v @ %v)", aShape, bShape))
	}

	switch {
	case len(aShape) == 2 && len(bShape) == 2:
		return matmul2D(a, b)
	case len(aShape) == 2 && len(bShape) == 1:
		return matVec(a, b)
	case len(aShape) == 1 && len(bShape) == 2:
		return vecMat(a, b)
	default:
		return dot(a, b)
	}
}

func matmul2D(a, b *tensor.RawTensor) *tensor.RawTensor {
	m, k := a.Shape()[0], a.Shape()[1]
	k2, n := b.Shape()[0], b.Shape()[1]
	if k != k2 {
		panic(fmt.Sprintf("matmul: inner dimensions do not match: %v @ %v", a.Shape(), b.Shape()))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n})
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}

	aData, bData, out := a.Data(), b.Data(), result.Data()
	for i := 0; i < m; i++ {
		for l := 0; l < k; l++ {
			av := aData[i*k+l]
			if av == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out[i*n+j] += av * bData[l*n+j]
			}
		}
	}
	return result
}

func matVec(a, v *tensor.RawTensor) *tensor.RawTensor {
	m, k := a.Shape()[0], a.Shape()[1]
	if k != v.Shape()[0] {
		panic(fmt.Sprintf("matmul: inner dimensions do not match: %v @ %v", a.Shape(), v.Shape()))
	}

	result, err := tensor.NewRaw(tensor.Shape{m})
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}

	aData, vData, out := a.Data(), v.Data(), result.Data()
	for i := 0; i < m; i++ {
		var sum float64
		for l := 0; l < k; l++ {
			sum += aData[i*k+l] * vData[l]
		}
		out[i] = sum
	}
	return result
}

func vecMat(v, b *tensor.RawTensor) *tensor.RawTensor {
	k, n := b.Shape()[0], b.Shape()[1]
	if v.Shape()[0] != k {
		panic(fmt.Sprintf("matmul: inner dimensions do not match: %v @ %v", v.Shape(), b.Shape()))
	}

	result, err := tensor.NewRaw(tensor.Shape{n})
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}

	vData, bData, out := v.Data(), b.Data(), result.Data()
	for l := 0; l < k; l++ {
		vv := vData[l]
		if vv == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			out[j] += vv * bData[l*n+j]
		}
	}
	return result
}

func dot(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.Shape()[0] != b.Shape()[0] {
		panic(fmt.Sprintf("matmul: vector lengths do not match: %v @ %v", a.Shape(), b.Shape()))
	}

	result, err := tensor.NewRaw(tensor.Shape{})
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}

	aData, bData := a.Data(), b.Data()
	var sum float64
	for i := range aData {
		sum += aData[i] * bData[i]
	}
	result.Data()[0] = sum
	return result
}
