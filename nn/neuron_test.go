package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytorch-ml/tinytorch/backend/cpu"
	"github.com/tinytorch-ml/tinytorch/tensor"
)

func TestNeuronParameters(t *testing.T) {
	backend := cpu.New()
	n := NewNeuron(3, Tanh, rand.New(rand.NewSource(1)), backend)

	params := n.Parameters()
	require.Len(t, params, 2)

	w, b := params[0], params[1]
	assert.True(t, tensor.Shape{1, 3}.Equal(w.Shape()), "weight shape %v", w.Shape())
	assert.True(t, tensor.Shape{1}.Equal(b.Shape()), "bias shape %v", b.Shape())
	assert.Equal(t, "w", w.Label())
	assert.Equal(t, "b", b.Label())

	assert.Equal(t, []float64{0}, b.Data(), "bias starts at zero")
}

func TestNeuronDeterministicInit(t *testing.T) {
	backend := cpu.New()

	a := NewNeuron(4, Tanh, rand.New(rand.NewSource(42)), backend)
	b := NewNeuron(4, Tanh, rand.New(rand.NewSource(42)), backend)
	c := NewNeuron(4, Tanh, rand.New(rand.NewSource(7)), backend)

	assert.Equal(t, a.Parameters()[0].Data(), b.Parameters()[0].Data(), "same seed must reproduce")
	assert.NotEqual(t, a.Parameters()[0].Data(), c.Parameters()[0].Data(), "different seeds must differ")
}

func TestNeuronForward(t *testing.T) {
	backend := cpu.New()
	n := NewNeuron(2, Tanh, rand.New(rand.NewSource(1)), backend)

	// Overwrite the random init so the output is predictable.
	params := n.Parameters()
	copy(params[0].Data(), []float64{0.5, -0.25})
	copy(params[1].Data(), []float64{0.1})

	x, err := tensor.New([][]float64{
		{1, 2},
		{-3, 4},
	}, backend)
	require.NoError(t, err)

	out := n.Forward(x)
	require.True(t, tensor.Shape{2}.Equal(out.Shape()), "output shape %v", out.Shape())

	want := []float64{
		math.Tanh(0.5*1 + -0.25*2 + 0.1),
		math.Tanh(0.5*-3 + -0.25*4 + 0.1),
	}
	assert.InDeltaSlice(t, want, out.Data(), 1e-12)
}

func TestNeuronGradientFlow(t *testing.T) {
	backend := cpu.New()
	n := NewNeuron(3, Sigmoid, rand.New(rand.NewSource(5)), backend)

	x, err := tensor.New([][]float64{{0.5, -0.2, 0.1}, {1, 0, -1}}, backend)
	require.NoError(t, err)

	n.Forward(x).Sum().Backward()

	for _, p := range n.Parameters() {
		grad := p.Grad()
		require.NotNil(t, grad, "parameter %q has no gradient", p.Label())
		assert.True(t, grad.Shape().Equal(p.Shape()),
			"gradient shape %v != parameter shape %v", grad.Shape(), p.Shape())
		for i, v := range grad.Data() {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "grad[%d] = %v", i, v)
		}
	}
}

func TestNeuronString(t *testing.T) {
	backend := cpu.New()
	n := NewNeuron(3, Tanh, rand.New(rand.NewSource(1)), backend)
	assert.Equal(t, "Neuron(3 inputs, tanh)", n.String())
}
