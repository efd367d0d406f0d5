package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/nn"
)

// setParams overwrites a component's parameter data in Parameters() order.
func setParams(t *testing.T, params []*autodiff.Value, data []float64) {
	t.Helper()
	require.Len(t, params, len(data))
	for i, p := range params {
		p.Data = data[i]
	}
}

func TestNeuron_Forward(t *testing.T) {
	n := nn.NewNeuron(2, false)
	// w = [0.5, -1], b = 2
	setParams(t, n.Parameters(), []float64{0.5, -1, 2})

	out := n.Forward([]*autodiff.Value{autodiff.NewValue(4), autodiff.NewValue(3)})

	// 0.5*4 + (-1)*3 + 2 = 1
	assert.InDelta(t, 1.0, out.Data, 1e-12)
}

func TestNeuron_ForwardRelu(t *testing.T) {
	n := nn.NewNeuron(1, true)
	// w = [1], b = 0
	setParams(t, n.Parameters(), []float64{1, 0})

	neg := n.Forward([]*autodiff.Value{autodiff.NewValue(-3)})
	assert.Equal(t, 0.0, neg.Data, "negative pre-activation must clamp to 0")

	pos := n.Forward([]*autodiff.Value{autodiff.NewValue(3)})
	assert.Equal(t, 3.0, pos.Data)
}

func TestNeuron_ForwardIsNotMemoized(t *testing.T) {
	n := nn.NewNeuron(1, false)
	x := []*autodiff.Value{autodiff.NewValue(1)}

	first := n.Forward(x)
	second := n.Forward(x)

	assert.NotSame(t, first, second, "each forward call must build a fresh graph node")
}

func TestNeuron_ShapeMismatchPanics(t *testing.T) {
	n := nn.NewNeuron(3, true)

	assert.Panics(t, func() {
		n.Forward([]*autodiff.Value{autodiff.NewValue(1), autodiff.NewValue(2)})
	})
	assert.Panics(t, func() {
		n.Forward(nil)
	})
}

func TestLayer_Forward(t *testing.T) {
	l := nn.NewLayer(2, 5, true)

	out := l.Forward([]*autodiff.Value{autodiff.NewValue(0.1), autodiff.NewValue(-0.2)})

	assert.Len(t, out, 5, "one output per neuron")
	// (2 weights + 1 bias) per neuron
	assert.Len(t, l.Parameters(), 15)
}

func TestMLP_ShapeInvariants(t *testing.T) {
	m := nn.NewMLP(2, []int{16, 16, 1})

	out := m.Forward([]*autodiff.Value{autodiff.NewValue(0.5), autodiff.NewValue(-0.5)})
	require.Len(t, out, 1)

	// (2+1)*16 + (16+1)*16 + (16+1)*1
	assert.Len(t, m.Parameters(), 337)
}

func TestMLP_ParametersStableOrder(t *testing.T) {
	m := nn.NewMLP(3, []int{4, 2})

	first := m.Parameters()
	second := m.Parameters()

	require.Len(t, second, len(first))
	for i := range first {
		assert.Same(t, first[i], second[i], "parameter order must be deterministic")
	}
}

func TestMLP_HiddenReluLinearOutput(t *testing.T) {
	m := nn.NewMLP(1, []int{1, 1})
	// hidden: w=-1, b=0 so a negative input activates the hidden neuron;
	// output: w=-1, b=0 so the final node can go negative only if the
	// output layer is linear.
	setParams(t, m.Parameters(), []float64{-1, 0, -1, 0})

	out := m.Forward([]*autodiff.Value{autodiff.NewValue(-2)})

	// hidden = relu(2) = 2, output = -2 (no clamp on the last layer)
	require.Len(t, out, 1)
	assert.Equal(t, -2.0, out[0].Data)
}

func TestMLP_ZeroGrad(t *testing.T) {
	m := nn.NewMLP(2, []int{3, 1})
	inputs := []*autodiff.Value{autodiff.NewValue(1), autodiff.NewValue(2)}

	out := m.Forward(inputs)
	out[0].Backward()

	anyNonzero := false
	for _, p := range m.Parameters() {
		if p.Grad != 0 {
			anyNonzero = true
			break
		}
	}
	require.True(t, anyNonzero, "backward should populate at least one parameter gradient")

	m.ZeroGrad()
	for i, p := range m.Parameters() {
		assert.Zerof(t, p.Grad, "parameter %d grad not cleared", i)
	}
}

func TestModuleInterface(t *testing.T) {
	tests := []struct {
		name   string
		module nn.Module
		width  int
	}{
		{name: "Layer", module: nn.NewLayer(2, 3, true), width: 2},
		{name: "MLP", module: nn.NewMLP(2, []int{4, 1}), width: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := make([]*autodiff.Value, tt.width)
			for i := range inputs {
				inputs[i] = autodiff.NewValue(0.5)
			}

			out := tt.module.Forward(inputs)
			assert.NotEmpty(t, out)
			assert.NotEmpty(t, tt.module.Parameters())
		})
	}
}
