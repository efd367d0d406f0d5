package nn

import (
	"github.com/ember-ml/ember/internal/autodiff"
)

// MLP is a multi-layer perceptron: an ordered stack of layers where layer
// i's neuron count defines the input width of layer i+1.
//
// Architectural policy is fixed: every layer but the last applies ReLU, the
// last is linear. It is not configurable per call.
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP taking nin inputs, with one layer per entry of
// nouts.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1})
//	out := model.Forward(inputs) // exactly 1 output node
func NewMLP(nin int, nouts []int) *MLP {
	layers := make([]*Layer, len(nouts))
	in := nin
	for i, nout := range nouts {
		// ReLU on hidden layers, linear output layer.
		layers[i] = NewLayer(in, nout, i < len(nouts)-1)
		in = nout
	}
	return &MLP{layers: layers}
}

// Forward chains the layers, feeding each layer's output vector to the
// next. The input length must equal the construction-time nin; the first
// layer's neurons enforce that.
func (m *MLP) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	out := inputs
	for _, layer := range m.layers {
		out = layer.Forward(out)
	}
	return out
}

// Parameters returns every weight and bias leaf across all layers in a
// stable order: layer order, neuron order within a layer, weights before
// bias. Reproducible ordering keeps update sweeps and parameter-count
// assertions deterministic.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// ZeroGrad clears the gradients of all parameters. Parameters are leaves,
// so zeroing them individually covers everything the next update reads.
func (m *MLP) ZeroGrad() {
	for _, layer := range m.layers {
		layer.ZeroGrad()
	}
}
