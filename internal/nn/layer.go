package nn

import (
	"github.com/ember-ml/ember/internal/autodiff"
)

// Layer is an ordered collection of neurons that all consume the same input
// vector. Every neuron in a layer shares the activation policy chosen at
// construction.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each with nin inputs.
func NewLayer(nin, nout int, activation bool) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, activation)
	}
	return &Layer{neurons: neurons}
}

// Forward applies every neuron to the same inputs and returns their outputs
// in neuron order. The result length equals the neuron count.
func (l *Layer) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns every neuron's parameters, in neuron order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad clears the gradients of every neuron in the layer.
func (l *Layer) ZeroGrad() {
	for _, n := range l.neurons {
		n.ZeroGrad()
	}
}
