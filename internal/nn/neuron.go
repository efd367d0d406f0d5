package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff"
)

// Neuron computes a weighted sum of its inputs plus a bias, optionally
// followed by ReLU.
//
// It owns one weight leaf per input and one bias leaf. The leaves are
// created once at construction and only their Data/Grad change afterwards;
// they are never replaced, so handles returned by Parameters stay valid for
// the neuron's lifetime.
type Neuron struct {
	weights    []*autodiff.Value
	bias       *autodiff.Value
	activation bool // true applies ReLU, false leaves the output linear
}

// NewNeuron creates a neuron with nin inputs.
//
// Weights are initialized from U(-1, 1), the bias to zero.
func NewNeuron(nin int, activation bool) *Neuron {
	weights := make([]*autodiff.Value, nin)
	for i := range weights {
		weights[i] = Uniform(-1, 1)
	}
	return &Neuron{
		weights:    weights,
		bias:       Zero(),
		activation: activation,
	}
}

// Forward computes sum_i(w_i * x_i) + b, then the activation.
//
// Panics if the input length disagrees with the weight count: silently
// truncating or padding would corrupt training without any visible symptom.
func (n *Neuron) Forward(inputs []*autodiff.Value) *autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}
	if n.activation {
		act = act.Relu()
	}
	return act
}

// Parameters returns the neuron's leaves: weights in input order, then the
// bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}

// ZeroGrad clears the gradients of the neuron's parameters.
func (n *Neuron) ZeroGrad() {
	for _, p := range n.Parameters() {
		p.ZeroGrad()
	}
}
