// Package nn implements feed-forward neural network building blocks on top
// of the scalar autodiff engine.
//
// This package provides:
//   - Module interface: base interface for network components
//   - Neuron: weighted sum plus bias with optional ReLU
//   - Layer: ordered neurons sharing one input vector
//   - MLP: ordered stack of layers
//   - Initialization: Uniform, Zero
//
// Every component is a thin composition of engine operations: forward
// passes build fresh graph nodes each call, and all trainable state lives
// in leaf Values that parameter updates mutate in place.
package nn

import (
	"github.com/ember-ml/ember/internal/autodiff"
)

// Module is the base interface for network components.
//
// Forward maps an input vector of graph nodes to an output vector, building
// new nodes each call (forward is not memoized). Parameters returns every
// trainable leaf Value of the component, in a stable order, so update and
// zero-grad sweeps are reproducible.
type Module interface {
	Forward(inputs []*autodiff.Value) []*autodiff.Value
	Parameters() []*autodiff.Value
}
