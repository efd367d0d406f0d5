package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/autodiff"
)

// Uniform creates a leaf parameter drawn from U(lo, hi).
//
// Neuron weights use U(-1, 1), the usual choice for small scalar networks.
func Uniform(lo, hi float64) *autodiff.Value {
	//nolint:gosec // math/rand for weight initialization (not security-critical)
	return autodiff.NewValue(lo + rand.Float64()*(hi-lo))
}

// Zero creates a leaf parameter initialized to zero, the usual bias
// initialization.
func Zero() *autodiff.Value {
	return autodiff.NewValue(0)
}
