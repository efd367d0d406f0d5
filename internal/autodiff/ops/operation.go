// Package ops defines the gradient rules for the scalar autodiff engine.
//
// Each operation implements the local chain-rule step: given the gradient
// accumulated on its output and the current data of its inputs, it returns
// the gradient contribution for each input. Operations are stateless except
// where a constant participates in the rule (PowOp's exponent).
package ops

// Operation computes the gradient contributions an output node pushes onto
// its inputs during the backward pass.
//
// Backward receives the output node's accumulated gradient and the current
// data of each input, and returns one gradient per input, in input order.
// It never mutates anything: accumulating into the inputs is the engine's job.
type Operation interface {
	Backward(outputGrad float64, inputs []float64) []float64
}
