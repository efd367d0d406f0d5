package ops

import "math"

// PowOp represents raising to a constant power: output = x^e.
//
// The exponent is a plain real constant, not a graph node, so no gradient
// flows to it.
//
// Backward pass:
//   - d(x^e)/dx = e * x^(e-1), so grad_x = outputGrad * e * x^(e-1)
//
// Domain validity (e.g. a non-integer exponent on a negative base) is the
// caller's responsibility; invalid combinations follow math.Pow semantics
// and propagate NaN through the graph.
type PowOp struct {
	Exponent float64
}

// Backward computes the input gradient for the power rule.
func (op PowOp) Backward(outputGrad float64, inputs []float64) []float64 {
	x := inputs[0]
	return []float64{outputGrad * op.Exponent * math.Pow(x, op.Exponent-1)}
}
