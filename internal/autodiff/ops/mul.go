package ops

// MulOp represents a multiplication: output = a * b.
//
// Backward pass (product rule):
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// Backward computes input gradients for multiplication.
func (MulOp) Backward(outputGrad float64, inputs []float64) []float64 {
	a, b := inputs[0], inputs[1]
	return []float64{outputGrad * b, outputGrad * a}
}
