package ops

// SubOp represents a subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// Backward computes input gradients for subtraction.
func (SubOp) Backward(outputGrad float64, inputs []float64) []float64 {
	return []float64{outputGrad, -outputGrad}
}
