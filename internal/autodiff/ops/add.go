package ops

// AddOp represents an addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct{}

// Backward computes input gradients for addition.
// The output gradient flows unchanged to both inputs.
func (AddOp) Backward(outputGrad float64, inputs []float64) []float64 {
	return []float64{outputGrad, outputGrad}
}
