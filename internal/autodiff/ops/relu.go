package ops

// ReluOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// The boundary x == 0 counts as "not activated": it receives gradient 0.
// Numeric results downstream depend on this tie-break, so it must not change.
type ReluOp struct{}

// Backward computes the input gradient for ReLU.
func (ReluOp) Backward(outputGrad float64, inputs []float64) []float64 {
	if inputs[0] > 0 {
		return []float64{outputGrad}
	}
	return []float64{0}
}
