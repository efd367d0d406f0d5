// Package optim implements parameter updates for training.
//
// An optimizer owns a slice of trainable leaf Values (as returned by
// MLP.Parameters) and applies in-place updates to their data from the
// gradients accumulated by a backward pass.
//
// Example usage:
//
//	model := nn.NewMLP(2, []int{16, 16, 1})
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(model, data)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for parameter-update strategies.
type Optimizer interface {
	// Step applies one update to every parameter using its accumulated
	// gradient.
	Step()

	// ZeroGrad clears all parameter gradients. Call it before the next
	// backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}

// Config is the base configuration shared by optimizers.
type Config struct {
	LR float64 // Learning rate
}
