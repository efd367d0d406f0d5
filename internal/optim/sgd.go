package optim

import (
	"github.com/ember-ml/ember/internal/autodiff"
)

// SGD implements plain stochastic gradient descent.
//
// Update rule:
//
//	param.Data = param.Data - lr * param.Grad
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//	loss.Backward()
//	sgd.Step()
//	sgd.ZeroGrad()
type SGD struct {
	params []*autodiff.Value
	lr     float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params: params,
		lr:     config.LR,
	}
}

// Step applies one gradient-descent update to every parameter.
func (s *SGD) Step() {
	for _, p := range s.params {
		p.Update(s.lr)
	}
}

// ZeroGrad clears every parameter gradient. Parameters are leaves, so
// per-node clearing covers everything the next Step reads.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}
