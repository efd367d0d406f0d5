// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter updates for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain stochastic gradient descent
//   - Optimizer interface for custom update strategies
//
// # Training Loop Pattern
//
//	import (
//	    "github.com/ember-ml/ember/nn"
//	    "github.com/ember-ml/ember/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(2, []int{16, 16, 1})
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	    for epoch := 0; epoch < 100; epoch++ {
//	        // 1. Zero gradients
//	        optimizer.ZeroGrad()
//
//	        // 2. Forward pass, build the loss node
//	        loss := computeLoss(model, data)
//
//	        // 3. Backward pass fills parameter gradients
//	        loss.Backward()
//
//	        // 4. Update parameters in place
//	        optimizer.Step()
//	    }
//	}
package optim
