// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward neural network building blocks.
//
// # Overview
//
// This package contains:
//   - Neuron: weighted sum plus bias with optional ReLU
//   - Layer: ordered neurons sharing one input vector
//   - MLP: ordered stack of layers
//   - Module interface for composable components
//
// Everything is built on the scalar autodiff engine: forward passes grow a
// computation graph, Backward on the loss node fills parameter gradients,
// and the optim package (or Value.Update) consumes them.
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/autodiff"
//	    "github.com/ember-ml/ember/nn"
//	)
//
//	func main() {
//	    // 2 inputs -> 16 -> 16 -> 1 output, ReLU on hidden layers
//	    model := nn.NewMLP(2, []int{16, 16, 1})
//
//	    x := []*autodiff.Value{autodiff.NewValue(1.0), autodiff.NewValue(2.0)}
//	    out := model.Forward(x) // exactly 1 output node
//
//	    diff := out[0].SubScalar(3.0)
//	    loss := diff.Mul(diff)
//	    loss.Backward()
//	}
//
// # Architecture policy
//
// MLP applies ReLU to every layer except the last, which stays linear. This
// is fixed at construction, not configurable per call.
//
// # Shapes
//
// Forward panics if the input length disagrees with the component's input
// width. That is the one checked contract in the library; numeric domain
// errors propagate as NaN instead.
package nn
