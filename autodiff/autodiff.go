// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Every operation on a Value produces a new graph node that remembers its
// inputs. Calling Backward on a node computes d(node)/d(ancestor) for every
// ancestor, accumulating into each ancestor's Grad field, with correct
// handling of values that feed several parts of the graph.
//
// Example:
//
//	import "github.com/ember-ml/ember/autodiff"
//
//	func main() {
//	    x := autodiff.NewValue(2.0)
//	    y := autodiff.NewValue(3.0)
//	    z := x.Mul(y).AddScalar(1) // z = x*y + 1 = 7
//
//	    z.Backward()
//	    fmt.Println(x.Grad) // dz/dx = y = 3
//	    fmt.Println(y.Grad) // dz/dy = x = 2
//
//	    z.ZeroGrad()       // clear the whole graph before the next pass
//	    x.Update(0.01)     // gradient-descent step on a leaf parameter
//	}
package autodiff

import (
	"github.com/ember-ml/ember/internal/autodiff"
)

// Value is one scalar node in a computation graph.
//
// Nodes are shared by reference: a Value used in two expressions is the
// same node in both, and gradient accumulated through either path is
// visible through every handle.
type Value = autodiff.Value

// NewValue creates a leaf node with the given data and zero gradient.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}
