// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic operation produces a new Value node that remembers which
// nodes it was computed from and how to distribute gradient back to them.
// Calling Backward on a node walks all of its ancestors in reverse
// topological order and accumulates d(node)/d(ancestor) into each ancestor's
// Grad field, applying the chain rule once per node.
//
// Architecture:
//   - Value: one scalar graph node; *Value pointers give the shared,
//     reference-identity semantics the graph needs (a node used twice is the
//     same node, and its accumulated gradient is visible to every holder)
//   - ops.Operation: per-operation gradient rule, dispatched during backward
//   - Backward: iterative post-order DFS topological sort, then a
//     consumers-first sweep with += accumulation
//
// Usage:
//
//	x := autodiff.NewValue(2.0)
//	y := autodiff.NewValue(3.0)
//	z := x.Mul(y).AddScalar(1) // z = x*y + 1
//
//	z.Backward()
//	fmt.Println(x.Grad) // dz/dx = y = 3.0
package autodiff

import (
	"fmt"
	"math"

	"github.com/ember-ml/ember/internal/autodiff/ops"
)

// Value is one scalar node in a computation graph.
//
// Data holds the current scalar and is mutated by parameter updates.
// Grad holds the gradient of some downstream scalar with respect to this
// node; it starts at zero, is accumulated (never overwritten) by Backward,
// and is only reset by ZeroGrad. Successive Backward calls on a shared graph
// therefore add up unless the caller clears gradients in between.
//
// Nodes are always handled through *Value. Two nodes with equal Data are
// still distinct graph entities: identity, not value equality, determines
// graph structure.
type Value struct {
	Data float64
	Grad float64

	children []*Value      // inputs consumed to produce this node, nil for leaves
	op       ops.Operation // gradient rule, nil for leaves
}

// NewValue creates a leaf node with the given data and zero gradient.
//
// Any finite real is accepted; the engine does not guard against non-finite
// inputs or results.
func NewValue(data float64) *Value {
	return &Value{Data: data}
}

// Children returns the nodes consumed to produce this node.
// Leaves return nil.
func (v *Value) Children() []*Value {
	return v.children
}

// IsLeaf reports whether this node was created from a literal rather than
// an operation.
func (v *Value) IsLeaf() bool {
	return v.op == nil
}

// Add returns a new node computing v + other.
func (v *Value) Add(other *Value) *Value {
	return &Value{
		Data:     v.Data + other.Data,
		children: []*Value{v, other},
		op:       ops.AddOp{},
	}
}

// AddScalar returns a new node computing v + c.
//
// The scalar is wrapped as a fresh leaf node first, so the result is
// indistinguishable from v.Add(NewValue(c)).
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(NewValue(c))
}

// Mul returns a new node computing v * other.
func (v *Value) Mul(other *Value) *Value {
	return &Value{
		Data:     v.Data * other.Data,
		children: []*Value{v, other},
		op:       ops.MulOp{},
	}
}

// MulScalar returns a new node computing v * c.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(NewValue(c))
}

// Sub returns a new node computing v - other.
func (v *Value) Sub(other *Value) *Value {
	return &Value{
		Data:     v.Data - other.Data,
		children: []*Value{v, other},
		op:       ops.SubOp{},
	}
}

// SubScalar returns a new node computing v - c.
func (v *Value) SubScalar(c float64) *Value {
	return v.Sub(NewValue(c))
}

// Neg returns a new node computing -v.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Pow returns a new node computing v raised to a constant exponent.
//
// The exponent is not a graph node and receives no gradient. Domain
// validity is the caller's responsibility: a non-integer exponent on a
// negative base yields NaN per math.Pow, and the NaN propagates.
func (v *Value) Pow(exponent float64) *Value {
	return &Value{
		Data:     math.Pow(v.Data, exponent),
		children: []*Value{v},
		op:       ops.PowOp{Exponent: exponent},
	}
}

// Relu returns a new node computing max(0, v).
//
// An input of exactly zero counts as not activated and receives zero
// gradient during the backward pass.
func (v *Value) Relu() *Value {
	return &Value{
		Data:     math.Max(0, v.Data),
		children: []*Value{v},
		op:       ops.ReluOp{},
	}
}

// String formats the node's current data and gradient.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data: %v, grad: %v)", v.Data, v.Grad)
}
