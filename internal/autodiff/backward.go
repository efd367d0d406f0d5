package autodiff

// Backward computes gradients for every node reachable from v.
//
// Algorithm:
//  1. Topologically order all ancestors of v (children strictly before
//     consumers), each node exactly once
//  2. Seed v.Grad = 1
//  3. Walk the order consumers-first, invoking each node's gradient rule
//     once and accumulating (+=) the contributions into its children
//
// Accumulation rather than assignment is what makes shared sub-expressions
// correct: a node used on several paths receives the sum over all paths.
//
// Calling Backward on a leaf is defined, not an error: it seeds the leaf's
// own gradient and terminates. Calling it again on an already-computed
// graph adds to the existing gradients; clearing between calls is the
// caller's job via ZeroGrad.
func (v *Value) Backward() {
	order := topoOrder(v)
	v.Grad = 1

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.op == nil {
			continue
		}
		inputs := make([]float64, len(node.children))
		for j, child := range node.children {
			inputs[j] = child.Data
		}
		grads := node.op.Backward(node.Grad, inputs)
		for j, child := range node.children {
			child.Grad += grads[j]
		}
	}
}

// ZeroGrad resets the gradient of v and of every node reachable from it
// through the children relation.
func (v *Value) ZeroGrad() {
	for _, node := range topoOrder(v) {
		node.Grad = 0
	}
}

// Update applies one gradient-descent step: Data -= lr * Grad.
//
// Defined for any node but meaningful only on leaves treated as trainable
// parameters. Updating a non-leaf desyncs its cached Data from the
// expression that produced it; the engine does not guard against that.
func (v *Value) Update(lr float64) {
	v.Data -= lr * v.Grad
}

// dfsFrame tracks one node on the explicit traversal stack together with
// the index of its next unvisited child.
type dfsFrame struct {
	node *Value
	next int
}

// topoOrder returns every node reachable from root, children strictly
// before consumers. The traversal is an iterative post-order DFS with an
// explicit stack, so arbitrarily deep graphs cannot exhaust the call stack.
// A pointer-identity visited set guarantees each node appears exactly once
// even when it is shared by several consumers.
func topoOrder(root *Value) []*Value {
	visited := map[*Value]struct{}{root: {}}
	order := make([]*Value, 0, 64)
	stack := []dfsFrame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.children) {
			child := top.node.children[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, dfsFrame{node: child})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}
