package revgrad

import (
	"math"
)

// deriv returns the local partial derivative of s with respect to its i'th
// operand, evaluated at the operands' forward values. This is the single dispatch
// table of the backward pass; adding a primitive means adding a case here and
// nowhere else.
func (s *Scalar) deriv(i int) float64 {
	switch s.op {
	case opAdd:
		return 1
	case opSub:
		if i == 0 {
			return 1
		}
		return -1
	case opMul:
		return s.operands[1-i].value
	case opDiv:
		a, b := s.operands[0], s.operands[1]
		if i == 0 {
			return 1 / b.value
		}
		return -a.value / (b.value * b.value)
	case opNeg:
		return -1
	case opExp:
		// d(e**a)/da is the result itself
		return s.value
	case opLog:
		return 1 / s.operands[0].value
	case opPow:
		return s.aux * math.Pow(s.operands[0].value, s.aux-1)
	}

	// opLeaf has no operands; deriv is never reached for it
	return 0
}

// ResetTrace clears the adjoint of every Scalar reachable from s through operand
// links. Each node is visited exactly once, even when it is reachable along
// several paths. ResetTrace must be called before ReverseTrace; a second call in a
// row leaves all adjoints at zero.
func (s *Scalar) ResetTrace() {
	visited := make(map[*Scalar]bool)
	stack := []*Scalar{s}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[n] {
			continue
		}
		visited[n] = true

		n.adjoint = 0
		stack = append(stack, n.operands...)
	}
}

// sorted returns every Scalar reachable from s in topological order: each node
// appears before all of its operands. The traversal is an iterative
// depth-first search with an explicit stack; the map is used only for membership,
// so the order is deterministic.
func (s *Scalar) sorted() []*Scalar {
	type frame struct {
		node     *Scalar
		expanded bool
	}

	var topo []*Scalar
	visited := make(map[*Scalar]bool)
	stack := []frame{{s, false}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			topo = append(topo, f.node)
			continue
		} else if visited[f.node] {
			continue
		}
		visited[f.node] = true

		// revisit the node after its operands have been emitted
		stack = append(stack, frame{f.node, true})
		for _, in := range f.node.operands {
			if !visited[in] {
				stack = append(stack, frame{in, false})
			}
		}
	}

	// topo currently runs operands-first; reverse it so that every node precedes
	// its operands
	for i, j := 0, len(topo)-1; i < j; i, j = i+1, j-1 {
		topo[i], topo[j] = topo[j], topo[i]
	}

	return topo
}

// ReverseTrace performs the backward pass: it sets s's adjoint to seed, then walks
// the graph in reverse topological order, adding node.Adjoint() * deriv(operand)
// into each operand's adjoint. Because a node is only processed after every node
// it feeds, its adjoint is fully accumulated before it is propagated further;
// Scalars feeding several consumers receive the sum of all their contributions.
//
// ReverseTrace assumes all reachable adjoints are zero on entry -- call ResetTrace
// first. The seed is the adjoint of the root itself, usually 1.
//
// The operand algebra cannot produce a cycle (operands always predate their
// consumers), so acyclicity is a caller invariant rather than a runtime check.
func (s *Scalar) ReverseTrace(seed float64) {
	order := s.sorted()
	s.adjoint = seed

	for _, n := range order {
		for i, in := range n.operands {
			in.adjoint += n.adjoint * n.deriv(i)
		}
	}
}
