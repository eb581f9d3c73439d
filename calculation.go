package revgrad

// run computes the Neuron's output for the given inputs:
// act(dot(inputs, weights) + bias). The returned Scalar's trace links back to
// every weight, the bias, and the inputs. Lengths are assumed equal; callers
// validate at the Network boundary.
func (n *Neuron) run(inputs []*Scalar, act Activation) *Scalar {
	return act.Apply(dot(inputs, n.weights).Add(n.bias))
}

// run applies every Neuron in the Layer to the same inputs, producing one output
// Scalar per Neuron.
func (l *Layer) run(inputs []*Scalar, act Activation) []*Scalar {
	outs := make([]*Scalar, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.run(inputs, act)
	}

	return outs
}

// run folds the Layers across the inputs: layer i+1's input is layer i's output.
func (net *Network) run(inputs []*Scalar) []*Scalar {
	vs := inputs
	for _, l := range net.layers {
		vs = l.run(vs, net.act)
	}

	return vs
}

// adjust applies one gradient-descent step: every weight and bias is replaced with
// a fresh leaf holding w - eta*adjoint. Replacing (rather than mutating in the
// graph) means the next forward pass starts from a clean trace with no links into
// the old one.
func (net *Network) adjust(eta float64) {
	for _, l := range net.layers {
		for _, n := range l.neurons {
			for i, w := range n.weights {
				n.weights[i] = Const(w.value - eta*w.adjoint)
			}
			n.bias = Const(n.bias.value - eta*n.bias.adjoint)
		}
	}
}
