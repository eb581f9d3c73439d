package revgrad

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Neuron holds one weight per input and a bias, all as differentiable Scalars.
// The weights and bias are leaves of each forward pass's computation graph; they
// are replaced (not graph-mutated) by the update rule at the end of each training
// iteration.
type Neuron struct {
	weights []*Scalar
	bias    *Scalar
}

// Layer is an ordered collection of Neurons, each with the same input arity.
type Layer struct {
	neurons []*Neuron
}

// Network is a fully-connected feedforward structure of Layers. Layer i's neuron
// input arity equals layer i-1's neuron count, or the declared input size for
// layer 0. A Network is exclusively owned by one training-loop invocation at a
// time.
type Network struct {
	inputSize int
	layers    []*Layer

	act Activation
}

// logistic is the Network's default Activation. The subpackage "activations"
// offers it (and others) by name.
type logistic int8

func (t logistic) Apply(x *Scalar) *Scalar {
	return Sigmoid(x)
}

func (t logistic) TypeString() string {
	return "logistic"
}

// NewNetwork builds a Network with len(layerSizes) layers, layer i having
// layerSizes[i] neurons, each neuron's weight count equal to the previous layer's
// neuron count (or inputSize for layer 0). Every weight and bias is initialized to
// a value drawn from src; a nil src draws uniformly from [-0.5, 0.5) using the
// package-global math/rand generator. For deterministic initialization, pass a
// seeded source (see the subpackage "initializers").
//
// The default Activation is logistic; it can be changed with SetActivation.
func NewNetwork(inputSize int, layerSizes []int, src RNG) (*Network, error) {
	if inputSize < 1 {
		return nil, errors.Errorf("Network must have inputSize >= 1 (%d)", inputSize)
	} else if len(layerSizes) == 0 {
		return nil, errors.Errorf("Network must have at least one layer")
	}

	gen := func() float64 { return rand.Float64() - 0.5 }
	if src != nil {
		gen = src.Gen
	}

	net := &Network{inputSize: inputSize, act: logistic(0)}

	prev := inputSize
	for i, size := range layerSizes {
		if size < 1 {
			return nil, errors.Errorf("Layer %d must have size >= 1 (%d)", i, size)
		}

		l := &Layer{neurons: make([]*Neuron, size)}
		for v := range l.neurons {
			n := &Neuron{weights: make([]*Scalar, prev)}
			for in := range n.weights {
				n.weights[in] = Const(gen())
			}
			n.bias = Const(gen())

			l.neurons[v] = n
		}

		net.layers = append(net.layers, l)
		prev = size
	}

	return net, nil
}

// SetActivation changes the Activation applied by every Neuron in the Network,
// returning the Network. If act is nil, SetActivation will panic with type
// NilArgError.
func (net *Network) SetActivation(act Activation) *Network {
	if act == nil {
		panic(NilArgError{"Activation"})
	}

	net.act = act
	return net
}

// InputSize returns the number of input values the Network expects.
func (net *Network) InputSize() int {
	return net.inputSize
}

// OutputSize returns the number of output values the Network produces.
func (net *Network) OutputSize() int {
	return net.layers[len(net.layers)-1].Size()
}

// Layers returns the list of the Network's Layers, in order. The slice is a copy;
// the Layers themselves are not.
func (net *Network) Layers() []*Layer {
	ls := make([]*Layer, len(net.layers))
	copy(ls, net.layers)
	return ls
}

// Size returns the number of Neurons in the Layer.
func (l *Layer) Size() int {
	return len(l.neurons)
}

// Neurons returns the list of the Layer's Neurons, in order. The slice is a copy;
// the Neurons themselves are not.
func (l *Layer) Neurons() []*Neuron {
	ns := make([]*Neuron, len(l.neurons))
	copy(ns, l.neurons)
	return ns
}

// NumWeights returns the input arity of the Neuron.
func (n *Neuron) NumWeights() int {
	return len(n.weights)
}

// Weights returns the Neuron's weights, in input order. The slice is a copy; the
// Scalars themselves are not.
func (n *Neuron) Weights() []*Scalar {
	ws := make([]*Scalar, len(n.weights))
	copy(ws, n.weights)
	return ws
}

// Bias returns the Neuron's bias.
func (n *Neuron) Bias() *Scalar {
	return n.bias
}

// GetOutputs returns the Network's output values for the given inputs. This is
// pure evaluation: a fresh trace is built and discarded, and nothing about the
// Network changes. If the number of inputs is not InputSize(), GetOutputs returns
// type SizeMismatchError.
func (net *Network) GetOutputs(inputs []float64) ([]float64, error) {
	if len(inputs) != net.inputSize {
		return nil, SizeMismatchError{net.inputSize, len(inputs), "inputs"}
	}

	outs := net.run(Consts(inputs))

	vs := make([]float64, len(outs))
	for i, o := range outs {
		vs[i] = o.value
	}

	return vs, nil
}
