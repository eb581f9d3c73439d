package revgrad

// Activation determines how a Neuron's weighted sum is transformed into its
// output. Apply must construct its result purely from Scalar primitives so that
// the result remains differentiable -- no Activation supplies a derivative rule of
// its own. Provided implementations can be found in the subpackage "activations".
type Activation interface {
	Apply(*Scalar) *Scalar

	// TypeString returns the string corresponding to the type of the Activation.
	// For example: the Activation "Logistic" should return "logistic", or
	// something to that effect.
	TypeString() string
}

// CostFunction builds the per-example error of the Network's outputs against the
// target values. The returned Scalar must be composed from the outputs with Scalar
// primitives, so that its trace links back through the Network to every weight and
// bias.
//
// Cost may assume there are no NaNs or Infs in targets. It should return an error
// if the two lengths disagree.
type CostFunction interface {
	Cost(outs []*Scalar, targets []float64) (*Scalar, error)

	// TypeString returns the string corresponding to the type of the
	// CostFunction.
	TypeString() string
}

// HyperParameter is a training quantity that may change as iterations pass, such
// as the learning rate. Provided implementations can be found in the subpackage
// "hyperparams".
type HyperParameter interface {
	Value(iter int) float64

	// TypeString returns the string corresponding to the type of the
	// HyperParameter.
	TypeString() string
}

// RNG is a source of initial weight values. NewNetwork draws one value per weight
// and bias; the source decides the distribution and its bounds. Provided
// implementations -- including seedable ones -- can be found in the subpackage
// "initializers".
type RNG interface {
	Gen() float64
}
