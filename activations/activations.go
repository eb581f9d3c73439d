// Package activations provides implementations of revgrad.Activation.
//
// Every Activation here is a pure composition of Scalar primitives: none carries a
// derivative rule, and all of them backpropagate automatically through
// ReverseTrace. New activations can be added the same way.
package activations

import (
	rg "github.com/sharnoff/revgrad"
)

type logistic int8

// Logistic returns the standard logistic sigmoid Activation, 1/(1 + e**-x). It is
// the Network default.
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "logistic"
}

func (t logistic) Apply(x *rg.Scalar) *rg.Scalar {
	return rg.Sigmoid(x)
}

type tanh int8

// Tanh returns the hyperbolic tangent Activation.
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Apply(x *rg.Scalar) *rg.Scalar {
	// (e**x - e**-x) / (e**x + e**-x); both exponentials are shared between the
	// numerator and denominator in the trace
	ex := x.Exp()
	enx := x.Neg().Exp()
	return ex.Sub(enx).Div(ex.Add(enx))
}

type softplus int8

// Softplus returns the softplus Activation, ln(1 + e**x).
func Softplus() softplus {
	return softplus(0)
}

func (t softplus) TypeString() string {
	return "softplus"
}

func (t softplus) Apply(x *rg.Scalar) *rg.Scalar {
	return rg.Const(1).Add(x.Exp()).Log()
}

type identity int8

// Identity returns the Activation that passes the weighted sum through unchanged,
// for linear output layers.
func Identity() identity {
	return identity(0)
}

func (t identity) TypeString() string {
	return "identity"
}

func (t identity) Apply(x *rg.Scalar) *rg.Scalar {
	return x
}
