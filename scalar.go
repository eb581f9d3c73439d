package revgrad

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// opKind tags which primitive operation produced a Scalar. The set is closed; the
// backward pass dispatches on it in *Scalar.deriv().
type opKind int8

const (
	opLeaf opKind = iota // 0
	opAdd  opKind = iota // 1
	opSub  opKind = iota // 2
	opMul  opKind = iota // 3
	opDiv  opKind = iota // 4
	opNeg  opKind = iota // 5
	opExp  opKind = iota // 6
	opLog  opKind = iota // 7
	opPow  opKind = iota // 8
)

var opNames = map[opKind]string{
	opLeaf: "leaf",
	opAdd:  "add",
	opSub:  "sub",
	opMul:  "mul",
	opDiv:  "div",
	opNeg:  "neg",
	opExp:  "exp",
	opLog:  "log",
	opPow:  "pow",
}

func (op opKind) String() string {
	return opNames[op]
}

// Scalar is a differentiable value -- the node type of the computation graph. Each
// Scalar stores its forward-computed value, an adjoint accumulator for
// d(root)/d(this), and a record of the primitive operation and operands that
// produced it. That record is enough to compute, for each operand, the local
// partial derivative of this Scalar with respect to that operand.
//
// Scalars are created during a forward pass and are mutated only in their adjoint,
// during ResetTrace and ReverseTrace. The graph built by one forward pass is
// discardable once the adjoints have been read out; there is no cross-pass reuse.
//
// Operands are always created strictly before their consumers, so the graph is a
// DAG by construction. A Scalar may feed several consumers; the backward pass sums
// the contribution of every consumer into its adjoint.
type Scalar struct {
	value   float64
	adjoint float64

	op       opKind
	operands []*Scalar

	// the exponent, for opPow. Unused by every other operation.
	aux float64
}

// Const returns a new leaf Scalar holding the given value. Leaves are where
// gradients come to rest: after ReverseTrace, each leaf's Adjoint holds the
// partial derivative of the root with respect to it.
func Const(v float64) *Scalar {
	return &Scalar{value: v}
}

// Consts lifts a plain vector into a slice of leaf Scalars, one per element.
func Consts(vs []float64) []*Scalar {
	ss := make([]*Scalar, len(vs))
	for i, v := range vs {
		ss[i] = Const(v)
	}

	return ss
}

// Value returns the forward-computed value of the Scalar.
func (s *Scalar) Value() float64 {
	return s.value
}

// Adjoint returns the accumulated partial derivative of the most recent
// ReverseTrace root with respect to this Scalar. It is zero before any backward
// pass, and after ResetTrace.
func (s *Scalar) Adjoint() float64 {
	return s.adjoint
}

// IsLeaf returns whether or not the Scalar was produced by Const, as opposed to a
// primitive operation.
func (s *Scalar) IsLeaf() bool {
	return s.op == opLeaf
}

// String returns a brief description of the Scalar:
//	<%s: %v>
// where %s is the name of the operation that produced it and %v is its value. If
// given a Scalar that is nil, String will return:
//	<nil>
func (s *Scalar) String() string {
	if s == nil {
		return "<nil>"
	}

	return fmt.Sprintf("<%s: %v>", s.op, s.value)
}

// Add returns a new Scalar holding a + b.
func (a *Scalar) Add(b *Scalar) *Scalar {
	return &Scalar{value: a.value + b.value, op: opAdd, operands: []*Scalar{a, b}}
}

// Sub returns a new Scalar holding a - b.
func (a *Scalar) Sub(b *Scalar) *Scalar {
	return &Scalar{value: a.value - b.value, op: opSub, operands: []*Scalar{a, b}}
}

// Mul returns a new Scalar holding a * b.
func (a *Scalar) Mul(b *Scalar) *Scalar {
	return &Scalar{value: a.value * b.value, op: opMul, operands: []*Scalar{a, b}}
}

// Div returns a new Scalar holding a / b. Division by zero follows standard
// floating-point semantics; there is no guard.
func (a *Scalar) Div(b *Scalar) *Scalar {
	return &Scalar{value: a.value / b.value, op: opDiv, operands: []*Scalar{a, b}}
}

// Neg returns a new Scalar holding -a.
func (a *Scalar) Neg() *Scalar {
	return &Scalar{value: -a.value, op: opNeg, operands: []*Scalar{a}}
}

// Exp returns a new Scalar holding e**a. Very large or very negative arguments
// saturate toward Inf or 0, as with math.Exp.
func (a *Scalar) Exp() *Scalar {
	return &Scalar{value: math.Exp(a.value), op: opExp, operands: []*Scalar{a}}
}

// Log returns a new Scalar holding the natural logarithm of a.
func (a *Scalar) Log() *Scalar {
	return &Scalar{value: math.Log(a.value), op: opLog, operands: []*Scalar{a}}
}

// Pow returns a new Scalar holding a**p, for a constant (non-differentiated)
// exponent.
func (a *Scalar) Pow(p float64) *Scalar {
	return &Scalar{value: math.Pow(a.value, p), op: opPow, operands: []*Scalar{a}, aux: p}
}

// dot is Dot without the length check, for internal callers that have already
// validated their vectors.
func dot(a, b []*Scalar) *Scalar {
	sum := a[0].Mul(b[0])
	for i := 1; i < len(a); i++ {
		sum = sum.Add(a[i].Mul(b[i]))
	}

	return sum
}

// Dot returns the dot product of two equal-length vectors of Scalars, composed
// entirely from Mul and Add. Dot returns an error if the lengths disagree or the
// vectors are empty.
func Dot(a, b []*Scalar) (*Scalar, error) {
	if len(a) != len(b) {
		return nil, errors.Errorf("Can't take Dot product, len(a) != len(b) (%d != %d)", len(a), len(b))
	} else if len(a) == 0 {
		return nil, errors.Errorf("Can't take Dot product of empty vectors")
	}

	return dot(a, b), nil
}

// Sigmoid returns 1/(1 + e**-x), composed entirely from primitives.
func Sigmoid(x *Scalar) *Scalar {
	return Const(1).Div(Const(1).Add(x.Neg().Exp()))
}

// sqDist is SqDist without the length check.
func sqDist(a, b []*Scalar) *Scalar {
	d := a[0].Sub(b[0])
	sum := d.Mul(d)
	for i := 1; i < len(a); i++ {
		d = a[i].Sub(b[i])
		sum = sum.Add(d.Mul(d))
	}

	return sum
}

// SqDist returns the squared norm of (a - b): the sum over each index of the
// squared difference. Each difference feeds both factors of its square, so the
// backward pass accumulates its adjoint from two paths. SqDist returns an error if
// the lengths disagree or the vectors are empty.
func SqDist(a, b []*Scalar) (*Scalar, error) {
	if len(a) != len(b) {
		return nil, errors.Errorf("Can't take SqDist, len(a) != len(b) (%d != %d)", len(a), len(b))
	} else if len(a) == 0 {
		return nil, errors.Errorf("Can't take SqDist of empty vectors")
	}

	return sqDist(a, b), nil
}

// mean is Mean without the length check.
func mean(xs []*Scalar) *Scalar {
	sum := xs[0]
	for i := 1; i < len(xs); i++ {
		sum = sum.Add(xs[i])
	}

	return sum.Div(Const(float64(len(xs))))
}

// Mean returns the arithmetic mean of the given Scalars, composed from Add and
// Div. A mean over zero elements is refused with an error rather than allowed to
// propagate NaN.
func Mean(xs []*Scalar) (*Scalar, error) {
	if len(xs) == 0 {
		return nil, errors.Errorf("Can't take Mean of zero Scalars")
	}

	return mean(xs), nil
}
