package revgrad_test

import (
	"math"
	"testing"

	rg "github.com/sharnoff/revgrad"
	"gonum.org/v1/gonum/diff/fd"
)

// checkGrads builds the same expression twice: once over Scalars to get adjoints
// from ReverseTrace, and once as a plain float function for a centered
// finite-difference gradient. The two must agree at 'at' within 'tol' for every
// leaf.
func checkGrads(t *testing.T, name string, build func(xs []*rg.Scalar) *rg.Scalar, at []float64, tol float64) {
	t.Helper()

	leaves := rg.Consts(at)
	root := build(leaves)

	root.ResetTrace()
	root.ReverseTrace(1)

	numeric := fd.Gradient(nil, func(x []float64) float64 {
		return build(rg.Consts(x)).Value()
	}, at, &fd.Settings{Formula: fd.Central})

	for i, l := range leaves {
		if diff := math.Abs(l.Adjoint() - numeric[i]); diff > tol {
			t.Errorf("%s: adjoint of leaf %d is %v, finite difference gives %v (diff %v)",
				name, i, l.Adjoint(), numeric[i], diff)
		}
	}
}

func TestPrimitiveValues(t *testing.T) {
	a, b := rg.Const(3), rg.Const(2)

	cases := []struct {
		name string
		got  *rg.Scalar
		want float64
	}{
		{"add", a.Add(b), 5},
		{"sub", a.Sub(b), 1},
		{"mul", a.Mul(b), 6},
		{"div", a.Div(b), 1.5},
		{"neg", a.Neg(), -3},
		{"exp", b.Exp(), math.Exp(2)},
		{"log", a.Log(), math.Log(3)},
		{"pow", a.Pow(2.5), math.Pow(3, 2.5)},
	}

	for _, c := range cases {
		if c.got.Value() != c.want {
			t.Errorf("%s: value is %v, want %v", c.name, c.got.Value(), c.want)
		}
	}
}

func TestReverseTraceMatchesFiniteDifference(t *testing.T) {
	cases := []struct {
		name  string
		build func(xs []*rg.Scalar) *rg.Scalar
		at    []float64
	}{
		{
			"(a+b)*(a-c)",
			func(xs []*rg.Scalar) *rg.Scalar {
				return xs[0].Add(xs[1]).Mul(xs[0].Sub(xs[2]))
			},
			[]float64{1.5, -0.5, 2},
		},
		{
			"a/b + exp(a*b)",
			func(xs []*rg.Scalar) *rg.Scalar {
				return xs[0].Div(xs[1]).Add(xs[0].Mul(xs[1]).Exp())
			},
			[]float64{0.75, 1.25},
		},
		{
			"sigmoid(a*b - c)",
			func(xs []*rg.Scalar) *rg.Scalar {
				return rg.Sigmoid(xs[0].Mul(xs[1]).Sub(xs[2]))
			},
			[]float64{0.5, -1.5, 0.25},
		},
		{
			"log(a)*b^2.5",
			func(xs []*rg.Scalar) *rg.Scalar {
				return xs[0].Log().Mul(xs[1].Pow(2.5))
			},
			[]float64{2, 1.5},
		},
		{
			"-(a*a)/(b+exp(-a))",
			func(xs []*rg.Scalar) *rg.Scalar {
				return xs[0].Mul(xs[0]).Neg().Div(xs[1].Add(xs[0].Neg().Exp()))
			},
			[]float64{1.25, 2},
		},
	}

	for _, c := range cases {
		checkGrads(t, c.name, c.build, c.at, 1e-6)
	}
}

func TestSharedSubexpressionAccumulation(t *testing.T) {
	// a*a: the leaf feeds both factors, so its adjoint is the sum of both paths
	a := rg.Const(3)
	root := a.Mul(a)

	root.ResetTrace()
	root.ReverseTrace(1)

	if a.Adjoint() != 6 {
		t.Errorf("adjoint of a in a*a is %v, want 6 (both paths)", a.Adjoint())
	}

	// a*b + a*c: adjoint of a must be b + c
	a, b, c := rg.Const(2), rg.Const(5), rg.Const(7)
	root = a.Mul(b).Add(a.Mul(c))

	root.ResetTrace()
	root.ReverseTrace(1)

	if a.Adjoint() != 12 {
		t.Errorf("adjoint of a in a*b + a*c is %v, want 12", a.Adjoint())
	}

	// y + y where y is itself an operation node: y's adjoint must be fully
	// accumulated (2) before being propagated to x
	x := rg.Const(1.5)
	y := x.Mul(x)
	root = y.Add(y)

	root.ResetTrace()
	root.ReverseTrace(1)

	if y.Adjoint() != 2 {
		t.Errorf("adjoint of y in y+y is %v, want 2", y.Adjoint())
	}
	if x.Adjoint() != 6 {
		t.Errorf("adjoint of x in (x*x)+(x*x) is %v, want 6", x.Adjoint())
	}
}

func TestResetTraceIdempotent(t *testing.T) {
	a, b := rg.Const(1.5), rg.Const(-2)
	root := a.Mul(b).Add(a.Exp())

	root.ResetTrace()
	root.ReverseTrace(1)
	first := []float64{a.Adjoint(), b.Adjoint(), root.Adjoint()}

	root.ResetTrace()
	for _, s := range []*rg.Scalar{a, b, root} {
		if s.Adjoint() != 0 {
			t.Errorf("adjoint of %v is %v after ResetTrace, want 0", s, s.Adjoint())
		}
	}

	// a second reset changes nothing
	root.ResetTrace()
	for _, s := range []*rg.Scalar{a, b, root} {
		if s.Adjoint() != 0 {
			t.Errorf("adjoint of %v is %v after double ResetTrace, want 0", s, s.Adjoint())
		}
	}

	// reset-then-reverse on a used graph matches a fresh graph
	root.ReverseTrace(1)
	second := []float64{a.Adjoint(), b.Adjoint(), root.Adjoint()}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("adjoint %d differs between passes: %v then %v", i, first[i], second[i])
		}
	}
}

func TestReverseTraceSeed(t *testing.T) {
	a := rg.Const(4)
	root := a.Mul(rg.Const(3))

	root.ResetTrace()
	root.ReverseTrace(2.5)

	if root.Adjoint() != 2.5 {
		t.Errorf("root adjoint is %v, want the seed 2.5", root.Adjoint())
	}
	if a.Adjoint() != 7.5 {
		t.Errorf("adjoint of a is %v, want 7.5", a.Adjoint())
	}
}

func TestSigmoid(t *testing.T) {
	x := rg.Const(0.75)
	s := rg.Sigmoid(x)

	want := 1 / (1 + math.Exp(-0.75))
	if math.Abs(s.Value()-want) > 1e-15 {
		t.Errorf("Sigmoid(0.75) is %v, want %v", s.Value(), want)
	}

	// d(sigmoid)/dx = s*(1-s)
	s.ResetTrace()
	s.ReverseTrace(1)

	if diff := math.Abs(x.Adjoint() - want*(1-want)); diff > 1e-12 {
		t.Errorf("d(sigmoid)/dx is %v, want %v", x.Adjoint(), want*(1-want))
	}
}

func TestDot(t *testing.T) {
	a := rg.Consts([]float64{1, 2, 3})
	b := rg.Consts([]float64{4, -5, 6})

	d, err := rg.Dot(a, b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if d.Value() != 12 {
		t.Errorf("Dot is %v, want 12", d.Value())
	}

	if _, err = rg.Dot(a, b[:2]); err == nil {
		t.Errorf("Dot of mismatched lengths did not fail")
	}
	if _, err = rg.Dot(nil, nil); err == nil {
		t.Errorf("Dot of empty vectors did not fail")
	}
}

func TestSqDist(t *testing.T) {
	a := rg.Consts([]float64{1, 2})
	b := rg.Consts([]float64{3, -1})

	sq, err := rg.SqDist(a, b)
	if err != nil {
		t.Fatalf("SqDist failed: %v", err)
	}
	if sq.Value() != 13 {
		t.Errorf("SqDist is %v, want 13", sq.Value())
	}

	// d(sum (a_i-b_i)^2)/d(a_i) = 2(a_i - b_i); each difference feeds both
	// factors of its square
	sq.ResetTrace()
	sq.ReverseTrace(1)

	wants := []float64{-4, 6}
	for i := range a {
		if a[i].Adjoint() != wants[i] {
			t.Errorf("adjoint of a[%d] is %v, want %v", i, a[i].Adjoint(), wants[i])
		}
	}

	if _, err = rg.SqDist(a, b[:1]); err == nil {
		t.Errorf("SqDist of mismatched lengths did not fail")
	}
}

func TestMean(t *testing.T) {
	m, err := rg.Mean(rg.Consts([]float64{1, 2, 6}))
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if m.Value() != 3 {
		t.Errorf("Mean is %v, want 3", m.Value())
	}

	if _, err = rg.Mean(nil); err == nil {
		t.Errorf("Mean of zero Scalars did not fail")
	}
}

func TestFloatingPointSaturation(t *testing.T) {
	// exp saturates toward 0 and +Inf with no guard
	if v := rg.Const(-1000).Exp().Value(); v != 0 {
		t.Errorf("exp(-1000) is %v, want 0", v)
	}
	if v := rg.Const(1000).Exp().Value(); !math.IsInf(v, 1) {
		t.Errorf("exp(1000) is %v, want +Inf", v)
	}
}
