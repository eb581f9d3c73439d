package activations_test

import (
	"math"
	"testing"

	rg "github.com/sharnoff/revgrad"
	"github.com/sharnoff/revgrad/activations"
)

// value and derivative at a point, for each Activation, against the closed forms.
// The derivatives come out of ReverseTrace; none of the Activations carries a
// derivative rule of its own.
func TestActivations(t *testing.T) {
	const at = 0.6

	sig := 1 / (1 + math.Exp(-at))

	cases := []struct {
		act         rg.Activation
		want, deriv float64
	}{
		{activations.Logistic(), sig, sig * (1 - sig)},
		{activations.Tanh(), math.Tanh(at), 1 - math.Tanh(at)*math.Tanh(at)},
		{activations.Softplus(), math.Log(1 + math.Exp(at)), sig},
		{activations.Identity(), at, 1},
	}

	for _, c := range cases {
		x := rg.Const(at)
		y := c.act.Apply(x)

		if diff := math.Abs(y.Value() - c.want); diff > 1e-12 {
			t.Errorf("%s(%v) is %v, want %v", c.act.TypeString(), at, y.Value(), c.want)
		}

		y.ResetTrace()
		y.ReverseTrace(1)

		if diff := math.Abs(x.Adjoint() - c.deriv); diff > 1e-12 {
			t.Errorf("d(%s)/dx at %v is %v, want %v", c.act.TypeString(), at, x.Adjoint(), c.deriv)
		}
	}
}

func TestIdentityPassesThrough(t *testing.T) {
	x := rg.Const(2.5)
	if activations.Identity().Apply(x) != x {
		t.Errorf("Identity did not return its argument")
	}
}

// A Network with a Tanh hidden layer must still backpropagate correctly, since
// Tanh is composed from the same primitives.
func TestActivationsDifferentiateInNetwork(t *testing.T) {
	net, err := rg.NewNetwork(2, []int{2, 1}, nil)
	if err != nil {
		t.Fatalf("NewNetwork failed: %v", err)
	}
	net.SetActivation(activations.Tanh())

	outs, err := net.GetOutputs([]float64{0.5, -0.25})
	if err != nil {
		t.Fatalf("GetOutputs failed: %v", err)
	}

	if math.Abs(outs[0]) >= 1 {
		t.Errorf("tanh output is %v, want within (-1, 1)", outs[0])
	}
}

func TestSetActivationNilPanics(t *testing.T) {
	net, err := rg.NewNetwork(1, []int{1}, nil)
	if err != nil {
		t.Fatalf("NewNetwork failed: %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("SetActivation(nil) did not panic")
		}
	}()

	net.SetActivation(nil)
}
