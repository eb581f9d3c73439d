package revgrad

import (
	"fmt"

	"github.com/pkg/errors"
)

type squarederror bool

// SquaredError returns the squared-norm cost function: the sum over each output of
// the squared difference from its target, built in the trace. SquaredError is the
// default CostFunction for training.
//
// If 'debug' is true, each call to Cost will println(values, targets).
func SquaredError(debug bool) squarederror {
	return squarederror(debug)
}

func (c squarederror) TypeString() string {
	return "squared error"
}

func (c squarederror) Cost(outs []*Scalar, targets []float64) (*Scalar, error) {
	if len(outs) != len(targets) {
		return nil, errors.Errorf("Can't get Cost() of 'squared error', len(outs) != len(targets) (%d != %d)", len(outs), len(targets))
	}

	if bool(c) {
		vs := make([]float64, len(outs))
		for i, o := range outs {
			vs[i] = o.Value()
		}
		fmt.Println(vs, targets)
	}

	return sqDist(outs, Consts(targets)), nil
}
