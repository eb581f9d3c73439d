// Package costfuncs provides implementations of revgrad.CostFunction beyond the
// default squared error. Each builds its loss in the trace from Scalar primitives,
// so gradients flow to every weight with no cost-specific derivative code.
package costfuncs

import (
	"github.com/pkg/errors"
	rg "github.com/sharnoff/revgrad"
)

type mse int8

// MSE returns the mean squared error cost function: the squared norm of the
// difference, divided by the number of outputs.
func MSE() mse {
	return mse(0)
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) TypeString() string {
	return "mse"
}

func (m mse) Cost(outs []*rg.Scalar, targets []float64) (*rg.Scalar, error) {
	if len(outs) != len(targets) {
		return nil, errors.Errorf("Can't get Cost() of 'mse', len(outs) != len(targets) (%d != %d)", len(outs), len(targets))
	}

	sq, err := rg.SqDist(outs, rg.Consts(targets))
	if err != nil {
		return nil, err
	}

	return sq.Div(rg.Const(float64(len(outs)))), nil
}
