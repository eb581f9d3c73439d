package costfuncs

import (
	"github.com/pkg/errors"
	rg "github.com/sharnoff/revgrad"
)

type crossentropy int8

// CrossEntropy returns the binary cross-entropy cost function,
//	-sum[ t*ln(o) + (1-t)*ln(1-o) ],
// for targets in [0, 1] and outputs in (0, 1). Outputs at exactly 0 or 1 follow
// standard floating-point semantics (the logarithm diverges); there is no
// clamping.
func CrossEntropy() crossentropy {
	return crossentropy(0)
}

func (c crossentropy) TypeString() string {
	return "cross-entropy"
}

func (c crossentropy) Cost(outs []*rg.Scalar, targets []float64) (*rg.Scalar, error) {
	if len(outs) != len(targets) {
		return nil, errors.Errorf("Can't get Cost() of 'cross-entropy', len(outs) != len(targets) (%d != %d)", len(outs), len(targets))
	} else if len(outs) == 0 {
		return nil, errors.Errorf("Can't get Cost() of 'cross-entropy' with no outputs")
	}

	var sum *rg.Scalar
	for i, o := range outs {
		t := targets[i]
		term := rg.Const(t).Mul(o.Log()).
			Add(rg.Const(1 - t).Mul(rg.Const(1).Sub(o).Log()))

		if sum == nil {
			sum = term
		} else {
			sum = sum.Add(term)
		}
	}

	return sum.Neg(), nil
}
