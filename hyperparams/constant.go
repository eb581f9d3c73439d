// Package hyperparams provides implementations of revgrad.HyperParameter, used to
// supply iteration-dependent training quantities such as the learning rate.
package hyperparams

type constant float64

// Constant returns a HyperParameter with the same value at every iteration.
func Constant(value float64) *constant {
	c := constant(value)
	return &c
}

func (c *constant) TypeString() string {
	return "constant"
}

func (c *constant) Value(iter int) float64 {
	return float64(*c)
}
