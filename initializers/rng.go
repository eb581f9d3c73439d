// Package initializers provides sources of random initial weight values,
// implementing revgrad.RNG.
//
// Every source uses the package-global math/rand generator unless pinned to an
// owned one with Source, which makes initialization reproducible:
//
//		src := initializers.Uniform().Source(rand.New(rand.NewSource(1)))
//		net, err := rg.NewNetwork(2, []int{3, 1}, src)
package initializers

import "math/rand"

type uniform struct {
	lower, upper float64
	src          *rand.Rand
}

// Uniform returns an RNG that gives values uniformly spread between its bounds,
// which can be set by Bounds. The default bounds are [-0.5, 0.5), matching what
// NewNetwork does with a nil source.
func Uniform() *uniform {
	return &uniform{-0.5, 0.5, nil}
}

// Bounds sets the range of a Uniform RNG, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	u.lower = lower
	u.upper = upper
	return u
}

// Source pins the RNG to an owned generator, returning it.
func (u *uniform) Source(src *rand.Rand) *uniform {
	u.src = src
	return u
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	f := rand.Float64
	if u.src != nil {
		f = u.src.Float64
	}

	return f()*(u.upper-u.lower) + u.lower
}

type normal struct {
	mean, sd float64
	src      *rand.Rand
}

// Normal returns an RNG that gives values within a normal distribution, centered
// at 0 with standard deviation 0.5. The center and standard deviation can be set
// by Mean and SD, respectively.
func Normal() *normal {
	return &normal{0, 0.5, nil}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.sd = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.mean = mean
	return n
}

// Source pins the RNG to an owned generator, returning it.
func (n *normal) Source(src *rand.Rand) *normal {
	n.src = src
	return n
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen() float64 {
	f := rand.NormFloat64
	if n.src != nil {
		f = n.src.NormFloat64
	}

	return f()*n.sd + n.mean
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an RNG that gives values within a truncated normal
// distribution. The distribution is truncated at 2 standard deviations. The center
// and standard deviation can be set in the same way as Normal, because Normal is
// embedded in the TruncNormal type.
//
// Additionally, the number of standard deviations to truncate at can be set by
// Trunc.
func TruncNormal() *truncNormal {
	return &truncNormal{Normal(), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will
// panic if given sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Gen is the implementation of RNG for TruncNormal. It returns a random number.
func (t *truncNormal) Gen() float64 {
	f := rand.NormFloat64
	if t.src != nil {
		f = t.src.NormFloat64
	}

	for {
		v := f()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.sd + t.mean
	}
}
