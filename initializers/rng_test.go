package initializers

import (
	"math/rand"
	"testing"
)

func TestUniformBounds(t *testing.T) {
	u := Uniform().Bounds(-2, 3)

	for i := 0; i < 1000; i++ {
		v := u.Gen()
		if v < -2 || v >= 3 {
			t.Fatalf("Uniform gave %v, want within [-2, 3)", v)
		}
	}
}

func TestUniformDefaultRange(t *testing.T) {
	u := Uniform()

	for i := 0; i < 1000; i++ {
		v := u.Gen()
		if v < -0.5 || v >= 0.5 {
			t.Fatalf("Uniform gave %v, want within [-0.5, 0.5)", v)
		}
	}
}

func TestSeededSourcesRepeat(t *testing.T) {
	gen := func() []float64 {
		u := Uniform().Source(rand.New(rand.NewSource(11)))
		vs := make([]float64, 50)
		for i := range vs {
			vs[i] = u.Gen()
		}
		return vs
	}

	first, second := gen(), gen()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("seeded Uniform diverged at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestTruncNormalStaysTruncated(t *testing.T) {
	tn := TruncNormal().Trunc(1.5)
	tn.SD(2).Mean(1)

	for i := 0; i < 1000; i++ {
		v := tn.Gen()
		if v < 1-1.5*2 || v > 1+1.5*2 {
			t.Fatalf("TruncNormal gave %v, want within [-2, 4]", v)
		}
	}
}

func TestTruncNormalBadTruncPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Trunc(0) did not panic")
		}
	}()

	TruncNormal().Trunc(0)
}
