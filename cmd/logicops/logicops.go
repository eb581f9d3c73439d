package main

import (
	rg "github.com/sharnoff/revgrad"
	"github.com/sharnoff/revgrad/hyperparams"
	"github.com/sharnoff/revgrad/initializers"

	"fmt"
	"math/rand"
)

// Trains single-neuron networks on the linearly separable logic gates. Each gate
// converges well within the iteration cap; XOR would not (see cmd/xor for the
// hidden-layer version).

const (
	learningRate  float64 = 0.9
	epsilon       float64 = 0.005
	maxIterations int     = 10000

	seed int64 = 1
)

var gates = map[string][][][]float64{
	"OR": {
		{{0, 0}, {0}},
		{{0, 1}, {1}},
		{{1, 0}, {1}},
		{{1, 1}, {1}},
	},
	"AND": {
		{{0, 0}, {0}},
		{{0, 1}, {0}},
		{{1, 0}, {0}},
		{{1, 1}, {1}},
	},
	"NAND": {
		{{0, 0}, {1}},
		{{0, 1}, {1}},
		{{1, 0}, {1}},
		{{1, 1}, {0}},
	},
}

func train(name string, dataset [][][]float64) {
	data, err := rg.Data(dataset)
	if err != nil {
		panic(err.Error())
	}

	src := initializers.Uniform().Source(rand.New(rand.NewSource(seed)))
	net, err := rg.NewNetwork(2, []int{1}, src)
	if err != nil {
		panic(err.Error())
	}

	tr, err := net.Train(rg.TrainArgs{
		Data:          data,
		LearningRate:  hyperparams.Constant(learningRate),
		Epsilon:       epsilon,
		MaxIterations: maxIterations,
	})
	if err != nil {
		panic(err.Error())
	}

	costs, err := tr.Run()
	if err != nil {
		panic(err.Error())
	}

	_, correct, err := net.Test(data, rg.CorrectRound)
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("%s: %s after %d iterations (final cost %v, fraction correct %v)\n",
		name, tr.Outcome(), tr.Iterations(), costs[len(costs)-1], correct)
}

func main() {
	for _, name := range []string{"OR", "AND", "NAND"} {
		train(name, gates[name])
	}
}
