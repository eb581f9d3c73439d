package main

import (
	rg "github.com/sharnoff/revgrad"
	"github.com/sharnoff/revgrad/hyperparams"
	"github.com/sharnoff/revgrad/initializers"

	"fmt"
	"math/rand"
)

const (
	statusFrequency int = 1000

	// main hyperparameters
	learningRate  float64 = 0.9
	epsilon       float64 = 0.005
	maxIterations int     = 100000

	seed int64 = 1
)

func main() {
	dataset := [][][]float64{
		{{0, 0}, {0}},
		{{0, 1}, {1}},
		{{1, 0}, {1}},
		{{1, 1}, {0}},
	}

	data, err := rg.Data(dataset)
	if err != nil {
		panic(err.Error())
	}

	fmt.Println("Setting up network...")
	src := initializers.Uniform().Source(rand.New(rand.NewSource(seed)))
	net, err := rg.NewNetwork(2, []int{3, 1}, src)
	if err != nil {
		panic(err.Error())
	}

	fmt.Println("Starting training...")
	tr, err := net.Train(rg.TrainArgs{
		Data:          data,
		LearningRate:  hyperparams.Constant(learningRate),
		Epsilon:       epsilon,
		MaxIterations: maxIterations,
		SendStatus:    rg.Every(statusFrequency),
		Update: func(r rg.Result) {
			fmt.Printf("%d, %v\n", r.Iteration, r.Cost)
		},
	})
	if err != nil {
		panic(err.Error())
	}

	costs, err := tr.Run()
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("Done training! (%s after %d iterations, final cost %v)\n",
		tr.Outcome(), tr.Iterations(), costs[len(costs)-1])

	fmt.Println("Testing...")
	cost, correct, err := net.Test(data, rg.CorrectRound)
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("Average cost: %v, fraction correct: %v\n", cost, correct)
	for _, d := range data {
		outs, _ := net.GetOutputs(d.Inputs)
		fmt.Printf("%v -> %v (want %v)\n", d.Inputs, outs, d.Targets)
	}
}
