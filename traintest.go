package revgrad

import (
	"github.com/pkg/errors"
	"github.com/sharnoff/revgrad/utils"
)

// Datum is a simple wrapper used to send training samples to the Network. A Datum
// is owned by the caller and read-only to the training loop.
type Datum struct {
	// Inputs is the input of the network. It must have the same size as that of
	// the network's inputs.
	Inputs []float64

	// Targets is the expected output of the network, given the input.
	Targets []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the
// Network, allowing it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.InputSize() && len(d.Targets) == net.OutputSize()
}

// Data converts a 3D dataset of float64 to a slice of Datum, which can be used for
// training or testing. dataset indexing is: [data index][inputs, targets][values]
//
// N.B.: Data does not check if the data fit a certain network; that will be done
// during training/testing.
func Data(dataset [][][]float64) ([]Datum, error) {
	if len(dataset) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	ds := make([]Datum, len(dataset))
	for i := range dataset {
		if len(dataset[i]) < 2 {
			return nil, errors.Errorf("dataset lacks required data at index %d (len([%d]) < 2)", i, i)
		}

		ds[i] = Datum{dataset[i][0], dataset[i][1]}
	}

	return ds, nil
}

// Outcome is the state of a Trainer: Running while values are still being
// produced, then Converged or TimedOut.
type Outcome int8

const (
	Running   Outcome = iota // 0
	Converged Outcome = iota // 1
	TimedOut  Outcome = iota // 2
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case TimedOut:
		return "timed out"
	}

	return "unknown"
}

// A wrapper for sending back the progress of the training
type Result struct {
	// The iteration the result is being sent after
	Iteration int

	// The cost emitted at that iteration
	Cost float64
}

type TrainArgs struct {
	// Data is the training set, one full pass of which is made per iteration.
	Data []Datum

	// LearningRate provides eta for each iteration's update step. No validation
	// is performed on its values; a negative or zero learning rate is accepted
	// and simply fails to train.
	LearningRate HyperParameter

	// Epsilon is the convergence threshold: training stops as soon as an emitted
	// cost is below it. As with LearningRate, its range is not validated.
	Epsilon float64

	// MaxIterations bounds the number of iterations. Reaching it without
	// converging is reported through Outcome, not as an error.
	MaxIterations int

	// CostFunc builds each example's error in the trace. It can be left nil to
	// use SquaredError.
	CostFunc CostFunction

	// SendStatus indicates whether or not to send back the cost for the current
	// iteration through Update. SendStatus can be left nil to represent an
	// unconditional false.
	SendStatus func(int) bool

	// Update is how status updates are returned. If SendStatus is nil, Update can
	// also be left nil.
	Update func(Result)
}

// Trainer is the lazy sequence of per-iteration costs produced by training. Each
// call to Next computes exactly one iteration; consumption may stop at any point,
// and no iteration is computed before it is requested.
type Trainer struct {
	net  *Network
	args TrainArgs

	iter    int
	outcome Outcome
	err     error
}

// Train prepares gradient-descent training of the Network on args.Data, returning
// the Trainer that drives it. Each iteration of the Trainer runs the network
// forward on every example, builds the mean of the per-example costs in the trace,
// backpropagates from that mean, and replaces every weight w with
// w - eta*adjoint(w) (one global step per full pass -- batch, not stochastic,
// gradient descent). The Network is mutated in place.
//
// Train fails fast on an empty training set (ErrEmptyTrainingSet), on examples
// that do not fit the Network, and on a nil LearningRate.
func (net *Network) Train(args TrainArgs) (*Trainer, error) {
	if len(args.Data) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	if args.LearningRate == nil {
		return nil, errors.Errorf("LearningRate is nil")
	}

	if args.CostFunc == nil {
		args.CostFunc = SquaredError(false)
	}

	if args.SendStatus == nil {
		args.SendStatus = func(int) bool { return false }
	}

	if args.Update == nil {
		args.Update = func(Result) {}
	}

	for i, d := range args.Data {
		if !d.Fits(net) {
			return nil, errors.Errorf("Training example %d does not fit Network (%d inputs, %d targets)",
				i, len(d.Inputs), len(d.Targets))
		}
	}

	return &Trainer{net: net, args: args}, nil
}

// Next computes one training iteration and returns its cost. The second return is
// false once the sequence has finished -- after a cost below Epsilon has been
// emitted, after MaxIterations costs have been emitted, or after an error.
//
// The weight update for an iteration is applied before its cost is returned.
func (t *Trainer) Next() (float64, bool) {
	if t.outcome != Running || t.err != nil {
		return 0, false
	}

	if t.iter >= t.args.MaxIterations {
		t.outcome = TimedOut
		return 0, false
	}

	losses := make([]*Scalar, len(t.args.Data))
	errs := make([]error, len(t.args.Data))

	// Each example's forward pass builds an isolated subgraph (the shared weight
	// leaves are only read), so the passes can run in parallel. The graphs are
	// combined in index order below, keeping the iteration deterministic.
	f := func(i int) {
		d := t.args.Data[i]
		outs := t.net.run(Consts(d.Inputs))
		losses[i], errs[i] = t.args.CostFunc.Cost(outs, d.Targets)
	}

	opsPerThread, threadsPerCPU := 1, 1
	utils.MultiThread(0, len(losses), f, opsPerThread, threadsPerCPU)

	for i := range errs {
		if errs[i] != nil {
			t.err = errors.Wrapf(errs[i], "Failed to get cost of example %d on iteration %d\n", i, t.iter)
			return 0, false
		}
	}

	// The mean participates in the trace, so one backward pass reaches every
	// weight used across every example.
	cost := mean(losses)
	cost.ResetTrace()
	cost.ReverseTrace(1)

	t.net.adjust(t.args.LearningRate.Value(t.iter))
	t.iter++

	v := cost.Value()
	if t.args.SendStatus(t.iter) {
		t.args.Update(Result{t.iter, v})
	}

	if v < t.args.Epsilon {
		t.outcome = Converged
	}

	return v, true
}

// Run drains the Trainer, returning every emitted cost in order. The returned
// error is non-nil only for failures during iteration; running out of iterations
// is reported by Outcome instead.
func (t *Trainer) Run() ([]float64, error) {
	var vs []float64
	for {
		v, ok := t.Next()
		if !ok {
			break
		}

		vs = append(vs, v)
	}

	return vs, t.err
}

// Outcome returns the Trainer's state: Running until the sequence finishes, then
// Converged or TimedOut.
func (t *Trainer) Outcome() Outcome {
	return t.outcome
}

// Iterations returns the number of iterations completed so far.
func (t *Trainer) Iterations() int {
	return t.iter
}

// Err returns any error encountered while iterating.
func (t *Trainer) Err() error {
	return t.err
}

// Test evaluates the Network on the given data without training side effects,
// returning the average cost (by SquaredError) and the fraction of examples for
// which isCorrect returned true. isCorrect can be left nil to only compute cost.
func (net *Network) Test(data []Datum, isCorrect func([]float64, []float64) bool) (float64, float64, error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptyTrainingSet
	}

	if isCorrect == nil {
		isCorrect = func(a, b []float64) bool { return false }
	}

	cf := SquaredError(false)

	var avgCost, avgCorrect float64
	for i, d := range data {
		outs, err := net.GetOutputs(d.Inputs)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get Network outputs with test sample %d\n", i)
		}

		c, err := cf.Cost(Consts(outs), d.Targets)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get cost of test sample %d\n", i)
		}

		avgCost += c.Value()
		if isCorrect(outs, d.Targets) {
			avgCorrect += 1
		}
	}

	avgCost /= float64(len(data))
	avgCorrect /= float64(len(data))

	return avgCost, avgCorrect, nil
}
