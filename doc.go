// Package revgrad trains feedforward neural networks by computing exact gradients
// through reverse-mode automatic differentiation, then applying gradient descent.
//
// For brevity, revgrad is abbreviated 'rg'.
//
// Differentiable Scalars
//
// The center of the package is the Scalar, a differentiable value that records, as
// it is produced, which primitive operation produced it and from which operands.
// Expressions built from Scalars therefore carry their own computation graph:
//
//		a, b := rg.Const(2), rg.Const(3)
//		y := a.Mul(b).Add(a.Exp())
//
// Calling ReverseTrace on the result propagates adjoints backward through that
// graph, leaving d(y)/d(x) in every Scalar x that contributed to y:
//
//		y.ResetTrace()
//		y.ReverseTrace(1)
//		_ = a.Adjoint() // d(y)/d(a)
//
// Anything composed from the primitives -- Dot, Sigmoid, SqDist, the activations
// and cost functions in the subpackages -- differentiates automatically, with no
// derivative rule of its own.
//
// Networks
//
// Networks are fully-connected and feedforward, built in one call:
//
//		net, err := rg.NewNetwork(2, []int{3, 1}, nil)
//
// The third argument is a source of initial weight values; nil draws uniformly
// from [-0.5, 0.5). Seedable sources are provided by the subpackage
// "initializers".
//
// Training
//
// Training is done through the type TrainArgs, used as a proxy for the type of
// optional arguments that are available in other languages (such as Python):
//
//		tr, err := net.Train(rg.TrainArgs{
//			Data:          data,
//			LearningRate:  hyperparams.Constant(0.9),
//			Epsilon:       0.005,
//			MaxIterations: 10000,
//		})
//
// The returned Trainer is a lazy sequence of per-iteration error values; each call
// to Next runs exactly one full pass over the training set, one backward pass, and
// one weight update:
//
//		for {
//			cost, ok := tr.Next()
//			if !ok {
//				break
//			}
//			_ = cost
//		}
//
// Next stops producing values once a cost below Epsilon has been emitted
// (Outcome() == Converged) or after MaxIterations passes (Outcome() == TimedOut).
// Reaching the iteration cap is not an error.
//
// activations, costfuncs, hyperparams, and initializers are - of course -
// subpackages of revgrad.
package revgrad
