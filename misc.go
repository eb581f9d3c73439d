package revgrad

import (
	"math"
	"sort"
)

// CorrectRound satisfies the isCorrect argument to Test: each output, rounded to
// the nearest integer, must equal its target.
//
// assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}

// for use in CorrectHighest()
type sortable struct {
	values  []float64
	indexes []int
}

func (s sortable) Len() int {
	return len(s.values)
}
func (s sortable) Less(i, j int) bool {
	return s.values[i] > s.values[j]
}
func (s sortable) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.indexes[i], s.indexes[j] = s.indexes[j], s.indexes[i]
	return
}

// just returns whether or not the largest value in each is the same
//
// outs and targets are copied before sorting; the originals are untouched
func CorrectHighest(outs, targets []float64) bool {
	indexes := make([]int, len(outs))
	for i := range indexes {
		indexes[i] = i
	}

	copyOfIndexes := make([]int, len(outs))
	copy(copyOfIndexes, indexes)

	outsCopy := make([]float64, len(outs))
	copy(outsCopy, outs)
	targetsCopy := make([]float64, len(targets))
	copy(targetsCopy, targets)

	o := sortable{outsCopy, indexes}
	t := sortable{targetsCopy, copyOfIndexes}

	sort.Sort(o)
	sort.Sort(t)

	return o.indexes[0] == t.indexes[0]
}

// Every returns a function that satisfies TrainArgs.SendStatus
// 'frequency' is in units of iterations
//
// this function is self-explanatory from viewing the source
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}
