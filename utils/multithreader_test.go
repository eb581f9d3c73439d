package utils

import (
	"sync/atomic"
	"testing"
)

func TestMultiThreadCoversRange(t *testing.T) {
	for _, opsPerThread := range []int{1, 3, 64} {
		counts := make([]int32, 100)

		MultiThread(0, len(counts), func(i int) {
			atomic.AddInt32(&counts[i], 1)
		}, opsPerThread, 2)

		for i, c := range counts {
			if c != 1 {
				t.Errorf("opsPerThread %d: index %d handled %d times, want once", opsPerThread, i, c)
			}
		}
	}
}

func TestMultiThreadEmptyRange(t *testing.T) {
	ran := false
	MultiThread(5, 5, func(i int) { ran = true }, 1, 1)

	if ran {
		t.Errorf("f was run for an empty range")
	}
}

func TestMultiThreadOffsetRange(t *testing.T) {
	var sum int64
	MultiThread(10, 20, func(i int) {
		atomic.AddInt64(&sum, int64(i))
	}, 4, 1)

	if sum != 145 {
		t.Errorf("sum over [10, 20) is %d, want 145", sum)
	}
}
