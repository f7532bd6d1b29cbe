package iterate

import (
	"fmt"
	"iter"
	"math"
)

// Range is a finite, inclusive run of integers from Start to End, moving by
// Step, which is +1 or -1. A zero Step moves towards End. Every iteration
// starts again from Start.
type Range struct {
	Start int
	End   int
	Step  int
}

// From returns the range 0..end: ascending, or descending when end < 0.
func From(end int) Range {
	return Between(0, end)
}

// Between returns the range start..end, descending when start > end.
func Between(start, end int) Range {
	step := 1
	if start > end {
		step = -1
	}
	return Range{Start: start, End: end, Step: step}
}

// Len is the number of values in r, saturated at math.MaxInt. A Step
// pointing away from End gives an empty range.
func (r Range) Len() int {
	if r.empty() {
		return 0
	}

	// unsigned difference stays exact across the whole int domain
	var span uint
	if r.step() < 0 {
		span = uint(r.Start) - uint(r.End)
	} else {
		span = uint(r.End) - uint(r.Start)
	}
	if span >= math.MaxInt {
		return math.MaxInt
	}
	return int(span) + 1
}

// All yields (position, value) pairs in generation order.
func (r Range) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if r.empty() {
			return
		}
		step := r.step()
		for pos, v := 0, r.Start; ; pos, v = pos+1, v+step {
			if !yield(pos, v) || v == r.End {
				return
			}
		}
	}
}

func (r Range) empty() bool {
	if r.step() < 0 {
		return r.Start < r.End
	}
	return r.Start > r.End
}

func (r Range) step() int {
	switch {
	case r.Step > 0:
		return 1
	case r.Step < 0:
		return -1
	case r.Start > r.End:
		return -1
	}
	return 1
}

// Values yields the values of r in generation order.
func (r Range) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range r.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice collects r into a new slice sized by Len, so it only suits ranges
// that fit in memory.
func (r Range) Slice() []int {
	out := make([]int, 0, r.Len())
	for v := range r.Values() {
		out = append(out, v)
	}
	return out
}

func (r Range) String() string {
	return fmt.Sprintf("range(%d..%d)", r.Start, r.End)
}
