package wheel

import "fmt"

// ItemsRange is a contiguous window of logical indices.
type ItemsRange struct {
	First int
	Count int
}

// Last returns the last index in the range, First-1 when empty.
func (r ItemsRange) Last() int { return r.First + r.Count - 1 }

// Contains reports whether index lies in the range.
func (r ItemsRange) Contains(index int) bool {
	return index >= r.First && index <= r.Last()
}

// Empty reports whether the range holds no indices.
func (r ItemsRange) Empty() bool { return r.Count <= 0 }

func (r ItemsRange) String() string {
	return fmt.Sprintf("[%d..%d]", r.First, r.Last())
}
