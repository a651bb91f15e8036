// Package counter holds the signed tally shown at the top of the window.
package counter

// Counter is an unbounded signed integer. It is not safe for concurrent use;
// the owning view serializes mutations.
type Counter struct {
	value int
}

// New returns a counter at zero.
func New() *Counter {
	return &Counter{}
}

// Increment adds one.
func (counter *Counter) Increment() {
	counter.value++
}

// Decrement subtracts one. Negative values are valid.
func (counter *Counter) Decrement() {
	counter.value--
}

// Reset sets the value back to zero.
func (counter *Counter) Reset() {
	counter.value = 0
}

// Value returns the current value.
func (counter *Counter) Value() int {
	return counter.value
}
