package ledger

// Counter tallies uses within one cycle (checks written, transactions made).
// Accounts that share a Counter share its cycle.
type Counter struct {
	n int
}

// Value returns the number of uses counted in the current cycle.
func (c *Counter) Value() int {
	return c.n
}

func (c *Counter) inc() {
	c.n++
}

func (c *Counter) reset() {
	c.n = 0
}

// Counters holds the cycle counters an account draws on.
type Counters struct {
	Checks       *Counter
	Transactions *Counter
}

// NewCounters returns a fresh, unshared set of counters.
func NewCounters() Counters {
	return Counters{Checks: &Counter{}, Transactions: &Counter{}}
}
