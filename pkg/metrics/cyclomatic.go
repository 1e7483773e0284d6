package metrics

import "encoding/json"

// Cyclomatic tracks the branch complexity of a space: one unit of base
// complexity per space plus one per decision-introducing node.
type Cyclomatic struct {
	sum            uint64
	spaceFunctions uint64
}

// NewCyclomatic returns the metric for a freshly opened space.
func NewCyclomatic() Cyclomatic {
	return Cyclomatic{sum: 1}
}

// Increment records one decision point.
func (c *Cyclomatic) Increment() {
	c.sum++
}

// Merge folds a child space's counters into this one.
func (c *Cyclomatic) Merge(other *Cyclomatic) {
	c.sum += other.sum
}

// SetSpaceFunctions fixes the denominator used by Average: the number of
// functions and closures in the space, descendants included.
func (c *Cyclomatic) SetSpaceFunctions(n uint64) {
	c.spaceFunctions = n
}

// Sum returns the cyclomatic complexity of the space.
func (c Cyclomatic) Sum() float64 {
	return float64(c.sum)
}

// Average returns the cyclomatic complexity per function/closure in the
// space, or 0 when the space holds none.
func (c Cyclomatic) Average() float64 {
	if c.spaceFunctions == 0 {
		return 0
	}
	return c.Sum() / float64(c.spaceFunctions)
}

func (c Cyclomatic) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"sum":     c.Sum(),
		"average": c.Average(),
	})
}
