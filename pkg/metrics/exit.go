package metrics

import "encoding/json"

// Exit counts the possible exit points of the functions and closures in a
// space.
type Exit struct {
	fnExits        uint64
	closureExits   uint64
	spaceFunctions uint64
}

// AddFunctionExit records an exit point inside a plain function.
func (e *Exit) AddFunctionExit() {
	e.fnExits++
}

// AddClosureExit records an exit point inside a closure.
func (e *Exit) AddClosureExit() {
	e.closureExits++
}

// Merge folds a child space's counters into this one.
func (e *Exit) Merge(other *Exit) {
	e.fnExits += other.fnExits
	e.closureExits += other.closureExits
}

// SetSpaceFunctions fixes the denominator used by Average.
func (e *Exit) SetSpaceFunctions(n uint64) {
	e.spaceFunctions = n
}

// FunctionExits returns the number of exit points of plain functions.
func (e Exit) FunctionExits() float64 {
	return float64(e.fnExits)
}

// ClosureExits returns the number of exit points of closures.
func (e Exit) ClosureExits() float64 {
	return float64(e.closureExits)
}

// Total returns the number of exit points of every function and closure in
// the space.
func (e Exit) Total() float64 {
	return e.FunctionExits() + e.ClosureExits()
}

// Average returns exit points per function/closure, or 0 when the space
// holds none.
func (e Exit) Average() float64 {
	if e.spaceFunctions == 0 {
		return 0
	}
	return e.Total() / float64(e.spaceFunctions)
}

func (e Exit) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"functions": e.FunctionExits(),
		"closures":  e.ClosureExits(),
		"total":     e.Total(),
		"average":   e.Average(),
	})
}
