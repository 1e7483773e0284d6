package metrics

import "encoding/json"

// NArgs counts the arguments declared by the functions and closures in a
// space.
type NArgs struct {
	fnArgs         uint64
	closureArgs    uint64
	spaceFunctions uint64
}

// AddFunctionArgs records the argument count of a plain function.
func (a *NArgs) AddFunctionArgs(n uint64) {
	a.fnArgs += n
}

// AddClosureArgs records the argument count of a closure.
func (a *NArgs) AddClosureArgs(n uint64) {
	a.closureArgs += n
}

// Merge folds a child space's counters into this one.
func (a *NArgs) Merge(other *NArgs) {
	a.fnArgs += other.fnArgs
	a.closureArgs += other.closureArgs
}

// SetSpaceFunctions fixes the denominator used by Average.
func (a *NArgs) SetSpaceFunctions(n uint64) {
	a.spaceFunctions = n
}

// FunctionArgs returns the number of arguments of plain functions.
func (a NArgs) FunctionArgs() float64 {
	return float64(a.fnArgs)
}

// ClosureArgs returns the number of arguments of closures.
func (a NArgs) ClosureArgs() float64 {
	return float64(a.closureArgs)
}

// Total returns the number of arguments of every function and closure in the
// space.
func (a NArgs) Total() float64 {
	return a.FunctionArgs() + a.ClosureArgs()
}

// Average returns arguments per function/closure, or 0 when the space holds
// none.
func (a NArgs) Average() float64 {
	if a.spaceFunctions == 0 {
		return 0
	}
	return a.Total() / float64(a.spaceFunctions)
}

func (a NArgs) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"functions": a.FunctionArgs(),
		"closures":  a.ClosureArgs(),
		"total":     a.Total(),
		"average":   a.Average(),
	})
}
