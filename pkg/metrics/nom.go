package metrics

import "encoding/json"

// Nom counts the functions and closures in a space.
type Nom struct {
	functions uint64
	closures  uint64
}

// AddFunction records a plain function definition.
func (n *Nom) AddFunction() {
	n.functions++
}

// AddClosure records a closure definition.
func (n *Nom) AddClosure() {
	n.closures++
}

// Merge folds a child space's counters into this one.
func (n *Nom) Merge(other *Nom) {
	n.functions += other.functions
	n.closures += other.closures
}

// Functions returns the number of plain functions in the space.
func (n Nom) Functions() float64 {
	return float64(n.functions)
}

// Closures returns the number of closures in the space.
func (n Nom) Closures() float64 {
	return float64(n.closures)
}

// Total returns functions plus closures.
func (n Nom) Total() float64 {
	return n.Functions() + n.Closures()
}

// Count returns Total as an integer, for use as an average denominator.
func (n Nom) Count() uint64 {
	return n.functions + n.closures
}

func (n Nom) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"functions": n.Functions(),
		"closures":  n.Closures(),
		"total":     n.Total(),
	})
}
