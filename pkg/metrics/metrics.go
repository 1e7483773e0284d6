// Package metrics implements the per-space complexity accumulators: argument
// counts, exit points, branch complexity, Halstead token metrics, line
// counts, function counts, and the derived maintainability score.
//
// Each accumulator carries raw counters and a merge rule; averages and other
// derived values are computed on demand, never stored, and return 0 instead
// of NaN when their denominator is 0.
package metrics

// CodeMetrics is the fixed composite of the seven per-space metrics.
type CodeMetrics struct {
	NArgs      NArgs      `json:"nargs"`
	NExits     Exit       `json:"nexits"`
	Cyclomatic Cyclomatic `json:"cyclomatic"`
	Halstead   Halstead   `json:"halstead"`
	Loc        Loc        `json:"loc"`
	Nom        Nom        `json:"nom"`
	Mi         Mi         `json:"mi"`
}

// NewCodeMetrics returns the metrics of a freshly opened space spanning the
// given 1-based inclusive line range.
func NewCodeMetrics(startLine, endLine uint64) CodeMetrics {
	return CodeMetrics{
		Cyclomatic: NewCyclomatic(),
		Loc:        NewLoc(startLine, endLine),
	}
}

// Merge folds a closed child space's metrics into this space.
//
// Halstead is absent on purpose: its value is derived from the merged
// HalsteadMaps at finalize time. Mi.Merge is a no-op.
func (m *CodeMetrics) Merge(other *CodeMetrics) {
	m.NArgs.Merge(&other.NArgs)
	m.NExits.Merge(&other.NExits)
	m.Cyclomatic.Merge(&other.Cyclomatic)
	m.Loc.Merge(&other.Loc)
	m.Nom.Merge(&other.Nom)
	m.Mi.Merge(&other.Mi)
}

// SetSpaceFunctions fixes every average denominator to the number of
// functions and closures in the space. Call after all children are merged.
func (m *CodeMetrics) SetSpaceFunctions() {
	n := m.Nom.Count()
	m.NArgs.SetSpaceFunctions(n)
	m.NExits.SetSpaceFunctions(n)
	m.Cyclomatic.SetSpaceFunctions(n)
}
