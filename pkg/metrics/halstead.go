package metrics

import (
	"encoding/json"
	"math"
)

// HalsteadMaps holds the transient per-space multisets of distinct operator
// and operand identities. They are merged upward as spaces close and
// finalized into a Halstead value exactly once per space.
type HalsteadMaps struct {
	operators map[string]uint64
	operands  map[string]uint64
}

// NewHalsteadMaps returns empty maps for a freshly opened space.
func NewHalsteadMaps() HalsteadMaps {
	return HalsteadMaps{
		operators: make(map[string]uint64),
		operands:  make(map[string]uint64),
	}
}

// AddOperator records one occurrence of an operator identity.
func (m *HalsteadMaps) AddOperator(token string) {
	m.operators[token] = satAdd(m.operators[token], 1)
}

// AddOperand records one occurrence of an operand spelling.
func (m *HalsteadMaps) AddOperand(text string) {
	m.operands[text] = satAdd(m.operands[text], 1)
}

// Merge unions a child space's maps into this one, adding counts.
func (m *HalsteadMaps) Merge(other *HalsteadMaps) {
	for token, count := range other.operators {
		m.operators[token] = satAdd(m.operators[token], count)
	}
	for text, count := range other.operands {
		m.operands[text] = satAdd(m.operands[text], count)
	}
}

// Operators returns the distinct operator identities seen so far.
func (m *HalsteadMaps) Operators() []string {
	keys := make([]string, 0, len(m.operators))
	for token := range m.operators {
		keys = append(keys, token)
	}
	return keys
}

// Operands returns the distinct operand spellings seen so far.
func (m *HalsteadMaps) Operands() []string {
	keys := make([]string, 0, len(m.operands))
	for text := range m.operands {
		keys = append(keys, text)
	}
	return keys
}

// Finalize derives the Halstead value from the merged maps. Calling it again
// on the same maps yields the same value.
func (m *HalsteadMaps) Finalize(h *Halstead) {
	h.uOperators = uint64(len(m.operators))
	h.uOperands = uint64(len(m.operands))
	h.operators = 0
	h.operands = 0
	for _, count := range m.operators {
		h.operators = satAdd(h.operators, count)
	}
	for _, count := range m.operands {
		h.operands = satAdd(h.operands, count)
	}
}

// satAdd adds without wrapping on overflow.
func satAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

// Halstead holds the token-based software science metric of a space.
// Every derived value is 0 when the space has no operators or no operands.
type Halstead struct {
	uOperators uint64 // n1: distinct operators
	operators  uint64 // N1: total operators
	uOperands  uint64 // n2: distinct operands
	operands   uint64 // N2: total operands
}

func (h Halstead) degenerate() bool {
	return h.uOperators == 0 || h.uOperands == 0
}

// UniqueOperators returns n1.
func (h Halstead) UniqueOperators() float64 { return float64(h.uOperators) }

// TotalOperators returns N1.
func (h Halstead) TotalOperators() float64 { return float64(h.operators) }

// UniqueOperands returns n2.
func (h Halstead) UniqueOperands() float64 { return float64(h.uOperands) }

// TotalOperands returns N2.
func (h Halstead) TotalOperands() float64 { return float64(h.operands) }

// Length returns the program length N = N1 + N2.
func (h Halstead) Length() float64 {
	if h.degenerate() {
		return 0
	}
	return h.TotalOperators() + h.TotalOperands()
}

// EstimatedLength returns n1*log2(n1) + n2*log2(n2).
func (h Halstead) EstimatedLength() float64 {
	if h.degenerate() {
		return 0
	}
	return h.UniqueOperators()*math.Log2(h.UniqueOperators()) +
		h.UniqueOperands()*math.Log2(h.UniqueOperands())
}

// PurityRatio returns the estimated length over the actual length.
func (h Halstead) PurityRatio() float64 {
	if h.degenerate() {
		return 0
	}
	return h.EstimatedLength() / h.Length()
}

// Vocabulary returns n = n1 + n2.
func (h Halstead) Vocabulary() float64 {
	if h.degenerate() {
		return 0
	}
	return h.UniqueOperators() + h.UniqueOperands()
}

// Volume returns V = N * log2(n).
func (h Halstead) Volume() float64 {
	if h.degenerate() {
		return 0
	}
	return h.Length() * math.Log2(h.Vocabulary())
}

// Difficulty returns D = (n1 / 2) * (N2 / n2).
func (h Halstead) Difficulty() float64 {
	if h.degenerate() {
		return 0
	}
	return h.UniqueOperators() / 2 * h.TotalOperands() / h.UniqueOperands()
}

// Level returns the inverse of Difficulty.
func (h Halstead) Level() float64 {
	if h.degenerate() {
		return 0
	}
	return 1 / h.Difficulty()
}

// Effort returns E = D * V.
func (h Halstead) Effort() float64 {
	if h.degenerate() {
		return 0
	}
	return h.Difficulty() * h.Volume()
}

// Time returns the estimated implementation time T = E / 18 seconds.
func (h Halstead) Time() float64 {
	if h.degenerate() {
		return 0
	}
	return h.Effort() / 18
}

// Bugs returns the delivered-bug estimate B = V / 3000.
func (h Halstead) Bugs() float64 {
	if h.degenerate() {
		return 0
	}
	return h.Volume() / 3000
}

func (h Halstead) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"n1":               h.UniqueOperators(),
		"N1":               h.TotalOperators(),
		"n2":               h.UniqueOperands(),
		"N2":               h.TotalOperands(),
		"length":           h.Length(),
		"estimated_length": h.EstimatedLength(),
		"purity_ratio":     h.PurityRatio(),
		"vocabulary":       h.Vocabulary(),
		"volume":           h.Volume(),
		"difficulty":       h.Difficulty(),
		"level":            h.Level(),
		"effort":           h.Effort(),
		"time":             h.Time(),
		"bugs":             h.Bugs(),
	})
}
