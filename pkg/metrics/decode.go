package metrics

import (
	"encoding/json"
	"math"
)

// The decoders below reverse MarshalJSON so cached results behave like
// freshly computed ones. Where the wire form only carries derived values the
// decoder rebuilds an equivalent internal state: every accessor returns the
// same numbers, even though details like line identities are lost.

// denominator recovers an average's denominator from the marshaled total and
// average. A zero average decodes to a zero denominator; the accessors agree
// either way.
func denominator(total, average float64) uint64 {
	if average == 0 {
		return 0
	}
	return uint64(math.Round(total / average))
}

func (a *NArgs) UnmarshalJSON(data []byte) error {
	var v struct {
		Functions float64 `json:"functions"`
		Closures  float64 `json:"closures"`
		Total     float64 `json:"total"`
		Average   float64 `json:"average"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	a.fnArgs = uint64(v.Functions)
	a.closureArgs = uint64(v.Closures)
	a.spaceFunctions = denominator(v.Total, v.Average)
	return nil
}

func (e *Exit) UnmarshalJSON(data []byte) error {
	var v struct {
		Functions float64 `json:"functions"`
		Closures  float64 `json:"closures"`
		Total     float64 `json:"total"`
		Average   float64 `json:"average"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	e.fnExits = uint64(v.Functions)
	e.closureExits = uint64(v.Closures)
	e.spaceFunctions = denominator(v.Total, v.Average)
	return nil
}

func (c *Cyclomatic) UnmarshalJSON(data []byte) error {
	var v struct {
		Sum     float64 `json:"sum"`
		Average float64 `json:"average"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	c.sum = uint64(v.Sum)
	c.spaceFunctions = denominator(v.Sum, v.Average)
	return nil
}

func (n *Nom) UnmarshalJSON(data []byte) error {
	var v struct {
		Functions float64 `json:"functions"`
		Closures  float64 `json:"closures"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.functions = uint64(v.Functions)
	n.closures = uint64(v.Closures)
	return nil
}

func (h *Halstead) UnmarshalJSON(data []byte) error {
	var v struct {
		N1Unique float64 `json:"n1"`
		N1Total  float64 `json:"N1"`
		N2Unique float64 `json:"n2"`
		N2Total  float64 `json:"N2"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	h.uOperators = uint64(v.N1Unique)
	h.operators = uint64(v.N1Total)
	h.uOperands = uint64(v.N2Unique)
	h.operands = uint64(v.N2Total)
	return nil
}

// Loc decodes to a witness state: the span starts at line 1 and code and
// comment lines are renumbered from 1, which keeps every count intact.
func (l *Loc) UnmarshalJSON(data []byte) error {
	var v struct {
		Sloc float64 `json:"sloc"`
		Ploc float64 `json:"ploc"`
		Lloc float64 `json:"lloc"`
		Cloc float64 `json:"cloc"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = NewLoc(0, 0)
	if v.Sloc > 0 {
		l.startLine = 1
		l.endLine = uint64(v.Sloc)
	}
	for i := uint64(1); i <= uint64(v.Ploc); i++ {
		l.codeLines[i] = struct{}{}
	}
	for i := uint64(1); i <= uint64(v.Cloc); i++ {
		l.commentLines[i] = struct{}{}
	}
	l.logical = uint64(v.Lloc)
	return nil
}

func (m *Mi) UnmarshalJSON(data []byte) error {
	var v struct {
		Original     float64 `json:"mi_original"`
		Sei          float64 `json:"mi_sei"`
		VisualStudio float64 `json:"mi_visual_studio"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m.original = v.Original
	m.sei = v.Sei
	m.visualStudio = v.VisualStudio
	return nil
}
