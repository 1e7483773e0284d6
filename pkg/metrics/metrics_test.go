package metrics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCyclomaticDefaultsToOne(t *testing.T) {
	c := NewCyclomatic()
	assert.Equal(t, 1.0, c.Sum())
}

func TestCyclomaticMerge(t *testing.T) {
	parent := NewCyclomatic()
	child := NewCyclomatic()
	child.Increment()
	child.Increment()

	parent.Merge(&child)

	assert.Equal(t, 4.0, parent.Sum()) // 1 + (1 + 2)
}

func TestCyclomaticAverageZeroDenominator(t *testing.T) {
	c := NewCyclomatic()
	c.Increment()
	assert.Equal(t, 0.0, c.Average())

	c.SetSpaceFunctions(2)
	assert.Equal(t, 1.0, c.Average())
}

func TestExitAverage(t *testing.T) {
	var e Exit
	e.AddFunctionExit()
	e.AddClosureExit()

	assert.Equal(t, 1.0, e.FunctionExits())
	assert.Equal(t, 1.0, e.ClosureExits())
	assert.Equal(t, 2.0, e.Total())
	assert.Equal(t, 0.0, e.Average())

	e.SetSpaceFunctions(2)
	assert.Equal(t, 1.0, e.Average())
}

func TestNArgsMerge(t *testing.T) {
	var parent, child NArgs
	parent.AddFunctionArgs(2)
	child.AddFunctionArgs(1)
	child.AddClosureArgs(3)

	parent.Merge(&child)

	assert.Equal(t, 3.0, parent.FunctionArgs())
	assert.Equal(t, 3.0, parent.ClosureArgs())
	assert.Equal(t, 6.0, parent.Total())

	parent.SetSpaceFunctions(4)
	assert.Equal(t, 1.5, parent.Average())
}

func TestNomMerge(t *testing.T) {
	var parent, child Nom
	parent.AddFunction()
	child.AddFunction()
	child.AddClosure()

	parent.Merge(&child)

	assert.Equal(t, 2.0, parent.Functions())
	assert.Equal(t, 1.0, parent.Closures())
	assert.Equal(t, 3.0, parent.Total())
	assert.Equal(t, uint64(3), parent.Count())
}

func TestLocCounts(t *testing.T) {
	l := NewLoc(1, 10)
	l.AddCodeLines(1, 1)
	l.AddCodeLines(2, 2)
	l.AddCodeLines(2, 2) // same line twice counts once
	l.AddCommentLines(4, 6)
	l.AddLogical()
	l.AddLogical()

	assert.Equal(t, 10.0, l.Sloc())
	assert.Equal(t, 2.0, l.Ploc())
	assert.Equal(t, 3.0, l.Cloc())
	assert.Equal(t, 2.0, l.Lloc())
	assert.Equal(t, 5.0, l.Blank())
}

func TestLocEmptyUnitSentinel(t *testing.T) {
	l := NewLoc(0, 0)
	assert.Equal(t, 0.0, l.Sloc())
	assert.Equal(t, 0.0, l.Blank())
}

func TestLocMergeKeepsParentSpan(t *testing.T) {
	parent := NewLoc(1, 20)
	child := NewLoc(5, 8)
	child.AddCodeLines(5, 8)
	child.AddLogical()

	parent.Merge(&child)

	assert.Equal(t, 20.0, parent.Sloc())
	assert.Equal(t, 4.0, parent.Ploc())
	assert.Equal(t, 1.0, parent.Lloc())
}

func TestLocMergeDeduplicatesLines(t *testing.T) {
	parent := NewLoc(1, 10)
	parent.AddCodeLines(3, 3)
	child := NewLoc(3, 5)
	child.AddCodeLines(3, 3)

	parent.Merge(&child)

	assert.Equal(t, 1.0, parent.Ploc())
}

func TestHalsteadFinalize(t *testing.T) {
	maps := NewHalsteadMaps()
	maps.AddOperator("+")
	maps.AddOperator("+")
	maps.AddOperator("=")
	maps.AddOperand("a")
	maps.AddOperand("b")
	maps.AddOperand("a")

	var h Halstead
	maps.Finalize(&h)

	assert.Equal(t, 2.0, h.UniqueOperators())
	assert.Equal(t, 3.0, h.TotalOperators())
	assert.Equal(t, 2.0, h.UniqueOperands())
	assert.Equal(t, 3.0, h.TotalOperands())
	assert.Equal(t, 6.0, h.Length())
	assert.Equal(t, 4.0, h.Vocabulary())
	assert.InDelta(t, 12.0, h.Volume(), 1e-9) // 6 * log2(4)
	assert.InDelta(t, 1.5, h.Difficulty(), 1e-9)
	assert.InDelta(t, 18.0, h.Effort(), 1e-9)
	assert.InDelta(t, 1.0, h.Time(), 1e-9)
	assert.InDelta(t, 12.0/3000, h.Bugs(), 1e-9)
}

func TestHalsteadFinalizeIdempotent(t *testing.T) {
	maps := NewHalsteadMaps()
	maps.AddOperator("*")
	maps.AddOperand("x")

	var first, second Halstead
	maps.Finalize(&first)
	maps.Finalize(&second)

	assert.Equal(t, first, second)
}

func TestHalsteadDegenerateIsFinite(t *testing.T) {
	maps := NewHalsteadMaps()
	maps.AddOperator("+") // operators but no operands

	var h Halstead
	maps.Finalize(&h)

	for _, v := range []float64{
		h.Length(), h.EstimatedLength(), h.PurityRatio(), h.Vocabulary(),
		h.Volume(), h.Difficulty(), h.Level(), h.Effort(), h.Time(), h.Bugs(),
	} {
		assert.Equal(t, 0.0, v)
	}

	data, err := json.Marshal(h)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "NaN")
}

func TestHalsteadMapsMergeAddsCounts(t *testing.T) {
	parent := NewHalsteadMaps()
	parent.AddOperator("+")
	parent.AddOperand("a")

	child := NewHalsteadMaps()
	child.AddOperator("+")
	child.AddOperator("-")
	child.AddOperand("a")

	parent.Merge(&child)

	var h Halstead
	parent.Finalize(&h)

	assert.Equal(t, 2.0, h.UniqueOperators())
	assert.Equal(t, 3.0, h.TotalOperators())
	assert.Equal(t, 1.0, h.UniqueOperands())
	assert.Equal(t, 2.0, h.TotalOperands())
}

func TestSatAddSaturates(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), satAdd(math.MaxUint64, 1))
	assert.Equal(t, uint64(math.MaxUint64), satAdd(math.MaxUint64-1, 5))
	assert.Equal(t, uint64(7), satAdd(3, 4))
}

func TestComputeMiFiniteOnDegenerateInput(t *testing.T) {
	loc := NewLoc(0, 0)
	cyc := NewCyclomatic()
	var hal Halstead
	var mi Mi

	ComputeMi(&loc, &cyc, &hal, &mi)

	assert.False(t, math.IsNaN(mi.Original()))
	assert.False(t, math.IsInf(mi.Original(), 0))
	assert.False(t, math.IsNaN(mi.Sei()))
	assert.GreaterOrEqual(t, mi.VisualStudio(), 0.0)
}

func TestComputeMiSimpleSpace(t *testing.T) {
	loc := NewLoc(1, 10)
	loc.AddCodeLines(1, 10)
	cyc := NewCyclomatic()
	cyc.Increment()

	maps := NewHalsteadMaps()
	maps.AddOperator("+")
	maps.AddOperator("=")
	maps.AddOperand("a")
	maps.AddOperand("b")
	var hal Halstead
	maps.Finalize(&hal)

	var mi Mi
	ComputeMi(&loc, &cyc, &hal, &mi)

	expected := 171 - 5.2*math.Log(hal.Volume()) - 0.23*2 - 16.2*math.Log(10)
	assert.InDelta(t, expected, mi.Original(), 1e-9)
	assert.InDelta(t, math.Max(0, expected*100/171), mi.VisualStudio(), 1e-9)
}

func TestMiMergeIsNoOp(t *testing.T) {
	loc := NewLoc(1, 5)
	loc.AddCodeLines(1, 5)
	cyc := NewCyclomatic()

	maps := NewHalsteadMaps()
	maps.AddOperator("=")
	maps.AddOperand("x")
	var hal Halstead
	maps.Finalize(&hal)

	var parent, child Mi
	ComputeMi(&loc, &cyc, &hal, &parent)
	before := parent
	ComputeMi(&loc, &cyc, &hal, &child)

	parent.Merge(&child)
	assert.Equal(t, before, parent)
}

func TestCodeMetricsMergeIsCumulative(t *testing.T) {
	parent := NewCodeMetrics(1, 20)
	child := NewCodeMetrics(5, 10)

	child.Nom.AddFunction()
	child.NArgs.AddFunctionArgs(2)
	child.NExits.AddFunctionExit()
	child.Cyclomatic.Increment()
	child.Loc.AddCodeLines(5, 10)

	parent.Merge(&child)
	parent.SetSpaceFunctions()

	assert.Equal(t, 1.0, parent.Nom.Total())
	assert.Equal(t, 2.0, parent.NArgs.Total())
	assert.Equal(t, 1.0, parent.NExits.Total())
	assert.Equal(t, 3.0, parent.Cyclomatic.Sum())
	assert.Equal(t, 2.0, parent.NArgs.Average())
	assert.Equal(t, 1.0, parent.NExits.Average())
}
