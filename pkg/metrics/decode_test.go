package metrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeMetricsDecodePreservesAccessors(t *testing.T) {
	m := NewCodeMetrics(1, 12)
	m.NArgs.AddFunctionArgs(3)
	m.NArgs.AddClosureArgs(1)
	m.NExits.AddFunctionExit()
	m.NExits.AddFunctionExit()
	m.Cyclomatic.Increment()
	m.Cyclomatic.Increment()
	m.Loc.AddCodeLines(1, 8)
	m.Loc.AddCommentLines(9, 10)
	m.Loc.AddLogical()
	m.Loc.AddLogical()
	m.Nom.AddFunction()
	m.Nom.AddClosure()
	m.SetSpaceFunctions()

	maps := NewHalsteadMaps()
	maps.AddOperator("+")
	maps.AddOperator("+")
	maps.AddOperator("=")
	maps.AddOperand("x")
	maps.AddOperand("1")
	maps.Finalize(&m.Halstead)
	ComputeMi(&m.Loc, &m.Cyclomatic, &m.Halstead, &m.Mi)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var got CodeMetrics
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, m.NArgs.Total(), got.NArgs.Total())
	assert.Equal(t, m.NArgs.Average(), got.NArgs.Average())
	assert.Equal(t, m.NExits.Total(), got.NExits.Total())
	assert.Equal(t, m.NExits.Average(), got.NExits.Average())
	assert.Equal(t, m.Cyclomatic.Sum(), got.Cyclomatic.Sum())
	assert.Equal(t, m.Cyclomatic.Average(), got.Cyclomatic.Average())
	assert.Equal(t, m.Loc.Sloc(), got.Loc.Sloc())
	assert.Equal(t, m.Loc.Ploc(), got.Loc.Ploc())
	assert.Equal(t, m.Loc.Lloc(), got.Loc.Lloc())
	assert.Equal(t, m.Loc.Cloc(), got.Loc.Cloc())
	assert.Equal(t, m.Loc.Blank(), got.Loc.Blank())
	assert.Equal(t, m.Nom.Total(), got.Nom.Total())
	assert.Equal(t, m.Nom.Count(), got.Nom.Count())
	assert.Equal(t, m.Halstead.Volume(), got.Halstead.Volume())
	assert.Equal(t, m.Halstead.Difficulty(), got.Halstead.Difficulty())
	assert.Equal(t, m.Mi.Original(), got.Mi.Original())
	assert.Equal(t, m.Mi.Sei(), got.Mi.Sei())
	assert.Equal(t, m.Mi.VisualStudio(), got.Mi.VisualStudio())
}

func TestDenominatorRecovery(t *testing.T) {
	assert.Equal(t, uint64(0), denominator(0, 0))
	assert.Equal(t, uint64(2), denominator(3, 1.5))
	assert.Equal(t, uint64(7), denominator(7, 1))
}
