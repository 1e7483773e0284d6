package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdvornik/metra/pkg/parser"
	"github.com/kdvornik/metra/pkg/spaces"
)

func analyze(t *testing.T, path, source string) File {
	t.Helper()
	p := parser.New()
	defer p.Close()

	result, err := p.Parse([]byte(source), parser.DetectLanguage(path), path)
	require.NoError(t, err)

	root := spaces.Metrics(result, nil)
	require.NotNil(t, root)
	return File{Path: path, Language: result.Language, Spaces: root}
}

func analyzeOps(t *testing.T, path, source string) OpsFile {
	t.Helper()
	p := parser.New()
	defer p.Close()

	result, err := p.Parse([]byte(source), parser.DetectLanguage(path), path)
	require.NoError(t, err)

	root := spaces.OperandsAndOperators(result)
	require.NotNil(t, root)
	return OpsFile{Path: path, Language: result.Language, Ops: root}
}

func TestSummarize(t *testing.T) {
	files := []File{
		analyze(t, "a.py", "def f(x):\n    if x:\n        return 1\n    return 2\n"),
		analyze(t, "b.py", "def g():\n    pass\n\ndef h():\n    pass\n"),
	}

	s := Summarize(files)
	assert.Equal(t, 2, s.Files)
	assert.Equal(t, 3.0, s.Functions)
	assert.Greater(t, s.Sloc, 0.0)
	assert.GreaterOrEqual(t, s.Cyclomatic.Max, s.Cyclomatic.Min)
	assert.GreaterOrEqual(t, s.Cyclomatic.Mean, s.Cyclomatic.Min)
}

func TestSummarizeSkipsMissingSpaces(t *testing.T) {
	files := []File{
		{Path: "unparsed.txt"},
		analyze(t, "a.py", "def f():\n    pass\n"),
	}

	s := Summarize(files)
	assert.Equal(t, 1, s.Files)
	assert.Equal(t, 1.0, s.Functions)
}

func TestDescribe(t *testing.T) {
	d := describe([]float64{4, 1, 3, 2})
	assert.Equal(t, 2.5, d.Mean)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 4.0, d.Max)
	assert.Greater(t, d.StdDev, 0.0)

	empty := describe(nil)
	assert.Equal(t, Distribution{}, empty)

	single := describe([]float64{7})
	assert.Equal(t, 7.0, single.Mean)
	assert.Equal(t, 0.0, single.StdDev)
}

func TestRank(t *testing.T) {
	assert.Equal(t, "good", Rank(92.3))
	assert.Equal(t, "good", Rank(85))
	assert.Equal(t, "moderate", Rank(70))
	assert.Equal(t, "low", Rank(12))
	assert.Equal(t, "low", Rank(-3))
}

func TestMetricsReportRendersRows(t *testing.T) {
	files := []File{
		analyze(t, "b.py", "def g():\n    pass\n"),
		analyze(t, "a.py", "def f(x):\n    return x\n"),
	}

	r := Metrics(files)

	var buf bytes.Buffer
	require.NoError(t, r.RenderText(&buf, false))
	text := buf.String()

	assert.Contains(t, text, "a.py")
	assert.Contains(t, text, "b.py")
	assert.Contains(t, text, "Summary")
	assert.Contains(t, text, "Files: 2")

	// Files are listed in path order regardless of input order.
	assert.Less(t, strings.Index(text, "a.py"), strings.Index(text, "b.py"))
}

func TestMetricsReportData(t *testing.T) {
	files := []File{analyze(t, "a.py", "def f():\n    pass\n")}

	data := Metrics(files).RenderData().(map[string]any)
	assert.Contains(t, data, "files")
	assert.Contains(t, data, "summary")

	summary := data["summary"].(*Summary)
	assert.Equal(t, 1, summary.Files)
}

func TestDetailListsNestedSpaces(t *testing.T) {
	f := analyze(t, "nested.py", strings.Join([]string{
		"def outer():",
		"    def inner():",
		"        pass",
		"    return inner",
		"",
	}, "\n"))

	table := Detail(f)

	var buf bytes.Buffer
	require.NoError(t, table.RenderText(&buf, false))
	text := buf.String()

	assert.Contains(t, text, "nested.py")
	assert.Contains(t, text, "outer")
	assert.Contains(t, text, "inner")
}

func TestOpsReport(t *testing.T) {
	files := []OpsFile{analyzeOps(t, "a.py", "def f(a):\n    return a + 1\n")}

	r := Ops(files)

	var buf bytes.Buffer
	require.NoError(t, r.RenderText(&buf, false))
	text := buf.String()

	assert.Contains(t, text, "a.py")
	assert.Contains(t, text, "f")
}
