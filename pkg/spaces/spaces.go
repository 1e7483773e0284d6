// Package spaces extracts the scope tree of a parsed source file and computes
// the per-scope complexity metrics. A space is any scope unit the language
// profile recognizes: the file itself, functions and closures, classes,
// structs, traits, impl blocks, and namespaces.
package spaces

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdvornik/metra/pkg/lang"
	"github.com/kdvornik/metra/pkg/metrics"
	"github.com/kdvornik/metra/pkg/parser"
)

// anonymousName labels spaces the grammar gives no name, like closures.
const anonymousName = "<anonymous>"

// FuncSpace is one scope unit: its identity, line span, nested spaces in
// document order, and metrics. A parent's metrics include every descendant's.
type FuncSpace struct {
	Name      string              `json:"name"`
	Kind      lang.SpaceKind      `json:"kind"`
	StartLine uint64              `json:"start_line"`
	EndLine   uint64              `json:"end_line"`
	Spaces    []*FuncSpace        `json:"spaces"`
	Metrics   metrics.CodeMetrics `json:"metrics"`
}

// scope pairs an open space with its transient Halstead multisets. The
// multisets are merged upward as scopes close and distilled into the space's
// Halstead value exactly once, when the scope itself closes.
type scope struct {
	space *FuncSpace
	maps  metrics.HalsteadMaps
}

// Metrics builds the space tree of a parsed file and computes the selected
// metric families. The root space is the file unit, named after the file
// path. Returns nil when the file's language has no profile.
func Metrics(result *parser.ParseResult, sel Selection) *FuncSpace {
	adapter := lang.For(result.Language)
	if adapter == nil {
		return nil
	}
	root := result.Tree.RootNode()

	open := func(node *sitter.Node) (*scope, bool) {
		kind := adapter.SpaceKind(node)
		if kind == lang.SpaceUnknown {
			return nil, false
		}
		start, end := spaceSpan(node, kind)
		name := anonymousName
		if kind == lang.SpaceUnit {
			name = result.Path
		} else if n, ok := adapter.FuncSpaceName(node, result.Source); ok {
			name = n
		}
		return &scope{
			space: &FuncSpace{
				Name:      name,
				Kind:      kind,
				StartLine: start,
				EndLine:   end,
				Metrics:   metrics.NewCodeMetrics(start, end),
			},
			maps: metrics.NewHalsteadMaps(),
		}, true
	}

	visit := func(s *scope, node *sitter.Node) {
		m := &s.space.Metrics
		// Nom always runs: it is the averages' denominator.
		adapter.Nom(node, &m.Nom)
		if sel.Has(MetricNArgs) {
			adapter.NArgs(node, result.Source, &m.NArgs)
		}
		if sel.Has(MetricNExits) {
			adapter.Exit(node, &m.NExits)
		}
		if sel.Has(MetricCyclomatic) {
			adapter.Cyclomatic(node, result.Source, &m.Cyclomatic)
		}
		if sel.Has(MetricHalstead) {
			adapter.Halstead(node, result.Source, &s.maps)
		}
		if sel.Has(MetricLoc) {
			kind := s.space.Kind
			adapter.Loc(node, &m.Loc, kind != lang.SpaceUnit, kind == lang.SpaceUnit)
		}
	}

	merge := func(parent, child *scope) {
		finalizeScope(child, sel)
		parent.maps.Merge(&child.maps)
		parent.space.Metrics.Merge(&child.space.Metrics)
		parent.space.Spaces = append(parent.space.Spaces, child.space)
	}

	top, ok := walkScopes(root, open, visit, merge)
	if !ok {
		return nil
	}
	finalizeScope(top, sel)
	return top.space
}

// finalizeScope seals a scope once all its children are merged: the Halstead
// value is distilled from the merged multisets, the average denominators are
// fixed, and the maintainability score is derived last, from the already
// cumulative loc, cyclomatic, and halstead values.
func finalizeScope(s *scope, sel Selection) {
	m := &s.space.Metrics
	if sel.Has(MetricHalstead) {
		s.maps.Finalize(&m.Halstead)
	}
	m.SetSpaceFunctions()
	if sel.Has(MetricMi) {
		metrics.ComputeMi(&m.Loc, &m.Cyclomatic, &m.Halstead, &m.Mi)
	}
}

// spaceSpan returns the 1-based inclusive line span of a space. The file unit
// ends on the row of its last token; every other space's end row is converted
// to a 1-based line like its start. An empty file spans (0, 0).
func spaceSpan(node *sitter.Node, kind lang.SpaceKind) (uint64, uint64) {
	if kind == lang.SpaceUnit {
		if node.StartByte() == node.EndByte() {
			return 0, 0
		}
		return uint64(node.StartPoint().Row) + 1, uint64(node.EndPoint().Row)
	}
	return uint64(node.StartPoint().Row) + 1, uint64(node.EndPoint().Row) + 1
}
