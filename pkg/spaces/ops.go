package spaces

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdvornik/metra/pkg/lang"
	"github.com/kdvornik/metra/pkg/metrics"
	"github.com/kdvornik/metra/pkg/parser"
)

// Ops is the operator/operand view of a space: the distinct operator
// identities and operand spellings occurring in the space, descendants
// included, sorted lexicographically. The tree mirrors the metrics space
// tree.
type Ops struct {
	Name      string         `json:"name"`
	Kind      lang.SpaceKind `json:"kind"`
	StartLine uint64         `json:"start_line"`
	EndLine   uint64         `json:"end_line"`
	Operators []string       `json:"operators"`
	Operands  []string       `json:"operands"`
	Spaces    []*Ops         `json:"spaces"`
}

// opsScope accumulates a space's Halstead multisets; the distinct sorted
// lists are distilled when the scope closes.
type opsScope struct {
	ops  *Ops
	maps metrics.HalsteadMaps
}

// OperandsAndOperators builds the operator/operand tree of a parsed file.
// Returns nil when the file's language has no profile.
func OperandsAndOperators(result *parser.ParseResult) *Ops {
	adapter := lang.For(result.Language)
	if adapter == nil {
		return nil
	}
	root := result.Tree.RootNode()

	open := func(node *sitter.Node) (*opsScope, bool) {
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
		return &opsScope{
			ops: &Ops{
				Name:      name,
				Kind:      kind,
				StartLine: start,
				EndLine:   end,
			},
			maps: metrics.NewHalsteadMaps(),
		}, true
	}

	visit := func(s *opsScope, node *sitter.Node) {
		adapter.Halstead(node, result.Source, &s.maps)
	}

	merge := func(parent, child *opsScope) {
		child.seal()
		parent.maps.Merge(&child.maps)
		parent.ops.Spaces = append(parent.ops.Spaces, child.ops)
	}

	top, ok := walkScopes(root, open, visit, merge)
	if !ok {
		return nil
	}
	top.seal()
	return top.ops
}

func (s *opsScope) seal() {
	s.ops.Operators = sortedDistinct(s.maps.Operators())
	s.ops.Operands = sortedDistinct(s.maps.Operands())
}

func sortedDistinct(items []string) []string {
	sort.Strings(items)
	return items
}
