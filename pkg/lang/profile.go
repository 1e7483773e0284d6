package lang

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdvornik/metra/pkg/metrics"
	"github.com/kdvornik/metra/pkg/parser"
)

type set map[string]bool

func newSet(items ...string) set {
	s := make(set, len(items))
	for _, item := range items {
		s[item] = true
	}
	return s
}

// profile is a table-driven Adapter implementation. Most languages are pure
// tables; the irregular ones (Go multi-name parameters, C/C++ declarator
// chains, Rust closure exits) plug in override funcs.
type profile struct {
	language parser.Language

	unitTypes      set
	funcTypes      set
	closureTypes   set
	classTypes     set
	structTypes    set
	traitTypes     set
	implTypes      set
	namespaceTypes set

	decisionTypes  set
	commentTypes   set
	statementTypes set
	keywords       set // language-specific Halstead operator keywords

	exitTypes set // node types counted as a plain-function exit point

	// Overrides; nil means the generic behavior.
	kindFn  func(node *sitter.Node) SpaceKind
	nameFn  func(node *sitter.Node, source []byte) (string, bool)
	argsFn  func(p *profile, node *sitter.Node, source []byte) uint64
	exitFn  func(p *profile, node *sitter.Node, stats *metrics.Exit)
}

func (p *profile) Language() parser.Language { return p.language }

func (p *profile) IsFunc(node *sitter.Node) bool {
	return node.IsNamed() && p.funcTypes[node.Type()]
}

func (p *profile) IsClosure(node *sitter.Node) bool {
	return node.IsNamed() && p.closureTypes[node.Type()]
}

func (p *profile) IsFuncSpace(node *sitter.Node) bool {
	return p.SpaceKind(node) != SpaceUnknown
}

func (p *profile) SpaceKind(node *sitter.Node) SpaceKind {
	// Anonymous keyword tokens share type strings with named nodes: the
	// "function" and "class" keywords in JS/TS and "lambda" in Python would
	// otherwise open scopes of their own.
	if !node.IsNamed() {
		return SpaceUnknown
	}
	if p.kindFn != nil {
		if kind := p.kindFn(node); kind != SpaceUnknown {
			return kind
		}
	}
	t := node.Type()
	switch {
	case p.unitTypes[t]:
		return SpaceUnit
	case p.funcTypes[t], p.closureTypes[t]:
		return SpaceFunction
	case p.classTypes[t]:
		return SpaceClass
	case p.structTypes[t]:
		return SpaceStruct
	case p.traitTypes[t]:
		return SpaceTrait
	case p.implTypes[t]:
		return SpaceImpl
	case p.namespaceTypes[t]:
		return SpaceNamespace
	default:
		return SpaceUnknown
	}
}

func (p *profile) FuncSpaceName(node *sitter.Node, source []byte) (string, bool) {
	if p.nameFn != nil {
		if name, ok := p.nameFn(node, source); ok {
			return name, true
		}
	}
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		if name := parser.GetNodeText(nameNode, source); name != "" {
			return name, true
		}
	}
	return "", false
}

func (p *profile) Cyclomatic(node *sitter.Node, source []byte, stats *metrics.Cyclomatic) {
	t := node.Type()
	if p.decisionTypes[t] {
		stats.Increment()
		return
	}
	// Short-circuit operators are extra decision points.
	if t == "binary_expression" || t == "logical_expression" || t == "boolean_operator" {
		switch binaryOperator(node, source) {
		case "&&", "||", "and", "or":
			stats.Increment()
		}
	}
}

// binaryOperator returns the operator token of a binary-style expression.
func binaryOperator(node *sitter.Node, source []byte) string {
	for i := range int(node.ChildCount()) {
		child := node.Child(i)
		if child.ChildCount() == 0 && !child.IsNamed() {
			return parser.GetNodeText(child, source)
		}
	}
	return ""
}

func (p *profile) Halstead(node *sitter.Node, source []byte, maps *metrics.HalsteadMaps) {
	t := node.Type()
	if halsteadOperandTypes[t] {
		maps.AddOperand(parser.GetNodeText(node, source))
		return
	}
	if node.ChildCount() != 0 {
		return
	}
	text := parser.GetNodeText(node, source)
	if halsteadOperatorSymbols[text] || halsteadCommonKeywords[text] || p.keywords[text] {
		maps.AddOperator(text)
	}
}

func (p *profile) Loc(node *sitter.Node, stats *metrics.Loc, isFuncSpace, isUnit bool) {
	t := node.Type()
	if p.commentTypes[t] {
		stats.AddCommentLines(uint64(node.StartPoint().Row)+1, uint64(node.EndPoint().Row)+1)
		return
	}
	if p.statementTypes[t] {
		stats.AddLogical()
	}
	// Only tokens mark physical code lines; interior nodes are covered by
	// their leaves. Zero-width tokens, like the root of an empty file, occupy
	// no line.
	if node.ChildCount() == 0 && node.StartByte() != node.EndByte() {
		stats.AddCodeLines(uint64(node.StartPoint().Row)+1, uint64(node.EndPoint().Row)+1)
	}
}

func (p *profile) Nom(node *sitter.Node, stats *metrics.Nom) {
	if p.IsFunc(node) {
		stats.AddFunction()
	} else if p.IsClosure(node) {
		stats.AddClosure()
	}
}

func (p *profile) NArgs(node *sitter.Node, source []byte, stats *metrics.NArgs) {
	if p.IsFunc(node) {
		stats.AddFunctionArgs(p.countArgs(node, source))
	} else if p.IsClosure(node) {
		stats.AddClosureArgs(p.countArgs(node, source))
	}
}

func (p *profile) countArgs(node *sitter.Node, source []byte) uint64 {
	if p.argsFn != nil {
		return p.argsFn(p, node, source)
	}
	return countNamedParams(node)
}

// countNamedParams counts the named children of the node's parameter list.
// Grammars with a single unparenthesized parameter expose it through the
// "parameter" field instead.
func countNamedParams(node *sitter.Node) uint64 {
	params := node.ChildByFieldName("parameters")
	if params == nil {
		if node.ChildByFieldName("parameter") != nil {
			return 1
		}
		return 0
	}
	var count uint64
	for i := range int(params.NamedChildCount()) {
		if params.NamedChild(i).Type() == "comment" {
			continue
		}
		count++
	}
	return count
}

func (p *profile) Exit(node *sitter.Node, stats *metrics.Exit) {
	if p.exitFn != nil {
		p.exitFn(p, node, stats)
		return
	}
	if p.exitTypes[node.Type()] {
		stats.AddFunctionExit()
	}
}
