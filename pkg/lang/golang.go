package lang

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdvornik/metra/pkg/parser"
)

var goProfile = &profile{
	language: parser.LangGo,

	unitTypes:    newSet("source_file"),
	funcTypes:    newSet("function_declaration", "method_declaration"),
	closureTypes: newSet("func_literal"),

	decisionTypes: newSet(
		"if_statement",
		"for_statement",
		"expression_switch_statement",
		"type_switch_statement",
		"select_statement",
	),
	commentTypes: newSet("comment"),
	statementTypes: newSet(
		"expression_statement",
		"send_statement",
		"inc_statement",
		"dec_statement",
		"assignment_statement",
		"short_var_declaration",
		"var_declaration",
		"const_declaration",
		"return_statement",
		"go_statement",
		"defer_statement",
		"break_statement",
		"continue_statement",
		"fallthrough_statement",
		"goto_statement",
		"if_statement",
		"for_statement",
		"expression_switch_statement",
		"type_switch_statement",
		"select_statement",
		"labeled_statement",
	),
	keywords: newSet(
		"go", "defer", "select", "range",
		"func", "chan", "map", "make", "append",
		"var", "const", "type", "struct", "interface", "package", "import",
	),
	exitTypes: newSet("return_statement"),

	kindFn: goKind,
	nameFn: goName,
	argsFn: goArgs,
}

// goKind classifies type declarations: struct types become Struct spaces,
// interface types Trait spaces. Other type declarations are not spaces.
func goKind(node *sitter.Node) SpaceKind {
	if node.Type() != "type_declaration" {
		return SpaceUnknown
	}
	for i := range int(node.NamedChildCount()) {
		spec := node.NamedChild(i)
		if spec.Type() != "type_spec" {
			continue
		}
		switch typeNode := spec.ChildByFieldName("type"); {
		case typeNode == nil:
		case typeNode.Type() == "struct_type":
			return SpaceStruct
		case typeNode.Type() == "interface_type":
			return SpaceTrait
		}
	}
	return SpaceUnknown
}

func goName(node *sitter.Node, source []byte) (string, bool) {
	if node.Type() != "type_declaration" {
		return "", false
	}
	for i := range int(node.NamedChildCount()) {
		spec := node.NamedChild(i)
		if spec.Type() != "type_spec" {
			continue
		}
		if nameNode := spec.ChildByFieldName("name"); nameNode != nil {
			return parser.GetNodeText(nameNode, source), true
		}
	}
	return "", false
}

// goArgs counts declared parameter names: "a, b int" declares two.
func goArgs(_ *profile, node *sitter.Node, _ []byte) uint64 {
	params := node.ChildByFieldName("parameters")
	if params == nil {
		return 0
	}
	var count uint64
	for i := range int(params.NamedChildCount()) {
		decl := params.NamedChild(i)
		if decl.Type() != "parameter_declaration" && decl.Type() != "variadic_parameter_declaration" {
			continue
		}
		var names uint64
		for j := range int(decl.NamedChildCount()) {
			if decl.NamedChild(j).Type() == "identifier" {
				names++
			}
		}
		if names == 0 {
			// Unnamed parameter, type only.
			names = 1
		}
		count += names
	}
	return count
}
