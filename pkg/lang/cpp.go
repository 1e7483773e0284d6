package lang

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdvornik/metra/pkg/parser"
)

var cProfile = &profile{
	language: parser.LangC,

	unitTypes:   newSet("translation_unit"),
	funcTypes:   newSet("function_definition"),
	structTypes: newSet("struct_specifier"),

	decisionTypes:  cDecisionTypes,
	commentTypes:   newSet("comment"),
	statementTypes: cStatementTypes,
	keywords: newSet(
		"struct", "union", "enum", "typedef",
		"static", "extern", "register", "volatile", "const",
		"sizeof", "inline", "restrict",
	),
	exitTypes: newSet("return_statement"),

	nameFn: cppDeclaratorName,
	argsFn: cppArgs,
}

var cppProfile = &profile{
	language: parser.LangCPP,

	unitTypes:      newSet("translation_unit"),
	funcTypes:      newSet("function_definition"),
	closureTypes:   newSet("lambda_expression"),
	classTypes:     newSet("class_specifier"),
	structTypes:    newSet("struct_specifier"),
	namespaceTypes: newSet("namespace_definition"),

	decisionTypes:  cDecisionTypes,
	commentTypes:   newSet("comment"),
	statementTypes: cStatementTypes,
	keywords: newSet(
		"struct", "union", "enum", "typedef", "class", "namespace",
		"static", "extern", "register", "volatile", "const", "constexpr", "mutable",
		"sizeof", "inline", "virtual", "override", "final", "explicit",
		"public", "private", "protected", "friend", "using", "template", "typename",
		"operator", "noexcept", "co_await", "co_yield", "co_return",
	),
	exitTypes: newSet("return_statement", "co_return_statement"),

	nameFn: cppDeclaratorName,
	argsFn: cppArgs,
}

var cDecisionTypes = newSet(
	"if_statement",
	"for_statement",
	"for_range_loop",
	"while_statement",
	"do_statement",
	"case_statement",
	"catch_clause",
	"conditional_expression",
)

var cStatementTypes = newSet(
	"expression_statement",
	"declaration",
	"return_statement",
	"break_statement",
	"continue_statement",
	"goto_statement",
	"if_statement",
	"for_statement",
	"for_range_loop",
	"while_statement",
	"do_statement",
	"switch_statement",
	"try_statement",
	"throw_statement",
	"labeled_statement",
	"co_return_statement",
)

// cppDeclaratorName walks a function definition's declarator chain until it
// reaches the declared identifier. Pointer, reference and function declarators
// nest arbitrarily: "int *(*f(void))(int)" still names f.
func cppDeclaratorName(node *sitter.Node, source []byte) (string, bool) {
	decl := node.ChildByFieldName("declarator")
	for decl != nil {
		switch decl.Type() {
		case "identifier", "field_identifier", "qualified_identifier",
			"destructor_name", "operator_name":
			return parser.GetNodeText(decl, source), true
		}
		next := decl.ChildByFieldName("declarator")
		if next == nil {
			return "", false
		}
		decl = next
	}
	return "", false
}

// cppArgs finds the function_declarator in the chain and counts its parameter
// declarations. A lone "void" parameter list declares nothing.
func cppArgs(p *profile, node *sitter.Node, source []byte) uint64 {
	var params *sitter.Node
	if node.Type() == "lambda_expression" {
		if decl := node.ChildByFieldName("declarator"); decl != nil {
			params = decl.ChildByFieldName("parameters")
		}
	} else {
		decl := node.ChildByFieldName("declarator")
		for decl != nil && decl.Type() != "function_declarator" {
			decl = decl.ChildByFieldName("declarator")
		}
		if decl != nil {
			params = decl.ChildByFieldName("parameters")
		}
	}
	if params == nil {
		return 0
	}
	if isLoneVoid(params, source) {
		return 0
	}
	var count uint64
	for i := range int(params.NamedChildCount()) {
		t := params.NamedChild(i).Type()
		if t == "parameter_declaration" || t == "optional_parameter_declaration" ||
			t == "variadic_parameter_declaration" {
			count++
		}
	}
	return count
}

// isLoneVoid reports whether the parameter list is exactly "(void)": one
// undeclared parameter whose type spells void.
func isLoneVoid(params *sitter.Node, source []byte) bool {
	if params.NamedChildCount() != 1 {
		return false
	}
	only := params.NamedChild(0)
	if only.Type() != "parameter_declaration" || only.ChildByFieldName("declarator") != nil {
		return false
	}
	typ := only.ChildByFieldName("type")
	return typ != nil && parser.GetNodeText(typ, source) == "void"
}
