package lang

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdvornik/metra/pkg/parser"
)

var javaProfile = &profile{
	language: parser.LangJava,

	unitTypes:    newSet("program"),
	funcTypes:    newSet("method_declaration", "constructor_declaration"),
	closureTypes: newSet("lambda_expression"),
	classTypes:   newSet("class_declaration", "enum_declaration"),
	traitTypes:   newSet("interface_declaration"),

	decisionTypes: newSet(
		"if_statement",
		"for_statement",
		"enhanced_for_statement",
		"while_statement",
		"do_statement",
		"switch_label",
		"catch_clause",
		"ternary_expression",
	),
	commentTypes: newSet("comment", "line_comment", "block_comment"),
	statementTypes: newSet(
		"expression_statement",
		"local_variable_declaration",
		"return_statement",
		"throw_statement",
		"break_statement",
		"continue_statement",
		"assert_statement",
		"yield_statement",
		"if_statement",
		"for_statement",
		"enhanced_for_statement",
		"while_statement",
		"do_statement",
		"switch_expression",
		"try_statement",
		"try_with_resources_statement",
		"synchronized_statement",
		"labeled_statement",
	),
	keywords: newSet(
		"class", "interface", "enum", "extends", "implements",
		"public", "private", "protected", "static", "final",
		"abstract", "synchronized", "volatile", "transient", "native",
		"throws", "assert", "package", "import", "super", "var",
	),
	exitTypes: newSet("return_statement"),

	argsFn: javaArgs,
}

// javaArgs handles the single-parameter lambda form "x -> x + 1", whose
// parameter is a bare identifier rather than a formal_parameters list.
func javaArgs(p *profile, node *sitter.Node, _ []byte) uint64 {
	if node.Type() == "lambda_expression" {
		params := node.ChildByFieldName("parameters")
		if params == nil {
			return 0
		}
		if params.Type() == "identifier" {
			return 1
		}
		return uint64(params.NamedChildCount())
	}
	return countNamedParams(node)
}
