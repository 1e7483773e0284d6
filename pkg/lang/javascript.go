package lang

import (
	"github.com/kdvornik/metra/pkg/parser"
)

var javascriptProfile = &profile{
	language: parser.LangJavaScript,

	unitTypes: newSet("program"),
	funcTypes: newSet(
		"function_declaration",
		"generator_function_declaration",
		"method_definition",
	),
	closureTypes: newSet(
		"function_expression",
		"function",
		"generator_function",
		"arrow_function",
	),
	classTypes: newSet("class_declaration", "class"),

	decisionTypes: newSet(
		"if_statement",
		"for_statement",
		"for_in_statement",
		"while_statement",
		"do_statement",
		"switch_case",
		"catch_clause",
		"ternary_expression",
	),
	commentTypes: newSet("comment"),
	statementTypes: newSet(
		"expression_statement",
		"variable_declaration",
		"lexical_declaration",
		"return_statement",
		"throw_statement",
		"break_statement",
		"continue_statement",
		"debugger_statement",
		"import_statement",
		"export_statement",
		"if_statement",
		"for_statement",
		"for_in_statement",
		"while_statement",
		"do_statement",
		"switch_statement",
		"try_statement",
		"labeled_statement",
	),
	keywords: newSet(
		"function", "var", "let", "const",
		"class", "extends", "async", "await", "yield",
		"void", "with", "static", "get", "set", "export", "import",
	),
	exitTypes: newSet("return_statement"),
}
