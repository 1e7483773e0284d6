package lang

import (
	"github.com/kdvornik/metra/pkg/parser"
)

// typescriptProfile extends the JavaScript tables with interfaces, namespaces
// and enum declarations. The same profile serves TSX: the grammar differs only
// in JSX element nodes, which are neither spaces nor decision points.
var typescriptProfile = &profile{
	language: parser.LangTypeScript,

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
	classTypes:     newSet("class_declaration", "class", "abstract_class_declaration"),
	traitTypes:     newSet("interface_declaration"),
	namespaceTypes: newSet("internal_module", "module"),

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
		"type_alias_declaration",
		"enum_declaration",
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
		"class", "extends", "implements", "async", "await", "yield",
		"void", "with", "static", "get", "set", "export", "import",
		"interface", "namespace", "module", "enum", "type",
		"public", "private", "protected", "readonly", "abstract",
		"declare", "keyof", "as", "is", "satisfies",
	),
	exitTypes: newSet("return_statement"),
}
