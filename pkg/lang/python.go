package lang

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdvornik/metra/pkg/metrics"
	"github.com/kdvornik/metra/pkg/parser"
)

var pythonProfile = &profile{
	language: parser.LangPython,

	unitTypes:    newSet("module"),
	funcTypes:    newSet("function_definition"),
	closureTypes: newSet("lambda"),
	classTypes:   newSet("class_definition"),

	decisionTypes: newSet(
		"if_statement",
		"elif_clause",
		"while_statement",
		"for_statement",
		"except_clause",
		"with_statement",
		"conditional_expression",
		"list_comprehension",
		"set_comprehension",
		"dictionary_comprehension",
		"generator_expression",
	),
	commentTypes: newSet("comment"),
	statementTypes: newSet(
		"expression_statement",
		"return_statement",
		"pass_statement",
		"raise_statement",
		"assert_statement",
		"import_statement",
		"import_from_statement",
		"global_statement",
		"nonlocal_statement",
		"delete_statement",
		"break_statement",
		"continue_statement",
		"if_statement",
		"while_statement",
		"for_statement",
		"with_statement",
		"try_statement",
	),
	keywords: newSet(
		"elif", "except", "with", "as",
		"yield", "lambda", "and", "or", "not",
		"is", "assert", "raise", "pass", "del",
		"def", "class", "import", "from", "global", "nonlocal", "await", "async",
	),

	exitFn: pythonExit,
}

// pythonExit counts return statements as function exits; a lambda body is an
// expression, so the lambda itself is its one exit point. The "lambda" keyword
// token shares the expression's type string and must not count.
func pythonExit(p *profile, node *sitter.Node, stats *metrics.Exit) {
	switch {
	case node.Type() == "return_statement":
		stats.AddFunctionExit()
	case p.IsClosure(node):
		stats.AddClosureExit()
	}
}
