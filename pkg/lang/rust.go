package lang

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdvornik/metra/pkg/metrics"
	"github.com/kdvornik/metra/pkg/parser"
)

var rustProfile = &profile{
	language: parser.LangRust,

	unitTypes:    newSet("source_file"),
	funcTypes:    newSet("function_item"),
	closureTypes: newSet("closure_expression"),
	structTypes:  newSet("struct_item"),
	traitTypes:   newSet("trait_item"),
	implTypes:    newSet("impl_item"),

	decisionTypes: newSet(
		"if_expression",
		"while_expression",
		"for_expression",
		"loop_expression",
		"match_expression",
		"if_let_expression",
		"while_let_expression",
	),
	commentTypes: newSet("line_comment", "block_comment"),
	statementTypes: newSet(
		"let_declaration",
		"expression_statement",
		"use_declaration",
		"const_item",
		"static_item",
		"macro_invocation",
	),
	keywords: newSet(
		"match", "loop", "impl", "trait",
		"async", "await", "move", "ref", "mut",
		"fn", "let", "use", "pub", "mod", "struct", "enum", "unsafe", "where", "dyn",
	),

	exitFn: rustExit,
}

// rustExit counts explicit return expressions as function exits; a closure
// with a declared return type exits through its body expression.
func rustExit(p *profile, node *sitter.Node, stats *metrics.Exit) {
	switch {
	case node.Type() == "return_expression":
		stats.AddFunctionExit()
	case p.IsClosure(node) && node.ChildByFieldName("return_type") != nil:
		stats.AddClosureExit()
	}
}
