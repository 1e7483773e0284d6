package lang

// Shared Halstead classification tables. Pre-allocated once; profiles add
// language-specific keyword sets on top.

// halsteadOperatorSymbols contains punctuation tokens counted as operators.
var halsteadOperatorSymbols = newSet(
	"+", "-", "*", "/", "%",
	"=", "==", "!=", "<", ">",
	"<=", ">=", "&&", "||", "!",
	"&", "|", "^", "~",
	"<<", ">>", ">>>",
	"+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=", "<<=", ">>=",
	"++", "--",
	"?", ":", "::",
	"=>", "->", ":=", "<-",
	".", ",", ";",
	"[", "]", "(", ")", "{", "}",
	"...", "..", "..=",
)

// halsteadCommonKeywords contains keyword operators shared by most supported
// languages.
var halsteadCommonKeywords = newSet(
	"if", "else", "for", "while",
	"switch", "case", "default",
	"break", "continue", "return",
	"try", "catch", "finally", "throw",
	"new", "delete", "typeof", "instanceof",
	"in", "of", "do", "goto",
)

// halsteadOperandTypes contains node types whose text is an operand.
var halsteadOperandTypes = newSet(
	// Identifiers
	"identifier",
	"type_identifier",
	"field_identifier",
	"property_identifier",
	"shorthand_property_identifier",
	"statement_identifier",
	"package_identifier",
	// Literals
	"number",
	"integer",
	"integer_literal",
	"int_literal",
	"float",
	"float_literal",
	"number_literal",
	"decimal_integer_literal",
	"decimal_floating_point_literal",
	"hex_integer_literal",
	"string",
	"string_literal",
	"raw_string_literal",
	"interpreted_string_literal",
	"template_string",
	"character",
	"char_literal",
	"character_literal",
	"rune_literal",
	"boolean_literal",
	"true",
	"false",
	"nil",
	"null",
	"null_literal",
	"none",
	"undefined",
	"regex",
	"regular_expression",
	"self",
	"this",
)
