// Package lang provides per-language capability profiles: node
// classification, space naming, and the per-metric visit hooks consumed by
// the space builder. The traversal itself never branches on language
// identity; everything grammar-specific lives here.
package lang

import (
	"encoding/json"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdvornik/metra/pkg/metrics"
	"github.com/kdvornik/metra/pkg/parser"
)

// SpaceKind classifies a scope unit.
type SpaceKind uint8

const (
	SpaceUnknown SpaceKind = iota
	SpaceFunction
	SpaceClass
	SpaceStruct
	SpaceTrait
	SpaceImpl
	SpaceUnit
	SpaceNamespace
)

// String returns the lowercase name of the kind.
func (k SpaceKind) String() string {
	switch k {
	case SpaceFunction:
		return "function"
	case SpaceClass:
		return "class"
	case SpaceStruct:
		return "struct"
	case SpaceTrait:
		return "trait"
	case SpaceImpl:
		return "impl"
	case SpaceUnit:
		return "unit"
	case SpaceNamespace:
		return "namespace"
	default:
		return "unknown"
	}
}

func (k SpaceKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *SpaceKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "function":
		*k = SpaceFunction
	case "class":
		*k = SpaceClass
	case "struct":
		*k = SpaceStruct
	case "trait":
		*k = SpaceTrait
	case "impl":
		*k = SpaceImpl
	case "unit":
		*k = SpaceUnit
	case "namespace":
		*k = SpaceNamespace
	default:
		*k = SpaceUnknown
	}
	return nil
}

// Adapter is the capability set of one supported language.
//
// Classification methods and metric hooks are total: they never fail, and a
// hook simply does nothing for node shapes (or whole concepts, like closures
// in C) that its language does not have.
type Adapter interface {
	Language() parser.Language

	// IsFunc reports whether the node opens a plain function or method.
	IsFunc(node *sitter.Node) bool
	// IsClosure reports whether the node opens a closure/lambda.
	IsClosure(node *sitter.Node) bool
	// IsFuncSpace reports whether the node opens any space: function,
	// closure, class, struct, trait, impl, namespace, or the file unit.
	IsFuncSpace(node *sitter.Node) bool
	// SpaceKind classifies a space-opening node; SpaceUnknown otherwise.
	SpaceKind(node *sitter.Node) SpaceKind
	// FuncSpaceName extracts the name of a space-opening node. The second
	// return is false when the grammar offers no name for the shape; that is
	// an absent value, not an error.
	FuncSpaceName(node *sitter.Node, source []byte) (string, bool)

	// Per-metric visit hooks, called for every node in document order with
	// the accumulator of the innermost open space.
	Cyclomatic(node *sitter.Node, source []byte, stats *metrics.Cyclomatic)
	Halstead(node *sitter.Node, source []byte, maps *metrics.HalsteadMaps)
	Loc(node *sitter.Node, stats *metrics.Loc, isFuncSpace, isUnit bool)
	Nom(node *sitter.Node, stats *metrics.Nom)
	NArgs(node *sitter.Node, source []byte, stats *metrics.NArgs)
	Exit(node *sitter.Node, stats *metrics.Exit)
}

// For returns the adapter for a language, or nil when the language has no
// profile.
func For(l parser.Language) Adapter {
	switch l {
	case parser.LangGo:
		return goProfile
	case parser.LangRust:
		return rustProfile
	case parser.LangPython:
		return pythonProfile
	case parser.LangJavaScript:
		return javascriptProfile
	case parser.LangTypeScript, parser.LangTSX:
		return typescriptProfile
	case parser.LangJava:
		return javaProfile
	case parser.LangC:
		return cProfile
	case parser.LangCPP:
		return cppProfile
	default:
		return nil
	}
}
