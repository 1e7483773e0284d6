package spaces

import (
	sitter "github.com/smacker/go-tree-sitter"
)

type frame struct {
	node  *sitter.Node
	level int
}

// walkScopes drives the scope-tracking pre-order traversal shared by the
// metrics and ops builders.
//
// Nodes are processed with an explicit stack. A node's level is the number of
// scopes enclosing it: when the next node's level drops below the previous
// one's, the difference is exactly the number of scopes that just ended, and
// each is folded into its parent. A node for which open returns true starts a
// new scope before visit sees it, so an opener is visited inside its own
// scope. Children are pushed in reverse so they pop in document order, which
// also makes child scopes fold into their parents in document order.
//
// The outermost scope is returned unfolded; the caller finalizes it. The
// second return is false when the root opens no scope at all.
func walkScopes[S any](root *sitter.Node,
	open func(node *sitter.Node) (S, bool),
	visit func(scope S, node *sitter.Node),
	merge func(parent, child S),
) (S, bool) {
	var zero S
	if root == nil {
		return zero, false
	}

	var scopes []S
	fold := func(n int) {
		for ; n > 0 && len(scopes) > 1; n-- {
			child := scopes[len(scopes)-1]
			scopes = scopes[:len(scopes)-1]
			merge(scopes[len(scopes)-1], child)
		}
	}

	stack := []frame{{node: root, level: 0}}
	lastLevel := 0

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.level < lastLevel {
			fold(lastLevel - f.level)
		}

		newLevel := f.level
		if scope, ok := open(f.node); ok {
			scopes = append(scopes, scope)
			newLevel = f.level + 1
		}
		lastLevel = newLevel

		if len(scopes) > 0 {
			visit(scopes[len(scopes)-1], f.node)
		}

		for i := int(f.node.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Child(i), level: newLevel})
		}
	}

	if len(scopes) == 0 {
		return zero, false
	}
	fold(len(scopes))
	return scopes[0], true
}
