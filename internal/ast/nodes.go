// Package ast declares the node handles the diagnostic layer stores inside
// issues. The parser owns the concrete node representations; this package only
// fixes the capability a diagnostic needs from a node: recover a source span
// (and, for definitions, the declared name) when the issue is rendered.
package ast

import (
	"blang/internal/source"
)

// Node is an opaque handle to any syntax-tree node.
type Node interface {
	Span() source.Span
}

// Definition is a handle to a name-introducing node (variable, vector, or
// function definition).
type Definition interface {
	Node
	DeclaredName() string
}

// VectorDefinition is a handle to a vector definition.
type VectorDefinition interface {
	Definition
}

// FunctionDefinition is a handle to a function definition.
type FunctionDefinition interface {
	Definition
}

// CompoundStatement is a handle to a braced statement block.
type CompoundStatement interface {
	Node
}
