package diag

import (
	"fmt"

	"blang/internal/ast"
	"blang/internal/source"
)

// Issue is one detected violation. The set of implementations below is closed:
// the unexported marker method keeps external packages from adding variants,
// so Render and every other consumer can rely on handling all of them.
//
// Variants that point at a syntax-tree fragment hold it as an opaque ast
// handle and only ever recover its span and declared name.
type Issue interface {
	// Code returns the stable identifier of this issue kind.
	Code() Code
	// Primary returns the span the issue points at. Kinds without a
	// position (EmptyTokenStream, ParsingError) return the zero span.
	Primary() source.Span
	// Message renders the human-readable description. Total for every
	// variant.
	Message() string

	issue()
}

// BracketNotOpened reports a closing bracket with no matching open.
type BracketNotOpened struct {
	Pos source.Span
}

func (BracketNotOpened) Code() Code { return SynBracketNotOpened }
func (i BracketNotOpened) Primary() source.Span { return i.Pos }
func (BracketNotOpened) Message() string {
	return "closing bracket has no matching opening bracket"
}
func (BracketNotOpened) issue() {}

// BracketNotClosed reports an opened bracket that never finds its close.
type BracketNotClosed struct {
	Pos source.Span
}

func (BracketNotClosed) Code() Code { return SynBracketNotClosed }
func (i BracketNotClosed) Primary() source.Span { return i.Pos }
func (BracketNotClosed) Message() string {
	return "opening bracket is never closed"
}
func (BracketNotClosed) issue() {}

// EmptyTokenStream reports input that produced zero tokens.
type EmptyTokenStream struct{}

func (EmptyTokenStream) Code() Code { return SynEmptyTokenStream }
func (EmptyTokenStream) Primary() source.Span { return source.Span{} }
func (EmptyTokenStream) Message() string { return "source produced no tokens" }
func (EmptyTokenStream) issue() {}

// ParsingError reports that no valid syntax tree could be derived.
type ParsingError struct{}

func (ParsingError) Code() Code { return SynParsingError }
func (ParsingError) Primary() source.Span { return source.Span{} }
func (ParsingError) Message() string { return "failed to parse" }
func (ParsingError) issue() {}

// NameNotDefined reports a reference to a name with no declaration in scope.
type NameNotDefined struct {
	Name string
	Pos  source.Span
}

func (NameNotDefined) Code() Code { return SemNameNotDefined }
func (i NameNotDefined) Primary() source.Span { return i.Pos }
func (i NameNotDefined) Message() string {
	return fmt.Sprintf("name '%s' is not defined", i.Name)
}
func (NameNotDefined) issue() {}

// NameRedefined reports a conflicting second declaration of a name. Prev is
// the earlier definition's span when it is known, nil otherwise.
type NameRedefined struct {
	Name string
	Pos  source.Span
	Prev *source.Span
}

func (NameRedefined) Code() Code { return SemNameRedefined }
func (i NameRedefined) Primary() source.Span { return i.Pos }
func (i NameRedefined) Message() string {
	return fmt.Sprintf("name '%s' is redefined", i.Name)
}
func (NameRedefined) issue() {}

// InitVarWithItself reports a variable whose initializer refers to the
// variable being initialized.
type InitVarWithItself struct {
	Def ast.Definition
	Pos source.Span
}

func (InitVarWithItself) Code() Code { return SemInitVarWithItself }
func (i InitVarWithItself) Primary() source.Span { return i.Pos }
func (i InitVarWithItself) Message() string {
	return fmt.Sprintf("variable '%s' is initialized with itself", declaredName(i.Def))
}
func (InitVarWithItself) issue() {}

// StandardNameRedefined reports user code redeclaring a standard library name.
type StandardNameRedefined struct {
	Def ast.Definition
}

func (StandardNameRedefined) Code() Code { return SemStandardNameRedefined }
func (i StandardNameRedefined) Primary() source.Span { return nodeSpan(i.Def) }
func (i StandardNameRedefined) Message() string {
	return fmt.Sprintf("redefinition of standard library name '%s'", declaredName(i.Def))
}
func (StandardNameRedefined) issue() {}

// VecWithNoSizeAndInits reports a vector declared with neither an explicit
// size nor an initializer list.
type VecWithNoSizeAndInits struct {
	Vec ast.VectorDefinition
}

func (VecWithNoSizeAndInits) Code() Code { return SemVecWithNoSizeAndInits }
func (i VecWithNoSizeAndInits) Primary() source.Span { return nodeSpan(i.Vec) }
func (i VecWithNoSizeAndInits) Message() string {
	return fmt.Sprintf("vector '%s' has neither a size nor initializers", declaredName(i.Vec))
}
func (VecWithNoSizeAndInits) issue() {}

// VecSizeIsNotANumber reports a vector whose size expression is not a numeric
// literal.
type VecSizeIsNotANumber struct {
	Vec ast.VectorDefinition
}

func (VecSizeIsNotANumber) Code() Code { return SemVecSizeIsNotANumber }
func (i VecSizeIsNotANumber) Primary() source.Span { return nodeSpan(i.Vec) }
func (i VecSizeIsNotANumber) Message() string {
	return fmt.Sprintf("size of vector '%s' is not a number", declaredName(i.Vec))
}
func (VecSizeIsNotANumber) issue() {}

// FnBodyIsNullStatement reports a function defined with a null statement as
// its body.
type FnBodyIsNullStatement struct {
	Fn ast.FunctionDefinition
}

func (FnBodyIsNullStatement) Code() Code { return SemFnBodyIsNullStatement }
func (i FnBodyIsNullStatement) Primary() source.Span { return nodeSpan(i.Fn) }
func (i FnBodyIsNullStatement) Message() string {
	return fmt.Sprintf("body of function '%s' is a null statement", declaredName(i.Fn))
}
func (FnBodyIsNullStatement) issue() {}

// EmptyCompound reports a compound statement containing no statements.
type EmptyCompound struct {
	Block ast.CompoundStatement
}

func (EmptyCompound) Code() Code { return SemEmptyCompound }
func (i EmptyCompound) Primary() source.Span { return nodeSpan(i.Block) }
func (EmptyCompound) Message() string {
	return "compound statement is empty"
}
func (EmptyCompound) issue() {}

func nodeSpan(n ast.Node) source.Span {
	if n == nil {
		return source.Span{}
	}
	return n.Span()
}

func declaredName(d ast.Definition) string {
	if d == nil {
		return "<unknown>"
	}
	return d.DeclaredName()
}
