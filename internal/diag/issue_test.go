package diag_test

import (
	"strings"
	"testing"

	"blang/internal/diag"
	"blang/internal/source"
)

// defNode is a minimal stand-in for the parser's definition nodes.
type defNode struct {
	name string
	span source.Span
}

func (d defNode) Span() source.Span { return d.span }
func (d defNode) DeclaredName() string { return d.name }

// blockNode is a minimal stand-in for a compound statement.
type blockNode struct {
	span source.Span
}

func (b blockNode) Span() source.Span { return b.span }

func span(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestIssueCodesAndMessages(t *testing.T) {
	def := defNode{name: "x", span: span(4, 10)}
	vec := defNode{name: "v", span: span(12, 30)}
	fn := defNode{name: "main", span: span(0, 40)}
	block := blockNode{span: span(20, 22)}

	cases := []struct {
		issue   diag.Issue
		code    diag.Code
		primary source.Span
		wantIn  string
	}{
		{diag.BracketNotOpened{Pos: span(7, 8)}, diag.SynBracketNotOpened, span(7, 8), "no matching opening"},
		{diag.BracketNotClosed{Pos: span(2, 3)}, diag.SynBracketNotClosed, span(2, 3), "never closed"},
		{diag.EmptyTokenStream{}, diag.SynEmptyTokenStream, source.Span{}, "no tokens"},
		{diag.ParsingError{}, diag.SynParsingError, source.Span{}, "failed to parse"},
		{diag.NameNotDefined{Name: "foo", Pos: span(5, 8)}, diag.SemNameNotDefined, span(5, 8), "'foo' is not defined"},
		{diag.NameRedefined{Name: "bar", Pos: span(9, 12)}, diag.SemNameRedefined, span(9, 12), "'bar' is redefined"},
		{diag.InitVarWithItself{Def: def, Pos: span(4, 10)}, diag.SemInitVarWithItself, span(4, 10), "'x' is initialized with itself"},
		{diag.StandardNameRedefined{Def: defNode{name: "printf", span: span(1, 7)}}, diag.SemStandardNameRedefined, span(1, 7), "'printf'"},
		{diag.VecWithNoSizeAndInits{Vec: vec}, diag.SemVecWithNoSizeAndInits, span(12, 30), "neither a size nor initializers"},
		{diag.VecSizeIsNotANumber{Vec: vec}, diag.SemVecSizeIsNotANumber, span(12, 30), "is not a number"},
		{diag.FnBodyIsNullStatement{Fn: fn}, diag.SemFnBodyIsNullStatement, span(0, 40), "'main' is a null statement"},
		{diag.EmptyCompound{Block: block}, diag.SemEmptyCompound, span(20, 22), "compound statement is empty"},
	}
	for _, tc := range cases {
		if got := tc.issue.Code(); got != tc.code {
			t.Fatalf("%T: Code() = %v, want %v", tc.issue, got, tc.code)
		}
		if got := tc.issue.Primary(); got != tc.primary {
			t.Fatalf("%T: Primary() = %v, want %v", tc.issue, got, tc.primary)
		}
		msg := tc.issue.Message()
		if msg == "" {
			t.Fatalf("%T: empty message", tc.issue)
		}
		if !strings.Contains(msg, tc.wantIn) {
			t.Fatalf("%T: Message() = %q, want it to contain %q", tc.issue, msg, tc.wantIn)
		}
	}
}

func TestIssueNilNodesStillRender(t *testing.T) {
	issues := []diag.Issue{
		diag.InitVarWithItself{},
		diag.StandardNameRedefined{},
		diag.VecWithNoSizeAndInits{},
		diag.VecSizeIsNotANumber{},
		diag.FnBodyIsNullStatement{},
		diag.EmptyCompound{},
	}
	for _, issue := range issues {
		if issue.Message() == "" {
			t.Fatalf("%T: empty message for nil node", issue)
		}
		if got := issue.Primary(); got != (source.Span{}) {
			t.Fatalf("%T: Primary() = %v, want zero span", issue, got)
		}
	}
}
