package diag

import (
	"blang/internal/source"
)

// Note is a secondary span with context, e.g. "previously defined here".
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the flat, serialisable record an Issue renders to. It is what
// the Bag stores, the Printer formats, and the snapshot codec encodes.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Render maps an Issue onto its Diagnostic. Total over the closed issue set:
// every variant carries a total Message, and issues are hard errors by
// convention. A NameRedefined with a known prior definition gains a note
// pointing at it; an unknown prior position simply renders without one.
func Render(issue Issue) Diagnostic {
	d := Diagnostic{
		Severity: SevError,
		Code:     issue.Code(),
		Message:  issue.Message(),
		Primary:  issue.Primary(),
	}
	if redef, ok := issue.(NameRedefined); ok && redef.Prev != nil {
		d.Notes = append(d.Notes, Note{Span: *redef.Prev, Msg: "previously defined here"})
	}
	return d
}
