package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for one diagnostic kind. Codes are
// banded by phase: 2xxx syntax, 3xxx semantic.
type Code uint16

const (
	UnknownCode Code = 0

	// Syntax
	SynInfo             Code = 2000
	SynBracketNotOpened Code = 2001
	SynBracketNotClosed Code = 2002
	SynEmptyTokenStream Code = 2003
	SynParsingError     Code = 2004

	// Semantic
	SemInfo                  Code = 3000
	SemNameNotDefined        Code = 3001
	SemNameRedefined         Code = 3002
	SemInitVarWithItself     Code = 3003
	SemStandardNameRedefined Code = 3004
	SemVecWithNoSizeAndInits Code = 3005
	SemVecSizeIsNotANumber   Code = 3006
	SemFnBodyIsNullStatement Code = 3007
	SemEmptyCompound         Code = 3008
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	SynInfo:                  "Syntax information",
	SynBracketNotOpened:      "Bracket was never opened",
	SynBracketNotClosed:      "Bracket is never closed",
	SynEmptyTokenStream:      "Empty token stream",
	SynParsingError:          "Failed to parse",
	SemInfo:                  "Semantic information",
	SemNameNotDefined:        "Name is not defined",
	SemNameRedefined:         "Name is redefined",
	SemInitVarWithItself:     "Variable is initialized with itself",
	SemStandardNameRedefined: "Standard library name is redefined",
	SemVecWithNoSizeAndInits: "Vector has neither size nor initializers",
	SemVecSizeIsNotANumber:   "Vector size is not a number",
	SemFnBodyIsNullStatement: "Function body is a null statement",
	SemEmptyCompound:         "Compound statement is empty",
}

// ID returns the stable string form of a code, e.g. "SEM3002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	}
	return "E0000"
}

// Title returns the short description of a code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
