package lang

// Role tags the syntactic role a reserved word plays.
type Role uint8

const (
	// RoleDeclaration marks words that introduce a declaration.
	RoleDeclaration Role = iota
	// RoleControl marks words that introduce a control-flow construct.
	RoleControl
)

func (r Role) String() string {
	switch r {
	case RoleDeclaration:
		return "declaration specifier"
	case RoleControl:
		return "control statement"
	}
	return "unknown"
}

// DeclSpecifier enumerates the declaration specifiers of B.
type DeclSpecifier uint8

const (
	DeclAuto DeclSpecifier = iota
	DeclExtrn
)

// CtrlStatement enumerates the control-statement identifiers of B.
type CtrlStatement uint8

const (
	CtrlGoto CtrlStatement = iota
	CtrlSwitch
	CtrlCase
	CtrlReturn
	CtrlIf
	CtrlElse
	CtrlWhile
	CtrlBreak
	CtrlDefault
)

// ReservedName is the tagged role of one reserved word. Role selects which of
// Decl and Ctrl is meaningful.
type ReservedName struct {
	Role Role
	Decl DeclSpecifier
	Ctrl CtrlStatement
}

func declaration(d DeclSpecifier) ReservedName {
	return ReservedName{Role: RoleDeclaration, Decl: d}
}

func control(c CtrlStatement) ReservedName {
	return ReservedName{Role: RoleControl, Ctrl: c}
}

// ReservedTable maps a keyword spelling to its tagged role.
type ReservedTable map[string]ReservedName

// Reserved builds the reserved-word table for B. Lookups are exact and
// case-sensitive; only lowercase spellings are keywords.
func Reserved() ReservedTable {
	return ReservedTable{
		"auto":    declaration(DeclAuto),
		"extrn":   declaration(DeclExtrn),
		"goto":    control(CtrlGoto),
		"switch":  control(CtrlSwitch),
		"case":    control(CtrlCase),
		"return":  control(CtrlReturn),
		"if":      control(CtrlIf),
		"else":    control(CtrlElse),
		"while":   control(CtrlWhile),
		"break":   control(CtrlBreak),
		"default": control(CtrlDefault),
	}
}

// Lookup returns the tagged role for a spelling, if it is reserved.
func (t ReservedTable) Lookup(spelling string) (ReservedName, bool) {
	r, ok := t[spelling]
	return r, ok
}
