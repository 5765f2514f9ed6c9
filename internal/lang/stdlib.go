package lang

// LibraryKind distinguishes predeclared functions from predeclared variables.
// A function and a variable with the same spelling are distinct entries.
type LibraryKind uint8

const (
	LibraryFunction LibraryKind = iota
	LibraryVariable
)

func (k LibraryKind) String() string {
	switch k {
	case LibraryFunction:
		return "function"
	case LibraryVariable:
		return "variable"
	}
	return "unknown"
}

// Arity is the number of arguments a library function expects. Fixed=false
// encodes variadic/unchecked call sites (printf, concat); Count is meaningless
// then.
type Arity struct {
	Count uint8
	Fixed bool
}

// FixedArity returns an exact, checked argument count.
func FixedArity(n uint8) Arity {
	return Arity{Count: n, Fixed: true}
}

// Variadic returns the unchecked arity.
func Variadic() Arity {
	return Arity{}
}

// LibraryName identifies one predeclared standard-library entry. The zero
// Arity applies to variables. LibraryName is comparable, so the full tagged
// value acts as the set key.
type LibraryName struct {
	Kind  LibraryKind
	Name  string
	Arity Arity
}

// LibrarySet is the set of every predeclared library name.
type LibrarySet map[LibraryName]struct{}

// Has reports set membership on the full tagged value.
func (s LibrarySet) Has(n LibraryName) bool {
	_, ok := s[n]
	return ok
}

// HasName reports whether any entry (function or variable, any arity) uses the
// spelling. This is the lookup the semantic checker uses to flag user code
// that redeclares a library name.
func (s LibrarySet) HasName(name string) bool {
	for n := range s {
		if n.Name == name {
			return true
		}
	}
	return false
}

// fixedFns is every library function with a checked argument count.
var fixedFns = []struct {
	name  string
	arity uint8
}{
	// I/O routines
	{"getchar", 0},
	{"putchar", 1},
	{"openr", 2},
	{"openw", 2},
	{"getstr", 1},
	{"putstr", 1},
	{"system", 1},
	{"close", 1},
	{"flush", 0},
	{"reread", 0},
	// error query
	{"ioerrors", 1},
	// string and vector manipulation
	{"char", 2},
	{"lchar", 3},
	{"getarg", 3},
	// vectors and process control
	{"getvec", 1},
	{"rlsevec", 2},
	{"nargs", 0},
	{"exit", 0},
}

// variadicFns are the two functions whose call-site argument count is not
// checked.
var variadicFns = []string{"printf", "concat"}

// libraryVars are the predeclared I/O unit variables.
var libraryVars = []string{"wr.unit", "rd.unit"}

// StandardLibrary builds the set of every name the B runtime library
// predeclares, functions and variables alike.
func StandardLibrary() LibrarySet {
	out := make(LibrarySet, len(fixedFns)+len(variadicFns)+len(libraryVars))
	for _, fn := range fixedFns {
		out[LibraryName{Kind: LibraryFunction, Name: fn.name, Arity: FixedArity(fn.arity)}] = struct{}{}
	}
	for _, name := range variadicFns {
		out[LibraryName{Kind: LibraryFunction, Name: name, Arity: Variadic()}] = struct{}{}
	}
	for _, name := range libraryVars {
		out[LibraryName{Kind: LibraryVariable, Name: name}] = struct{}{}
	}
	return out
}
