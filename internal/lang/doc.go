// Package lang holds the fixed surface of the B language: escape sequences,
// reserved words, and the names predeclared by the runtime library.
//
// All three tables are built by pure, argument-less constructors from literal
// lists. They are meant to be constructed once at compiler start and shared
// read-only between the lexer, the parser, and the semantic checker, so every
// phase agrees on one vocabulary instead of scattering string literals around.
//
// None of the builders can fail and none of them perform IO. The returned maps
// must not be mutated by callers.
package lang
