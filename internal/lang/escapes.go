package lang

// EscapeMarker is the character that introduces an escape sequence inside
// B string and character literals.
const EscapeMarker = '*'

// escapeDesignators lists every recognised escape designator together with the
// literal character it denotes. '*e' is ASCII EOT, which B uses as the
// end-of-string sentinel; '*(' and '*)' stand in for braces on keyboards that
// lack them.
var escapeDesignators = []struct {
	designator rune
	literal    rune
}{
	{'0', 0},
	{'e', 4},
	{'(', '{'},
	{')', '}'},
	{'t', '\t'},
	{'*', '*'},
	{'\'', '\''},
	{'"', '"'},
	{'n', '\n'},
}

// Escapes builds the escape-sequence table: each key is the two-character
// spelling as it appears in source ("*n", "*t", ...), each value the literal
// character the lexer substitutes. Spellings outside this table are the
// caller's error and must not be looked up silently.
func Escapes() map[string]rune {
	out := make(map[string]rune, len(escapeDesignators))
	for _, e := range escapeDesignators {
		out[string(EscapeMarker)+string(e.designator)] = e.literal
	}
	return out
}
