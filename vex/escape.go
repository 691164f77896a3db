package vex

// escapePairs maps the characters that must be escaped inside char and
// string literals to their single-letter escape codes. It is the single
// bidirectional table shared by the parser and the formatter, so the
// round-trip law holds by construction rather than by keeping two tables
// in sync. No other characters are escaped and no other codes are
// accepted.
var escapePairs = [...]struct {
	raw  rune
	code rune
}{
	{'\n', 'n'},
	{'\r', 'r'},
	{'\t', 't'},
	{0, '0'},
	{'\\', '\\'},
	{'\'', '\''},
	{'"', '"'},
}

// toEscapeCode returns the escape letter for r, if r needs escaping.
func toEscapeCode(r rune) (rune, bool) {
	for _, p := range escapePairs {
		if p.raw == r {
			return p.code, true
		}
	}
	return 0, false
}

// fromEscapeCode returns the character denoted by the escape letter code.
func fromEscapeCode(code rune) (rune, bool) {
	for _, p := range escapePairs {
		if p.code == code {
			return p.raw, true
		}
	}
	return 0, false
}
