package vex

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

// ErrUnsupportedPrimitive is reported when formatting a value that
// contains a 256-bit integer anywhere inside it; those have no textual
// form and fail rather than truncate.
var ErrUnsupportedPrimitive = errors.New("256-bit integers have no textual representation")

var errNilValue = errors.New("cannot format a nil value")

// Format renders v in canonical text form. Re-parsing the result always
// yields a value equal to v with its context tags erased; whitespace and
// digit separators from previously parsed input are not preserved.
//
// Formatting recurses to the structural nesting depth of v.
func Format(v *Value) (string, error) {
	var sb strings.Builder
	if err := writeValue(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders v in canonical text form to w.
func Write(w io.Writer, v *Value) error {
	s, err := Format(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func writeValue(sb *strings.Builder, v *Value) error {
	if v == nil {
		return errNilValue
	}
	switch v.typ {
	case TypeBool:
		if v.boolVal {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}

	case TypeChar:
		sb.WriteByte('\'')
		writeEscaped(sb, v.charVal)
		sb.WriteByte('\'')

	case TypeString:
		writeQuoted(sb, v.strVal)

	case TypeUint, TypeInt:
		sb.WriteString(v.numVal.String())

	case TypeU256, TypeI256:
		return ErrUnsupportedPrimitive

	case TypeNamedComposite:
		sb.WriteString("{ ")
		for i, f := range v.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			if isIdent(f.Name) {
				sb.WriteString(f.Name)
			} else {
				writeQuoted(sb, f.Name)
			}
			sb.WriteString(": ")
			if err := writeValue(sb, f.Value); err != nil {
				return err
			}
		}
		sb.WriteString(" }")

	case TypeUnnamedComposite:
		sb.WriteByte('(')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := writeValue(sb, e); err != nil {
				return err
			}
		}
		sb.WriteByte(')')

	case TypeVariant:
		if isIdent(v.variant.Name) {
			sb.WriteString(v.variant.Name)
		} else {
			// Names that are not valid identifiers get the reserved 'v'
			// prefix so the parser can pick them up with no lookahead.
			sb.WriteByte('v')
			writeQuoted(sb, v.variant.Name)
		}
		return writeValue(sb, v.variant.Values)

	case TypeBitSeq:
		sb.WriteByte('<')
		for _, bit := range v.bits {
			if bit {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('>')
	}
	return nil
}

// writeQuoted writes s as a quoted string literal, escaping through the
// shared escape table.
func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		writeEscaped(sb, r)
	}
	sb.WriteByte('"')
}

func writeEscaped(sb *strings.Builder, r rune) {
	if code, ok := toEscapeCode(r); ok {
		sb.WriteByte('\\')
		sb.WriteRune(code)
		return
	}
	sb.WriteRune(r)
}

// isIdent reports whether s parses as a bare identifier: an alphabetic
// first character followed by alphanumerics or underscores. The same
// predicate backs the parser's ident grammar and the formatter's quoting
// decision, so a name renders unquoted exactly when the parser would read
// it back as an identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
		} else if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_' {
			return false
		}
	}
	return true
}
