package vex

import (
	"errors"
	"math/big"
	"strings"
	"unicode"

	"github.com/vexlang/vex/scan"
)

// Parse reads one value from the front of input. It returns the value and
// the unconsumed remainder of the input; callers that require the whole
// string to be a single value should use ParseComplete instead. On failure
// the error is a *ParseError and only the returned remainder is
// meaningful.
//
// Parsing recurses to the structural nesting depth of the input; use
// ParseWithOptions with MaxDepth to bound untrusted text.
func Parse(input string) (*Value, string, error) {
	return ParseWithOptions(input, ParseOptions{})
}

// ParseOptions configures the parser.
type ParseOptions struct {
	// MaxDepth bounds the structural nesting the parser will follow
	// before failing with ErrNestingTooDeep. Zero means no limit.
	MaxDepth int
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(input string, opts ParseOptions) (*Value, string, error) {
	c := scan.New(input)
	p := &parser{opts: opts}
	v, perr := p.parseValue(&c)
	if perr != nil {
		return nil, c.Remaining(), perr
	}
	return v, c.Remaining(), nil
}

// ParseComplete reads one value and requires it to consume the entire
// input; trailing characters fail with ErrTrailingInput spanning them.
func ParseComplete(input string) (*Value, error) {
	v, rest, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, errBetween(ErrTrailingInput, len(input)-len(rest), len(input))
	}
	return v, nil
}

type parser struct {
	opts  ParseOptions
	depth int
}

// parseValue tries each grammar rule in a fixed order. A rule reports one
// of three outcomes: no-match (its leading token is absent; the cursor is
// unmoved and the next rule is tried), hard error (the leading token
// matched but the body is malformed; propagated immediately), or success.
func (p *parser) parseValue(c *scan.Cursor) (*Value, *ParseError) {
	if p.opts.MaxDepth > 0 && p.depth >= p.opts.MaxDepth {
		return nil, errAt(ErrNestingTooDeep, c.Offset())
	}
	p.depth++
	defer func() { p.depth-- }()

	if b, ok := parseBool(c); ok {
		return Bool(b), nil
	}
	if r, matched, err := parseChar(c); matched {
		if err != nil {
			return nil, err
		}
		return Char(r), nil
	}
	if s, matched, err := parseString(c); matched {
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	}
	if n, matched, err := parseNumber(c); matched {
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	if fields, matched, err := p.parseNamedComposite(c); matched {
		if err != nil {
			return nil, err
		}
		return NamedComposite(fields...), nil
	}
	if elems, matched, err := p.parseUnnamedComposite(c); matched {
		if err != nil {
			return nil, err
		}
		return UnnamedComposite(elems...), nil
	}
	if bits, matched, err := parseBitSequence(c); matched {
		if err != nil {
			return nil, err
		}
		return Bits(bits...), nil
	}
	if v, matched, err := p.parseVariant(c); matched {
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, errAt(ErrExpectedValue, c.Offset())
}

// parseBool matches the literals `true` and `false`.
func parseBool(c *scan.Cursor) (bool, bool) {
	if c.Tokens("true") {
		return true, true
	}
	if c.Tokens("false") {
		return false, true
	}
	return false, false
}

// parseChar matches a char literal like 'a' or '\n'.
func parseChar(c *scan.Cursor) (rune, bool, *ParseError) {
	start := c.Offset()
	if !c.Token('\'') {
		return 0, false, nil
	}
	r, ok := c.Next()
	if !ok {
		return 0, true, errAtOne(ErrExpectedChar, c.Offset())
	}
	if r == '\\' {
		code, ok := c.Next()
		if !ok {
			return 0, true, errAtOne(ErrExpectedEscapeCode, c.Offset())
		}
		unescaped, ok := fromEscapeCode(code)
		if !ok {
			return 0, true, errAtOne(ErrExpectedEscapeCode, c.Offset())
		}
		r = unescaped
	}
	if !c.Token('\'') {
		return 0, true, errAtOne(&QuoteError{Open: start}, c.Offset())
	}
	return r, true, nil
}

// parseString matches a string literal like "hello\n there". Raw non-quote
// characters, multi-byte ones included, pass through unescaped.
func parseString(c *scan.Cursor) (string, bool, *ParseError) {
	start := c.Offset()
	if !c.Token('"') {
		return "", false, nil
	}
	var out strings.Builder
	escaped := false
	for {
		pos := c.Offset()
		r, ok := c.Next()
		if !ok {
			return "", true, errAtOne(&QuoteError{Open: start}, c.Offset())
		}
		switch {
		case r == '\\' && !escaped:
			escaped = true
		case escaped:
			unescaped, ok := fromEscapeCode(r)
			if !ok {
				return "", true, errBetween(ErrExpectedEscapeCode, pos, pos+1)
			}
			out.WriteRune(unescaped)
			escaped = false
		case r == '"':
			return out.String(), true, nil
		default:
			out.WriteRune(r)
		}
	}
}

// parseNumber matches a number like `-123_456`, `234` or `+1234_5`. A `_`
// separator is only consumed after at least one digit has been seen.
// Unsigned numbers parse into the 128-bit unsigned range, negative ones
// into the signed range; anything outside is a hard error spanning the
// digit run.
func parseNumber(c *scan.Cursor) (*Value, bool, *ParseError) {
	start := c.Offset()
	positive := true
	if !c.Token('+') && c.Token('-') {
		positive = false
	}

	var digits strings.Builder
	seen := false
	for r := range c.CollectWhile(func(r rune) bool {
		if r >= '0' && r <= '9' {
			seen = true
			return true
		}
		return seen && r == '_'
	}) {
		if r != '_' {
			digits.WriteRune(r)
		}
	}
	end := c.Offset()

	// Nothing at all consumed: not a number.
	if end == start {
		return nil, false, nil
	}
	// A sign was consumed but no digits followed.
	if !seen {
		return nil, true, errBetween(ErrExpectedDigit, end, end+1)
	}

	n, _ := new(big.Int).SetString(digits.String(), 10)
	if positive {
		if n.Cmp(maxU128) > 0 {
			cause := errors.New("number too large to fit in an unsigned 128-bit integer")
			return nil, true, errBetween(&NumberError{Cause: cause}, start, end)
		}
		return &Value{typ: TypeUint, numVal: n}, true, nil
	}
	n.Neg(n)
	if n.Cmp(minI128) < 0 {
		cause := errors.New("number too small to fit in a signed 128-bit integer")
		return nil, true, errBetween(&NumberError{Cause: cause}, start, end)
	}
	return &Value{typ: TypeInt, numVal: n}, true, nil
}

// parseNamedComposite matches `{ foo: 123, "odd name": true }` or `{ }`.
func (p *parser) parseNamedComposite(c *scan.Cursor) ([]Field, bool, *ParseError) {
	start := c.Offset()
	if !c.Token('{') {
		return nil, false, nil
	}
	skipWhitespace(c)
	if c.Token('}') {
		return nil, true, nil
	}

	var fields []Field
	for {
		f, err := p.parseFieldNameAndValue(c)
		if err != nil {
			return nil, true, err
		}
		fields = append(fields, f)
		if !skipSpacedSeparator(c, ',') {
			break
		}
	}
	if !c.Token('}') {
		return nil, true, errAtOne(&CloseError{Closer: '}', Open: start}, c.Offset())
	}
	return fields, true, nil
}

// parseUnnamedComposite matches `(true, 123)` or `( )`.
func (p *parser) parseUnnamedComposite(c *scan.Cursor) ([]*Value, bool, *ParseError) {
	start := c.Offset()
	if !c.Token('(') {
		return nil, false, nil
	}
	skipWhitespace(c)
	if c.Token(')') {
		return nil, true, nil
	}

	var elems []*Value
	for {
		v, err := p.parseValue(c)
		if err != nil {
			return nil, true, err
		}
		elems = append(elems, v)
		if !skipSpacedSeparator(c, ',') {
			break
		}
	}
	if !c.Token(')') {
		return nil, true, errAtOne(&CloseError{Closer: ')', Open: start}, c.Offset())
	}
	return elems, true, nil
}

// parseBitSequence matches `<01101>` or `<>`; the first character is the
// first bit.
func parseBitSequence(c *scan.Cursor) ([]bool, bool, *ParseError) {
	start := c.Offset()
	if !c.Token('<') {
		return nil, false, nil
	}
	var bits []bool
	for r := range c.CollectWhile(func(r rune) bool { return r == '0' || r == '1' }) {
		bits = append(bits, r == '1')
	}
	if !c.Token('>') {
		return nil, true, errBetween(&CloseError{Closer: '>', Open: start}, c.Offset(), c.Offset()+1)
	}
	return bits, true, nil
}

// parseVariant matches `MyVariant { hello: 1 }`, `Foo(123, true)` or the
// reserved-prefix form `v"odd name" { }` for names that are not valid
// identifiers. If no name is present, or the name is not followed by a
// composite, the whole construct is a no-match with nothing consumed.
func (p *parser) parseVariant(c *scan.Cursor) (*Value, bool, *ParseError) {
	save := *c
	name, ok := parseVariantName(c)
	if !ok {
		*c = save
		return nil, false, nil
	}
	skipWhitespace(c)

	if fields, matched, err := p.parseNamedComposite(c); matched {
		if err != nil {
			return nil, true, err
		}
		return NamedVariant(name, fields...), true, nil
	}
	if elems, matched, err := p.parseUnnamedComposite(c); matched {
		if err != nil {
			return nil, true, err
		}
		return UnnamedVariant(name, elems...), true, nil
	}
	*c = save
	return nil, false, nil
}

// parseVariantName matches a bare identifier or `v` immediately followed
// by a string literal.
func parseVariantName(c *scan.Cursor) (string, bool) {
	save := *c
	if c.Token('v') {
		if s, matched, err := parseString(c); matched && err == nil {
			return s, true
		}
		*c = save
	}
	if name, err := parseIdent(c); err == nil {
		return name, true
	}
	*c = save
	return "", false
}

// parseFieldNameAndValue matches `foo: 123` or `"hello there": 123`.
func (p *parser) parseFieldNameAndValue(c *scan.Cursor) (Field, *ParseError) {
	name, err := parseFieldName(c)
	if err != nil {
		return Field{}, err
	}
	if !skipSpacedSeparator(c, ':') {
		return Field{}, errAtOne(&SeparatorError{Sep: ':'}, c.Offset())
	}
	v, err := p.parseValue(c)
	if err != nil {
		return Field{}, err
	}
	return Field{Name: name, Value: v}, nil
}

// parseFieldName matches a string literal or an identifier.
func parseFieldName(c *scan.Cursor) (string, *ParseError) {
	if s, matched, err := parseString(c); matched {
		if err != nil {
			return "", err
		}
		return s, nil
	}
	name, err := parseIdent(c)
	if err != nil {
		return "", errAtOne(ErrInvalidFieldName, err.Start)
	}
	return name, nil
}

// parseIdent matches an identifier: an alphabetic first character followed
// by alphanumerics or underscores.
func parseIdent(c *scan.Cursor) (string, *ParseError) {
	start := c.Offset()
	if c.SkipWhile(unicode.IsLetter) == 0 {
		return "", errAtOne(ErrInvalidIdentStart, start)
	}
	c.SkipWhile(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
	})
	return c.Slice(start, c.Offset()), nil
}

func skipWhitespace(c *scan.Cursor) {
	c.SkipWhile(unicode.IsSpace)
}

// skipSpacedSeparator consumes sep with optional whitespace on either
// side, reporting whether sep itself was present.
func skipSpacedSeparator(c *scan.Cursor, sep rune) bool {
	skipWhitespace(c)
	found := c.Token(sep)
	skipWhitespace(c)
	return found
}
