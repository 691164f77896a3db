package vex

import (
	"fmt"
	"math/big"
	"unicode/utf8"
)

// ValueType discriminates the variants of a Value.
type ValueType uint8

const (
	TypeBool ValueType = iota
	TypeChar
	TypeString
	TypeUint // unsigned 128-bit integer
	TypeInt  // signed 128-bit integer
	TypeU256 // unsigned 256-bit integer; has no textual form
	TypeI256 // signed 256-bit integer; has no textual form
	TypeNamedComposite
	TypeUnnamedComposite
	TypeVariant
	TypeBitSeq
)

// String returns the type name.
func (t ValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeChar:
		return "char"
	case TypeString:
		return "string"
	case TypeUint:
		return "uint"
	case TypeInt:
		return "int"
	case TypeU256:
		return "u256"
	case TypeI256:
		return "i256"
	case TypeNamedComposite:
		return "named composite"
	case TypeUnnamedComposite:
		return "unnamed composite"
	case TypeVariant:
		return "variant"
	case TypeBitSeq:
		return "bit sequence"
	default:
		return "unknown"
	}
}

// 128-bit integer bounds, checked by the parser and the big-integer
// constructors.
var (
	maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Field is one entry of a named composite. Field order is significant and
// preserved end to end; duplicate names are allowed.
type Field struct {
	Name  string
	Value *Value
}

// VariantValue is the payload of a variant: a tag name plus a composite
// (named or unnamed) holding the variant's values.
type VariantValue struct {
	Name   string
	Values *Value // TypeNamedComposite or TypeUnnamedComposite
}

// Value is a dynamically-typed structured value: a primitive, a named or
// unnamed composite, a variant, or a bit sequence, paired with an opaque
// context tag. The text codec ignores the context entirely; values built
// by Parse carry a nil context.
type Value struct {
	typ ValueType

	boolVal bool
	charVal rune
	strVal  string
	numVal  *big.Int // TypeUint, TypeInt
	wideVal [32]byte // TypeU256, TypeI256, little-endian

	fields  []Field  // TypeNamedComposite
	elems   []*Value // TypeUnnamedComposite
	variant *VariantValue
	bits    []bool // TypeBitSeq, index 0 = first bit

	ctx any
}

// ============================================================
// Constructors
// ============================================================

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{typ: TypeBool, boolVal: v}
}

// Char creates a single-character value. Runes outside the Unicode scalar
// range (surrogates, values past U+10FFFF) are replaced with U+FFFD so that
// every char value has a textual form that round-trips.
func Char(r rune) *Value {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	return &Value{typ: TypeChar, charVal: r}
}

// Str creates a string value.
func Str(s string) *Value {
	return &Value{typ: TypeString, strVal: s}
}

// Uint creates an unsigned 128-bit integer value from a uint64.
func Uint(v uint64) *Value {
	return &Value{typ: TypeUint, numVal: new(big.Int).SetUint64(v)}
}

// Int creates a signed 128-bit integer value from an int64.
func Int(v int64) *Value {
	return &Value{typ: TypeInt, numVal: big.NewInt(v)}
}

// BigUint creates an unsigned 128-bit integer value from n, which must lie
// in [0, 2^128). The value keeps its own copy of n.
func BigUint(n *big.Int) (*Value, error) {
	if n.Sign() < 0 || n.Cmp(maxU128) > 0 {
		return nil, fmt.Errorf("vex: %s is out of range for an unsigned 128-bit integer", n)
	}
	return &Value{typ: TypeUint, numVal: new(big.Int).Set(n)}, nil
}

// BigInt creates a signed 128-bit integer value from n, which must lie in
// [-2^127, 2^127). The value keeps its own copy of n.
func BigInt(n *big.Int) (*Value, error) {
	if n.Cmp(minI128) < 0 || n.Cmp(maxI128) > 0 {
		return nil, fmt.Errorf("vex: %s is out of range for a signed 128-bit integer", n)
	}
	return &Value{typ: TypeInt, numVal: new(big.Int).Set(n)}, nil
}

// U256 creates an unsigned 256-bit integer value from its little-endian
// byte representation. Such values round-trip through the binary model but
// have no textual form.
func U256(b [32]byte) *Value {
	return &Value{typ: TypeU256, wideVal: b}
}

// I256 creates a signed 256-bit integer value from its little-endian byte
// representation. Such values round-trip through the binary model but have
// no textual form.
func I256(b [32]byte) *Value {
	return &Value{typ: TypeI256, wideVal: b}
}

// NamedComposite creates a composite with named fields.
func NamedComposite(fields ...Field) *Value {
	return &Value{typ: TypeNamedComposite, fields: fields}
}

// UnnamedComposite creates a composite with positional values.
func UnnamedComposite(values ...*Value) *Value {
	return &Value{typ: TypeUnnamedComposite, elems: values}
}

// NamedVariant creates a variant whose payload is a named composite.
func NamedVariant(name string, fields ...Field) *Value {
	return &Value{typ: TypeVariant, variant: &VariantValue{Name: name, Values: NamedComposite(fields...)}}
}

// UnnamedVariant creates a variant whose payload is an unnamed composite.
func UnnamedVariant(name string, values ...*Value) *Value {
	return &Value{typ: TypeVariant, variant: &VariantValue{Name: name, Values: UnnamedComposite(values...)}}
}

// Bits creates a bit sequence; bits[0] is the first bit.
func Bits(bits ...bool) *Value {
	return &Value{typ: TypeBitSeq, bits: bits}
}

// ============================================================
// Context
// ============================================================

// Context returns the opaque context tag attached to this value, or nil.
func (v *Value) Context() any {
	if v == nil {
		return nil
	}
	return v.ctx
}

// WithContext attaches an opaque context tag to this value and returns it.
// The text codec never reads or writes the context.
func (v *Value) WithContext(ctx any) *Value {
	v.ctx = ctx
	return v
}

// ============================================================
// Accessors
// ============================================================

// Type returns the value type.
func (v *Value) Type() ValueType {
	return v.typ
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v.typ != TypeBool {
		return false, fmt.Errorf("vex: expected bool, got %s", v.typ)
	}
	return v.boolVal, nil
}

// AsChar returns the character value.
func (v *Value) AsChar() (rune, error) {
	if v.typ != TypeChar {
		return 0, fmt.Errorf("vex: expected char, got %s", v.typ)
	}
	return v.charVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v.typ != TypeString {
		return "", fmt.Errorf("vex: expected string, got %s", v.typ)
	}
	return v.strVal, nil
}

// AsUint returns a copy of the unsigned 128-bit integer value.
func (v *Value) AsUint() (*big.Int, error) {
	if v.typ != TypeUint {
		return nil, fmt.Errorf("vex: expected uint, got %s", v.typ)
	}
	return new(big.Int).Set(v.numVal), nil
}

// AsInt returns a copy of the signed 128-bit integer value.
func (v *Value) AsInt() (*big.Int, error) {
	if v.typ != TypeInt {
		return nil, fmt.Errorf("vex: expected int, got %s", v.typ)
	}
	return new(big.Int).Set(v.numVal), nil
}

// AsU256 returns the little-endian bytes of the unsigned 256-bit value.
func (v *Value) AsU256() ([32]byte, error) {
	if v.typ != TypeU256 {
		return [32]byte{}, fmt.Errorf("vex: expected u256, got %s", v.typ)
	}
	return v.wideVal, nil
}

// AsI256 returns the little-endian bytes of the signed 256-bit value.
func (v *Value) AsI256() ([32]byte, error) {
	if v.typ != TypeI256 {
		return [32]byte{}, fmt.Errorf("vex: expected i256, got %s", v.typ)
	}
	return v.wideVal, nil
}

// AsNamed returns the fields of a named composite.
func (v *Value) AsNamed() ([]Field, error) {
	if v.typ != TypeNamedComposite {
		return nil, fmt.Errorf("vex: expected named composite, got %s", v.typ)
	}
	return v.fields, nil
}

// AsUnnamed returns the values of an unnamed composite.
func (v *Value) AsUnnamed() ([]*Value, error) {
	if v.typ != TypeUnnamedComposite {
		return nil, fmt.Errorf("vex: expected unnamed composite, got %s", v.typ)
	}
	return v.elems, nil
}

// AsVariant returns the variant payload.
func (v *Value) AsVariant() (*VariantValue, error) {
	if v.typ != TypeVariant {
		return nil, fmt.Errorf("vex: expected variant, got %s", v.typ)
	}
	return v.variant, nil
}

// AsBits returns the bits of a bit sequence.
func (v *Value) AsBits() ([]bool, error) {
	if v.typ != TypeBitSeq {
		return nil, fmt.Errorf("vex: expected bit sequence, got %s", v.typ)
	}
	return v.bits, nil
}

// Len returns the number of fields, values, or bits of a composite,
// variant payload, or bit sequence, and 0 for primitives.
func (v *Value) Len() int {
	switch v.typ {
	case TypeNamedComposite:
		return len(v.fields)
	case TypeUnnamedComposite:
		return len(v.elems)
	case TypeVariant:
		return v.variant.Values.Len()
	case TypeBitSeq:
		return len(v.bits)
	default:
		return 0
	}
}

// Get returns the value of the first field with the given name in a named
// composite (or a variant with a named payload), or nil.
func (v *Value) Get(name string) *Value {
	switch v.typ {
	case TypeNamedComposite:
		for _, f := range v.fields {
			if f.Name == name {
				return f.Value
			}
		}
	case TypeVariant:
		return v.variant.Values.Get(name)
	}
	return nil
}

// Index returns the i-th value of an unnamed composite (or a variant with
// an unnamed payload).
func (v *Value) Index(i int) (*Value, error) {
	switch v.typ {
	case TypeUnnamedComposite:
		if i < 0 || i >= len(v.elems) {
			return nil, fmt.Errorf("vex: index %d out of bounds (len=%d)", i, len(v.elems))
		}
		return v.elems[i], nil
	case TypeVariant:
		return v.variant.Values.Index(i)
	}
	return nil, fmt.Errorf("vex: not an unnamed composite")
}

// ============================================================
// Equality
// ============================================================

// Eq reports deep structural equality, ignoring context tags. Unsigned and
// signed integers are distinct even when numerically equal.
func (v *Value) Eq(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeBool:
		return v.boolVal == o.boolVal
	case TypeChar:
		return v.charVal == o.charVal
	case TypeString:
		return v.strVal == o.strVal
	case TypeUint, TypeInt:
		return v.numVal.Cmp(o.numVal) == 0
	case TypeU256, TypeI256:
		return v.wideVal == o.wideVal
	case TypeNamedComposite:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for i := range v.fields {
			if v.fields[i].Name != o.fields[i].Name || !v.fields[i].Value.Eq(o.fields[i].Value) {
				return false
			}
		}
		return true
	case TypeUnnamedComposite:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Eq(o.elems[i]) {
				return false
			}
		}
		return true
	case TypeVariant:
		return v.variant.Name == o.variant.Name && v.variant.Values.Eq(o.variant.Values)
	case TypeBitSeq:
		if len(v.bits) != len(o.bits) {
			return false
		}
		for i := range v.bits {
			if v.bits[i] != o.bits[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
