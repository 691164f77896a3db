package vex

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// One-way projection of values into JSON for interoperability with tools
// that speak JSON but not the vex notation. The projection preserves
// structure and order but is not reversible: chars become one-character
// strings, variants become tagged objects, and a named composite with
// duplicate field names produces an object with repeated keys.

// ToJSON renders v as JSON:
//
//	bool               -> true / false
//	char               -> one-character string
//	string             -> string
//	uint / int         -> number (arbitrary precision, emitted verbatim)
//	named composite    -> object, field order preserved
//	unnamed composite  -> array
//	variant            -> {"name": ..., "values": ...}
//	bit sequence       -> array of 0 / 1
//
// Values containing 256-bit integers fail with ErrUnsupportedPrimitive,
// matching Format.
func ToJSON(v *Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v *Value) error {
	if v == nil {
		return errNilValue
	}
	switch v.typ {
	case TypeBool:
		buf.WriteString(strconv.FormatBool(v.boolVal))

	case TypeChar:
		return writeJSONString(buf, string(v.charVal))

	case TypeString:
		return writeJSONString(buf, v.strVal)

	case TypeUint, TypeInt:
		buf.WriteString(v.numVal.String())

	case TypeU256, TypeI256:
		return ErrUnsupportedPrimitive

	case TypeNamedComposite:
		buf.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, f.Name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	case TypeUnnamedComposite:
		buf.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case TypeVariant:
		buf.WriteString(`{"name":`)
		if err := writeJSONString(buf, v.variant.Name); err != nil {
			return err
		}
		buf.WriteString(`,"values":`)
		if err := writeJSON(buf, v.variant.Values); err != nil {
			return err
		}
		buf.WriteByte('}')

	case TypeBitSeq:
		buf.WriteByte('[')
		for i, bit := range v.bits {
			if i > 0 {
				buf.WriteByte(',')
			}
			if bit {
				buf.WriteByte('1')
			} else {
				buf.WriteByte('0')
			}
		}
		buf.WriteByte(']')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
