// Package vex implements a bidirectional codec between a human-readable
// textual notation and a dynamically-typed value model for arbitrary
// structured data.
//
// Values are typically produced by decoding some external binary format;
// this package lets them be displayed for humans and re-entered as literals
// (in tests, CLIs, fixtures) without losing structure.
//
// # Data Model
//
// A Value is one of:
//
//	Primitive:       bool, char, string, 128-bit unsigned/signed integer
//	Named composite: ordered field/value pairs   { a: 1, b: true }
//	Unnamed composite: ordered positional values (1, true, "hi")
//	Variant:         a tag plus a composite      Foo(1, 2) or Bar{ x: 1 }
//	Bit sequence:    ordered bits                <01101>
//
// 256-bit integer primitives exist in the model for completeness but have
// no textual form: formatting a value containing one fails rather than
// truncating.
//
// # Syntax
//
//	Bool:      true / false
//	Char:      'a', '\n'
//	String:    "hello\tthere"
//	Number:    123, +1_234_56, -1234
//	Named:     { hello: true, "odd name": 1 }
//	Unnamed:   (true, 1234, "hi")
//	Variant:   Foo(true, 1) or v"odd name" { }
//	Bits:      <0110>
//
// Field and variant names that are not valid identifiers (alphabetic first
// character, then alphanumerics or underscores) are written as quoted
// strings; a quoted variant name additionally carries a leading 'v' so the
// parser needs no lookahead.
//
// # Round Trip
//
// Format produces a canonical rendering; re-parsing it always reproduces an
// equal value (with the context tag erased). Canonical output does not
// preserve incidental whitespace or digit separators from parsed input.
// Char values only ever hold valid Unicode scalar values (the constructor
// replaces anything else with U+FFFD), so the guarantee covers every value
// that can be built.
//
// Both directions are pure, synchronous functions; they may be called
// concurrently on independent inputs. Each recurses to the structural
// nesting depth of its input, so pathologically deep input can exhaust the
// call stack; ParseOptions.MaxDepth bounds this for untrusted text.
package vex
