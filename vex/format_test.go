package vex

import (
	"bytes"
	"errors"
	"testing"
)

func TestFormat_Canonical(t *testing.T) {
	tests := []struct {
		name string
		in   *Value
		want string
	}{
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"char", Char('a'), "'a'"},
		{"char multibyte", Char('😀'), "'😀'"},
		{"char newline", Char('\n'), `'\n'`},
		{"char quote", Char('\''), `'\''`},
		{"char nul", Char(0), `'\0'`},
		{"string", Str("Hello there 😀"), `"Hello there 😀"`},
		{"string escapes", Str("a\n\tb\\c\"d"), `"a\n\tb\\c\"d"`},
		{"string empty", Str(""), `""`},
		{"uint", Uint(1234), "1234"},
		{"int", Int(-1234), "-1234"},
		{"int zero", Int(0), "0"},
		{
			"named composite",
			NamedComposite(
				Field{Name: "hello", Value: Bool(true)},
				Field{Name: "foo", Value: Uint(1234)},
			),
			"{ hello: true, foo: 1234 }",
		},
		{
			"named composite quotes odd names",
			NamedComposite(Field{Name: "Hello there 😀", Value: Str("hi")}),
			`{ "Hello there 😀": "hi" }`,
		},
		{"named composite empty", NamedComposite(), "{  }"},
		{
			"unnamed composite",
			UnnamedComposite(Bool(true), Uint(1), Str("hi")),
			`(true, 1, "hi")`,
		},
		{"unnamed composite empty", UnnamedComposite(), "()"},
		{
			"variant with named payload",
			NamedVariant("MyVariant", Field{Name: "hello", Value: Bool(true)}),
			"MyVariant{ hello: true }",
		},
		{
			"variant with unnamed payload",
			UnnamedVariant("Foo", Uint(1), Bool(false)),
			"Foo(1, false)",
		},
		{
			"variant name needs quoting",
			NamedVariant("A weird variant name"),
			`v"A weird variant name"{  }`,
		},
		{"variant empty unnamed", UnnamedVariant("Foo"), "Foo()"},
		{"bit sequence", Bits(false, true, true, false), "<0110>"},
		{"bit sequence empty", Bits(), "<>"},
		{
			"nested",
			UnnamedComposite(
				NamedComposite(Field{Name: "a", Value: UnnamedVariant("B", Bits(true))}),
			),
			"({ a: B(<1>) })",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_UnsupportedPrimitives(t *testing.T) {
	wide := [32]byte{1}
	values := []*Value{
		U256(wide),
		I256(wide),
		UnnamedComposite(Uint(1), U256(wide)),
		NamedVariant("Foo", Field{Name: "x", Value: I256(wide)}),
	}
	for _, v := range values {
		if _, err := Format(v); !errors.Is(err, ErrUnsupportedPrimitive) {
			t.Errorf("Format(%s value) error = %v, want ErrUnsupportedPrimitive", v.Type(), err)
		}
	}
}

func TestFormat_NilValue(t *testing.T) {
	if _, err := Format(nil); err == nil {
		t.Fatal("Format(nil) succeeded")
	}
	if _, err := Format(UnnamedComposite(nil)); err == nil {
		t.Fatal("Format of a composite holding nil succeeded")
	}
}

func TestFormat_IgnoresContext(t *testing.T) {
	plain, err := Format(Uint(7))
	if err != nil {
		t.Fatal(err)
	}
	tagged, err := Format(Uint(7).WithContext("anything"))
	if err != nil {
		t.Fatal(err)
	}
	if plain != tagged {
		t.Fatalf("context changed output: %q vs %q", plain, tagged)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, UnnamedVariant("Foo", Uint(1))); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Foo(1)" {
		t.Fatalf("Write produced %q", buf.String())
	}
}

func TestIsIdent(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"hello", true},
		{"hello_world2", true},
		{"héllo", true},
		{"", false},
		{"2abc", false},
		{"_abc", false},
		{"has space", false},
		{"has-dash", false},
	}
	for _, tt := range tests {
		if got := isIdent(tt.s); got != tt.want {
			t.Errorf("isIdent(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
