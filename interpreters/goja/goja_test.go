package goja

import (
	"testing"
)

func TestSimpleExpression(t *testing.T) {
	i := NewInterpreter()
	fn, err := i.Compile(`return value + 1;`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := fn(int64(41))
	if err != nil {
		t.Fatal(err)
	}
	n, is := out.(int64)
	if !is {
		t.Fatalf("%#v is a %T, not an int64", out, out)
	}
	if n != 42 {
		t.Fatalf("got %d, want 42", n)
	}
}

func TestPredicate(t *testing.T) {
	i := NewInterpreter()
	fn, err := i.Compile(`return value.color === "red";`)
	if err != nil {
		t.Fatal(err)
	}
	pred := fn.AsPredicate()
	if !pred(map[string]interface{}{"color": "red"}) {
		t.Fatal("expected match")
	}
	if pred(map[string]interface{}{"color": "blue"}) {
		t.Fatal("expected no match")
	}
}

func TestCompileError(t *testing.T) {
	i := NewInterpreter()
	if _, err := i.Compile(`this isn't javascript {{{`); err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestRuntimeErrorNotSwallowed(t *testing.T) {
	i := NewInterpreter()
	fn, err := i.Compile(`throw new Error("boom");`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fn(nil); err == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestRequiresFromJSONSource(t *testing.T) {
	i := NewInterpreter()
	i.Provider = MakeMapLibraryProvider(map[string]string{
		"math": "function double(x) { return 2 * x; }",
	})

	src := `{"code": "return double(value);", "requires": ["math"]}`
	fn, err := i.Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	out, err := fn(int64(21))
	if err != nil {
		t.Fatal(err)
	}
	if out.(int64) != 42 {
		t.Fatalf("got %v, want 42", out)
	}
}

func TestGensymAndEsc(t *testing.T) {
	i := NewInterpreter()
	fn, err := i.Compile(`return esc(gensym());`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := fn(nil)
	if err != nil {
		t.Fatal(err)
	}
	s, is := out.(string)
	if !is || len(s) == 0 {
		t.Fatalf("got %#v", out)
	}
}
