package core

// Fn and Interpreter give a path's predicates and transforms a second
// authoring route besides a Go closure: a source string compiled by
// an Interpreter. This mirrors the teacher's ActionSource/Interpreter
// pair (core/actions.go) exactly — Compile once, Exec per call — with
// Action/Bindings/StepProps replaced by Fn's single value in, value
// (or error) out.
//
// interpreters/goja implements Interpreter with JavaScript as the
// source language.

// Fn is a compiled, callable value: the Value model's "function"
// variant (spec.md §3). It is also what Interpreter.Compile produces.
type Fn func(interface{}) (interface{}, error)

// Interpreter compiles a source string into an Fn.
type Interpreter interface {
	Compile(src string) (Fn, error)
}

// FnSource names an Interpreter and the source it should compile,
// deferring compilation until a caller actually needs the Fn (mirrors
// ActionSource.Compile).
type FnSource struct {
	Interpreter string
	Source      string
}

// Interpreters is a name-to-Interpreter registry, the same shape as
// the teacher's DefaultInterpreters map (core/actions.go).
type Interpreters map[string]Interpreter

// Compile resolves src.Interpreter in the given registry and compiles
// src.Source with it.
func (src *FnSource) Compile(interpreters Interpreters) (Fn, error) {
	interp, have := interpreters[src.Interpreter]
	if !have {
		return nil, &UnsupportedPathElement{Element: src.Interpreter}
	}
	return interp.Compile(src.Source)
}

// AsPredicate adapts an Fn into a Predicate: only a boolean true
// result matches; an error or any other result (including a non-bool
// truthy one) is "doesn't match."
func (f Fn) AsPredicate() Predicate {
	return func(x interface{}) bool {
		v, err := f(x)
		if err != nil {
			return false
		}
		b, is := v.(bool)
		return is && b
	}
}
