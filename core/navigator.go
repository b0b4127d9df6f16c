package core

// SelectContinuation is the opaque "rest of the path" a Navigator
// invokes, once per cursor position it points to, during Select.
// Navigators must not inspect it, only call it (spec.md §4.1).
type SelectContinuation func(structure interface{}) ([]interface{}, error)

// TransformContinuation is the "rest of the path" during Transform.
// It returns the replacement value for the position it was called on.
type TransformContinuation func(structure interface{}) (interface{}, error)

// Navigator is the two-operation contract every path element
// implements (spec.md §2.3, §4.1).
//
// Slots returns how many late-bound parameter slots this navigator
// (and anything nested inside it) consumes; zero for a constant
// navigator. The parameter frame is threaded explicitly to
// SelectStep/TransformStep rather than captured in a closure — see
// DESIGN.md's "Parameter frame threading" decision — and constant
// navigators are free to ignore it.
type Navigator interface {
	SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error)
	TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error)
	Slots() int
}

// Collector is the sibling contract of spec.md §4.4: it contributes a
// value to the terminal transform function's argument list without
// advancing the cursor. A Collector is recognized structurally by the
// compiler and the execution engine; it does not also implement
// Navigator, because the engine special-cases its traversal instead
// of calling SelectStep/TransformStep on it.
type Collector interface {
	CollectValue(frame *ParamFrame, structure interface{}) (interface{}, error)
	Slots() int
}

// Predicate is a boolean test over a value, used by filterer,
// selected?, walker and codewalker.
type Predicate func(interface{}) bool
