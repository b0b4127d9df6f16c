package core

// This file holds the "surface sugar" entry points spec.md §1 frames
// as external collaborators of the core select/transform duality
// (Select/Transform, in exec.go): cardinality-asserting and
// first-element convenience wrappers, and the replace-in helper of
// spec.md §4.5. They're part of this module (there's nowhere else for
// them to live in a single-module port), but kept in their own file
// to mark the layering the spec describes.

// SelectOne returns the sole result of Select, or false if there were
// none. It is a *CardinalityViolation for more than one result.
func SelectOne(path interface{}, structure interface{}) (interface{}, bool, error) {
	results, err := Select(path, structure)
	if err != nil {
		return nil, false, err
	}
	switch len(results) {
	case 0:
		return nil, false, nil
	case 1:
		return results[0], true, nil
	default:
		return nil, false, &CardinalityViolation{Op: "select-one", Count: len(results)}
	}
}

// SelectOneBang is SelectOne, but requires exactly one result.
func SelectOneBang(path interface{}, structure interface{}) (interface{}, error) {
	results, err := Select(path, structure)
	if err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, &CardinalityViolation{Op: "select-one!", Count: len(results)}
	}
	return results[0], nil
}

// SelectFirst returns the first result of Select, or false if there
// were none.
func SelectFirst(path interface{}, structure interface{}) (interface{}, bool, error) {
	results, err := Select(path, structure)
	if err != nil {
		return nil, false, err
	}
	if len(results) == 0 {
		return nil, false, nil
	}
	return results[0], true, nil
}

// SetVal is shorthand for Transform(path, constant v, structure).
func SetVal(path interface{}, v interface{}, structure interface{}) (interface{}, error) {
	return Transform(path, F(func(interface{}) interface{} { return v }), structure)
}

// ReplaceResult is what a ReplaceFunc returns: Replacement drives the
// transform, SideValue is merged into ReplaceIn's accumulator. A
// ReplaceFunc returns a nil *ReplaceResult (the "nullish sentinel" of
// spec.md §4.5) to leave the navigated value untouched and record no
// side-value.
type ReplaceResult struct {
	Replacement interface{}
	SideValue   interface{}
}

// ReplaceFunc is the user function passed to ReplaceIn.
type ReplaceFunc func(vals []interface{}, value interface{}) *ReplaceResult

// MergeFunc combines an accumulator with a newly recorded side-value.
// The default (used when merge is nil) is concatenation.
type MergeFunc func(acc []interface{}, sideValue interface{}) []interface{}

func defaultMerge(acc []interface{}, sideValue interface{}) []interface{} {
	return append(acc, sideValue)
}

// ReplaceIn is a thin layer over Transform (spec.md §4.5): f returns a
// *ReplaceResult driving the transform and contributing a side-value,
// or a nil *ReplaceResult to leave the position unchanged and
// contribute nothing.
// Returns the transformed structure and the accumulated side-values,
// in the order their positions were visited.
func ReplaceIn(path interface{}, f ReplaceFunc, structure interface{}, merge MergeFunc) (interface{}, []interface{}, error) {
	if merge == nil {
		merge = defaultMerge
	}
	var acc []interface{}
	out, err := Transform(path, func(vals []interface{}, value interface{}) (interface{}, error) {
		r := f(vals, value)
		if r == nil {
			return value, nil
		}
		acc = merge(acc, r.SideValue)
		return r.Replacement, nil
	}, structure)
	if err != nil {
		return nil, nil, err
	}
	return out, acc, nil
}
