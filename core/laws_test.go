package core

import (
	"reflect"
	"testing"
)

// These tests check the properties spec.md §8 names as laws, each
// against a representative path and structure rather than exhaustive
// random generation.

func identity(x interface{}) interface{} { return x }

func TestLawIdentity(t *testing.T) {
	structure := map[string]interface{}{"a": []interface{}{1, 2, 3}}
	out, err := Transform([]interface{}{"a", ALL}, F(identity), structure)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, structure) {
		t.Fatalf("got %#v, want %#v", out, structure)
	}
}

func TestLawSelectTransformCorrespondence(t *testing.T) {
	structure := []interface{}{1, 2, 3, 4}
	path := []interface{}{ALL}

	before, err := Select(path, structure)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]interface{}, len(before))
	for i, v := range before {
		want[i] = inc(v)
	}

	transformed, err := Transform(path, F(inc), structure)
	if err != nil {
		t.Fatal(err)
	}
	after, err := Select(path, transformed)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(after, want) {
		t.Fatalf("got %#v, want %#v", after, want)
	}
}

func TestLawComposition(t *testing.T) {
	structure := []interface{}{
		map[string]interface{}{"xs": []interface{}{1, 2}},
		map[string]interface{}{"xs": []interface{}{3}},
	}

	combined, err := Select([]interface{}{ALL, "xs", ALL}, structure)
	if err != nil {
		t.Fatal(err)
	}

	outer, err := Select([]interface{}{ALL}, structure)
	if err != nil {
		t.Fatal(err)
	}
	var flattened []interface{}
	for _, x := range outer {
		inner, err := Select([]interface{}{"xs", ALL}, x)
		if err != nil {
			t.Fatal(err)
		}
		flattened = append(flattened, inner...)
	}

	if !reflect.DeepEqual(combined, flattened) {
		t.Fatalf("got %#v, want %#v", combined, flattened)
	}
}

func TestLawSetvalConstant(t *testing.T) {
	structure := []interface{}{1, 2, 3}
	path := []interface{}{ALL}

	before, err := Select(path, structure)
	if err != nil {
		t.Fatal(err)
	}

	out, err := SetVal(path, "v", structure)
	if err != nil {
		t.Fatal(err)
	}
	after, err := Select(path, out)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(before) {
		t.Fatalf("got %d results, want %d", len(after), len(before))
	}
	for _, x := range after {
		if x != "v" {
			t.Fatalf("got %#v", after)
		}
	}
}

func TestLawShapePreservation(t *testing.T) {
	structure := map[string]interface{}{
		"touched":   1,
		"untouched": "leave me alone",
	}
	out, err := Transform([]interface{}{"touched"}, F(inc), structure)
	if err != nil {
		t.Fatal(err)
	}
	m := out.(map[string]interface{})
	if m["untouched"] != "leave me alone" {
		t.Fatalf("got %#v", m["untouched"])
	}
}

func TestLawDeterminism(t *testing.T) {
	structure := []interface{}{1, 2, 3}
	a, err := Select([]interface{}{ALL}, structure)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Select([]interface{}{ALL}, structure)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("got %#v and %#v", a, b)
	}
}

func TestCondPathNoMatchAsymmetry(t *testing.T) {
	never := Predicate(func(interface{}) bool { return false })
	path := []interface{}{CondPath(never, ALL)}

	sel, err := Select(path, []interface{}{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if sel != nil && len(sel) != 0 {
		t.Fatalf("expected an empty/absent select result, got %#v", sel)
	}

	structure := []interface{}{1, 2}
	out, err := Transform(path, F(inc), structure)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, structure) {
		t.Fatalf("expected the structure unchanged, got %#v", out)
	}
}
