package core

import (
	"reflect"
	"testing"

	"github.com/arborpath/arborpath/util/testutil"
)

func inc(x interface{}) interface{} {
	switch v := x.(type) {
	case int:
		return v + 1
	case float64:
		return v + 1
	default:
		panic("not a number")
	}
}

func TestScenarioNestedKeypathAll(t *testing.T) {
	structure := map[string]interface{}{
		"a": []interface{}{
			map[string]interface{}{"b": 3},
			map[string]interface{}{"b": 5},
		},
	}
	out, err := Transform([]interface{}{"a", ALL, "b"}, F(inc), structure)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]interface{}{
		"a": []interface{}{
			map[string]interface{}{"b": 4},
			map[string]interface{}{"b": 6},
		},
	}
	testutil.Structural(t, out, want)
}

func TestScenarioSelectAllName(t *testing.T) {
	structure := []interface{}{
		map[string]interface{}{"name": "x", "age": 1},
		map[string]interface{}{"name": "y", "age": 2},
	}
	got, err := Select([]interface{}{ALL, "name"}, structure)
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{"x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestScenarioSetvalSRange(t *testing.T) {
	structure := []interface{}{0, 1, 2, 3, 4}
	out, err := SetVal([]interface{}{SRange(1, 3)}, []interface{}{"x", "y"}, structure)
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{0, "x", "y", 3, 4}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %#v, want %#v", out, want)
	}
}

func TestScenarioCollectOneAddsSiblingKey(t *testing.T) {
	structure := []interface{}{
		map[string]interface{}{"k": 10, "v": 1},
		map[string]interface{}{"k": 20, "v": 2},
	}
	f := func(vals []interface{}, value interface{}) (interface{}, error) {
		return vals[0].(int) + value.(int), nil
	}
	out, err := Transform([]interface{}{ALL, CollectOne("k"), "v"}, f, structure)
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{
		map[string]interface{}{"k": 10, "v": 11},
		map[string]interface{}{"k": 20, "v": 22},
	}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %#v, want %#v", out, want)
	}
}

func TestScenarioFiltererOdd(t *testing.T) {
	odd := Predicate(func(x interface{}) bool { return x.(int)%2 != 0 })
	structure := []interface{}{1, 2, 3, 4, 5}
	out, err := Transform([]interface{}{Filterer(odd), ALL}, F(inc), structure)
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{2, 2, 4, 4, 6}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %#v, want %#v", out, want)
	}
}

func TestScenarioIfPathView(t *testing.T) {
	even := Predicate(func(x interface{}) bool { return x.(int)%2 == 0 })
	double := View(func(x interface{}) interface{} { return x.(int) * 2 })
	timesTen := View(func(x interface{}) interface{} { return x.(int) * 10 })

	got, err := Select([]interface{}{IfPath(even, double, timesTen)}, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{30}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestAllOnEmptyMapAndVec(t *testing.T) {
	got, err := Select([]interface{}{ALL}, map[string]interface{}{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %#v", got)
	}
	got, err = Select([]interface{}{ALL}, []interface{}{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %#v", got)
	}
}

func TestFirstLastOnEmptyIsShapeMismatch(t *testing.T) {
	if _, err := Select([]interface{}{FIRST}, []interface{}{}); err == nil {
		t.Fatal("expected a shape mismatch")
	}
	if _, err := Select([]interface{}{LAST}, []interface{}{}); err == nil {
		t.Fatal("expected a shape mismatch")
	}
}

func TestSRangeEmptySpanInserts(t *testing.T) {
	structure := []interface{}{1, 2, 3}
	out, err := SetVal([]interface{}{SRange(1, 1)}, []interface{}{"x"}, structure)
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{1, "x", 2, 3}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %#v, want %#v", out, want)
	}
}

func TestWalkerOverLeaf(t *testing.T) {
	isInt := Predicate(func(x interface{}) bool { _, is := x.(int); return is })
	got, err := Select([]interface{}{Walker(isInt)}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []interface{}{5}) {
		t.Fatalf("got %#v", got)
	}
}

func TestWalkerDescendsNestedStructures(t *testing.T) {
	isString := Predicate(func(x interface{}) bool { _, is := x.(string); return is })
	structure := map[string]interface{}{
		"a": []interface{}{"x", map[string]interface{}{"b": "y"}},
		"c": 1,
	}
	got, err := Select([]interface{}{Walker(isString)}, structure)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, v := range got {
		seen[v.(string)] = true
	}
	if !seen["x"] || !seen["y"] || len(got) != 2 {
		t.Fatalf("got %#v", got)
	}
}

func TestFiltererArityMismatch(t *testing.T) {
	isTrue := Predicate(func(interface{}) bool { return true })
	structure := []interface{}{1, 2, 3}
	f := func(vals []interface{}, value interface{}) (interface{}, error) {
		return []interface{}{0, 0}, nil // wrong length: structure has 3 matches
	}
	_, err := Transform([]interface{}{Filterer(isTrue)}, f, structure)
	if err == nil {
		t.Fatal("expected an arity mismatch")
	}
	if _, is := err.(*ArityMismatch); !is {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestCollectOneCardinalityViolation(t *testing.T) {
	structure := map[string]interface{}{
		"xs": []interface{}{1, 2},
	}
	_, err := Transform([]interface{}{CollectOne("xs", ALL), "xs"}, F(func(x interface{}) interface{} { return x }), structure)
	if err == nil {
		t.Fatal("expected a cardinality violation")
	}
	if _, is := err.(*CardinalityViolation); !is {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestMultiPathSelectConcatenates(t *testing.T) {
	structure := map[string]interface{}{"a": 1, "b": 2}
	got, err := Select([]interface{}{MultiPath("a", "b")}, structure)
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestScenarioJSONFixtureRoundTrip(t *testing.T) {
	structure := testutil.Dwimjs(`{"a":[{"b":3},{"b":5}]}`)
	out, err := Transform([]interface{}{"a", ALL, "b"}, F(inc), structure)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":[{"b":4},{"b":6}]}`
	if got := testutil.JS(out); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestSelectedAndNotSelected(t *testing.T) {
	hasB := Predicate(func(x interface{}) bool {
		m, is := x.(map[string]interface{})
		return is && m["b"] != nil
	})
	structure := []interface{}{
		map[string]interface{}{"a": 1, "b": 2},
		map[string]interface{}{"a": 3},
	}
	got, err := Select([]interface{}{ALL, Selected(hasB)}, structure)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %#v", got)
	}

	got, err = Select([]interface{}{ALL, NotSelected(hasB)}, structure)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %#v", got)
	}
}
