package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestSelectEmptyResultIsEmptySliceNotNil(t *testing.T) {
	never := Predicate(func(interface{}) bool { return false })
	got, err := Select([]interface{}{never}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %#v", got)
	}
}

func TestKeypathOnMissingKeySelectsNil(t *testing.T) {
	got, err := Select([]interface{}{"missing"}, map[string]interface{}{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []interface{}{nil}) {
		t.Fatalf("got %#v", got)
	}
}

func TestTransformPropagatesUserError(t *testing.T) {
	boom := errors.New("boom")
	f := func(vals []interface{}, value interface{}) (interface{}, error) {
		return nil, boom
	}
	_, err := Transform([]interface{}{"a"}, f, map[string]interface{}{"a": 1})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestSingleElementPathAcceptsBareNavigator(t *testing.T) {
	got, err := Select(ALL, []interface{}{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []interface{}{1, 2}) {
		t.Fatalf("got %#v", got)
	}
}

func TestCollectedValsOrderAlongActiveBranch(t *testing.T) {
	structure := map[string]interface{}{"a": 1, "b": 2}
	var seenVals []interface{}
	f := func(vals []interface{}, value interface{}) (interface{}, error) {
		seenVals = vals
		return value, nil
	}
	_, err := Transform([]interface{}{PutVal("first"), PutVal("second"), "a"}, f, structure)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seenVals, []interface{}{"first", "second"}) {
		t.Fatalf("got %#v", seenVals)
	}
}
