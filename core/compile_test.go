package core

import "testing"

func TestCompilePathsFlattensNestedSlices(t *testing.T) {
	a, err := CompilePaths([]interface{}{"a", []interface{}{ALL, "b"}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := CompilePaths("a", ALL, "b")
	if err != nil {
		t.Fatal(err)
	}
	if len(a.steps) != len(b.steps) {
		t.Fatalf("flatten mismatch: %d vs %d", len(a.steps), len(b.steps))
	}
}

func TestCompilePathsLiftsLiterals(t *testing.T) {
	p, err := CompilePaths("a")
	if err != nil {
		t.Fatal(err)
	}
	if _, is := p.steps[0].(*keypathNavigator); !is {
		t.Fatalf("got %T", p.steps[0])
	}
}

func TestCompilePathsUnsupportedLiteral(t *testing.T) {
	if _, err := CompilePaths(42); err == nil {
		t.Fatal("expected an error lifting an int literal")
	}
}

func TestCompilePathsCountsParameterSlots(t *testing.T) {
	p, err := CompilePaths(Keypath(), PutVal())
	if err != nil {
		t.Fatal(err)
	}
	if p.Slots() != 2 {
		t.Fatalf("got %d slots", p.Slots())
	}
}

func TestBindParamsResolvesSlots(t *testing.T) {
	p, err := CompilePaths(Keypath())
	if err != nil {
		t.Fatal(err)
	}
	bound := BindParams(p, []interface{}{"k"}, 0)
	if bound.Slots() != 0 {
		t.Fatalf("bound path should report zero remaining slots, got %d", bound.Slots())
	}
	got, err := bound.SelectStep(nil, map[string]interface{}{"k": 1}, func(x interface{}) ([]interface{}, error) {
		return []interface{}{x}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("got %#v", got)
	}
}

func TestUnboundParameterizedPathFailsDirectly(t *testing.T) {
	p, err := CompilePaths(Keypath())
	if err != nil {
		t.Fatal(err)
	}
	if err := requireBound(p); err == nil {
		t.Fatal("expected an UnboundParameter error")
	}
}
