package core

// The execution engine (spec.md §4.4): build the continuation chain
// right-to-left over a CompiledPath's steps and run it against a
// structure, in either select or transform mode. Collectors are
// special-cased here rather than in Navigator.SelectStep/TransformStep,
// per the Collector/Navigator split in navigator.go.

// stepSelect walks steps[i:], threading frame and the collected-vals
// snapshot accumulated so far, and finally calls terminal on the
// reached structure.
func stepSelect(steps []interface{}, i int, frame *ParamFrame, vals []interface{}, structure interface{}, terminal func(vals []interface{}, x interface{}) ([]interface{}, error)) ([]interface{}, error) {
	if i == len(steps) {
		return terminal(vals, structure)
	}

	if col, is := steps[i].(Collector); is {
		v, err := col.CollectValue(frame, structure)
		if err != nil {
			return nil, err
		}
		extended := make([]interface{}, len(vals)+1)
		copy(extended, vals)
		extended[len(vals)] = v
		return stepSelect(steps, i+1, frame, extended, structure, terminal)
	}

	nav := steps[i].(Navigator)
	k := func(x interface{}) ([]interface{}, error) {
		return stepSelect(steps, i+1, frame, vals, x, terminal)
	}
	return nav.SelectStep(frame, structure, k)
}

// stepTransform is stepSelect's transform-mode twin.
func stepTransform(steps []interface{}, i int, frame *ParamFrame, vals []interface{}, structure interface{}, terminal func(vals []interface{}, x interface{}) (interface{}, error)) (interface{}, error) {
	if i == len(steps) {
		return terminal(vals, structure)
	}

	if col, is := steps[i].(Collector); is {
		v, err := col.CollectValue(frame, structure)
		if err != nil {
			return nil, err
		}
		extended := make([]interface{}, len(vals)+1)
		copy(extended, vals)
		extended[len(vals)] = v
		return stepTransform(steps, i+1, frame, extended, structure, terminal)
	}

	nav := steps[i].(Navigator)
	k := func(x interface{}) (interface{}, error) {
		return stepTransform(steps, i+1, frame, vals, x, terminal)
	}
	return nav.TransformStep(frame, structure, k)
}

// subFrame rebases frame so that a nested CompiledPath's own
// (0-based) offsets land on the right absolute slots: the nested
// path was compiled on its own, unaware of the outer offset assigned
// to the navigator that wraps it, so the wrapper shifts Base by that
// offset before handing the frame down.
func subFrame(frame *ParamFrame, offset int) *ParamFrame {
	if frame == nil {
		return nil
	}
	return &ParamFrame{Params: frame.Params, Base: frame.Base + offset}
}

// selectInner runs an embedded CompiledPath to completion and returns
// its results, for navigators (filterer, selected?, cond-path,
// collect, ...) that need to test or gather a nested path's select
// results rather than splice it into the outer continuation chain.
func selectInner(inner *CompiledPath, frame *ParamFrame, structure interface{}) ([]interface{}, error) {
	result, err := stepSelect(inner.steps, 0, inner.effectiveFrame(frame), nil, structure,
		func(_ []interface{}, x interface{}) ([]interface{}, error) { return []interface{}{x}, nil })
	if err != nil {
		return nil, err
	}
	return result, nil
}

// transformInner runs an embedded CompiledPath to completion with a
// terminal TransformFunc, for navigators (transformed) that need a
// nested path's transform result as a value rather than a splice.
func transformInner(inner *CompiledPath, frame *ParamFrame, structure interface{}, f TransformFunc) (interface{}, error) {
	return stepTransform(inner.steps, 0, inner.effectiveFrame(frame), nil, structure, f)
}

// toCompiled accepts a path-or-compiled value, per spec.md §6's
// "path_or_compiled" entry points: an already-*CompiledPath, a raw
// []interface{} of elements, or a single element (Navigator, string,
// Predicate, *Set).
func toCompiled(path interface{}) (*CompiledPath, error) {
	switch v := path.(type) {
	case *CompiledPath:
		return v, nil
	case []interface{}:
		return CompilePaths(v...)
	default:
		return CompilePaths(v)
	}
}

func requireBound(p *CompiledPath) error {
	if p.Slots() > 0 {
		return &UnboundParameter{Navigator: "path", Offset: 0}
	}
	return nil
}

// Select collects the values path points at, in deterministic order.
func Select(path interface{}, structure interface{}) ([]interface{}, error) {
	p, err := toCompiled(path)
	if err != nil {
		return nil, err
	}
	if err := requireBound(p); err != nil {
		return nil, err
	}
	terminal := func(_ []interface{}, x interface{}) ([]interface{}, error) {
		return []interface{}{x}, nil
	}
	result, err := stepSelect(p.steps, 0, p.frame, nil, structure, terminal)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []interface{}{}
	}
	return result, nil
}

// TransformFunc is the user transform function. vals holds the
// path's collected-vals, in the order their collectors were visited
// along the active branch; value is the navigated value.
type TransformFunc func(vals []interface{}, value interface{}) (interface{}, error)

// F adapts a single-argument Go function into a TransformFunc for
// paths with no collectors.
func F(f func(interface{}) interface{}) TransformFunc {
	return func(_ []interface{}, value interface{}) (interface{}, error) {
		return f(value), nil
	}
}

// FE is F for a function that can fail.
func FE(f func(interface{}) (interface{}, error)) TransformFunc {
	return func(_ []interface{}, value interface{}) (interface{}, error) {
		return f(value)
	}
}

// Transform produces a new structure identical to structure except
// that every position path points to has been replaced by f's
// output.
func Transform(path interface{}, f TransformFunc, structure interface{}) (interface{}, error) {
	p, err := toCompiled(path)
	if err != nil {
		return nil, err
	}
	if err := requireBound(p); err != nil {
		return nil, err
	}
	terminal := func(vals []interface{}, x interface{}) (interface{}, error) {
		return f(vals, x)
	}
	return stepTransform(p.steps, 0, p.frame, nil, structure, terminal)
}
