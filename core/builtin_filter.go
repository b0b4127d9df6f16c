package core

// predicateFilterNavigator backs a bare predicate or *Set appearing
// directly in a path (compile.go's liftLiteral): it stays at the
// current position if pred holds, or misses if it doesn't.
type predicateFilterNavigator struct {
	pred Predicate
}

func (n *predicateFilterNavigator) Slots() int { return 0 }

func (n *predicateFilterNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	if !n.pred(structure) {
		return nil, nil
	}
	return k(structure)
}

func (n *predicateFilterNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	if !n.pred(structure) {
		return structure, nil
	}
	return k(structure)
}

// filterer (spec.md §4.2) points at the subsequence of an ordered
// structure's elements for which the given sub-path selects
// something. Its continuation receives that filtered view as a vec;
// on transform, the continuation's output must be the same length as
// the view it was given.
type filtererNavigator struct {
	inner  *CompiledPath
	offset int
}

// Filterer builds a filterer over the given sub-path.
func Filterer(elems ...interface{}) Navigator {
	p, err := CompilePaths(elems...)
	if err != nil {
		return &unsupportedNavigator{element: err}
	}
	return &filtererNavigator{inner: p}
}

func (n *filtererNavigator) Slots() int      { return n.inner.Slots() }
func (n *filtererNavigator) setOffset(o int) { n.offset = o }

func (n *filtererNavigator) keep(frame *ParamFrame, v interface{}) (bool, error) {
	sel, err := selectInner(n.inner, subFrame(frame, n.offset), v)
	if err != nil {
		return false, err
	}
	return len(sel) > 0, nil
}

func (n *filtererNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	vals, err := asOrdered("filterer", structure)
	if err != nil {
		return nil, err
	}
	filtered := make([]interface{}, 0, len(vals))
	for _, v := range vals {
		ok, err := n.keep(frame, v)
		if err != nil {
			return nil, err
		}
		if ok {
			filtered = append(filtered, v)
		}
	}
	return k(filtered)
}

func (n *filtererNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	vals, err := asOrdered("filterer", structure)
	if err != nil {
		return nil, err
	}
	var idx []int
	filtered := make([]interface{}, 0, len(vals))
	for i, v := range vals {
		ok, err := n.keep(frame, v)
		if err != nil {
			return nil, err
		}
		if ok {
			idx = append(idx, i)
			filtered = append(filtered, v)
		}
	}
	replaced, err := k(filtered)
	if err != nil {
		return nil, err
	}
	replacedVals, err := asOrdered("filterer", replaced)
	if err != nil {
		return nil, err
	}
	if len(replacedVals) != len(idx) {
		return nil, &ArityMismatch{Navigator: "filterer", Want: len(idx), Got: len(replacedVals)}
	}
	out := make([]interface{}, len(vals))
	copy(out, vals)
	for j, i := range idx {
		out[i] = replacedVals[j]
	}
	return rebuildOrdered(structure, out), nil
}

// selected?/not-selected? (spec.md §4.2) stay at the current position
// if the given sub-path does/doesn't select anything there; they
// never change what the continuation is called with.
type selectedNavigator struct {
	inner  *CompiledPath
	negate bool
	offset int
}

// Selected is selected?.
func Selected(elems ...interface{}) Navigator {
	p, err := CompilePaths(elems...)
	if err != nil {
		return &unsupportedNavigator{element: err}
	}
	return &selectedNavigator{inner: p}
}

// NotSelected is not-selected?.
func NotSelected(elems ...interface{}) Navigator {
	p, err := CompilePaths(elems...)
	if err != nil {
		return &unsupportedNavigator{element: err}
	}
	return &selectedNavigator{inner: p, negate: true}
}

func (n *selectedNavigator) Slots() int      { return n.inner.Slots() }
func (n *selectedNavigator) setOffset(o int) { n.offset = o }

func (n *selectedNavigator) test(frame *ParamFrame, structure interface{}) (bool, error) {
	sel, err := selectInner(n.inner, subFrame(frame, n.offset), structure)
	if err != nil {
		return false, err
	}
	nonEmpty := len(sel) > 0
	if n.negate {
		return !nonEmpty, nil
	}
	return nonEmpty, nil
}

func (n *selectedNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	ok, err := n.test(frame, structure)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return k(structure)
}

func (n *selectedNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	ok, err := n.test(frame, structure)
	if err != nil {
		return nil, err
	}
	if !ok {
		return structure, nil
	}
	return k(structure)
}
