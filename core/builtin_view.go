package core

// view and transformed (spec.md §4.2) both compute a derived value
// and hand it to the continuation; the continuation's output becomes
// the final replacement directly, with no write-back into the
// original structure.
type viewNavigator struct {
	f Fn
}

// View applies f to the structure and continues with the result, for
// both select and transform.
func View(f func(interface{}) interface{}) Navigator {
	return &viewNavigator{f: func(x interface{}) (interface{}, error) { return f(x), nil }}
}

// ViewFn is View for an Fn that can fail.
func ViewFn(f Fn) Navigator {
	return &viewNavigator{f: f}
}

func (n *viewNavigator) Slots() int { return 0 }

func (n *viewNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	v, err := n.f(structure)
	if err != nil {
		return nil, err
	}
	return k(v)
}

func (n *viewNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	v, err := n.f(structure)
	if err != nil {
		return nil, err
	}
	return k(v)
}

// transformed computes its window by running transform(path, f, _)
// against the current structure, then continues with that window —
// used identically for select and transform.
type transformedNavigator struct {
	inner  *CompiledPath
	f      TransformFunc
	offset int
}

// Transformed builds a transformed navigator over the given sub-path
// and transform function.
func Transformed(path interface{}, f TransformFunc) Navigator {
	p, err := toCompiled(path)
	if err != nil {
		return &unsupportedNavigator{element: err}
	}
	return &transformedNavigator{inner: p, f: f}
}

func (n *transformedNavigator) Slots() int      { return n.inner.Slots() }
func (n *transformedNavigator) setOffset(o int) { n.offset = o }

func (n *transformedNavigator) window(frame *ParamFrame, structure interface{}) (interface{}, error) {
	return transformInner(n.inner, subFrame(frame, n.offset), structure, n.f)
}

func (n *transformedNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	w, err := n.window(frame, structure)
	if err != nil {
		return nil, err
	}
	return k(w)
}

func (n *transformedNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	w, err := n.window(frame, structure)
	if err != nil {
		return nil, err
	}
	return k(w)
}
