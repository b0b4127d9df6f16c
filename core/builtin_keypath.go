package core

// keypath (spec.md §4.2) points at one key of a keyed map. A bare
// string literal in a path lifts to Keypath(key) (compile.go's
// liftLiteral); Keypath() with no argument is the parameterized form,
// resolving its key from the ParamFrame at execution time.
type keypathNavigator struct {
	key           string
	parameterized bool
	offset        int
}

// Keypath builds a keypath navigator. With a key argument it is
// constant (0 slots); with none, it is parameterized (1 slot).
func Keypath(key ...interface{}) Navigator {
	if len(key) == 0 {
		return &keypathNavigator{parameterized: true}
	}
	k, is := key[0].(string)
	if !is {
		return &unsupportedNavigator{element: key[0]}
	}
	return &keypathNavigator{key: k}
}

func (n *keypathNavigator) Slots() int {
	if n.parameterized {
		return 1
	}
	return 0
}

func (n *keypathNavigator) setOffset(o int) { n.offset = o }

func (n *keypathNavigator) resolveKey(frame *ParamFrame) (string, error) {
	if !n.parameterized {
		return n.key, nil
	}
	v, err := frame.at("keypath", n.offset, 0)
	if err != nil {
		return "", err
	}
	k, is := v.(string)
	if !is {
		return "", &ShapeMismatch{Navigator: "keypath", Structure: v}
	}
	return k, nil
}

func (n *keypathNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	key, err := n.resolveKey(frame)
	if err != nil {
		return nil, err
	}
	m, is := structure.(map[string]interface{})
	if !is {
		return nil, &ShapeMismatch{Navigator: "keypath", Structure: structure}
	}
	v := m[key]
	return k(v)
}

func (n *keypathNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	key, err := n.resolveKey(frame)
	if err != nil {
		return nil, err
	}
	m, is := structure.(map[string]interface{})
	if !is {
		return nil, &ShapeMismatch{Navigator: "keypath", Structure: structure}
	}
	replaced, err := k(m[key])
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(m)+1)
	for kk, vv := range m {
		out[kk] = vv
	}
	out[key] = replaced
	return out, nil
}

// unsupportedNavigator reports a compile-time literal error lazily,
// at the point the path is actually run, rather than panicking out of
// a constructor such as Keypath.
type unsupportedNavigator struct{ element interface{} }

func (n *unsupportedNavigator) Slots() int { return 0 }

func (n *unsupportedNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	return nil, &UnsupportedPathElement{Element: n.element}
}

func (n *unsupportedNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	return nil, &UnsupportedPathElement{Element: n.element}
}
