package core

// ALL, FIRST, LAST and STAY are the constant structural navigators of
// spec.md §4.2. They carry no parameters and so never implement
// offsetSetter.

type allNavigator struct{}

// ALL points at every child of a map, vec, seq or set: every value for
// a map (as a MapEntry pair), every element otherwise.
var ALL Navigator = &allNavigator{}

func (n *allNavigator) Slots() int { return 0 }

func (n *allNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	entries, err := childEntries("ALL", structure)
	if err != nil {
		return nil, err
	}
	_, isMap := structure.(map[string]interface{})
	var out []interface{}
	for _, e := range entries {
		v := e.val
		if isMap {
			v = MapEntry{Key: e.key.(string), Val: e.val}
		}
		res, err := k(v)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	return out, nil
}

func (n *allNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	entries, err := childEntries("ALL", structure)
	if err != nil {
		return nil, err
	}
	_, isMap := structure.(map[string]interface{})
	newEntries := make([]entry, len(entries))
	for i, e := range entries {
		v := e.val
		if isMap {
			v = MapEntry{Key: e.key.(string), Val: e.val}
		}
		res, err := k(v)
		if err != nil {
			return nil, err
		}
		if isMap {
			me, is := res.(MapEntry)
			if !is {
				return nil, &ShapeMismatch{Navigator: "ALL", Structure: res}
			}
			newEntries[i] = entry{key: me.Key, val: me.Val}
		} else {
			newEntries[i] = entry{key: e.key, val: res}
		}
	}
	return rebuild("ALL", structure, newEntries)
}

type firstNavigator struct{}

// FIRST points at the first element of an ordered (vec or seq)
// structure. It is a *ShapeMismatch against a map, set, or empty
// sequence.
var FIRST Navigator = &firstNavigator{}

func (n *firstNavigator) Slots() int { return 0 }

func (n *firstNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	vals, err := asOrdered("FIRST", structure)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, &ShapeMismatch{Navigator: "FIRST", Structure: structure}
	}
	return k(vals[0])
}

func (n *firstNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	vals, err := asOrdered("FIRST", structure)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, &ShapeMismatch{Navigator: "FIRST", Structure: structure}
	}
	replaced, err := k(vals[0])
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, len(vals))
	copy(out, vals)
	out[0] = replaced
	return rebuildOrdered(structure, out), nil
}

type lastNavigator struct{}

// LAST is FIRST's mirror image: the final element of an ordered
// structure.
var LAST Navigator = &lastNavigator{}

func (n *lastNavigator) Slots() int { return 0 }

func (n *lastNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	vals, err := asOrdered("LAST", structure)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, &ShapeMismatch{Navigator: "LAST", Structure: structure}
	}
	return k(vals[len(vals)-1])
}

func (n *lastNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	vals, err := asOrdered("LAST", structure)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, &ShapeMismatch{Navigator: "LAST", Structure: structure}
	}
	replaced, err := k(vals[len(vals)-1])
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, len(vals))
	copy(out, vals)
	out[len(out)-1] = replaced
	return rebuildOrdered(structure, out), nil
}

type stayNavigator struct{}

// STAY is the identity navigator: it passes the structure straight
// through to its continuation unchanged. It is the always-true
// condition IfPath uses to gate an else-branch.
var STAY Navigator = &stayNavigator{}

func (n *stayNavigator) Slots() int { return 0 }

func (n *stayNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	return k(structure)
}

func (n *stayNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	return k(structure)
}
