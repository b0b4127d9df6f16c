package core

// walker and codewalker (spec.md §4.2) recurse through an entire
// value tree, pointing at every sub-value for which pred holds.
// Descent continues into a matched node's children too: a match does
// not cut off the traversal. Recursion depth is bounded by the
// structure's own nesting depth, which callers are expected to keep
// within ordinary Go stack limits; arbitrarily deep structures should
// use an explicit work-list instead, which this implementation does
// not need for the depths the navigator library is meant to cover.
type walkerNavigator struct {
	pred     Predicate
	codeOnly bool // codewalker: only vecs and seqs are containers; everything else is an opaque leaf
}

// Walker points at every sub-value of structure, at any depth, for
// which pred holds.
func Walker(pred Predicate) Navigator {
	return &walkerNavigator{pred: pred}
}

// CodeWalker is Walker restricted to descend only through vec/seq
// shapes, treating maps and sets as opaque leaves — named for its
// intended use walking code-as-data (nested vecs), not general
// structures.
func CodeWalker(pred Predicate) Navigator {
	return &walkerNavigator{pred: pred, codeOnly: true}
}

func (n *walkerNavigator) Slots() int { return 0 }

func (n *walkerNavigator) isLeaf(entries []entry, entriesErr error, x interface{}) bool {
	if entriesErr != nil {
		return true
	}
	if !n.codeOnly {
		return false
	}
	switch x.(type) {
	case []interface{}, *Seq:
		return false
	default:
		return true
	}
}

func (n *walkerNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	return n.selectWalk(structure, k)
}

func (n *walkerNavigator) selectWalk(x interface{}, k SelectContinuation) ([]interface{}, error) {
	var out []interface{}
	if n.pred(x) {
		res, err := k(x)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	entries, err := childEntries("walker", x)
	if n.isLeaf(entries, err, x) {
		return out, nil
	}
	for _, e := range entries {
		sub, err := n.selectWalk(e.val, k)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

func (n *walkerNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	return n.transformWalk(structure, k)
}

func (n *walkerNavigator) transformWalk(x interface{}, k TransformContinuation) (interface{}, error) {
	matched := n.pred(x)
	entries, err := childEntries("walker", x)
	cur := x
	if !n.isLeaf(entries, err, x) {
		newEntries := make([]entry, len(entries))
		for i, e := range entries {
			nv, err := n.transformWalk(e.val, k)
			if err != nil {
				return nil, err
			}
			newEntries[i] = entry{key: e.key, val: nv}
		}
		cur, err = rebuild("walker", x, newEntries)
		if err != nil {
			return nil, err
		}
	}
	if matched {
		return k(cur)
	}
	return cur, nil
}
