package core

// cond-path, if-path and multi-path (spec.md §4.2) branch between
// whole sub-paths rather than filtering a single position. Unlike
// filterer/selected?, the chosen branch is not run to completion and
// compared: its SelectStep/TransformStep is handed the outer
// continuation directly, so the rest of the outer path still applies
// after the branch.

type condBranch struct {
	cond, path         *CompiledPath
	condBase, pathBase int
}

type condPathNavigator struct {
	branches []condBranch
	slots    int
	offset   int
}

// CondPath takes the pairs (c1, p1, c2, p2, ...) and, at execution
// time, finds the first ci for which select(ci, structure) is
// non-empty and continues along the matching pi. A select that
// matches no branch misses (nil, nil); a transform that matches none
// leaves the structure unchanged.
func CondPath(pairs ...interface{}) Navigator {
	var branches []condBranch
	total := 0
	for i := 0; i+1 < len(pairs); i += 2 {
		cond, err := CompilePaths(pairs[i])
		if err != nil {
			return &unsupportedNavigator{element: err}
		}
		path, err := CompilePaths(pairs[i+1])
		if err != nil {
			return &unsupportedNavigator{element: err}
		}
		condBase := total
		total += cond.Slots()
		pathBase := total
		total += path.Slots()
		branches = append(branches, condBranch{cond: cond, path: path, condBase: condBase, pathBase: pathBase})
	}
	return &condPathNavigator{branches: branches, slots: total}
}

func (n *condPathNavigator) Slots() int      { return n.slots }
func (n *condPathNavigator) setOffset(o int) { n.offset = o }

func (n *condPathNavigator) find(frame *ParamFrame, structure interface{}) (*condBranch, *ParamFrame, error) {
	for i := range n.branches {
		b := &n.branches[i]
		cf := subFrame(frame, n.offset+b.condBase)
		sel, err := selectInner(b.cond, cf, structure)
		if err != nil {
			return nil, nil, err
		}
		if len(sel) > 0 {
			return b, subFrame(frame, n.offset+b.pathBase), nil
		}
	}
	return nil, nil, nil
}

func (n *condPathNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	b, pf, err := n.find(frame, structure)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return b.path.SelectStep(pf, structure, k)
}

func (n *condPathNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	b, pf, err := n.find(frame, structure)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return structure, nil
	}
	return b.path.TransformStep(pf, structure, k)
}

// IfPath is cond-path sugar for a single condition with an optional
// else-branch, the else gated by STAY (always true).
func IfPath(cond interface{}, then interface{}, els ...interface{}) Navigator {
	pairs := []interface{}{cond, then}
	if len(els) > 0 {
		pairs = append(pairs, STAY, els[0])
	}
	return CondPath(pairs...)
}

// multiPathNavigator runs each sub-path's select against the same
// structure and concatenates the results; transform applies each
// sub-path's transform in turn, threading the structure through.
type multiPathNavigator struct {
	paths  []*CompiledPath
	bases  []int
	slots  int
	offset int
}

// MultiPath builds a navigator out of several independent sub-paths,
// each given as a single path element or a []interface{} of elements.
func MultiPath(subpaths ...interface{}) Navigator {
	var paths []*CompiledPath
	var bases []int
	total := 0
	for _, s := range subpaths {
		var p *CompiledPath
		var err error
		if elems, is := s.([]interface{}); is {
			p, err = CompilePaths(elems...)
		} else {
			p, err = CompilePaths(s)
		}
		if err != nil {
			return &unsupportedNavigator{element: err}
		}
		bases = append(bases, total)
		total += p.Slots()
		paths = append(paths, p)
	}
	return &multiPathNavigator{paths: paths, bases: bases, slots: total}
}

func (n *multiPathNavigator) Slots() int      { return n.slots }
func (n *multiPathNavigator) setOffset(o int) { n.offset = o }

func (n *multiPathNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	var out []interface{}
	for i, p := range n.paths {
		pf := subFrame(frame, n.offset+n.bases[i])
		res, err := p.SelectStep(pf, structure, k)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	return out, nil
}

func (n *multiPathNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	cur := structure
	for i, p := range n.paths {
		pf := subFrame(frame, n.offset+n.bases[i])
		var err error
		cur, err = p.TransformStep(pf, cur, k)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
