package core

// srange (spec.md §4.2) points at a contiguous subsequence of an
// ordered structure, described either by two fixed bounds or by
// bounds computed from the structure itself (srange-dynamic).
type srangeNavigator struct {
	s, e       int
	dynamic    bool
	fs, fe     func(interface{}) int
}

// SRange points at structure[s:e].
func SRange(s, e int) Navigator {
	return &srangeNavigator{s: s, e: e}
}

// SRangeDynamic computes its bounds from the structure at execution
// time, e.g. to express "from index 1 to the end" regardless of
// length.
func SRangeDynamic(fs, fe func(interface{}) int) Navigator {
	return &srangeNavigator{dynamic: true, fs: fs, fe: fe}
}

func seqLen(navigator string) func(interface{}) int {
	return func(x interface{}) int {
		vals, err := asOrdered(navigator, x)
		if err != nil {
			return 0
		}
		return len(vals)
	}
}

// BEGINNING and END are the srange bounds spec.md §4.2 names for
// "from/to the edge of the structure": BEGINNING is srange(0, 0),
// END is the dynamic bound that is always the structure's length.
var (
	BEGINNING Navigator = SRange(0, 0)
	END       Navigator = SRangeDynamic(seqLen("END"), seqLen("END"))
)

func (n *srangeNavigator) Slots() int { return 0 }

func (n *srangeNavigator) bounds(structure interface{}) (int, int) {
	if n.dynamic {
		return n.fs(structure), n.fe(structure)
	}
	return n.s, n.e
}

func (n *srangeNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	vals, err := asOrdered("srange", structure)
	if err != nil {
		return nil, err
	}
	s, e := n.bounds(structure)
	if s < 0 || e > len(vals) || s > e {
		return nil, &ShapeMismatch{Navigator: "srange", Structure: structure}
	}
	sub := make([]interface{}, e-s)
	copy(sub, vals[s:e])
	return k(rebuildOrdered(structure, sub))
}

func (n *srangeNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	vals, err := asOrdered("srange", structure)
	if err != nil {
		return nil, err
	}
	s, e := n.bounds(structure)
	if s < 0 || e > len(vals) || s > e {
		return nil, &ShapeMismatch{Navigator: "srange", Structure: structure}
	}
	sub := make([]interface{}, e-s)
	copy(sub, vals[s:e])
	replaced, err := k(rebuildOrdered(structure, sub))
	if err != nil {
		return nil, err
	}
	replacedVals, err := asOrdered("srange", replaced)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, 0, len(vals)-(e-s)+len(replacedVals))
	out = append(out, vals[:s]...)
	out = append(out, replacedVals...)
	out = append(out, vals[e:]...)
	return rebuildOrdered(structure, out), nil
}
