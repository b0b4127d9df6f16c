package core

// The Value model (spec.md §3) is six variants: Scalar, Map, Vec, Seq,
// Set, Fn. We do not wrap values in a tagged union type; like the
// teacher's match.go, we dispatch on interface{}'s dynamic type with
// a type switch, recognizing:
//
//	map[string]interface{}  -- keyed map
//	[]interface{}           -- indexed sequence (Vec)
//	*Seq                    -- linked sequence
//	*Set                    -- set
//
// Anything else is a Scalar (an opaque leaf as far as the container
// shim is concerned).

import "reflect"

// MapEntry is the (key, val) pair ALL hands to its continuation when
// the structure is a keyed map, per spec.md §4.2.
type MapEntry struct {
	Key string
	Val interface{}
}

// Seq is a persistent linked sequence. Unlike Vec ([]interface{}),
// Seq supports Cons in O(1) without copying the rest of the
// structure, which is the distinction spec.md §3 draws between
// "indexed" and "linked" sequences.
type Seq struct {
	head interface{}
	tail *Seq
	n    int
}

// NewSeq builds a Seq from the given elements, head first.
func NewSeq(elems ...interface{}) *Seq {
	var s *Seq
	for i := len(elems) - 1; i >= 0; i-- {
		s = s.Cons(elems[i])
	}
	return s
}

// Cons prepends x, returning a new Seq. The receiver is untouched.
func (s *Seq) Cons(x interface{}) *Seq {
	n := 1
	if s != nil {
		n = s.n + 1
	}
	return &Seq{head: x, tail: s, n: n}
}

// First returns the head element. ok is false for an empty/nil Seq.
func (s *Seq) First() (interface{}, bool) {
	if s == nil {
		return nil, false
	}
	return s.head, true
}

// Rest returns the Seq without its head. A nil or single-element Seq
// returns nil.
func (s *Seq) Rest() *Seq {
	if s == nil {
		return nil
	}
	return s.tail
}

// Len returns the number of elements.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Slice materializes the Seq as a []interface{}, head first.
func (s *Seq) Slice() []interface{} {
	out := make([]interface{}, 0, s.Len())
	for cur := s; cur != nil; cur = cur.tail {
		out = append(out, cur.head)
	}
	return out
}

// Set is a persistent, order-preserving collection of unique
// elements. Uniqueness is checked with reflect.DeepEqual, the same
// equality the teacher's cmd/patmatch.Subset uses to compare bindings.
type Set struct {
	elems []interface{}
}

// NewSet builds a Set from the given elements, discarding duplicates
// and keeping the first occurrence's position.
func NewSet(elems ...interface{}) *Set {
	s := &Set{elems: make([]interface{}, 0, len(elems))}
	for _, x := range elems {
		s = s.With(x)
	}
	return s
}

// Elements returns the Set's elements in iteration order. The
// returned slice must not be mutated by callers.
func (s *Set) Elements() []interface{} {
	if s == nil {
		return nil
	}
	return s.elems
}

// Contains reports whether x is a member.
func (s *Set) Contains(x interface{}) bool {
	if s == nil {
		return false
	}
	for _, e := range s.elems {
		if reflect.DeepEqual(e, x) {
			return true
		}
	}
	return false
}

// With returns a new Set with x added, unless it's already a member.
func (s *Set) With(x interface{}) *Set {
	if s.Contains(x) {
		return s
	}
	n := &Set{elems: make([]interface{}, len(s.Elements())+1)}
	copy(n.elems, s.Elements())
	n.elems[len(n.elems)-1] = x
	return n
}

// Without returns a new Set with x removed, if present.
func (s *Set) Without(x interface{}) *Set {
	if !s.Contains(x) {
		return s
	}
	n := &Set{elems: make([]interface{}, 0, len(s.elems)-1)}
	for _, e := range s.elems {
		if !reflect.DeepEqual(e, x) {
			n.elems = append(n.elems, e)
		}
	}
	return n
}

// entry is the shim's uniform view of one child of a container: a
// map entry's key and value, or a sequence/set element at a position.
type entry struct {
	key interface{} // string for maps, int for vec/seq/set
	val interface{}
}

// childEntries returns structure's children, in iteration order, or a
// *ShapeMismatch if structure isn't one of the four recognized
// container shapes.
func childEntries(navigator string, structure interface{}) ([]entry, error) {
	switch vv := structure.(type) {
	case map[string]interface{}:
		out := make([]entry, 0, len(vv))
		for k, v := range vv {
			out = append(out, entry{key: k, val: v})
		}
		return out, nil
	case []interface{}:
		out := make([]entry, len(vv))
		for i, v := range vv {
			out[i] = entry{key: i, val: v}
		}
		return out, nil
	case *Seq:
		sl := vv.Slice()
		out := make([]entry, len(sl))
		for i, v := range sl {
			out[i] = entry{key: i, val: v}
		}
		return out, nil
	case *Set:
		els := vv.Elements()
		out := make([]entry, len(els))
		for i, v := range els {
			out[i] = entry{key: i, val: v}
		}
		return out, nil
	default:
		return nil, &ShapeMismatch{Navigator: navigator, Structure: structure}
	}
}

// rebuild reconstructs a container of the same shape as template from
// the given entries, which must be the (possibly transformed) output
// of childEntries on that same template.
func rebuild(navigator string, template interface{}, entries []entry) (interface{}, error) {
	switch template.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(entries))
		for _, e := range entries {
			k, is := e.key.(string)
			if !is {
				return nil, &ShapeMismatch{Navigator: navigator, Structure: template}
			}
			out[k] = e.val
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(entries))
		for i, e := range entries {
			out[i] = e.val
		}
		return out, nil
	case *Seq:
		vals := make([]interface{}, len(entries))
		for i, e := range entries {
			vals[i] = e.val
		}
		return NewSeq(vals...), nil
	case *Set:
		vals := make([]interface{}, len(entries))
		for i, e := range entries {
			vals[i] = e.val
		}
		return NewSet(vals...), nil
	default:
		return nil, &ShapeMismatch{Navigator: navigator, Structure: template}
	}
}

// asOrdered returns structure's elements as a []interface{} if it is
// one of the ordered shapes (Vec, Seq); it is a *ShapeMismatch for
// maps and sets, which have no first/last/range notion.
func asOrdered(navigator string, structure interface{}) ([]interface{}, error) {
	switch vv := structure.(type) {
	case []interface{}:
		return vv, nil
	case *Seq:
		return vv.Slice(), nil
	default:
		return nil, &ShapeMismatch{Navigator: navigator, Structure: structure}
	}
}

// rebuildOrdered reconstructs an ordered container of the same
// concrete shape as template from vals.
func rebuildOrdered(template interface{}, vals []interface{}) interface{} {
	switch template.(type) {
	case *Seq:
		return NewSeq(vals...)
	default:
		out := make([]interface{}, len(vals))
		copy(out, vals)
		return out
	}
}
