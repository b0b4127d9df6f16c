package core

// The path compiler (spec.md §4.3): flatten the input tree, lift
// literals into their Navigator equivalents, count and assign
// parameter slots, and package the result as a CompiledPath — itself
// a Navigator, so composition is closed (spec.md §3 "Compiled Path").

// offsetSetter is implemented by parameterized navigators and
// collectors so the compiler can assign their starting offset (step 3
// of §4.3) without a registry: each one just remembers where its
// slots begin.
type offsetSetter interface {
	setOffset(int)
}

// CompiledPath is a flat, linear execution plan together with its
// total parameter-slot count and whether it contains any collectors.
// A CompiledPath compiled with zero slots is immediately executable;
// one with slots > 0 needs BindParams first.
type CompiledPath struct {
	steps        []interface{} // each element is a Navigator or a Collector
	slots        int
	hasCollector bool

	// frame is non-nil only for a path produced by BindParams. Such a
	// path carries its own parameters and is usable as an opaque,
	// already-resolved Navigator inside a larger composition.
	frame *ParamFrame
}

// CompilePaths flattens, lifts, and specializes the given path
// elements into a single CompiledPath.
func CompilePaths(elems ...interface{}) (*CompiledPath, error) {
	flat, err := flattenLift(elems)
	if err != nil {
		return nil, err
	}

	slots := 0
	hasCollector := false
	for _, s := range flat {
		if c, is := s.(Collector); is {
			hasCollector = true
			if n := c.Slots(); n > 0 {
				if setter, is := c.(offsetSetter); is {
					setter.setOffset(slots)
				}
				slots += n
			}
			continue
		}
		nav := s.(Navigator)
		if n := nav.Slots(); n > 0 {
			if setter, is := nav.(offsetSetter); is {
				setter.setOffset(slots)
			}
			slots += n
		}
	}

	Logf("compiled path: %d steps, %d slots, collector=%v", len(flat), slots, hasCollector)

	return &CompiledPath{steps: flat, slots: slots, hasCollector: hasCollector}, nil
}

// flattenLift implements §4.3 steps 1-2: depth-first flatten of
// nested slices (inlining embedded unbound CompiledPaths too, per the
// associativity law compile([A,[B,C],D]) == compile([A,B,C,D])), then
// lifts bare literals (string, Predicate, *Set) into Navigators.
func flattenLift(elems []interface{}) ([]interface{}, error) {
	out := make([]interface{}, 0, len(elems))
	for _, e := range elems {
		switch vv := e.(type) {
		case []interface{}:
			sub, err := flattenLift(vv)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		case []Navigator:
			generic := make([]interface{}, len(vv))
			for i, n := range vv {
				generic[i] = n
			}
			sub, err := flattenLift(generic)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		case *CompiledPath:
			if vv.frame == nil {
				out = append(out, vv.steps...)
			} else {
				out = append(out, vv)
			}
		case Collector:
			out = append(out, vv)
		case Navigator:
			out = append(out, vv)
		default:
			lifted, err := liftLiteral(vv)
			if err != nil {
				return nil, err
			}
			out = append(out, lifted)
		}
	}
	return out, nil
}

// liftLiteral implements the "tagged-union navigator" re-architecture
// of design note "Protocol dispatch on literal values": instead of
// extending the Navigator protocol onto string/*Set/Predicate at
// runtime, the compiler recognizes them here and produces an explicit
// Navigator.
func liftLiteral(x interface{}) (Navigator, error) {
	switch vv := x.(type) {
	case string:
		Logf("lifted literal %q as keypath", vv)
		return Keypath(vv), nil
	case Predicate:
		return &predicateFilterNavigator{pred: vv}, nil
	case func(interface{}) bool:
		return &predicateFilterNavigator{pred: Predicate(vv)}, nil
	case *Set:
		return &predicateFilterNavigator{pred: func(x interface{}) bool { return vv.Contains(x) }}, nil
	default:
		return nil, &UnsupportedPathElement{Element: x}
	}
}

// Slots returns the path's remaining unbound parameter-slot count. A
// path produced by BindParams reports zero: its parameters are
// already resolved.
func (p *CompiledPath) Slots() int {
	if p.frame != nil {
		return 0
	}
	return p.slots
}

// HasCollector reports whether any collector appears in the path.
func (p *CompiledPath) HasCollector() bool {
	return p.hasCollector
}

func (p *CompiledPath) effectiveFrame(frame *ParamFrame) *ParamFrame {
	if p.frame != nil {
		return p.frame
	}
	return frame
}

// SelectStep makes a CompiledPath itself a Navigator, so compiled
// subpaths compose (spec.md §3: "A compiled path is itself a
// Navigator"). Reached for a path that was bound via BindParams and
// then nested inside a larger composition, and for the branch
// sub-paths of cond-path and multi-path, which call it directly. An
// unbound CompiledPath given as a path element is inlined at compile
// time instead (see flattenLift).
func (p *CompiledPath) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	return stepSelect(p.steps, 0, p.effectiveFrame(frame), nil, structure,
		func(_ []interface{}, x interface{}) ([]interface{}, error) { return k(x) })
}

// TransformStep is TransformStep's analog of SelectStep above.
func (p *CompiledPath) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	return stepTransform(p.steps, 0, p.effectiveFrame(frame), nil, structure,
		func(_ []interface{}, x interface{}) (interface{}, error) { return k(x) })
}

// BindParams materializes a late-bound CompiledPath: every
// parameterized navigator's offset (fixed at compile time) is now
// resolvable against params[idx:]. Binding is cheap: it shares the
// underlying steps slice and allocates only the small CompiledPath
// wrapper and ParamFrame.
func BindParams(p *CompiledPath, params []interface{}, idx int) *CompiledPath {
	return &CompiledPath{
		steps:        p.steps,
		slots:        p.slots,
		hasCollector: p.hasCollector,
		frame:        &ParamFrame{Params: params, Base: idx},
	}
}
