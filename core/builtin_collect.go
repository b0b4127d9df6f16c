package core

// VAL, putval, collect and collect-one (spec.md §4.4) are the
// built-in Collectors: they contribute a value to the terminal
// transform function's argument list without moving the cursor.

type valCollector struct{}

// VAL collects the structure at the point it appears in the path.
var VAL Collector = &valCollector{}

func (c *valCollector) Slots() int { return 0 }

func (c *valCollector) CollectValue(frame *ParamFrame, structure interface{}) (interface{}, error) {
	return structure, nil
}

type putValCollector struct {
	v             interface{}
	parameterized bool
	offset        int
}

// PutVal collects a fixed value (or, with no argument, a late-bound
// one) regardless of where it appears in the path.
func PutVal(v ...interface{}) Collector {
	if len(v) == 0 {
		return &putValCollector{parameterized: true}
	}
	return &putValCollector{v: v[0]}
}

func (c *putValCollector) Slots() int {
	if c.parameterized {
		return 1
	}
	return 0
}

func (c *putValCollector) setOffset(o int) { c.offset = o }

func (c *putValCollector) CollectValue(frame *ParamFrame, structure interface{}) (interface{}, error) {
	if !c.parameterized {
		return c.v, nil
	}
	return frame.at("putval", c.offset, 0)
}

type collectCollector struct {
	inner  *CompiledPath
	one    bool
	offset int
}

// Collect runs the given sub-path and collects its select results
// (a []interface{}, possibly empty) as a single collected value.
func Collect(elems ...interface{}) Collector {
	p, err := CompilePaths(elems...)
	if err != nil {
		return &unsupportedCollector{element: err}
	}
	return &collectCollector{inner: p}
}

// CollectOne is Collect but asserts the sub-path selects at most one
// value, collecting it bare (not wrapped in a slice); it collects nil
// when the sub-path selects nothing.
func CollectOne(elems ...interface{}) Collector {
	p, err := CompilePaths(elems...)
	if err != nil {
		return &unsupportedCollector{element: err}
	}
	return &collectCollector{inner: p, one: true}
}

func (c *collectCollector) Slots() int      { return c.inner.Slots() }
func (c *collectCollector) setOffset(o int) { c.offset = o }

func (c *collectCollector) CollectValue(frame *ParamFrame, structure interface{}) (interface{}, error) {
	sel, err := selectInner(c.inner, subFrame(frame, c.offset), structure)
	if err != nil {
		return nil, err
	}
	if !c.one {
		return sel, nil
	}
	if len(sel) > 1 {
		return nil, &CardinalityViolation{Op: "collect-one", Count: len(sel)}
	}
	if len(sel) == 0 {
		return nil, nil
	}
	return sel[0], nil
}

// unsupportedCollector mirrors unsupportedNavigator for collector
// constructors given a bad sub-path.
type unsupportedCollector struct{ element interface{} }

func (c *unsupportedCollector) Slots() int { return 0 }

func (c *unsupportedCollector) CollectValue(frame *ParamFrame, structure interface{}) (interface{}, error) {
	return nil, &UnsupportedPathElement{Element: c.element}
}
