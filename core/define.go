package core

// define-paramspath / define-paramscollector (spec.md §6): register a
// user-authored parameterized navigator or collector without a
// registry — the returned Navigator/Collector is ready to use in any
// path the moment it is constructed. Callers see their own parameters
// as a plain slice, already resolved against the ParamFrame; the
// offset bookkeeping that makes late binding work is hidden here, the
// same as it is for keypath and putval.

// paramsPathNavigator holds the pair of functions a parameterized
// navigator supplies: params holds exactly nParams values.
type paramsPathNavigator struct {
	name       string
	nParams    int
	selectImpl func(params []interface{}, structure interface{}, k SelectContinuation) ([]interface{}, error)
	transformImpl func(params []interface{}, structure interface{}, k TransformContinuation) (interface{}, error)
	offset int
}

// DefineParamsPath registers a new parameterized navigator. name is
// used only for diagnostics (e.g. UnboundParameter's message).
func DefineParamsPath(
	name string,
	nParams int,
	selectImpl func(params []interface{}, structure interface{}, k SelectContinuation) ([]interface{}, error),
	transformImpl func(params []interface{}, structure interface{}, k TransformContinuation) (interface{}, error),
) Navigator {
	return &paramsPathNavigator{name: name, nParams: nParams, selectImpl: selectImpl, transformImpl: transformImpl}
}

func (n *paramsPathNavigator) Slots() int      { return n.nParams }
func (n *paramsPathNavigator) setOffset(o int) { n.offset = o }

func (n *paramsPathNavigator) params(frame *ParamFrame) ([]interface{}, error) {
	out := make([]interface{}, n.nParams)
	for i := range out {
		v, err := frame.at(n.name, n.offset, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (n *paramsPathNavigator) SelectStep(frame *ParamFrame, structure interface{}, k SelectContinuation) ([]interface{}, error) {
	params, err := n.params(frame)
	if err != nil {
		return nil, err
	}
	return n.selectImpl(params, structure, k)
}

func (n *paramsPathNavigator) TransformStep(frame *ParamFrame, structure interface{}, k TransformContinuation) (interface{}, error) {
	params, err := n.params(frame)
	if err != nil {
		return nil, err
	}
	return n.transformImpl(params, structure, k)
}

type paramsCollector struct {
	name        string
	nParams     int
	collectImpl func(params []interface{}, structure interface{}) (interface{}, error)
	offset      int
}

// DefineParamsCollector registers a new parameterized collector.
func DefineParamsCollector(
	name string,
	nParams int,
	collectImpl func(params []interface{}, structure interface{}) (interface{}, error),
) Collector {
	return &paramsCollector{name: name, nParams: nParams, collectImpl: collectImpl}
}

func (c *paramsCollector) Slots() int      { return c.nParams }
func (c *paramsCollector) setOffset(o int) { c.offset = o }

func (c *paramsCollector) CollectValue(frame *ParamFrame, structure interface{}) (interface{}, error) {
	params := make([]interface{}, c.nParams)
	for i := range params {
		v, err := frame.at(c.name, c.offset, i)
		if err != nil {
			return nil, err
		}
		params[i] = v
	}
	return c.collectImpl(params, structure)
}
