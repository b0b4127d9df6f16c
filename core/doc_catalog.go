package core

// NavDoc documents one built-in navigator or collector for
// tools/docs.go's rendered catalog (a Go-native stand-in for the
// teacher's generated spec documentation, tools/spec-html.go).
type NavDoc struct {
	Name   string   `json:"name" yaml:"name"`
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
	Doc    string   `json:"doc" yaml:"doc"`
}

// BuiltinDocs is the catalog tools/docs.go renders.
var BuiltinDocs = []NavDoc{
	{Name: "ALL", Doc: "Points to every child of a map, vec, seq or set. Transform preserves the container shape."},
	{Name: "FIRST", Doc: "Points to the first element of an ordered structure. Shape mismatch on an empty or unordered one."},
	{Name: "LAST", Doc: "Points to the last element of an ordered structure. Shape mismatch on an empty or unordered one."},
	{Name: "STAY", Doc: "Identity navigator: passes the structure straight through unchanged."},
	{Name: "keypath", Params: []string{"key"}, Doc: "Points to one key of a keyed map. A bare string in a path lifts to this navigator."},
	{Name: "srange", Params: []string{"start", "end"}, Doc: "Points to a contiguous subsequence [start, end) of an ordered structure."},
	{Name: "srange-dynamic", Params: []string{"start-fn", "end-fn"}, Doc: "srange with bounds computed from the structure at execution time."},
	{Name: "BEGINNING", Doc: "srange(0, 0): the empty subsequence at the start, for prepending via setval."},
	{Name: "END", Doc: "srange-dynamic to the structure's own length: the empty subsequence at the end, for appending."},
	{Name: "walker", Params: []string{"pred"}, Doc: "Recurses through the entire value tree, pointing at every sub-value for which pred holds."},
	{Name: "codewalker", Params: []string{"pred"}, Doc: "walker restricted to descend only through vec/seq shapes."},
	{Name: "filterer", Params: []string{"path"}, Doc: "Points to the subsequence of an ordered structure's elements for which path selects something."},
	{Name: "view", Params: []string{"f"}, Doc: "Applies f and continues with the result; the continuation's output is the final value, with no write-back."},
	{Name: "selected?", Params: []string{"path"}, Doc: "Stays at the current position if path selects something there."},
	{Name: "not-selected?", Params: []string{"path"}, Doc: "Stays at the current position if path selects nothing there."},
	{Name: "transformed", Params: []string{"path", "f"}, Doc: "Computes transform(path, f, _) against the current structure and continues with that."},
	{Name: "cond-path", Params: []string{"c1, p1, ..."}, Doc: "Continues along the first pi whose ci selects something; misses (select) or is a no-op (transform) if none do."},
	{Name: "if-path", Params: []string{"cond", "then", "else?"}, Doc: "cond-path sugar for a single condition with an optional else-branch."},
	{Name: "multi-path", Params: []string{"path..."}, Doc: "Selects the concatenation of each sub-path's results; transforms by applying each in turn."},
	{Name: "VAL", Doc: "Collects the current structure."},
	{Name: "putval", Params: []string{"v"}, Doc: "Collects a fixed (or late-bound) value regardless of position."},
	{Name: "collect", Params: []string{"path"}, Doc: "Collects select(path, structure)."},
	{Name: "collect-one", Params: []string{"path"}, Doc: "Collects path's sole result, asserting cardinality <= 1; nil if it selects nothing."},
}
