// Package interpreters assembles the standard core.Interpreters
// registry: every Interpreter this module ships, keyed by the name a
// FnSource names in its Interpreter field.
package interpreters

import (
	"github.com/arborpath/arborpath/core"
	"github.com/arborpath/arborpath/interpreters/goja"
	"github.com/arborpath/arborpath/interpreters/noop"
)

// Standard returns a registry holding every Interpreter this module
// ships, for callers that need to compile Fns from source.
func Standard() core.Interpreters {
	return core.Interpreters{
		"goja": goja.NewInterpreter(),
		"noop": noop.NewInterpreter(),
	}
}
