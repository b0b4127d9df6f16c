// Package noop provides a core.Interpreter that compiles any source
// to an Fn returning its argument unchanged, for tests and paths that
// name an interpreter without needing one to actually run.
package noop

import (
	"log"

	"github.com/arborpath/arborpath/core"
)

// Interpreter is a core.Interpreter whose Fns are the identity
// function, regardless of the source given to Compile.
type Interpreter struct {
	// Silent, if false, logs a warning every time Compile is called.
	Silent bool
}

// NewInterpreter returns a noisy (Silent: false) Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Compile ignores src and always succeeds.
func (i *Interpreter) Compile(src string) (core.Fn, error) {
	if !i.Silent {
		log.Printf("warning: noop.Interpreter compiling %q", src)
	}
	return func(x interface{}) (interface{}, error) {
		return x, nil
	}, nil
}
