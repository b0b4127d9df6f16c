// Package goja implements core.Interpreter using Goja, a Go
// implementation of ECMAScript 5.1+, so predicates and transforms in a
// path can be authored as JavaScript source instead of Go closures.
//
// See https://github.com/dop251/goja.
package goja

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/arborpath/arborpath/core"

	"github.com/dop251/goja"
)

// Interpreter compiles JavaScript source into a core.Fn.
type Interpreter struct {
	// Provider resolves a "requires" library name into its source.
	// DefaultLibraryProvider ("file://...") is used when nil.
	Provider func(i *Interpreter, libraryName string) (string, error)
}

// NewInterpreter makes a new Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

func (i *Interpreter) provide(name string) (string, error) {
	if i.Provider != nil {
		return i.Provider(i, name)
	}
	return DefaultLibraryProvider(i, name)
}

// DefaultLibraryProvider resolves library:// names with "file" and
// "http"/"https" protocols.
var DefaultLibraryProvider = MakeFileLibraryProvider(".")

// MakeFileLibraryProvider builds a provider that resolves
// "file://path" names relative to dir, and still honors
// "http://"/"https://" names directly.
func MakeFileLibraryProvider(dir string) func(*Interpreter, string) (string, error) {
	return func(i *Interpreter, name string) (string, error) {
		parts := strings.SplitN(name, "://", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("bad library link %q", name)
		}
		switch parts[0] {
		case "file":
			bs, err := ioutil.ReadFile(dir + "/" + parts[1])
			if err != nil {
				return "", err
			}
			return string(bs), nil
		case "http", "https":
			resp, err := http.Get(name)
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return "", fmt.Errorf("library fetch status %s", resp.Status)
			}
			bs, err := ioutil.ReadAll(resp.Body)
			if err != nil {
				return "", err
			}
			return string(bs), nil
		default:
			return "", fmt.Errorf("unknown library protocol %q", parts[0])
		}
	}
}

// MakeMapLibraryProvider builds a provider over an in-memory table,
// for tests.
func MakeMapLibraryProvider(srcs map[string]string) func(*Interpreter, string) (string, error) {
	return func(i *Interpreter, name string) (string, error) {
		src, have := srcs[name]
		if !have {
			return "", fmt.Errorf("undefined library %q", name)
		}
		return src, nil
	}
}

// parseSource pulls "code" and "requires" out of a YAML/JSON-shaped
// FnSource.Source, the way the teacher's action sources did, so a
// goja Fn can name libraries without an explicit require() call.
func parseSource(vv map[string]interface{}) (code string, libs []string, err error) {
	x, have := vv["code"]
	if have {
		s, is := x.(string)
		if !is {
			return "", nil, errors.New("bad goja source: code is not a string")
		}
		code = s
	}

	switch x := vv["requires"].(type) {
	case string:
		libs = []string{x}
	case []string:
		libs = x
	case []interface{}:
		libs = make([]string, 0, len(x))
		for _, e := range x {
			s, is := e.(string)
			if !is {
				return "", nil, fmt.Errorf("bad library name %#v", e)
			}
			libs = append(libs, s)
		}
	}

	return code, libs, nil
}

// AsSource accepts either a bare JS source string, or a map with
// "code" and optional "requires" keys.
func AsSource(src string) (code string, libs []string, err error) {
	trimmed := strings.TrimSpace(src)
	if !strings.HasPrefix(trimmed, "{") {
		return src, nil, nil
	}
	var v map[string]interface{}
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		return src, nil, nil // not JSON after all: treat it as plain source
	}
	return parseSource(v)
}

// Compile resolves any requires, wraps the code as a function body
// receiving the navigated value as "value", and compiles it. The
// returned Fn runs the compiled program fresh each call.
func (i *Interpreter) Compile(src string) (core.Fn, error) {
	code, libs, err := AsSource(src)
	if err != nil {
		return nil, err
	}

	var libsSrc string
	for _, lib := range libs {
		libSrc, err := i.provide(lib)
		if err != nil {
			return nil, err
		}
		libsSrc += libSrc + "\n"
	}

	wrapped := libsSrc + fmt.Sprintf("(function(value) {\n%s\n})(value);\n", code)

	program, err := goja.Compile("", wrapped, true)
	if err != nil {
		return nil, fmt.Errorf("goja compile: %s: %s", err, wrapped)
	}

	return func(x interface{}) (interface{}, error) {
		return run(program, x)
	}, nil
}

func run(program *goja.Program, value interface{}) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			if v, is := r.(*goja.Exception); is {
				err = errors.New(v.String())
				return
			}
			err = fmt.Errorf("goja panic: %v", r)
		}
	}()

	vm := goja.New()
	vm.Set("value", value)
	vm.Set("gensym", func() string { return core.Gensym(32) })
	vm.Set("esc", func(s string) string { return url.QueryEscape(s) })

	out, err := vm.RunProgram(program)
	if err != nil {
		return nil, err
	}
	return out.Export(), nil
}
