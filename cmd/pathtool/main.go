// Command pathtool runs a select or a setval against a JSON or YAML
// structure, with the path itself given as a small JSON array
// mini-language:
//
//	pathtool -select -path '["a", {"nav":"ALL"}]' -structure '{"a":[1,2,3]}'
//	pathtool -setval '[99]' -path '["a", {"nav":"srange","params":[0,1]}]' -structure '{"a":[1,2,3]}'
//
// Each path element is either a bare string (a keypath literal) or
// an object {"nav": name, "params": [...]} naming one of the built-in
// navigators in core's navigator library.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/arborpath/arborpath/core"

	"gopkg.in/yaml.v2"
)

func main() {
	var (
		pathJS      = flag.String("path", "", "path mini-language, as a JSON array")
		structureJS = flag.String("structure", "", "structure, as JSON")
		structureY  = flag.String("structure-yaml", "", "structure, as YAML (overrides -structure)")

		doSelect = flag.Bool("select", false, "select against the path")
		setval   = flag.String("setval", "", "setval this JSON value against the path")

		bench = flag.Int("bench", 0, "number of times to run (and report time)")
	)
	flag.Parse()

	var pathElems []interface{}
	if err := json.Unmarshal([]byte(*pathJS), &pathElems); err != nil {
		log.Fatalf("bad -path: %s", err)
	}
	elems, err := compilePathSpec(pathElems)
	if err != nil {
		log.Fatalf("bad -path: %s", err)
	}
	path, err := core.CompilePaths(elems...)
	if err != nil {
		log.Fatalf("compile: %s", err)
	}

	var structure interface{}
	if *structureY != "" {
		if err := yaml.Unmarshal([]byte(*structureY), &structure); err != nil {
			log.Fatalf("bad -structure-yaml: %s", err)
		}
		structure = normalizeYAML(structure)
	} else if *structureJS != "" {
		if err := json.Unmarshal([]byte(*structureJS), &structure); err != nil {
			log.Fatalf("bad -structure: %s", err)
		}
	}

	run := func() (interface{}, error) {
		if *doSelect {
			return core.Select(path, structure)
		}
		if *setval != "" {
			var v interface{}
			if err := json.Unmarshal([]byte(*setval), &v); err != nil {
				return nil, fmt.Errorf("bad -setval: %s", err)
			}
			return core.SetVal(path, v, structure)
		}
		return nil, fmt.Errorf("nothing to do: give -select or -setval")
	}

	if 0 < *bench {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)
		allocs := stats.TotalAlloc
		then := time.Now()
		for i := 0; i < *bench; i++ {
			if _, err := run(); err != nil {
				log.Fatal(err)
			}
		}
		elapsed := time.Since(then)
		meanNanos := elapsed.Nanoseconds() / int64(*bench)
		runtime.ReadMemStats(&stats)
		allocated := (stats.TotalAlloc - allocs) / uint64(*bench)
		log.Printf("%d iterations, %d mean ns/op, %d mean bytes allocated per op", *bench, meanNanos, allocated)
		return
	}

	result, err := run()
	if err != nil {
		log.Fatal(err)
	}
	js, err := json.Marshal(&result)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", js)
}

// compilePathSpec turns the JSON-mini-language path elements into
// values CompilePaths accepts.
func compilePathSpec(elems []interface{}) ([]interface{}, error) {
	out := make([]interface{}, 0, len(elems))
	for _, e := range elems {
		switch vv := e.(type) {
		case string:
			out = append(out, vv)
		case map[string]interface{}:
			nav, err := navFromSpec(vv)
			if err != nil {
				return nil, err
			}
			out = append(out, nav)
		default:
			return nil, fmt.Errorf("bad path element %#v", e)
		}
	}
	return out, nil
}

func navFromSpec(spec map[string]interface{}) (core.Navigator, error) {
	name, _ := spec["nav"].(string)
	params, _ := spec["params"].([]interface{})

	switch name {
	case "ALL":
		return core.ALL, nil
	case "FIRST":
		return core.FIRST, nil
	case "LAST":
		return core.LAST, nil
	case "STAY":
		return core.STAY, nil
	case "BEGINNING":
		return core.BEGINNING, nil
	case "END":
		return core.END, nil
	case "keypath":
		if len(params) != 1 {
			return nil, fmt.Errorf("keypath needs 1 param")
		}
		return core.Keypath(params[0]), nil
	case "srange":
		if len(params) != 2 {
			return nil, fmt.Errorf("srange needs 2 params")
		}
		s, ok1 := asInt(params[0])
		e, ok2 := asInt(params[1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("srange params must be numbers")
		}
		return core.SRange(s, e), nil
	default:
		return nil, fmt.Errorf("unknown navigator %q", name)
	}
}

// normalizeYAML recursively converts gopkg.in/yaml.v2's
// map[interface{}]interface{} into the map[string]interface{} the
// core package's container shim recognizes.
func normalizeYAML(x interface{}) interface{} {
	switch vv := x.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(vv))
		for k, v := range vv {
			s, is := k.(string)
			if !is {
				s = fmt.Sprintf("%v", k)
			}
			out[s] = normalizeYAML(v)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(vv))
		for i, v := range vv {
			out[i] = normalizeYAML(v)
		}
		return out
	default:
		return vv
	}
}

func asInt(x interface{}) (int, bool) {
	switch vv := x.(type) {
	case float64:
		return int(vv), true
	case int:
		return vv, true
	default:
		return 0, false
	}
}
