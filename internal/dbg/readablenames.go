package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into random readable names. It flagrantly leaks
// memory but generates the names lazily, so it's not a problem unless you're
// actually using it. Mesh indices are just small integers, and "element 17" and
// "edge 17" are easy to mix up in a debug dump, so keys are usually a
// (kind, index) pair.

type Key struct {
	Kind  string
	Index int
}

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

func ElementName(index int) string {
	if index < 0 {
		return "Ø"
	}
	return Name(Key{"element", index})
}

func EdgeName(index int) string {
	if index < 0 {
		return "Ø"
	}
	return Name(Key{"edge", index})
}
