package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names, keyed by
// pointer. Randomly generated polylines in the property tests all look alike
// in failure output; a stable name per case makes it obvious which one
// misbehaved. The memo is never cleared, which leaks memory, but only if
// you're actually using it.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the names are handed out in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
