// Package dbg turns arbitrary keys into short readable names, so that
// unnamed polygons are easier to tell apart in CLI output and logs.
package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// Names memoizes one generated name per key. Names are generated in order of
// demand, so the same key is not guaranteed the same name between runs. The
// zero value is ready to use.
type Names struct {
	mu   sync.Mutex
	memo map[interface{}]string
	used map[string]bool
}

var defaultNames Names

func init() {
	// Nondeterministic on purpose, as a reminder that names only mean
	// something within one run.
	petname.NonDeterministicMode()
}

// Name returns the name for key, generating one on first use. A nil key (or a
// nil pointer, map, or slice) is named "Ø". Keys must be comparable.
func (n *Names) Name(key interface{}) string {
	if isNil(key) {
		return "Ø"
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.memo == nil {
		n.memo = make(map[interface{}]string)
		n.used = make(map[string]bool)
	}
	if r, ok := n.memo[key]; ok {
		return r
	}
	r := generate()
	// Two keys sharing a name would defeat the point. Fall back to a numeric
	// suffix once collisions get unlikely to resolve by retrying.
	for attempt := 0; n.used[r]; attempt++ {
		if attempt < 8 {
			r = generate()
		} else {
			r = fmt.Sprintf("%s%d", r, len(n.memo))
		}
	}
	n.memo[key] = r
	n.used[r] = true
	return r
}

// Len reports how many names have been handed out.
func (n *Names) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.memo)
}

// Name names key using the package-level memo.
func Name(key interface{}) string {
	return defaultNames.Name(key)
}

// Label colors name for terminal output. An empty name is replaced by the
// generated name for key.
func Label(au aurora.Aurora, name string, key interface{}) string {
	if name == "" {
		name = Name(key)
	}
	return au.Cyan(name).String()
}

func generate() string {
	return title(petname.Adjective()) + title(petname.Name())
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func isNil(key interface{}) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
