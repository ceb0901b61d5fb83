// Package vars holds the environment the machine threads through statement
// reduction.  It lives apart from the vm package so that the evaluators built
// beside the machine can share it without importing the machine itself.

package vars

import (
	"strings"

	"github.com/benbjohnson/immutable"

	"git.sr.ht/~mango/smallstep/ast"
)

// Env maps variable names to values.  An Env is never modified once built;
// With and Without return new environments that share structure with the
// old one.  The zero Env is empty and ready to use.
type Env struct {
	m *immutable.SortedMap[string, ast.Value]
}

// New returns an environment holding the bindings in m
func New(m map[string]ast.Value) Env {
	var e Env
	for k, v := range m {
		e = e.With(k, v)
	}
	return e
}

func (e Env) Get(name string) (ast.Value, bool) {
	if e.m == nil {
		return nil, false
	}
	return e.m.Get(name)
}

// With returns a copy of e with name bound to v
func (e Env) With(name string, v ast.Value) Env {
	m := e.m
	if m == nil {
		m = immutable.NewSortedMap[string, ast.Value](nil)
	}
	return Env{m.Set(name, v)}
}

// Without returns a copy of e with name unbound
func (e Env) Without(name string) Env {
	if e.m == nil {
		return e
	}
	return Env{e.m.Delete(name)}
}

func (e Env) Len() int {
	if e.m == nil {
		return 0
	}
	return e.m.Len()
}

// Each calls f on every binding in ascending order of name
func (e Env) Each(f func(name string, v ast.Value)) {
	if e.m == nil {
		return
	}
	for it := e.m.Iterator(); !it.Done(); {
		k, v, _ := it.Next()
		f(k, v)
	}
}

// Names returns the bound names in ascending order
func (e Env) Names() []string {
	xs := make([]string, 0, e.Len())
	e.Each(func(name string, _ ast.Value) {
		xs = append(xs, name)
	})
	return xs
}

// Equal reports whether e and f hold the same bindings
func (e Env) Equal(f Env) bool {
	if e.Len() != f.Len() {
		return false
	}
	eq := true
	e.Each(func(name string, v ast.Value) {
		if w, ok := f.Get(name); !ok || v != w {
			eq = false
		}
	})
	return eq
}

// String renders the environment as {x=1, y=true}
func (e Env) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	e.Each(func(name string, v ast.Value) {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(v.String())
	})
	sb.WriteByte('}')
	return sb.String()
}
