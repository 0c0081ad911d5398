/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package value

import (
	"fmt"

	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/symtab"
)

// Env is one lexical frame: a symbol→Value map plus a link to its
// enclosing frame (spec.md §3.6, §4.3). The top-level frame has a nil
// Outer.
type Env struct {
	vars  map[symtab.Symbol]Value
	Outer *Env
}

// NewEnv creates a fresh top-level frame.
func NewEnv() *Env {
	return &Env{vars: make(map[symtab.Symbol]Value)}
}

// Child creates a new frame nested inside e, as `lambda`/`let`-style
// binding forms do on every call.
func (e *Env) Child() *Env {
	return &Env{vars: make(map[symtab.Symbol]Value), Outer: e}
}

// Define binds name to v in this frame, shadowing any outer binding of
// the same name — redefinition in the same frame simply overwrites,
// matching `define`'s behavior at top level and inside a body.
func (e *Env) Define(name symtab.Symbol, v Value) {
	e.vars[name] = v
}

// frameOf walks outward to find the frame that owns name, or nil.
func (e *Env) frameOf(name symtab.Symbol) *Env {
	for f := e; f != nil; f = f.Outer {
		if _, ok := f.vars[name]; ok {
			return f
		}
	}
	return nil
}

// Lookup resolves name through e and its outer chain, panicking with
// an unbound-variable error if no frame binds it.
func (e *Env) Lookup(name symtab.Symbol) Value {
	if f := e.frameOf(name); f != nil {
		return f.vars[name]
	}
	panic(errkind.Newf(errkind.UnboundVariable, fmt.Sprintf("unbound variable: %s", name), name))
}

// Set mutates the nearest existing binding of name, panicking with
// unbound-variable if none exists — `set!` never creates a binding.
func (e *Env) Set(name symtab.Symbol, v Value) {
	f := e.frameOf(name)
	if f == nil {
		panic(errkind.Newf(errkind.UnboundVariable, fmt.Sprintf("unbound variable: %s", name), name))
	}
	f.vars[name] = v
}

// Each calls fn with every value bound directly in this frame (not
// its outer chain) — used by internal/gc to mark everything an
// environment keeps alive.
func (e *Env) Each(fn func(Value)) {
	for _, v := range e.vars {
		fn(v)
	}
}

// Has reports whether name is bound anywhere in e's chain, without
// panicking. Nothing inside this module calls it; it is there for
// embedding hosts.
func (e *Env) Has(name symtab.Symbol) bool {
	return e.frameOf(name) != nil
}
