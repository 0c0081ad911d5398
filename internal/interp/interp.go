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

// Package interp is the embedding surface (spec.md §6): everything a
// host program needs to stand up an interpreter instance, bind its
// own Go functions into it, evaluate expressions, load source files,
// and run an interactive REPL. Grounded on main.go's top-level wiring
// (bind host functions, then hand off to the REPL) and scm/prompt.go's
// Repl.
package interp

import (
	"os"

	"github.com/dc0d/onexit"

	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/eval"
	"github.com/launix-de/scmcore/internal/gc"
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/primitive"
	"github.com/launix-de/scmcore/internal/reader"
	"github.com/launix-de/scmcore/internal/symtab"
	"github.com/launix-de/scmcore/internal/value"
)

// Interp is one self-contained interpreter instance: its own symbol
// table, cons arena and top-level environment. Host programs embedding
// this module construct one per independent script/session — compare
// memcp's single process-wide scm.Globalenv, which this module
// deliberately does not use so several instances can run in one Go
// process (e.g. one per test, or one per tenant) without sharing state.
type Interp struct {
	Symtab *symtab.Table
	Arena  *value.Arena
	GC     *gc.Collector
	eval   *eval.Evaluator
	top    *value.Env
	stdout *value.Port
	stdin  *value.Port
}

// New constructs an Interp with a fresh top-level environment seeded
// with every built-in syntax keyword and primitive name, bound to the
// console for default I/O.
func New() *Interp {
	st := symtab.NewTable()
	arena := value.NewArena()
	top := value.NewEnv()

	for _, op := range opcode.All() {
		top.Define(st.Intern(opcode.Name(op)), value.Intern(op))
	}

	in := value.NewInputPort(value.PortConsole, "stdin", os.Stdin)
	out := value.NewOutputPort(value.PortConsole, "stdout", os.Stdout)

	it := &Interp{
		Symtab: st,
		Arena:  arena,
		GC:     gc.New(arena),
		eval:   eval.New(arena),
		top:    top,
		stdin:  in,
		stdout: out,
	}

	primitive.Symtab = st
	primitive.CurrentOutput = out
	primitive.CurrentInput = in

	onexit.Register(func() {
		it.stdout.Close()
		it.stdin.Close()
	})

	return it
}

// TopEnv exposes the session's root environment, e.g. for a host that
// wants to inspect or snapshot top-level bindings directly.
func (it *Interp) TopEnv() *value.Env { return it.top }

// Bind defines name in the top-level environment as a host-implemented
// Function, the same role main.go's `scm.Globalenv.Vars["print"] = ...`
// plays for the teacher.
func (it *Interp) Bind(name string, fn func(args []value.Value) value.Value) {
	it.top.Define(it.Symtab.Intern(name), value.FuncVal(value.NewFunction(name, fn)))
}

// Child returns a fresh environment frame whose outer scope is the
// top-level environment, for a host that wants an isolated evaluation
// scope (e.g. one per incoming request) that still sees every binding
// already defined at top level.
func (it *Interp) Child() *value.Env { return it.top.Child() }

// Eval evaluates expr in env and runs a GC step if the arena has grown
// enough to warrant one (spec.md §4.4/§8: "arena growth triggers an
// automatic mark-sweep pass transparent to the evaluated program").
func (it *Interp) Eval(env *value.Env, expr value.Value) value.Value {
	result := it.eval.Eval(env, expr)
	it.GC.MaybeCollect([]*value.Env{it.top, env})
	return result
}

// EvalTop evaluates expr against the top-level environment.
func (it *Interp) EvalTop(expr value.Value) value.Value {
	return it.Eval(it.top, expr)
}

// Read parses every complete top-level form in src against this
// interpreter's shared symbol table and arena. A reader error,
// including one raised while tokenizing (e.g. an unterminated string),
// is returned rather than panicking.
func (it *Interp) Read(src string) (forms []value.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			e, ok := rec.(*errkind.Error)
			if !ok {
				panic(rec)
			}
			forms, err = nil, e
		}
	}()
	r := reader.New(it.Symtab, it.Arena)
	r.Feed(src)
	return r.ReadAll()
}

// Close releases the console ports, so a host that tears an Interp
// down explicitly (rather than relying on process exit) closes them
// deterministically. It does not run the onexit hooks; those run only
// when the process exits through onexit.Exit.
func (it *Interp) Close() {
	it.stdout.Close()
	it.stdin.Close()
}
