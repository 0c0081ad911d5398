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

// Package primitive is the opcode → implementation dispatch table
// (spec.md §4.6): every primitive procedure opcode resolves, through
// one map lookup, to a Go function operating on already-evaluated
// arguments. Registration follows scm/declare.go's Declare/declarations
// pattern, generalized from a name-keyed map to an Op-keyed one since
// internal/opcode already gives every primitive a dense integer id.
package primitive

import (
	"fmt"

	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/symtab"
	"github.com/launix-de/scmcore/internal/value"
)

// Impl is one primitive's body: already-evaluated arguments in,
// one Value out. Arity/type checking is each Impl's own
// responsibility, exactly as scm/alu.go and scm/list.go's
// declarations do.
type Impl func(a *value.Arena, args []value.Value) value.Value

var table = map[opcode.Op]Impl{}

func register(op opcode.Op, fn Impl) {
	table[op] = fn
}

// Dispatch invokes the primitive bound to op. Any op with no entry in
// the table — the reserved-but-unimplemented bytevector family
// (spec.md §9), and likewise a syntax or unknown op — panics with
// domain-error "<name>: not implemented".
func Dispatch(op opcode.Op, a *value.Arena, args []value.Value) value.Value {
	if fn, ok := table[op]; ok {
		return fn(a, args)
	}
	panic(errkind.Newf(errkind.DomainError, fmt.Sprintf("%s: not implemented", opcode.Name(op)), nil))
}

// Symtab is the shared symbol interner, wired by internal/interp at
// construction so symbol->string/string->symbol/gensym resolve
// through the same table the reader uses.
var Symtab *symtab.Table

// CurrentOutput and CurrentInput are the default ports `display`,
// `write`, `newline`, `read-char` and `peek-char` use when called
// without an explicit port argument — set by internal/interp.New,
// analogous to memcp's REPL writing straight to os.Stdout.
var (
	CurrentOutput *value.Port
	CurrentInput  *value.Port
)

func requireArity(name string, args []value.Value, n int) {
	if len(args) != n {
		panic(errkind.New(errkind.ArityError, fmt.Sprintf("%s: expected %d arguments, got %d", name, n, len(args))))
	}
}

func requireMinArity(name string, args []value.Value, n int) {
	if len(args) < n {
		panic(errkind.New(errkind.ArityError, fmt.Sprintf("%s: expected at least %d arguments, got %d", name, n, len(args))))
	}
}

func typeErr(name string, v value.Value) {
	panic(errkind.Newf(errkind.TypeError, fmt.Sprintf("%s: wrong argument type", name), v))
}

func rangeErr(name string, v value.Value) {
	panic(errkind.Newf(errkind.RangeError, fmt.Sprintf("%s: index out of range", name), v))
}
