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

// Proc is a user-defined closure: a `lambda`, or a `define-macro` form
// wearing the same shape with IsMacro set (spec.md §3.5, §4.2). Fixed
// holds the names bound positionally; Rest, if Valid, names the
// binding that collects any trailing arguments as a list.
type Proc struct {
	Name    string
	Fixed   []symtab.Symbol
	Rest    symtab.Symbol
	HasRest bool
	Body    Value
	Env     *Env
	IsMacro bool
}

// NewProc validates formals (a Nil/Symbol/Pair formal spec, see
// spec.md §4.1.1) and builds a Proc closing over env. It panics with
// syntax-error if formals contains a non-symbol, or the same symbol
// twice — duplicate or malformed parameter lists are a definition-time
// mistake, not a call-time one.
func NewProc(name string, formals, body Value, env *Env, isMacro bool) *Proc {
	p := &Proc{Name: name, Body: body, Env: env, IsMacro: isMacro}

	seen := make(map[symtab.Symbol]bool)
	addFixed := func(s Value) {
		if !s.IsSymbol() {
			panic(errkind.Newf(errkind.SyntaxError, "malformed parameter list: expected a symbol", s))
		}
		sym := s.Sym()
		if seen[sym] {
			panic(errkind.Newf(errkind.SyntaxError, fmt.Sprintf("duplicate parameter name: %s", sym), s))
		}
		seen[sym] = true
		p.Fixed = append(p.Fixed, sym)
	}

	switch {
	case formals.IsSymbol():
		// (lambda args body...) — a single symbol collects all arguments.
		p.HasRest = true
		p.Rest = formals.Sym()
	case formals.IsNil():
		// (lambda () body...)
	case formals.IsPair():
		cur := formals
		for cur.IsPair() {
			addFixed(cur.Pair().Car())
			cur = cur.Pair().Cdr()
		}
		if cur.IsSymbol() {
			if seen[cur.Sym()] {
				panic(errkind.Newf(errkind.SyntaxError, fmt.Sprintf("duplicate parameter name: %s", cur.Sym()), cur))
			}
			p.HasRest = true
			p.Rest = cur.Sym()
		} else if !cur.IsNil() {
			panic(errkind.Newf(errkind.SyntaxError, "malformed parameter list: improper tail", cur))
		}
	default:
		panic(errkind.Newf(errkind.SyntaxError, "malformed parameter list", formals))
	}

	return p
}

// Bind creates the call frame for args, enforcing arity: exactly
// len(Fixed) arguments when HasRest is false, at least len(Fixed)
// otherwise. Extra arguments collect into Rest as a list.
func (p *Proc) Bind(a *Arena, args []Value) *Env {
	if p.HasRest {
		if len(args) < len(p.Fixed) {
			panic(errkind.Newf(errkind.ArityError, fmt.Sprintf("%s: expected at least %d arguments, got %d", procLabel(p), len(p.Fixed), len(args)), nil))
		}
	} else if len(args) != len(p.Fixed) {
		panic(errkind.Newf(errkind.ArityError, fmt.Sprintf("%s: expected %d arguments, got %d", procLabel(p), len(p.Fixed), len(args)), nil))
	}

	frame := p.Env.Child()
	for i, name := range p.Fixed {
		frame.Define(name, args[i])
	}
	if p.HasRest {
		frame.Define(p.Rest, FromSlice(a, args[len(p.Fixed):]))
	}
	return frame
}

func procLabel(p *Proc) string {
	if p.Name != "" {
		return p.Name
	}
	return "#<procedure>"
}
