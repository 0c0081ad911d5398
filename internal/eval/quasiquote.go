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

package eval

import (
	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/value"
)

// quasiquote walks tmpl as a quasiquote template, evaluating any
// unquote/unquote-splicing it finds at the current nesting depth and
// leaving everything else as literal data. depth starts at 1 for the
// outermost quasiquote and increments/decrements across nested
// quasiquote/unquote so `` `(a `(b ,(c ,(+ 1 2)))) `` only evaluates
// the innermost unquote, per R7RS 4.2.8.
//
// Unlike scm/scm.go, which has no quasiquote at all, this walks the
// template directly rather than lowering it to a cons/list/append
// source form first — the two are semantically equivalent, but
// walking avoids constructing and then immediately re-evaluating an
// intermediate expression tree.
func (ev *Evaluator) quasiquote(env *value.Env, tmpl value.Value, depth int) value.Value {
	switch {
	case tmpl.IsPair():
		return ev.quasiquotePair(env, tmpl, depth)
	case tmpl.IsVector():
		items := tmpl.Vec().Items
		out := make([]value.Value, len(items))
		for i, it := range items {
			out[i] = ev.quasiquote(env, it, depth)
		}
		return value.VecVal(value.NewVector(out))
	default:
		return tmpl
	}
}

func headSymbolIs(v value.Value, name string) bool {
	return v.IsSymbol() && v.Sym().String() == name
}

func (ev *Evaluator) quasiquotePair(env *value.Env, tmpl value.Value, depth int) value.Value {
	pair := tmpl.Pair()
	head := pair.Car()

	if headSymbolIs(head, "unquote") {
		rest := value.ToSlice(pair.Cdr())
		requireArgs("unquote", rest, 1)
		if depth == 1 {
			return ev.Eval(env, rest[0])
		}
		inner := ev.quasiquote(env, rest[0], depth-1)
		return rewrap(ev.Arena, head, inner)
	}

	if headSymbolIs(head, "quasiquote") {
		rest := value.ToSlice(pair.Cdr())
		requireArgs("quasiquote", rest, 1)
		inner := ev.quasiquote(env, rest[0], depth+1)
		return rewrap(ev.Arena, head, inner)
	}

	// General list: walk element by element so an unquote-splicing
	// element can contribute more than one item to the result, then
	// reassemble with the (possibly templated) tail.
	var items []value.Value
	cur := tmpl
	for cur.IsPair() {
		elem := cur.Pair().Car()
		if elem.IsPair() && headSymbolIs(elem.Pair().Car(), "unquote-splicing") {
			rest := value.ToSlice(elem.Pair().Cdr())
			requireArgs("unquote-splicing", rest, 1)
			if depth == 1 {
				spliced := ev.Eval(env, rest[0])
				if _, kind := value.ListLen(spliced); kind != value.ProperList {
					panic(errkind.Newf(errkind.TypeError, "unquote-splicing: not a proper list", spliced))
				}
				items = append(items, value.ToSlice(spliced)...)
			} else {
				inner := ev.quasiquote(env, rest[0], depth-1)
				items = append(items, rewrap(ev.Arena, elem.Pair().Car(), inner))
			}
		} else {
			items = append(items, ev.quasiquote(env, elem, depth))
		}
		cur = cur.Pair().Cdr()
	}

	if cur.IsNil() {
		return value.FromSlice(ev.Arena, items)
	}
	// Dotted or templated tail, e.g. `(a . ,b)`.
	tail := ev.quasiquote(env, cur, depth)
	return value.FromSliceDotted(ev.Arena, items, tail)
}

// rewrap rebuilds `(tag inner)`, used when a nested quasiquote or
// unquote at non-zero depth must stay as literal data rather than
// being evaluated now. tag is the original head symbol straight out of
// the template, so no fresh symbol interning is needed here.
func rewrap(a *value.Arena, tag value.Value, inner value.Value) value.Value {
	return value.FromSlice(a, []value.Value{tag, inner})
}
