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

// Package eval is the trampolined evaluator and macro expander
// (spec.md §4.1, §4.2). Its shape is the teacher's own Eval/Apply
// "goto restart" loop from scm/scm.go, generalized to the full form
// set spec.md §4.1.2 names and rewritten with an explicit for loop in
// place of goto (db47h-ngaro's vm/core.go fetch-decode loop was the
// second reference for that rewrite — see DESIGN.md).
package eval

import (
	"fmt"

	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/primitive"
	"github.com/launix-de/scmcore/internal/value"
)

// Evaluator holds the single cons arena a program runs against. A
// program only ever needs one, but embedding hosts may construct
// several independent ones (internal/interp.New does, once per
// top-level interpreter instance).
type Evaluator struct {
	Arena *value.Arena
}

// New builds an Evaluator over arena and wires value.Apply so that
// internal/primitive's higher-order primitives (map, filter, for-each)
// can call back into user closures without importing this package —
// see DESIGN.md's "Cross-package wiring note".
func New(arena *value.Arena) *Evaluator {
	ev := &Evaluator{Arena: arena}
	value.Apply = ev.ApplyValue
	return ev
}

// Eval evaluates expr in env, tail-looping on Go's stack rather than
// recursing for every special form or procedure call in tail position
// — this is what makes spec.md §8's "a self-tail-recursive loop of a
// million iterations must not grow the Go call stack" hold.
func (ev *Evaluator) Eval(env *value.Env, expr value.Value) value.Value {
	for {
		switch expr.Tag() {
		case value.TagSymbol:
			return env.Lookup(expr.Sym())

		case value.TagPair:
			headExpr := expr.Pair().Car()
			argsExpr := expr.Pair().Cdr()

			var headVal value.Value
			if headExpr.IsSymbol() {
				headVal = env.Lookup(headExpr.Sym())
			} else {
				headVal = ev.Eval(env, headExpr)
			}
			headIsIntern := headVal.IsIntern()

			if headIsIntern {
				op := headVal.Intern()
				if opcode.IsSyntax(op) {
					result, tail, tailEnv := ev.evalSyntax(env, op, argsExpr)
					if !tail {
						return result
					}
					expr, env = result, tailEnv
					continue
				}
				argv := ev.evalArgs(env, argsExpr)
				return primitive.Dispatch(op, ev.Arena, argv)
			}

			if headVal.IsProcedure() && headVal.Proc().IsMacro {
				rawArgs := value.ToSlice(argsExpr)
				expanded := ev.ApplyValue(headVal, rawArgs)

				// Rewrite the call-site pair in place to `(begin v)`
				// so re-evaluating the same pair (e.g. a macro call in
				// a recursive procedure's body) replays the cached
				// expansion instead of re-running the macro body.
				callSite := expr.Pair()
				callSite.SetCar(value.Intern(opcode.OpBegin))
				callSite.SetCdr(value.FromSlice(ev.Arena, []value.Value{expanded}))
				expr = value.PairVal(callSite)
				continue
			}

			argv := ev.evalArgs(env, argsExpr)
			if headVal.IsProcedure() {
				p := headVal.Proc()
				frame := p.Bind(ev.Arena, argv)
				last, ok := ev.evalAllButLast(frame, p.Body)
				if !ok {
					return value.None()
				}
				expr, env = last, frame
				continue
			}
			if headVal.IsFunction() {
				return headVal.Func().Call(argv)
			}
			panic(errkind.Newf(errkind.TypeError, "object is not applicable", headVal))

		default:
			// Self-evaluating: numbers, strings, chars, booleans,
			// vectors, ports, procedures, the empty value.
			return expr
		}
	}
}

// evalAllButLast evaluates every body form except the last (for
// effect) and returns the last form unevaluated so the caller can
// fold it into its own tail position. ok is false for an empty body
// (e.g. `(lambda () )`), in which case the call's value is None.
func (ev *Evaluator) evalAllButLast(env *value.Env, body value.Value) (value.Value, bool) {
	forms := value.ToSlice(body)
	if len(forms) == 0 {
		return value.Value{}, false
	}
	for _, f := range forms[:len(forms)-1] {
		ev.Eval(env, f)
	}
	return forms[len(forms)-1], true
}

// ApplyValue calls proc (a Proc or Function) with already-evaluated
// args. It is not part of the tail-call trampoline — used by
// primitives (map, filter, for-each, apply-from-Go) and by macro
// expansion, where the caller does not itself need the result folded
// into a trampoline tail position.
func (ev *Evaluator) ApplyValue(proc value.Value, args []value.Value) value.Value {
	if proc.IsFunction() {
		return proc.Func().Call(args)
	}
	if proc.IsProcedure() {
		p := proc.Proc()
		frame := p.Bind(ev.Arena, args)
		result := value.Value(value.None())
		forms := value.ToSlice(p.Body)
		for _, f := range forms {
			result = ev.Eval(frame, f)
		}
		return result
	}
	panic(errkind.Newf(errkind.TypeError, "object is not applicable", proc))
}

// evalArgs evaluates a raw Scheme argument list left to right. It
// panics with syntax-error if the list is improper, since `(f a . b)`
// is not a valid combination.
func (ev *Evaluator) evalArgs(env *value.Env, list value.Value) []value.Value {
	var out []value.Value
	cur := list
	for cur.IsPair() {
		out = append(out, ev.Eval(env, cur.Pair().Car()))
		cur = cur.Pair().Cdr()
	}
	if !cur.IsNil() {
		panic(errkind.New(errkind.SyntaxError, "combination must be a proper list"))
	}
	return out
}

func requireArgs(form string, args []value.Value, min int) {
	if len(args) < min {
		panic(errkind.New(errkind.SyntaxError, fmt.Sprintf("%s: expected at least %d operands, got %d", form, min, len(args))))
	}
}
