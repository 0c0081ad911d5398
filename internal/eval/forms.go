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
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/primitive"
	"github.com/launix-de/scmcore/internal/value"
)

// evalSyntax handles one special form. When tail is true, result is an
// expression the caller's trampoline should continue evaluating in
// tailEnv instead of recursing; when tail is false, result is already
// the form's final value.
func (ev *Evaluator) evalSyntax(env *value.Env, op opcode.Op, rawArgs value.Value) (result value.Value, tail bool, tailEnv *value.Env) {
	switch op {
	case opcode.OpQuote:
		args := value.ToSlice(rawArgs)
		requireArgs("quote", args, 1)
		return args[0], false, nil

	case opcode.OpIf:
		args := value.ToSlice(rawArgs)
		requireArgs("if", args, 2)
		if ev.Eval(env, args[0]).Truthy() {
			return args[1], true, env
		}
		if len(args) >= 3 {
			return args[2], true, env
		}
		return value.None(), false, nil

	case opcode.OpWhen:
		args := value.ToSlice(rawArgs)
		requireArgs("when", args, 1)
		if !ev.Eval(env, args[0]).Truthy() {
			return value.None(), false, nil
		}
		return ev.tailBegin(env, args[1:])

	case opcode.OpUnless:
		args := value.ToSlice(rawArgs)
		requireArgs("unless", args, 1)
		if ev.Eval(env, args[0]).Truthy() {
			return value.None(), false, nil
		}
		return ev.tailBegin(env, args[1:])

	case opcode.OpAnd:
		args := value.ToSlice(rawArgs)
		if len(args) == 0 {
			return value.Bool(true), false, nil
		}
		for _, a := range args[:len(args)-1] {
			if !ev.Eval(env, a).Truthy() {
				return value.Bool(false), false, nil
			}
		}
		return args[len(args)-1], true, env

	case opcode.OpOr:
		args := value.ToSlice(rawArgs)
		if len(args) == 0 {
			return value.Bool(false), false, nil
		}
		for _, a := range args[:len(args)-1] {
			v := ev.Eval(env, a)
			if v.Truthy() {
				return v, false, nil
			}
		}
		return args[len(args)-1], true, env

	case opcode.OpBegin:
		return ev.tailBegin(env, value.ToSlice(rawArgs))

	case opcode.OpCond:
		return ev.evalCond(env, value.ToSlice(rawArgs))

	case opcode.OpDefine:
		ev.evalDefine(env, rawArgs, false)
		return value.None(), false, nil

	case opcode.OpDefineMacro:
		ev.evalDefine(env, rawArgs, true)
		return value.None(), false, nil

	case opcode.OpSet:
		args := value.ToSlice(rawArgs)
		requireArgs("set!", args, 2)
		if !args[0].IsSymbol() {
			panic(errkind.New(errkind.SyntaxError, "set!: target must be a symbol"))
		}
		env.Set(args[0].Sym(), ev.Eval(env, args[1]))
		return value.None(), false, nil

	case opcode.OpLambda:
		args := value.ToSlice(rawArgs)
		requireArgs("lambda", args, 1)
		formals := args[0]
		body := value.FromSlice(ev.Arena, args[1:])
		return value.ProcVal(value.NewProc("", formals, body, env, false)), false, nil

	case opcode.OpApply:
		return ev.evalApply(env, value.ToSlice(rawArgs))

	case opcode.OpQuasiquote:
		args := value.ToSlice(rawArgs)
		requireArgs("quasiquote", args, 1)
		return ev.quasiquote(env, args[0], 1), false, nil

	case opcode.OpUnquote, opcode.OpUnquoteSplicing:
		panic(errkind.New(errkind.SyntaxError, opcode.Name(op)+": not valid outside quasiquote"))

	case opcode.OpElse, opcode.OpArrow:
		panic(errkind.New(errkind.SyntaxError, opcode.Name(op)+": not valid as an expression"))
	}
	panic(errkind.New(errkind.SyntaxError, "unimplemented special form: "+opcode.Name(op)))
}

// tailBegin evaluates every form but the last for effect and leaves
// the last to the trampoline, exactly what `begin`/`when`/`unless`
// bodies need.
func (ev *Evaluator) tailBegin(env *value.Env, forms []value.Value) (value.Value, bool, *value.Env) {
	if len(forms) == 0 {
		return value.None(), false, nil
	}
	for _, f := range forms[:len(forms)-1] {
		ev.Eval(env, f)
	}
	return forms[len(forms)-1], true, env
}

// evalCond walks clauses in order. A clause is (test expr...),
// (else expr...), or (test => proc). The first clause whose test is
// truthy (or that is `else`) has its body tail-evaluated; `(test)`
// alone yields the test's own value, per R7RS.
func (ev *Evaluator) evalCond(env *value.Env, clauses []value.Value) (value.Value, bool, *value.Env) {
	for _, clauseVal := range clauses {
		clause := value.ToSlice(clauseVal)
		if len(clause) == 0 {
			panic(errkind.New(errkind.SyntaxError, "cond: empty clause"))
		}
		if clause[0].IsSymbol() && clause[0].Sym().String() == "else" {
			return ev.tailBegin(env, clause[1:])
		}
		test := ev.Eval(env, clause[0])
		if !test.Truthy() {
			continue
		}
		if len(clause) == 1 {
			return test, false, nil
		}
		if clause[1].IsSymbol() && clause[1].Sym().String() == "=>" {
			requireArgs("cond", clause, 3)
			proc := ev.Eval(env, clause[2])
			return ev.ApplyValue(proc, []value.Value{test}), false, nil
		}
		return ev.tailBegin(env, clause[1:])
	}
	return value.None(), false, nil
}

// evalDefine handles both `(define name expr)` and the procedure
// shorthand `(define (name . formals) body...)`; isMacro selects
// `define-macro`'s identical shape with the macro bit set.
func (ev *Evaluator) evalDefine(env *value.Env, rawArgs value.Value, isMacro bool) {
	form := "define"
	if isMacro {
		form = "define-macro"
	}
	args := value.ToSlice(rawArgs)
	requireArgs(form, args, 1)
	target := args[0]

	switch {
	case target.IsSymbol():
		requireArgs(form, args, 2)
		v := ev.Eval(env, args[1])
		env.Define(target.Sym(), v)

	case target.IsPair():
		nameVal := target.Pair().Car()
		if !nameVal.IsSymbol() {
			panic(errkind.New(errkind.SyntaxError, form+": malformed header"))
		}
		formals := target.Pair().Cdr()
		body := value.FromSlice(ev.Arena, args[1:])
		proc := value.NewProc(nameVal.Sym().String(), formals, body, env, isMacro)
		env.Define(nameVal.Sym(), value.ProcVal(proc))

	default:
		panic(errkind.New(errkind.SyntaxError, form+": malformed target"))
	}
}

// evalApply implements `(apply proc arg... arglist)` as a syntax form
// rather than a primitive so its call can land in the trampoline's
// tail position exactly like a direct procedure call.
func (ev *Evaluator) evalApply(env *value.Env, args []value.Value) (value.Value, bool, *value.Env) {
	requireArgs("apply", args, 2)
	procVal := ev.Eval(env, args[0])

	var argv []value.Value
	for _, a := range args[1 : len(args)-1] {
		argv = append(argv, ev.Eval(env, a))
	}
	last := ev.Eval(env, args[len(args)-1])
	if _, kind := value.ListLen(last); kind != value.ProperList {
		panic(errkind.Newf(errkind.TypeError, "apply: last argument must be a proper list", last))
	}
	argv = append(argv, value.ToSlice(last)...)

	if procVal.IsIntern() && opcode.IsPrimitive(procVal.Intern()) {
		return primitive.Dispatch(procVal.Intern(), ev.Arena, argv), false, nil
	}
	if procVal.IsFunction() {
		return procVal.Func().Call(argv), false, nil
	}
	if procVal.IsProcedure() {
		p := procVal.Proc()
		frame := p.Bind(ev.Arena, argv)
		tailExpr, ok := ev.evalAllButLast(frame, p.Body)
		if !ok {
			return value.None(), false, nil
		}
		return tailExpr, true, frame
	}
	panic(errkind.Newf(errkind.TypeError, "apply: object is not applicable", procVal))
}
