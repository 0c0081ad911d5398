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

package primitive

import (
	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/number"
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/value"
)

func nums(name string, args []value.Value) []number.Number {
	out := make([]number.Number, len(args))
	for i, a := range args {
		if !a.IsNumber() {
			typeErr(name, a)
		}
		out[i] = a.Num()
	}
	return out
}

func init() {
	register(opcode.OpAdd, func(a *value.Arena, args []value.Value) value.Value {
		ns := nums("+", args)
		acc := number.Int(0)
		for _, n := range ns {
			acc = number.Add(acc, n)
		}
		return value.Num(acc)
	})

	register(opcode.OpSub, func(a *value.Arena, args []value.Value) value.Value {
		ns := nums("-", args)
		requireMinArity("-", args, 1)
		if len(ns) == 1 {
			return value.Num(number.Neg(ns[0]))
		}
		acc := ns[0]
		for _, n := range ns[1:] {
			acc = number.Sub(acc, n)
		}
		return value.Num(acc)
	})

	register(opcode.OpMul, func(a *value.Arena, args []value.Value) value.Value {
		ns := nums("*", args)
		acc := number.Int(1)
		for _, n := range ns {
			acc = number.Mul(acc, n)
		}
		return value.Num(acc)
	})

	register(opcode.OpDiv, func(a *value.Arena, args []value.Value) value.Value {
		ns := nums("/", args)
		requireMinArity("/", args, 1)
		if len(ns) == 1 {
			return value.Num(number.Div(number.Int(1), ns[0]))
		}
		acc := ns[0]
		for _, n := range ns[1:] {
			acc = number.Div(acc, n)
		}
		return value.Num(acc)
	})

	register(opcode.OpLt, chainCompare("<", func(x, y number.Number) bool { return number.Less(x, y) }))
	register(opcode.OpLe, chainCompare("<=", func(x, y number.Number) bool { return number.LessEq(x, y) }))
	register(opcode.OpGt, chainCompare(">", func(x, y number.Number) bool { return number.Greater(x, y) }))
	register(opcode.OpGe, chainCompare(">=", func(x, y number.Number) bool { return number.GreaterEq(x, y) }))
	register(opcode.OpNumEq, chainCompare("=", func(x, y number.Number) bool { return number.Equal(x, y) }))

	register(opcode.OpSqrt, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("sqrt", args, 1)
		return value.Num(number.Sqrt(nums("sqrt", args)[0]))
	})

	register(opcode.OpAbs, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("abs", args, 1)
		n := nums("abs", args)[0]
		if number.Less(n, number.Int(0)) {
			return value.Num(number.Neg(n))
		}
		return value.Num(n)
	})

	register(opcode.OpQuotient, intDivOp("quotient", func(x, y int64) int64 { return x / y }))
	register(opcode.OpRemainder, intDivOp("remainder", func(x, y int64) int64 { return x % y }))
	register(opcode.OpModulo, intDivOp("modulo", func(x, y int64) int64 {
		m := x % y
		if m != 0 && (m < 0) != (y < 0) {
			m += y
		}
		return m
	}))
}

func chainCompare(name string, cmp func(a, b number.Number) bool) Impl {
	return func(a *value.Arena, args []value.Value) value.Value {
		ns := nums(name, args)
		requireMinArity(name, args, 1)
		for i := 0; i+1 < len(ns); i++ {
			if !number.Comparable(ns[i], ns[i+1]) {
				panic(errkind.New(errkind.DomainError, name+": complex numbers are not ordered"))
			}
			if !cmp(ns[i], ns[i+1]) {
				return value.Bool(false)
			}
		}
		return value.Bool(true)
	}
}

func intDivOp(name string, op func(x, y int64) int64) Impl {
	return func(a *value.Arena, args []value.Value) value.Value {
		requireArity(name, args, 2)
		ns := nums(name, args)
		if ns[1].Int64() == 0 {
			panic(errkind.New(errkind.DomainError, name+": division by zero"))
		}
		return value.Num(number.Int(op(ns[0].Int64(), ns[1].Int64())))
	}
}
