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

func requireVector(name string, v value.Value) *value.VectorObj {
	if !v.IsVector() {
		typeErr(name, v)
	}
	return v.Vec()
}

func init() {
	register(opcode.OpMakeVector, func(a *value.Arena, args []value.Value) value.Value {
		requireMinArity("make-vector", args, 1)
		n := args[0].Num().Int64()
		fill := value.Bool(false)
		if len(args) > 1 {
			fill = args[1]
		}
		items := make([]value.Value, n)
		for i := range items {
			items[i] = fill
		}
		return value.VecVal(value.NewVector(items))
	})
	register(opcode.OpVector, func(a *value.Arena, args []value.Value) value.Value {
		items := make([]value.Value, len(args))
		copy(items, args)
		return value.VecVal(value.NewVector(items))
	})
	register(opcode.OpVectorRef, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("vector-ref", args, 2)
		vec := requireVector("vector-ref", args[0])
		idx := args[1].Num().Int64()
		if idx < 0 || idx >= int64(len(vec.Items)) {
			panic(errkind.New(errkind.RangeError, "vector-ref: index out of range"))
		}
		return vec.Items[idx]
	})
	register(opcode.OpVectorSet, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("vector-set!", args, 3)
		vec := requireVector("vector-set!", args[0])
		idx := args[1].Num().Int64()
		if idx < 0 || idx >= int64(len(vec.Items)) {
			panic(errkind.New(errkind.RangeError, "vector-set!: index out of range"))
		}
		vec.Items[idx] = args[2]
		return value.None()
	})
	register(opcode.OpVectorLength, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("vector-length", args, 1)
		return value.Num(number.Int(int64(len(requireVector("vector-length", args[0]).Items))))
	})
	register(opcode.OpVectorToList, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("vector->list", args, 1)
		return value.FromSlice(a, requireVector("vector->list", args[0]).Items)
	})
	register(opcode.OpListToVector, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("list->vector", args, 1)
		return value.VecVal(value.NewVector(value.ToSlice(args[0])))
	})

	register(opcode.OpCharToInteger, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("char->integer", args, 1)
		if !args[0].IsChar() {
			typeErr("char->integer", args[0])
		}
		return value.Num(number.Int(int64(args[0].Char())))
	})
	register(opcode.OpIntegerToChar, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("integer->char", args, 1)
		if !args[0].IsNumber() {
			typeErr("integer->char", args[0])
		}
		return value.Char(rune(args[0].Num().Int64()))
	})
}
