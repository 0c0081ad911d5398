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
	"github.com/launix-de/scmcore/internal/number"
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/value"
)

func requirePair(name string, v value.Value) value.PairRef {
	if !v.IsPair() {
		typeErr(name, v)
	}
	return v.Pair()
}

func init() {
	register(opcode.OpCons, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("cons", args, 2)
		return value.PairVal(a.Cons(args[0], args[1]))
	})
	register(opcode.OpCar, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("car", args, 1)
		return requirePair("car", args[0]).Car()
	})
	register(opcode.OpCdr, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("cdr", args, 1)
		return requirePair("cdr", args[0]).Cdr()
	})
	register(opcode.OpSetCar, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("set-car!", args, 2)
		requirePair("set-car!", args[0]).SetCar(args[1])
		return value.None()
	})
	register(opcode.OpSetCdr, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("set-cdr!", args, 2)
		requirePair("set-cdr!", args[0]).SetCdr(args[1])
		return value.None()
	})
	register(opcode.OpList, func(a *value.Arena, args []value.Value) value.Value {
		return value.FromSlice(a, args)
	})
	register(opcode.OpLength, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("length", args, 1)
		n, kind := value.ListLen(args[0])
		if kind == value.DottedList {
			typeErr("length", args[0])
		}
		return value.Num(number.Int(int64(n)))
	})
	register(opcode.OpListRef, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("list-ref", args, 2)
		if !args[1].IsNumber() {
			typeErr("list-ref", args[1])
		}
		idx := args[1].Num().Int64()
		cur := args[0]
		for i := int64(0); i < idx; i++ {
			if !cur.IsPair() {
				rangeErr("list-ref", args[1])
			}
			cur = cur.Pair().Cdr()
		}
		if !cur.IsPair() {
			rangeErr("list-ref", args[1])
		}
		return cur.Pair().Car()
	})
	register(opcode.OpAppend, func(a *value.Arena, args []value.Value) value.Value {
		if len(args) == 0 {
			return value.Nil()
		}
		var items []value.Value
		for _, l := range args[:len(args)-1] {
			if _, kind := value.ListLen(l); kind != value.ProperList {
				typeErr("append", l)
			}
			items = append(items, value.ToSlice(l)...)
		}
		return value.FromSliceDotted(a, items, args[len(args)-1])
	})
	register(opcode.OpReverse, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("reverse", args, 1)
		items := value.ToSlice(args[0])
		out := make([]value.Value, len(items))
		for i, v := range items {
			out[len(items)-1-i] = v
		}
		return value.FromSlice(a, out)
	})
	register(opcode.OpMap, func(a *value.Arena, args []value.Value) value.Value {
		requireMinArity("map", args, 2)
		proc := args[0]
		lists := make([][]value.Value, len(args)-1)
		n := -1
		for i, l := range args[1:] {
			lists[i] = value.ToSlice(l)
			if n == -1 || len(lists[i]) < n {
				n = len(lists[i])
			}
		}
		out := make([]value.Value, n)
		for i := 0; i < n; i++ {
			callArgs := make([]value.Value, len(lists))
			for j := range lists {
				callArgs[j] = lists[j][i]
			}
			out[i] = value.Apply(proc, callArgs)
		}
		return value.FromSlice(a, out)
	})
	register(opcode.OpFilter, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("filter", args, 2)
		proc := args[0]
		items := value.ToSlice(args[1])
		var out []value.Value
		for _, it := range items {
			if value.Apply(proc, []value.Value{it}).Truthy() {
				out = append(out, it)
			}
		}
		return value.FromSlice(a, out)
	})
	register(opcode.OpForEach, func(a *value.Arena, args []value.Value) value.Value {
		requireMinArity("for-each", args, 2)
		proc := args[0]
		lists := make([][]value.Value, len(args)-1)
		n := -1
		for i, l := range args[1:] {
			lists[i] = value.ToSlice(l)
			if n == -1 || len(lists[i]) < n {
				n = len(lists[i])
			}
		}
		for i := 0; i < n; i++ {
			callArgs := make([]value.Value, len(lists))
			for j := range lists {
				callArgs[j] = lists[j][i]
			}
			value.Apply(proc, callArgs)
		}
		return value.None()
	})
}
