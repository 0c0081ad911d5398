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

func requireString(name string, v value.Value) *value.StringObj {
	if !v.IsString() {
		typeErr(name, v)
	}
	return v.Str()
}

func init() {
	register(opcode.OpStringLength, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("string-length", args, 1)
		return value.Num(number.Int(int64(len(requireString("string-length", args[0]).Runes))))
	})
	register(opcode.OpStringRef, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("string-ref", args, 2)
		s := requireString("string-ref", args[0])
		idx := args[1].Num().Int64()
		if idx < 0 || idx >= int64(len(s.Runes)) {
			panic(errkind.New(errkind.RangeError, "string-ref: index out of range"))
		}
		return value.Char(s.Runes[idx])
	})
	register(opcode.OpStringAppend, func(a *value.Arena, args []value.Value) value.Value {
		var out []rune
		for _, v := range args {
			out = append(out, requireString("string-append", v).Runes...)
		}
		return value.Str(&value.StringObj{Runes: out})
	})
	register(opcode.OpSubstring, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("substring", args, 3)
		s := requireString("substring", args[0])
		start, end := args[1].Num().Int64(), args[2].Num().Int64()
		if start < 0 || end > int64(len(s.Runes)) || start > end {
			panic(errkind.New(errkind.RangeError, "substring: index out of range"))
		}
		out := make([]rune, end-start)
		copy(out, s.Runes[start:end])
		return value.Str(&value.StringObj{Runes: out})
	})
	register(opcode.OpStringToList, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("string->list", args, 1)
		s := requireString("string->list", args[0])
		out := make([]value.Value, len(s.Runes))
		for i, r := range s.Runes {
			out[i] = value.Char(r)
		}
		return value.FromSlice(a, out)
	})
	register(opcode.OpListToString, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("list->string", args, 1)
		items := value.ToSlice(args[0])
		out := make([]rune, len(items))
		for i, v := range items {
			if !v.IsChar() {
				typeErr("list->string", v)
			}
			out[i] = v.Char()
		}
		return value.Str(&value.StringObj{Runes: out})
	})
}
