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
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/value"
)

func init() {
	register(opcode.OpEq, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("eq?", args, 2)
		return value.Bool(value.Eq(args[0], args[1]))
	})
	register(opcode.OpEqv, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("eqv?", args, 2)
		return value.Bool(value.Eqv(args[0], args[1]))
	})
	register(opcode.OpEqual, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("equal?", args, 2)
		return value.Bool(value.Equal(args[0], args[1]))
	})
	register(opcode.OpNot, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("not", args, 1)
		return value.Bool(!args[0].Truthy())
	})

	predicate := func(op opcode.Op, test func(value.Value) bool) {
		register(op, func(a *value.Arena, args []value.Value) value.Value {
			requireArity(opcode.Name(op), args, 1)
			return value.Bool(test(args[0]))
		})
	}

	predicate(opcode.OpIsNull, value.Value.IsNil)
	predicate(opcode.OpIsPair, value.Value.IsPair)
	predicate(opcode.OpIsSymbol, value.Value.IsSymbol)
	predicate(opcode.OpIsString, value.Value.IsString)
	predicate(opcode.OpIsNumber, value.Value.IsNumber)
	predicate(opcode.OpIsProcedure, value.Value.IsCallable)
	predicate(opcode.OpIsBoolean, value.Value.IsBool)
	predicate(opcode.OpIsChar, value.Value.IsChar)
	predicate(opcode.OpIsVector, value.Value.IsVector)
	predicate(opcode.OpIsPort, value.Value.IsPort)

	register(opcode.OpIsList, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("list?", args, 1)
		_, kind := value.ListLen(args[0])
		return value.Bool(kind == value.ProperList || kind == value.CircularList)
	})
}
