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
	register(opcode.OpSymbolToString, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("symbol->string", args, 1)
		if !args[0].IsSymbol() {
			typeErr("symbol->string", args[0])
		}
		return value.Str(value.NewString(args[0].Sym().String()))
	})
	register(opcode.OpStringToSymbol, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("string->symbol", args, 1)
		if !args[0].IsString() {
			typeErr("string->symbol", args[0])
		}
		return value.Sym(Symtab.Intern(args[0].Str().String()))
	})
	register(opcode.OpGensym, func(a *value.Arena, args []value.Value) value.Value {
		return value.Sym(Symtab.Gensym())
	})
}
