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
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/value"
	"github.com/launix-de/scmcore/internal/writer"
)

func init() {
	register(opcode.OpError, func(a *value.Arena, args []value.Value) value.Value {
		requireMinArity("error", args, 1)
		msg := writer.Display(args[0])
		var offending value.Value
		if len(args) > 1 {
			offending = args[1]
		}
		panic(errkind.Newf(errkind.UserError, msg, offending))
	})

	// call/cc is deliberately unsupported: this module has no
	// reified continuation representation, per spec's call/cc
	// Non-goal. It raises domain-error rather than panicking with a
	// Go-internal message so host code can catch it the same way it
	// catches every other named error kind.
	register(opcode.OpCallCC, func(a *value.Arena, args []value.Value) value.Value {
		panic(errkind.New(errkind.DomainError, "call/cc: continuations are not supported"))
	})

	register(opcode.OpExit, func(a *value.Arena, args []value.Value) value.Value {
		code := 0
		if len(args) > 0 && args[0].IsNumber() {
			code = int(args[0].Num().Int64())
		}
		panic(errkind.ExitSignal{Code: code})
	})
}
