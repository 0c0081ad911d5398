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

// Package errkind names the error kinds of spec.md §7. It has no
// dependencies so every layer (value, eval, primitive, interp) can
// raise and recognise the same kinds without an import cycle.
package errkind

// Kind is one of the eight error kinds spec.md §7 requires.
type Kind string

const (
	TypeError         Kind = "type-error"
	ArityError        Kind = "arity-error"
	SyntaxError       Kind = "syntax-error"
	UnboundVariable   Kind = "unbound-variable"
	RangeError        Kind = "range-error"
	DomainError       Kind = "domain-error"
	IOError           Kind = "io-error"
	UserError         Kind = "user-error"
)

// Error is what the interpreter panics with on any of the eight error
// kinds. It carries the offending value generically (any) so this
// package stays free of a dependency on the value package.
type Error struct {
	Kind    Kind
	Message string
	Value   any
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Message
}

// New constructs an *Error carrying no offending value.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf constructs an *Error carrying the offending value v.
func Newf(kind Kind, message string, v any) *Error {
	return &Error{Kind: kind, Message: message, Value: v}
}

// ExitSignal unwinds the interpreter to the host entry point when the
// `exit` opcode runs (spec.md §7: "no error terminates the process
// except the exit opcode, which unwinds with a distinguished sentinel").
type ExitSignal struct {
	Code int
}

func (e ExitSignal) Error() string { return "exit" }
