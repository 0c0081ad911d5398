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

package value

// Function wraps a host-implemented (Go) callable: anything
// internal/interp.Bind hands to the embedding host surfaces to Scheme
// code as one of these rather than as a Proc. The primitive opcodes of
// internal/primitive are not Functions; they are bound as Intern values.
type Function struct {
	Name string
	Call func(args []Value) Value
}

// NewFunction builds a Function value wrapping fn under name.
func NewFunction(name string, fn func(args []Value) Value) *Function {
	return &Function{Name: name, Call: fn}
}

// Apply is the single injection point internal/eval installs at
// construction time, letting internal/primitive's higher-order
// primitives (map, filter, for-each) invoke user closures without
// internal/primitive importing
// internal/eval — see DESIGN.md's "Cross-package wiring note".
var Apply func(proc Value, args []Value) Value
