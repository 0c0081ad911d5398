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

// Package symtab interns strings into Symbol handles whose identity
// is the address of the interned string, so two symbols compare equal
// iff they are the same handle.
package symtab

import (
	"fmt"
	"sync"
)

// Symbol is an opaque handle to an interned name. The zero Symbol is
// not valid; always obtain one through a Table.
type Symbol struct {
	name *string
}

// String returns the symbol's textual name.
func (s Symbol) String() string {
	if s.name == nil {
		return ""
	}
	return *s.name
}

// Valid reports whether s was produced by a Table.
func (s Symbol) Valid() bool { return s.name != nil }

// Table is a string interner. The zero Table is ready to use.
type Table struct {
	mu      sync.Mutex
	entries map[string]Symbol
	gensym  int
}

// NewTable returns a freshly initialized symbol table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Symbol)}
}

// Intern returns the unique Symbol for s, creating it on first use.
func (t *Table) Intern(s string) Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.entries == nil {
		t.entries = make(map[string]Symbol)
	}
	if sym, ok := t.entries[s]; ok {
		return sym
	}
	name := s
	sym := Symbol{name: &name}
	t.entries[s] = sym
	return sym
}

// Gensym synthesizes a fresh symbol guaranteed not to collide with any
// name a user could type, per spec.md §3.3.
func (t *Table) Gensym() Symbol {
	t.mu.Lock()
	t.gensym++
	n := t.gensym
	t.mu.Unlock()
	return t.Intern(fmt.Sprintf("symbol %d", n))
}
