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

// Package writer renders a Value back to source-level text, in the
// two registers R7RS names: `display` (human-facing, strings/chars
// unquoted) and `write` (re-readable, strings/chars escaped/quoted).
// Grounded on scm/printer.go's String/SerializeEx split.
package writer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/launix-de/scmcore/internal/value"
)

// Display renders v the human-facing way: strings print their raw
// content, characters print their literal rune.
func Display(v value.Value) string {
	var b strings.Builder
	write(&b, v, false, map[value.PairRef]bool{})
	return b.String()
}

// Write renders v the re-readable way: strings are quoted and
// escaped, characters use `#\x` notation.
func Write(v value.Value) string {
	var b strings.Builder
	write(&b, v, true, map[value.PairRef]bool{})
	return b.String()
}

func write(b *strings.Builder, v value.Value, readable bool, seen map[value.PairRef]bool) {
	switch v.Tag() {
	case value.TagNone:
		b.WriteString("")
	case value.TagNil:
		b.WriteString("()")
	case value.TagBool:
		if v.Bool() {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case value.TagChar:
		if readable {
			b.WriteString(writeChar(v.Char()))
		} else {
			b.WriteRune(v.Char())
		}
	case value.TagNumber:
		b.WriteString(v.Num().String())
	case value.TagSymbol:
		b.WriteString(v.Sym().String())
	case value.TagIntern:
		b.WriteString(fmt.Sprintf("#<syntax %d>", v.Intern()))
	case value.TagString:
		if readable {
			b.WriteByte('"')
			b.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`).Replace(v.Str().String()))
			b.WriteByte('"')
		} else {
			b.WriteString(v.Str().String())
		}
	case value.TagVector:
		b.WriteString("#(")
		for i, item := range v.Vec().Items {
			if i != 0 {
				b.WriteByte(' ')
			}
			write(b, item, readable, seen)
		}
		b.WriteByte(')')
	case value.TagPair:
		writeList(b, v, readable, seen)
	case value.TagPort:
		fmt.Fprintf(b, "#<port %s>", v.Port().ID)
	case value.TagFunction:
		fmt.Fprintf(b, "#<procedure %s>", v.Func().Name)
	case value.TagProcedure:
		p := v.Proc()
		kind := "procedure"
		if p.IsMacro {
			kind = "macro"
		}
		name := p.Name
		if name == "" {
			name = "anonymous"
		}
		fmt.Fprintf(b, "#<%s %s>", kind, name)
	case value.TagEnv:
		b.WriteString("#<environment>")
	}
}

func writeList(b *strings.Builder, v value.Value, readable bool, seen map[value.PairRef]bool) {
	b.WriteByte('(')
	first := true
	for v.IsPair() {
		p := v.Pair()
		if seen[p] {
			if !first {
				b.WriteByte(' ')
			}
			b.WriteString("...")
			b.WriteByte(')')
			return
		}
		seen[p] = true
		if !first {
			b.WriteByte(' ')
		}
		first = false
		write(b, p.Car(), readable, seen)
		v = p.Cdr()
	}
	if !v.IsNil() {
		b.WriteString(" . ")
		write(b, v, readable, seen)
	}
	b.WriteByte(')')
}

var charNames = map[rune]string{
	' ':    "space",
	'\n':   "newline",
	'\t':   "tab",
	'\r':   "return",
	0:      "null",
}

func writeChar(r rune) string {
	if name, ok := charNames[r]; ok {
		return "#\\" + name
	}
	if strconv.IsPrint(r) {
		return "#\\" + string(r)
	}
	return fmt.Sprintf("#\\x%x", r)
}
