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

package reader

import (
	"strings"

	"github.com/launix-de/scmcore/internal/errkind"
)

type tokKind uint8

const (
	tokLParen tokKind = iota
	tokRParen
	tokVectorOpen
	tokQuote
	tokQuasiquote
	tokUnquote
	tokUnquoteSplicing
	tokAtom
	tokString
)

type token struct {
	kind tokKind
	text string // only meaningful for tokAtom and tokString
}

// tokenize splits src into tokens, handling `;` line comments, `#|
// ... |#` block comments (scm/parser.go supports the latter; this
// keeps parity), string literals with backslash escapes, `#(` vector
// openers, and the quote family of reader macros. Whitespace and
// comments never produce a token.
func tokenize(src string) []token {
	var toks []token
	runes := []rune(src)
	i, n := 0, len(runes)

	for i < n {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == ';':
			for i < n && runes[i] != '\n' {
				i++
			}

		case c == '#' && i+1 < n && runes[i+1] == '|':
			i += 2
			depth := 1
			for i < n && depth > 0 {
				if i+1 < n && runes[i] == '#' && runes[i+1] == '|' {
					depth++
					i += 2
				} else if i+1 < n && runes[i] == '|' && runes[i+1] == '#' {
					depth--
					i += 2
				} else {
					i++
				}
			}

		case c == '(' || c == '[':
			toks = append(toks, token{kind: tokLParen})
			i++

		case c == ')' || c == ']':
			toks = append(toks, token{kind: tokRParen})
			i++

		case c == '#' && i+1 < n && runes[i+1] == '(':
			toks = append(toks, token{kind: tokVectorOpen})
			i += 2

		case c == '\'':
			toks = append(toks, token{kind: tokQuote})
			i++

		case c == '`':
			toks = append(toks, token{kind: tokQuasiquote})
			i++

		case c == ',' && i+1 < n && runes[i+1] == '@':
			toks = append(toks, token{kind: tokUnquoteSplicing})
			i += 2

		case c == ',':
			toks = append(toks, token{kind: tokUnquote})
			i++

		case c == '"':
			text, consumed := readStringLiteral(runes[i:])
			toks = append(toks, token{kind: tokString, text: text})
			i += consumed

		case c == '#' && i+1 < n && runes[i+1] == '\\':
			j := i + 2
			// The first rune after #\ is always taken, even a
			// delimiter such as `(`; the token then continues over
			// any following symbol runes, which is how a named char
			// such as #\space is read whole.
			if j < n {
				j++
				for j < n && isSymbolRune(runes[j]) {
					j++
				}
			}
			toks = append(toks, token{kind: tokAtom, text: string(runes[i:j])})
			i = j

		default:
			j := i
			for j < n && isSymbolRune(runes[j]) {
				j++
			}
			if j == i {
				panic(errkind.New(errkind.SyntaxError, "unexpected character: "+string(c)))
			}
			toks = append(toks, token{kind: tokAtom, text: string(runes[i:j])})
			i = j
		}
	}
	return toks
}

func isSymbolRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '(', ')', '[', ']', '\'', '`', ',', '"', ';':
		return false
	}
	return true
}

// readStringLiteral reads a double-quoted string starting at runes[0]
// (which must be `"`), honoring \\, \", \n, \t, \r escapes, and
// returns the unescaped content plus the number of runes consumed
// (including both quote marks).
func readStringLiteral(runes []rune) (string, int) {
	var b strings.Builder
	i := 1
	for i < len(runes) {
		c := runes[i]
		if c == '"' {
			return b.String(), i + 1
		}
		if c == '\\' && i+1 < len(runes) {
			switch runes[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteRune(runes[i+1])
			}
			i += 2
			continue
		}
		b.WriteRune(c)
		i++
	}
	panic(errkind.New(errkind.SyntaxError, ErrUnterminated))
}
