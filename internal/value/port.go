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

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/google/uuid"
)

// PortKind distinguishes the backing transport a Port wraps. All kinds
// answer to the same read-char/peek-char/write-char/close-port
// surface (original_source/include/picoscm/port.hpp), so the
// primitive table in internal/primitive dispatches uniformly without
// a type switch per kind.
type PortKind uint8

const (
	PortString PortKind = iota
	PortFile
	PortConsole
	PortWebsocket
	PortSQL
)

// Port is a live I/O handle: an input port, an output port, or both.
// Every Port carries a uuid so `write` and debug dumps can name a
// specific open port unambiguously even across many open files or
// sockets (mirrors storage/fast_uuid.go's resource-tagging pattern in
// the teacher).
type Port struct {
	ID     uuid.UUID
	Kind   PortKind
	Name   string
	reader *bufio.Reader
	writer io.Writer
	closer io.Closer
	peeked *rune
	closed bool
	buf    *bytes.Buffer
	raw    any
}

// NewInputPort wraps r as a readable port.
func NewInputPort(kind PortKind, name string, r io.Reader) *Port {
	return &Port{ID: uuid.New(), Kind: kind, Name: name, reader: bufio.NewReader(r)}
}

// NewOutputPort wraps w as a writable port.
func NewOutputPort(kind PortKind, name string, w io.Writer) *Port {
	return &Port{ID: uuid.New(), Kind: kind, Name: name, writer: w}
}

// NewDuplexPort wraps a reader and writer pair under one handle, used
// by the websocket and SQL port primitives where a single connection
// serves both directions.
func NewDuplexPort(kind PortKind, name string, r io.Reader, w io.Writer, c io.Closer) *Port {
	p := &Port{ID: uuid.New(), Kind: kind, Name: name, writer: w, closer: c}
	if r != nil {
		p.reader = bufio.NewReader(r)
	}
	return p
}

func (p *Port) CanRead() bool  { return p.reader != nil }
func (p *Port) CanWrite() bool { return p.writer != nil }
func (p *Port) Closed() bool   { return p.closed }

// SetRaw attaches the native handle behind a duplex port (e.g. a
// *sql.DB or *websocket.Conn) so a primitive with more specific
// knowledge of the port kind (sql-query) can recover it without this
// package importing every possible transport driver.
func (p *Port) SetRaw(v any) { p.raw = v }

// Raw returns whatever SetRaw last attached, or nil.
func (p *Port) Raw() any { return p.raw }

// ReadChar consumes and returns the next rune, or ok=false at EOF.
func (p *Port) ReadChar() (r rune, ok bool) {
	if p.peeked != nil {
		r, p.peeked = *p.peeked, nil
		return r, true
	}
	r, _, err := p.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	return r, true
}

// PeekChar returns the next rune without consuming it, or ok=false at
// EOF.
func (p *Port) PeekChar() (r rune, ok bool) {
	if p.peeked != nil {
		return *p.peeked, true
	}
	r, _, err := p.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	p.peeked = &r
	return r, true
}

// WriteChar writes one rune to the port.
func (p *Port) WriteChar(r rune) {
	io.WriteString(p.writer, string(r))
}

// WriteString writes s verbatim to the port.
func (p *Port) WriteString(s string) {
	io.WriteString(p.writer, s)
}

// NewInputStringPort wraps s as a readable port, the `open-input-string`
// primitive's backing implementation (original_source/src/port.cpp).
func NewInputStringPort(s string) *Port {
	return NewInputPort(PortString, "string", strings.NewReader(s))
}

// NewOutputStringPort returns a writable port that accumulates
// everything written to it in memory, retrievable via GetBuffer —
// the backing implementation for `open-output-string`/
// `get-output-string`.
func NewOutputStringPort() *Port {
	buf := &bytes.Buffer{}
	p := NewOutputPort(PortString, "string", buf)
	p.buf = buf
	return p
}

// GetBuffer returns the accumulated text of a NewOutputStringPort, or
// ok=false if p was not created by NewOutputStringPort.
func (p *Port) GetBuffer() (string, bool) {
	if p.buf == nil {
		return "", false
	}
	return p.buf.String(), true
}

// Close releases the underlying transport, if any was given.
func (p *Port) Close() error {
	p.closed = true
	if p.closer != nil {
		return p.closer.Close()
	}
	return nil
}
