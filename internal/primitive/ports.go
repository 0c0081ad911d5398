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
	"database/sql"
	"fmt"
	"io"
	"net/url"

	"github.com/gorilla/websocket"
	_ "github.com/lib/pq"

	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/number"
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/value"
	"github.com/launix-de/scmcore/internal/writer"
)

func portOrDefault(args []value.Value, at int, out bool) *value.Port {
	if len(args) > at {
		if !args[at].IsPort() {
			typeErr("port", args[at])
		}
		return args[at].Port()
	}
	if out {
		return CurrentOutput
	}
	return CurrentInput
}

func init() {
	register(opcode.OpDisplay, func(a *value.Arena, args []value.Value) value.Value {
		requireMinArity("display", args, 1)
		portOrDefault(args, 1, true).WriteString(writer.Display(args[0]))
		return value.None()
	})
	register(opcode.OpWrite, func(a *value.Arena, args []value.Value) value.Value {
		requireMinArity("write", args, 1)
		portOrDefault(args, 1, true).WriteString(writer.Write(args[0]))
		return value.None()
	})
	register(opcode.OpNewline, func(a *value.Arena, args []value.Value) value.Value {
		portOrDefault(args, 0, true).WriteChar('\n')
		return value.None()
	})
	register(opcode.OpWriteChar, func(a *value.Arena, args []value.Value) value.Value {
		requireMinArity("write-char", args, 1)
		if !args[0].IsChar() {
			typeErr("write-char", args[0])
		}
		portOrDefault(args, 1, true).WriteChar(args[0].Char())
		return value.None()
	})
	register(opcode.OpReadChar, func(a *value.Arena, args []value.Value) value.Value {
		p := portOrDefault(args, 0, false)
		r, ok := p.ReadChar()
		if !ok {
			return value.None()
		}
		return value.Char(r)
	})
	register(opcode.OpPeekChar, func(a *value.Arena, args []value.Value) value.Value {
		p := portOrDefault(args, 0, false)
		r, ok := p.PeekChar()
		if !ok {
			return value.None()
		}
		return value.Char(r)
	})
	register(opcode.OpClosePort, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("close-port", args, 1)
		if !args[0].IsPort() {
			typeErr("close-port", args[0])
		}
		if err := args[0].Port().Close(); err != nil {
			panic(errkind.Newf(errkind.IOError, err.Error(), args[0]))
		}
		return value.None()
	})
	register(opcode.OpOpenInputString, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("open-input-string", args, 1)
		return value.PortVal(value.NewInputStringPort(requireString("open-input-string", args[0]).String()))
	})
	register(opcode.OpOpenOutputString, func(a *value.Arena, args []value.Value) value.Value {
		return value.PortVal(value.NewOutputStringPort())
	})
	register(opcode.OpGetOutputString, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("get-output-string", args, 1)
		if !args[0].IsPort() {
			typeErr("get-output-string", args[0])
		}
		s, ok := args[0].Port().GetBuffer()
		if !ok {
			panic(errkind.New(errkind.TypeError, "get-output-string: not an output-string port"))
		}
		return value.Str(value.NewString(s))
	})

	register(opcode.OpOpenWebsocketPort, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("open-websocket-port", args, 1)
		wsURL := requireString("open-websocket-port", args[0]).String()
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			panic(errkind.Newf(errkind.IOError, "open-websocket-port: "+err.Error(), args[0]))
		}
		r, w := websocketPipe(conn)
		return value.PortVal(value.NewDuplexPort(value.PortWebsocket, wsURL, r, w, conn))
	})

	register(opcode.OpOpenSQLPort, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("open-sql-port", args, 1)
		dsn := requireString("open-sql-port", args[0]).String()
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			panic(errkind.Newf(errkind.IOError, "open-sql-port: "+err.Error(), args[0]))
		}
		if err := db.Ping(); err != nil {
			panic(errkind.Newf(errkind.IOError, "open-sql-port: "+err.Error(), args[0]))
		}
		port := value.NewDuplexPort(value.PortSQL, sanitizeDSN(dsn), nil, nil, db)
		port.SetRaw(db)
		return value.PortVal(port)
	})

	register(opcode.OpSQLQuery, func(a *value.Arena, args []value.Value) value.Value {
		requireArity("sql-query", args, 2)
		if !args[0].IsPort() {
			typeErr("sql-query", args[0])
		}
		query := requireString("sql-query", args[1]).String()
		db, ok := args[0].Port().Raw().(*sql.DB)
		if !ok {
			panic(errkind.New(errkind.TypeError, "sql-query: not a sql port"))
		}
		return sqlQuery(a, db, query)
	})
}

// sqlQuery runs query and converts every result row into an
// association list of (column-symbol . value) pairs, the shape
// memcp's SQL import path (storage/mysql_import.go) hands back to
// Scheme-level code.
func sqlQuery(a *value.Arena, db *sql.DB, query string) value.Value {
	rows, err := db.Query(query)
	if err != nil {
		panic(errkind.New(errkind.IOError, "sql-query: "+err.Error()))
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		panic(errkind.New(errkind.IOError, "sql-query: "+err.Error()))
	}

	var out []value.Value
	for rows.Next() {
		scanTargets := make([]any, len(cols))
		scanValues := make([]any, len(cols))
		for i := range scanTargets {
			scanTargets[i] = &scanValues[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			panic(errkind.New(errkind.IOError, "sql-query: "+err.Error()))
		}

		pairs := make([]value.Value, len(cols))
		for i, col := range cols {
			pairs[i] = value.PairVal(a.Cons(
				value.Sym(Symtab.Intern(col)),
				sqlValue(scanValues[i]),
			))
		}
		out = append(out, value.FromSlice(a, pairs))
	}
	if err := rows.Err(); err != nil {
		panic(errkind.New(errkind.IOError, "sql-query: "+err.Error()))
	}
	return value.FromSlice(a, out)
}

// sqlValue converts one database/sql scan result to a Value, the same
// int64/float64/string/bool/nil set database/sql itself produces for
// an untyped scan target.
func sqlValue(v any) value.Value {
	switch x := v.(type) {
	case nil:
		return value.Bool(false)
	case int64:
		return value.Num(number.Int(x))
	case float64:
		return value.Num(number.Float(x))
	case bool:
		return value.Bool(x)
	case []byte:
		return value.Str(value.NewString(string(x)))
	case string:
		return value.Str(value.NewString(x))
	default:
		return value.Str(value.NewString(fmt.Sprint(x)))
	}
}

// sanitizeDSN strips credentials from a connection string before it
// is used as a Port's display Name, so `write`/debug dumps never leak
// a password the way an unredacted DSN would.
func sanitizeDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" {
		u.User = nil
		u.RawQuery = ""
		return u.String()
	}
	return "sql"
}

// websocketPipe adapts a *websocket.Conn's message-oriented API to the
// byte-stream io.Reader/io.Writer pair Port expects, the way
// scm/network.go wraps an upgraded connection for scm-level code.
func websocketPipe(conn *websocket.Conn) (io.Reader, io.Writer) {
	return &wsReader{conn: conn}, wsWriter{conn}
}

// wsReader buffers one inbound text/binary message at a time behind a
// plain io.Reader, so Port's bufio.Reader can pull runes across
// message boundaries transparently.
type wsReader struct {
	conn    *websocket.Conn
	pending []byte
}

func (r *wsReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		_, msg, err := r.conn.ReadMessage()
		if err != nil {
			return 0, err
		}
		r.pending = msg
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

type wsWriter struct {
	conn *websocket.Conn
}

func (w wsWriter) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}
