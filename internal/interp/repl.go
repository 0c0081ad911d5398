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

package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/reader"
	"github.com/launix-de/scmcore/internal/writer"
)

const (
	newPrompt  = "\033[32m>\033[0m "
	contPrompt = "\033[32m.\033[0m "
	resultTag  = "\033[31m=\033[0m "
)

// Repl runs an interactive read-eval-print loop against the top-level
// environment, exactly scm/prompt.go's shape: readline for input and
// history, a continuation prompt while a form's parens are still open,
// and per-line panic recovery so one bad form never kills the session.
func (it *Interp) Repl() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".scmcore-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	r := reader.New(it.Symtab, it.Arena)
	continuing := false

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if !continuing {
				break
			}
			r = reader.New(it.Symtab, it.Arena)
			continuing = false
			l.SetPrompt(newPrompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}

		if line == "" && !continuing {
			continue
		}

		fed := func() (ok bool) {
			defer func() {
				if rec := recover(); rec != nil {
					e, isErr := rec.(*errkind.Error)
					if !isErr {
						panic(rec)
					}
					fmt.Fprintln(os.Stderr, e.Error())
				}
			}()
			r.Feed(line + "\n")
			return true
		}()
		if !fed {
			continue
		}
		if it.replStep(r) {
			continuing = false
			l.SetPrompt(newPrompt)
		} else {
			continuing = true
			l.SetPrompt(contPrompt)
		}
	}
}

// replStep drains as many complete forms as the reader currently has
// buffered, evaluating and printing each. It returns true once the
// buffer holds no partial (unterminated) form, i.e. the REPL is ready
// for a brand new top-level input rather than a continuation line.
func (it *Interp) replStep(r *reader.Reader) (done bool) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if code, exited := exitCode(rec); exited {
			os.Exit(code)
		}
		if e, ok := rec.(*errkind.Error); ok {
			if e.Kind == errkind.SyntaxError && e.Message == reader.ErrUnterminated {
				done = false
				return
			}
			fmt.Fprintln(os.Stderr, e.Error())
			done = true
			return
		}
		panic(rec)
	}()

	for {
		form, ok, err := r.Next()
		if err != nil {
			panic(err)
		}
		if !ok {
			return true
		}
		result := it.EvalTop(form)
		os.Stdout.WriteString(resultTag)
		os.Stdout.WriteString(writer.Write(result))
		os.Stdout.WriteString("\n")
	}
}
