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
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/value"
)

// Load reads path, evaluates every top-level form in it against the
// top-level environment, and reports the first malformed form's
// parse error, if any. A Scheme-level error raised while evaluating
// one top-level form is printed to stderr and evaluation continues
// with the next form — spec.md §7's "a load/REPL host recovers
// per-form, not per-file" rule. ExitSignal still unwinds Load entirely
// so `(exit)` inside a loaded script terminates the host.
func (it *Interp) Load(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	forms, err := it.Read(string(src))
	if err != nil {
		return err
	}
	for _, form := range forms {
		if rc, exited := it.evalRecovering(form); exited {
			os.Exit(rc)
		}
	}
	return nil
}

// evalRecovering evaluates one top-level form, recovering from any
// errkind.Error (printed to stderr, execution continues with the next
// form) or errkind.ExitSignal (reported back to the caller so it can
// actually terminate the process after this stack has unwound). Any
// other recovered value is a Go-level bug and is re-panicked.
func (it *Interp) evalRecovering(form value.Value) (rc int, exited bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if code, ok := exitCode(r); ok {
			rc, exited = code, true
			return
		}
		if e, ok := r.(*errkind.Error); ok {
			fmt.Fprintln(os.Stderr, e.Error())
			return
		}
		panic(r)
	}()
	it.EvalTop(form)
	return 0, false
}

// Watch re-loads path every time it changes on disk, printing any
// load error to stderr rather than stopping the watch — a development
// convenience akin to a REPL that never needs a restart when editing
// the loaded file. It blocks until ctx-less cancellation via a closed
// stop channel, or forever if stop is nil.
func (it *Interp) Watch(path string, stop <-chan struct{}) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(path); err != nil {
		return err
	}

	if err := it.Load(path); err != nil {
		fmt.Fprintln(os.Stderr, "load:", err)
	}

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := it.Load(path); err != nil {
					fmt.Fprintln(os.Stderr, "load:", err)
				}
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch:", werr)
		case <-stop:
			return nil
		}
	}
}

// exitCode extracts a process exit code from a recovered panic if it
// was an errkind.ExitSignal, reporting ok=false for anything else
// (including a real Go panic, which the two catch points re-panic).
func exitCode(r any) (code int, ok bool) {
	if sig, isExit := r.(errkind.ExitSignal); isExit {
		return sig.Code, true
	}
	return 0, false
}
