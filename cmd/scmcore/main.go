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

// cmd/scmcore is the standalone CLI front-end for the interpreter
// core: load a script, optionally watch it for changes, then (unless
// told not to) drop into an interactive REPL. Grounded on main.go's
// top-level wiring — bind a host function, load a file, hand off to
// the REPL — generalized from a fixed "test.jsonl" load to a flag.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dc0d/onexit"

	"github.com/launix-de/scmcore/internal/interp"
	"github.com/launix-de/scmcore/internal/value"
	"github.com/launix-de/scmcore/internal/writer"
)

func main() {
	load := flag.String("load", "", "Scheme source file to load before the REPL starts")
	watch := flag.Bool("watch", false, "reload -load's file whenever it changes on disk")
	noRepl := flag.Bool("no-repl", false, "exit after -load instead of entering the REPL")
	flag.Parse()

	fmt.Print(`scmcore Copyright (C) 2023
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
`)

	it := interp.New()
	defer it.Close()

	it.Bind("print", func(args []value.Value) value.Value {
		for _, a := range args {
			fmt.Print(writer.Display(a))
		}
		fmt.Println()
		return value.None()
	})

	if *load != "" {
		if *watch {
			go func() {
				if err := it.Watch(*load, nil); err != nil {
					fmt.Fprintln(os.Stderr, "watch:", err)
				}
			}()
		} else if err := it.Load(*load); err != nil {
			fmt.Fprintln(os.Stderr, "load:", err)
			onexit.Exit(1)
		}
	}

	if *noRepl {
		return
	}
	it.Repl()
}
