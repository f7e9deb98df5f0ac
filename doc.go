/*
Package ioscope temporarily restores a pristine I/O context around the
execution of a function.

Interactive console applications ("Hosts") commonly wrap two process-wide
facilities: the standard output stream (replaced by a styling or buffering
wrapper) and the line editor's completion hook (replaced by an
application-specific completer). Some called functions legitimately need the
unmodified defaults — a nested prompt, or a tool that hands the terminal to a
subprocess. ioscope wraps such functions with a save → override → invoke →
restore protocol, and restoration is guaranteed on every exit path, including
panics.

# Concept

The isolator knows two I/O entities, "readline" and "stdout". A configuration
selects which of them to isolate. Configuration is all-or-nothing: either no
entity is named (everything is isolated) or every entity is named explicitly.
Partial configuration is rejected when the isolator is constructed, long
before any wrapped call runs.

The process-wide state itself is reached through small slot interfaces
(pkg/ports), so the isolator can operate on the real process console
(pkg/adapters/proc) or on in-memory doubles (pkg/adapters/memio) without
side effects.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/0thm4n3/ioscope"
	)

	func main() {
		// Isolate everything (the default).
		iso, err := ioscope.New()
		if err != nil {
			log.Fatal(err)
		}

		// The wrapped function runs against the process default stdout
		// and a neutral completion hook; both are restored afterwards.
		err = iso.Run(func() error {
			fmt.Println("this bypasses the host's stdout wrapper")
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
	}

Explicit selection names every entity:

	iso, err := ioscope.New(
		ioscope.WithReadline(true),
		ioscope.WithStdout(false),
	)

Naming only one of them is a configuration error and New fails.
*/
package ioscope
