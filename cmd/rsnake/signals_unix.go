//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminationSignals end the run context; raw mode turns Ctrl-C into a key instead
func terminationSignals() []os.Signal {
	return []os.Signal{os.Interrupt, unix.SIGTERM, unix.SIGHUP}
}
