package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var crashBannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))

var (
	crashMu      sync.Mutex
	crashRestore func()
)

// SetCrashRestore registers the terminal restore hook run before a crash report is printed.
// Passing nil clears it.
func SetCrashRestore(fn func()) {
	crashMu.Lock()
	crashRestore = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore := crashRestore
	crashRestore = nil
	crashMu.Unlock()

	if restore != nil {
		restore()
	}

	fmt.Fprintln(os.Stderr, crashBannerStyle.Render(fmt.Sprintf("RSNAKE CRASHED: %v", r)))
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
