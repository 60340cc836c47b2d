package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal, satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
)

// SetCrashScreen registers the screen to finalize before a crash report is printed
func SetCrashScreen(f Finalizer) {
	crashMu.Lock()
	crashScreen = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	f := crashScreen
	crashScreen = nil
	crashMu.Unlock()
	if f != nil {
		f.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
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
