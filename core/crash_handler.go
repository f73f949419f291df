package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal; satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
)

// RegisterScreen sets the screen finalized before a crash report is printed
// Pass nil to unregister after a normal shutdown
func RegisterScreen(s Finalizer) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state first, stderr is unreadable in raw mode
	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()
	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

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
