// Package logger provides leveled logging for the gsearch CLI.
// Warnings are always written. Info, debug and section output appear
// only in verbose mode (the --verbose flag), where they trace paging
// and backend requests.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// logf writes one line. Lines with verboseOnly set are dropped unless
// verbose mode is on.
func logf(verboseOnly bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verboseOnly && !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug traces requests and paging decisions.
func Debug(format string, args ...any) {
	logf(true, "[DEBUG] ", format, args...)
}

// Info reports progress worth showing in verbose mode.
func Info(format string, args ...any) {
	logf(true, "[INFO] ", format, args...)
}

// Warn reports a recoverable problem, such as a search that could not be
// recorded in history. Warnings are shown regardless of verbose mode.
func Warn(format string, args ...any) {
	logf(false, "[WARN] ", format, args...)
}

// Section prints a header grouping the debug lines of one search.
func Section(name string) {
	logf(true, "", "\n=== %s ===", name)
}
