// Package monitoring holds the diagnostic logger shared by the renderer
// packages.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// can be swapped with SetLogger, e.g. to silence spawn chatter in tests.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces Logf. A nil logger discards everything.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
