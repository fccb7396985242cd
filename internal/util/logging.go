// Package util provides logging helpers, XDG path lookups and small string
// utilities shared by the CLI and the TUI.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogClose closes c and logs a failure under context.
func LogClose(context string, c interface{ Close() error }) {
	if c == nil {
		return
	}
	LogError(context, c.Close())
}
