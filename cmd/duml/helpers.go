package main

import (
	"fmt"
	"os"

	"github.com/joss/duml/internal/audit"
)

// exitOnError logs the error to audit and stderr, closes the session
// (os.Exit skips the callers' defers), then exits.
func exitOnError(a *app, event *audit.AuditEvent, err error) {
	auditLogger.LogError(event, err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	a.Close()
	os.Exit(1)
}
