// Package stamp generates the identifiers and timestamps used to stamp
// tasks, messages and data-model snapshots.
package stamp

import (
	"time"

	"github.com/google/uuid"
)

// Layout is RFC3339 in UTC with microsecond precision and a literal Z.
const Layout = "2006-01-02T15:04:05.000000Z07:00"

// NewID returns a random (version 4) UUID string.
func NewID() string {
	return uuid.NewString()
}

// Now returns the current UTC time formatted with Layout.
func Now() string {
	return Format(time.Now())
}

// Format renders t in UTC using Layout.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}
