// Package runner abstracts external command execution behind a narrow
// interface so provisioning drivers can be tested against a fake runner
// and assert on their invocations.
package runner

import (
	"context"
)

// Runner is the capability the provisioning drivers depend on.
type Runner interface {
	// CheckPresence reports whether an executable named name is
	// resolvable in the current execution environment. Absence is a
	// normal, expected outcome, never an error.
	CheckPresence(name string) bool

	// Run invokes an external command and blocks until it completes.
	Run(ctx context.Context, name string, args ...string) error
}
