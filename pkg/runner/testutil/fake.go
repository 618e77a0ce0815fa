// Package testutil provides a fake Runner for driver tests. Tests
// declare which executables are present and which invocations fail,
// then assert on the recorded calls.
package testutil

import (
	"context"
	"strings"
	"sync"
)

// Call records a single Run invocation.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a shell-like line for easy assertions.
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// FakeRunner implements runner.Runner for tests.
type FakeRunner struct {
	mu sync.Mutex

	// Present maps executable names to their presence
	Present map[string]bool

	// FailOn, when set, is consulted for every Run call; a non-nil
	// return is reported as that invocation's error
	FailOn func(name string, args []string) error

	// Calls records every Run invocation in order
	Calls []Call
}

// NewFakeRunner creates a fake where the given executables are present.
func NewFakeRunner(present ...string) *FakeRunner {
	f := &FakeRunner{Present: make(map[string]bool)}
	for _, name := range present {
		f.Present[name] = true
	}
	return f
}

// CheckPresence reports the configured presence for name.
func (f *FakeRunner) CheckPresence(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Present[name]
}

// Run records the invocation and returns the configured failure, if any.
func (f *FakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.mu.Lock()
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
	f.mu.Unlock()

	if f.FailOn != nil {
		return f.FailOn(name, args)
	}
	return nil
}

// CallLines returns every recorded call rendered as a shell-like line.
func (f *FakeRunner) CallLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.String())
	}
	return lines
}

// CallsFor returns the recorded calls whose command name matches name.
func (f *FakeRunner) CallsFor(name string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var calls []Call
	for _, c := range f.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}
