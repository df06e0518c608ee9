// Package testutil provides shared fakes for package tests.
package testutil

import (
	"context"
	"sync"
)

// Response is a scripted result for one device command.
type Response struct {
	OK     bool
	Output string
}

// FakeExecutor is a scriptable device.Executor for tests. Responses are
// matched by exact command string; unmatched commands get Default. A Handler
// takes precedence over both when set.
type FakeExecutor struct {
	mu        sync.Mutex
	Responses map[string]Response
	Default   Response
	Handler   func(command string) (bool, string)

	calls []string
}

// NewFakeExecutor returns a fake whose unscripted commands succeed with
// empty output.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{
		Responses: make(map[string]Response),
		Default:   Response{OK: true},
	}
}

// Execute records the command and returns its scripted response.
func (f *FakeExecutor) Execute(_ context.Context, command string) (bool, string) {
	f.mu.Lock()
	f.calls = append(f.calls, command)
	f.mu.Unlock()

	if f.Handler != nil {
		return f.Handler(command)
	}
	if r, ok := f.Responses[command]; ok {
		return r.OK, r.Output
	}
	return f.Default.OK, f.Default.Output
}

// Calls returns a copy of the commands executed so far, in order.
func (f *FakeExecutor) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many commands have been executed.
func (f *FakeExecutor) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Reset clears the recorded calls.
func (f *FakeExecutor) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}
