// Package device provides the command channel to a managed switch.
package device

import "context"

// Executor runs one textual CLI command on the device and captures its output.
//
// Implementations must never panic and never propagate transport faults to
// callers: a fault is reported as ok=false with empty output. Whether a
// failed command is fatal to the current action is the caller's decision.
type Executor interface {
	Execute(ctx context.Context, command string) (ok bool, output string)
}
