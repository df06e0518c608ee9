// Package migrate implements the LACP migration actions and the
// backup → apply → monitor → commit-or-rollback state machine.
package migrate

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lagmigrate-network/lagmigrate/pkg/device"
	"github.com/lagmigrate-network/lagmigrate/pkg/plan"
	"github.com/lagmigrate-network/lagmigrate/pkg/util"
)

// Settle pauses between dependent device commands. Not a correctness
// mechanism: the firmware needs a moment to apply one change before the
// next arrives.
const (
	settlePause = 500 * time.Millisecond
	bouncePause = time.Second
)

// ActionResult reports one device command issued by an action. It is a plain
// value, never an error: the orchestrator decides what a failure means.
type ActionResult struct {
	Action    string
	Command   string
	Attempted bool
	Succeeded bool
	Output    string
}

// Actions is the set of idempotent configuration operations used by the
// migration. Every command is issued with ignore-failure semantics except
// the LACP-enable command, whose failure is significant (but still not
// fatal: the monitor's reachability verdict is the real success signal).
type Actions struct {
	exec      device.Executor
	cmds      device.CommandSet
	primary   string
	members   string
	algorithm string
	log       *logrus.Entry

	// Sleep is the settle-pause hook, injectable for tests.
	Sleep func(time.Duration)
}

// NewActions wires the configuration actions for a plan.
func NewActions(exec device.Executor, p *plan.MigrationPlan) *Actions {
	return &Actions{
		exec:      exec,
		cmds:      p.Commands,
		primary:   p.PrimaryPort,
		members:   p.MembersSpec(),
		algorithm: p.Algorithm,
		log:       util.WithDevice(p.Device.Host),
		Sleep:     time.Sleep,
	}
}

// run issues one command with ignore-failure semantics. Failures are logged
// where they happen but never escalate.
func (a *Actions) run(ctx context.Context, action, command string) ActionResult {
	ok, out := a.exec.Execute(ctx, command)
	if !ok {
		a.log.Warnf("%s: command '%s' failed (ignored)", action, command)
	}
	return ActionResult{Action: action, Command: command, Attempted: true, Succeeded: ok, Output: out}
}

func (a *Actions) render(template string, extra ...string) string {
	pairs := append([]string{
		"port", a.primary,
		"members", a.members,
		"algorithm", a.algorithm,
	}, extra...)
	return device.Render(template, pairs...)
}

// ResetAggregation disables and unconfigures aggregation on the primary
// port. Safe to run when no aggregation exists: both commands tolerate
// "already in this state".
func (a *Actions) ResetAggregation(ctx context.Context) {
	a.log.Infof("Reset aggregation on %s (disable + unconfigure)", a.primary)
	a.run(ctx, "reset-aggregation", a.render(a.cmds.DisableSharing))
	a.Sleep(settlePause)
	a.run(ctx, "reset-aggregation", a.render(a.cmds.UnconfigureSharing))
	a.Sleep(settlePause)
}

// EnableLACP creates the aggregation group in LACP mode and sets the primary
// port's LACP activity to active. The enable command is the one significant
// call of the migration; its result is returned so the orchestrator can log
// it loudly.
func (a *Actions) EnableLACP(ctx context.Context) ActionResult {
	a.log.Infof("Enable LACP aggregation on %s (group %s, algorithm %s)", a.primary, a.members, a.algorithm)

	cmd := a.render(a.cmds.EnableSharingLACP)
	ok, out := a.exec.Execute(ctx, cmd)
	result := ActionResult{Action: "enable-lacp", Command: cmd, Attempted: true, Succeeded: ok, Output: out}
	if !ok {
		a.log.Errorf("enable-lacp: command '%s' failed", cmd)
	}

	a.Sleep(settlePause)
	a.run(ctx, "enable-lacp", a.render(a.cmds.ConfigureLACPActive))
	return result
}

// RestoreStatic is the soft rollback: recreate the same aggregation group
// without LACP, then bounce the primary port to flush stale LAG state.
// Invoking it twice leaves the device in the same state as invoking it once.
func (a *Actions) RestoreStatic(ctx context.Context) {
	a.log.Infof("Rollback: restoring static aggregation (no LACP) on %s with group %s", a.primary, a.members)
	a.run(ctx, "restore-static", a.render(a.cmds.DisableSharing))
	a.Sleep(settlePause)
	a.run(ctx, "restore-static", a.render(a.cmds.UnconfigureSharing))
	a.Sleep(settlePause)
	a.run(ctx, "restore-static", a.render(a.cmds.EnableSharingStatic))
	a.Sleep(settlePause)

	a.log.Infof("Rollback: cycling primary port %s to clear LAG state", a.primary)
	a.run(ctx, "restore-static", a.render(a.cmds.DisablePorts))
	a.Sleep(bouncePause)
	a.run(ctx, "restore-static", a.render(a.cmds.EnablePorts))
}

// SaveNamed persists the running configuration under a label, falling back
// to a plain save when the named save fails. Both attempts are best-effort.
func (a *Actions) SaveNamed(ctx context.Context, name string) ActionResult {
	result := a.run(ctx, "save", a.render(a.cmds.SaveNamed, "name", name))
	if result.Succeeded {
		return result
	}
	a.log.Warnf("Named save '%s' failed, falling back to plain save", name)
	fallback := a.run(ctx, "save", a.cmds.Save)
	if !fallback.Succeeded {
		a.log.Warnf("Plain save failed too; live configuration remains unsaved")
	}
	return fallback
}

// DetectExisting reports whether the primary port already appears as an
// aggregation group master. Informational only; never drives branching.
func (a *Actions) DetectExisting(ctx context.Context) bool {
	ok, out := a.exec.Execute(ctx, a.cmds.ShowSharing)
	if !ok {
		return false
	}
	for _, line := range strings.Split(out, "\n") {
		if lineStartsWithPort(line, a.primary) {
			return true
		}
	}
	return false
}

// lineStartsWithPort matches a show-aggregation line whose master column is
// exactly the port (so "1:60" does not match "1:600").
func lineStartsWithPort(line, port string) bool {
	if !strings.HasPrefix(line, port) {
		return false
	}
	rest := line[len(port):]
	if rest == "" {
		return true
	}
	c := rest[0]
	return !(c >= '0' && c <= '9') && c != ':'
}
