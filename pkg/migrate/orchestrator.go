package migrate

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lagmigrate-network/lagmigrate/pkg/device"
	"github.com/lagmigrate-network/lagmigrate/pkg/monitor"
	"github.com/lagmigrate-network/lagmigrate/pkg/plan"
	"github.com/lagmigrate-network/lagmigrate/pkg/probe"
	"github.com/lagmigrate-network/lagmigrate/pkg/util"
)

// Outcome is the terminal result of a migration run.
type Outcome string

const (
	OutcomeCommitted  Outcome = "committed"
	OutcomeRolledBack Outcome = "rolled-back"
)

// Orchestrator sequences the migration: backup, apply, monitor, then commit
// or soft-rollback. It is single-threaded: the monitor blocks the run for up
// to the overall timeout, and nothing else may mutate the device while the
// decision is pending.
type Orchestrator struct {
	Plan    *plan.MigrationPlan
	Probe   *probe.Prober
	Monitor *monitor.Monitor
	Actions *Actions

	log *logrus.Entry
}

// New wires an orchestrator for the plan over the given command channel.
func New(p *plan.MigrationPlan, exec device.Executor) *Orchestrator {
	pr := probe.New(exec, p.Target, p.Commands.ProbeCandidates)
	return &Orchestrator{
		Plan:    p,
		Probe:   pr,
		Monitor: monitor.New(pr, p.Target, p.PollInterval(), p.StableRequired(), p.OverallTimeout()),
		Actions: NewActions(exec, p),
		log:     util.WithDevice(p.Device.Host),
	}
}

// Run executes the migration to one of its two terminal outcomes. Device
// command failures never abort the run; the only errors returned are wiring
// violations.
func (o *Orchestrator) Run(ctx context.Context) (Outcome, error) {
	if o.Plan == nil || o.Probe == nil || o.Monitor == nil || o.Actions == nil {
		return "", fmt.Errorf("orchestrator not fully wired")
	}
	p := o.Plan

	o.log.Infof("=== LACP migration: %s group %s -> LACP, target %s ===",
		p.PrimaryPort, p.MembersSpec(), p.Target)

	// Resolve the probe syntax before touching the link, so a detection
	// failure is visible while everything is still reachable.
	if tmpl := o.Probe.Detect(ctx); tmpl == "" {
		o.log.Warnf("Proceeding without a working probe syntax; the monitor will time out and roll back")
	}

	o.log.Infof("Saving pre-change configuration as '%s'", p.PreLabel)
	o.Actions.SaveNamed(ctx, p.PreLabel)

	if o.Actions.DetectExisting(ctx) {
		o.log.Infof("Existing aggregation detected on %s", p.PrimaryPort)
	}

	o.Actions.ResetAggregation(ctx)
	o.Actions.EnableLACP(ctx)

	o.log.Infof("Device side switched to LACP. >>> Configure the peer-side aggregation now; this tool does not touch the peer. <<<")

	if o.Monitor.Run(ctx) {
		o.log.Infof("Link up and stable - saving running configuration as '%s'", p.PostLabel)
		o.Actions.SaveNamed(ctx, p.PostLabel)
		o.log.Infof("Saved. Migration complete.")
		return OutcomeCommitted, nil
	}

	o.log.Warnf("Link not stable - performing soft rollback (no reboot, no save)")
	o.Actions.RestoreStatic(ctx)
	o.log.Warnf("Soft rollback done. Configuration NOT saved.")
	o.log.Warnf("To fully revert to the saved pre-change state, run manually on the device:")
	o.log.Warnf("  use configuration %s", p.PreLabel)
	o.log.Warnf("  reboot all   (answer 'n' to the save prompt)")
	return OutcomeRolledBack, nil
}

// Preview returns the forward command sequence and the rollback sequence the
// run would issue, for dry-run display. Probe commands are listed once per
// candidate syntax; during a real run the detected one repeats every poll.
func Preview(p *plan.MigrationPlan) (forward, rollback []string) {
	render := func(tmpl string, extra ...string) string {
		pairs := append([]string{
			"port", p.PrimaryPort,
			"members", p.MembersSpec(),
			"algorithm", p.Algorithm,
			"target", p.Target,
		}, extra...)
		return device.Render(tmpl, pairs...)
	}

	for _, c := range p.Commands.ProbeCandidates {
		forward = append(forward, render(c))
	}
	forward = append(forward,
		render(p.Commands.SaveNamed, "name", p.PreLabel),
		render(p.Commands.ShowSharing),
		render(p.Commands.DisableSharing),
		render(p.Commands.UnconfigureSharing),
		render(p.Commands.EnableSharingLACP),
		render(p.Commands.ConfigureLACPActive),
		render(p.Commands.SaveNamed, "name", p.PostLabel),
	)

	rollback = []string{
		render(p.Commands.DisableSharing),
		render(p.Commands.UnconfigureSharing),
		render(p.Commands.EnableSharingStatic),
		render(p.Commands.DisablePorts),
		render(p.Commands.EnablePorts),
	}
	return forward, rollback
}
