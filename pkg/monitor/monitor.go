// Package monitor implements the reachability monitor that drives the
// commit-or-rollback decision.
package monitor

import (
	"context"
	"time"

	"github.com/lagmigrate-network/lagmigrate/pkg/util"
)

// ReachabilityProbe answers whether the target is currently reachable.
type ReachabilityProbe interface {
	Probe(ctx context.Context) bool
}

// Monitor polls a reachability probe on a fixed interval and tracks a
// rolling stability window. It returns success once reachability has held
// continuously for StableRequired, or failure once OverallTimeout elapses.
//
// One failed probe resets the entire accumulated window; there is no
// debounce for transient loss. The decision is computed from elapsed wall
// time only, never from counted successes.
type Monitor struct {
	Probe          ReachabilityProbe
	Target         string
	PollInterval   time.Duration
	StableRequired time.Duration
	OverallTimeout time.Duration

	// Now and Sleep are injectable for tests. Sleep returns false when the
	// context was cancelled before the interval elapsed.
	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) bool
}

// New creates a Monitor over the given probe.
func New(p ReachabilityProbe, target string, poll, stable, timeout time.Duration) *Monitor {
	return &Monitor{
		Probe:          p,
		Target:         target,
		PollInterval:   poll,
		StableRequired: stable,
		OverallTimeout: timeout,
		Now:            time.Now,
		Sleep:          sleepCtx,
	}
}

// Run blocks until a terminal outcome: true when the stability window
// completed, false on overall timeout or context cancellation.
func (m *Monitor) Run(ctx context.Context) bool {
	log := util.WithPhase("monitor")
	log.Infof("Start reachability monitor to %s (stable %s within %s, every %s)",
		m.Target, m.StableRequired, m.OverallTimeout, m.PollInterval)

	start := m.clock()()
	var stableSince *time.Time

	for {
		ok := m.Probe.Probe(ctx)
		now := m.clock()()

		if ok {
			if stableSince == nil {
				t := now
				stableSince = &t
				log.Infof("Reachability OK - starting stability window")
			} else {
				log.Infof("Reachability still OK (%ds)", int(now.Sub(*stableSince).Seconds()))
			}
			if now.Sub(*stableSince) >= m.StableRequired {
				log.Infof("Stability target reached (>= %s)", m.StableRequired)
				return true
			}
		} else {
			if stableSince != nil {
				log.Warnf("Reachability lost - resetting stability window")
			} else {
				log.Infof("No reachability yet - waiting")
			}
			stableSince = nil
		}

		if now.Sub(start) > m.OverallTimeout {
			log.Warnf("Timeout (%s) without stable reachability", m.OverallTimeout)
			return false
		}

		if !m.sleeper()(ctx, m.PollInterval) {
			log.Warnf("Monitor cancelled")
			return false
		}
	}
}

func (m *Monitor) clock() func() time.Time {
	if m.Now != nil {
		return m.Now
	}
	return time.Now
}

func (m *Monitor) sleeper() func(context.Context, time.Duration) bool {
	if m.Sleep != nil {
		return m.Sleep
	}
	return sleepCtx
}

// sleepCtx sleeps for d unless the context is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
