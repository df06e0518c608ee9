// Package probe determines reachability of a target address through the
// device command channel.
package probe

import (
	"context"
	"strings"

	"github.com/lagmigrate-network/lagmigrate/pkg/device"
	"github.com/lagmigrate-network/lagmigrate/pkg/util"
)

// successMarkers are output phrases that count as a delivered probe,
// case-insensitive. Different firmware builds phrase success differently.
var successMarkers = []string{
	"bytes from",
	" 1 received",
	"1 packets received",
	"1 packet received",
}

// Prober issues reachability probes against one target. The probe command
// syntax varies between firmware builds, so the working template is detected
// at runtime: detection runs exactly once per Prober, and its result (a
// template, or none) is cached for the rest of the run. A Prober whose
// detection found no working syntax answers unreachable forever.
type Prober struct {
	exec       device.Executor
	target     string
	candidates []string

	detected bool
	template string // "" after an exhausted detection
}

// New creates a Prober for the target. Candidates are command templates with
// a {target} slot, tried in priority order during detection.
func New(exec device.Executor, target string, candidates []string) *Prober {
	return &Prober{
		exec:       exec,
		target:     target,
		candidates: candidates,
	}
}

// Detect resolves the probe template, issuing one real probe per candidate
// until one succeeds. Subsequent calls return the cached result without
// touching the device. Returns "" when no candidate works.
func (p *Prober) Detect(ctx context.Context) string {
	if p.detected {
		return p.template
	}
	p.detected = true

	for _, tmpl := range p.candidates {
		if p.tryTemplate(ctx, tmpl) {
			p.template = tmpl
			util.WithPhase("probe").Infof("Detected probe syntax: '%s'", tmpl)
			return tmpl
		}
	}

	util.WithPhase("probe").Warnf("No working probe syntax found for %s; all probes will report unreachable", p.target)
	return ""
}

// Probe reports whether the target is currently reachable. The first call
// triggers detection; after detection each call issues exactly one command.
func (p *Prober) Probe(ctx context.Context) bool {
	if !p.detected {
		p.Detect(ctx)
	}
	if p.template == "" {
		return false
	}
	return p.tryTemplate(ctx, p.template)
}

// Template returns the detected template, or "" if detection has not run or
// was exhausted.
func (p *Prober) Template() string {
	return p.template
}

// tryTemplate issues one probe using the template and interprets the output.
func (p *Prober) tryTemplate(ctx context.Context, template string) bool {
	cmd := device.Render(template, "target", p.target)
	ok, out := p.exec.Execute(ctx, cmd)
	if !ok {
		return false
	}
	return outputIndicatesSuccess(out)
}

// outputIndicatesSuccess matches the captured output against the known
// success markers, case-insensitively.
func outputIndicatesSuccess(output string) bool {
	o := strings.ToLower(output)
	for _, marker := range successMarkers {
		if strings.Contains(o, marker) {
			return true
		}
	}
	return false
}
