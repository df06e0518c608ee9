// Package plan defines the migration plan file and its validation rules.
package plan

import (
	"strings"
	"time"

	"github.com/lagmigrate-network/lagmigrate/pkg/device"
	"github.com/lagmigrate-network/lagmigrate/pkg/util"
)

// Default timings and save labels, matching common operator practice:
// a two-minute decision window with one minute of required stability.
const (
	DefaultOverallTimeoutS = 120
	DefaultStableRequiredS = 60
	DefaultPollIntervalS   = 2
	DefaultPreLabel        = "lacp_prechange"
	DefaultPostLabel       = "primary"
	DefaultAlgorithm       = "address-based L2"
)

// DeviceEndpoint is the SSH endpoint of the managed switch.
type DeviceEndpoint struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port,omitempty"`
	User     string `yaml:"user"`
	Password string `yaml:"password,omitempty"`
}

// MigrationPlan is the immutable, process-lifetime configuration of one run.
type MigrationPlan struct {
	Device DeviceEndpoint `yaml:"device"`

	// PrimaryPort is the LAG key (master) port, e.g. "1:60".
	PrimaryPort string `yaml:"primary_port"`
	// MemberPorts is the full aggregation group member list, primary included.
	MemberPorts []string `yaml:"member_ports"`
	// Algorithm is the aggregation hash-mode label passed to the device.
	Algorithm string `yaml:"algorithm,omitempty"`

	// Target is the address whose reachability decides commit vs rollback.
	Target string `yaml:"target"`

	OverallTimeoutS int `yaml:"overall_timeout_seconds,omitempty"`
	StableRequiredS int `yaml:"stable_required_seconds,omitempty"`
	PollIntervalS   int `yaml:"poll_interval_seconds,omitempty"`

	// Save labels must not contain characters that trigger interactive
	// confirmation prompts on the device.
	PreLabel  string `yaml:"pre_change_label,omitempty"`
	PostLabel string `yaml:"post_change_label,omitempty"`

	// Commands overrides individual device command templates.
	Commands device.CommandSet `yaml:"commands,omitempty"`
}

// OverallTimeout returns the overall decision deadline.
func (p *MigrationPlan) OverallTimeout() time.Duration {
	return time.Duration(p.OverallTimeoutS) * time.Second
}

// StableRequired returns the required continuous-reachability duration.
func (p *MigrationPlan) StableRequired() time.Duration {
	return time.Duration(p.StableRequiredS) * time.Second
}

// PollInterval returns the probe poll interval.
func (p *MigrationPlan) PollInterval() time.Duration {
	return time.Duration(p.PollIntervalS) * time.Second
}

// MembersSpec returns the member list in device CLI form, e.g. "1:60,2:60".
func (p *MigrationPlan) MembersSpec() string {
	return strings.Join(p.MemberPorts, ",")
}

// applyDefaults fills unset fields. Zero timings mean "not set"; an explicit
// invalid value is rejected by Validate instead of silently corrected.
func (p *MigrationPlan) applyDefaults() {
	if p.Device.Port == 0 {
		p.Device.Port = 22
	}
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	if p.OverallTimeoutS == 0 {
		p.OverallTimeoutS = DefaultOverallTimeoutS
	}
	if p.StableRequiredS == 0 {
		p.StableRequiredS = DefaultStableRequiredS
	}
	if p.PollIntervalS == 0 {
		p.PollIntervalS = DefaultPollIntervalS
	}
	if p.PreLabel == "" {
		p.PreLabel = DefaultPreLabel
	}
	if p.PostLabel == "" {
		p.PostLabel = DefaultPostLabel
	}
	p.Commands = p.Commands.FillDefaults()
}

// Validate checks the plan invariants. Violations are reported together and
// never auto-corrected.
func (p *MigrationPlan) Validate() error {
	v := &util.ValidationBuilder{}

	v.Add(p.Device.Host != "", "device.host is required")
	v.Add(p.Device.User != "", "device.user is required")
	v.Add(p.PrimaryPort != "", "primary_port is required")
	v.Add(len(p.MemberPorts) > 0, "member_ports must list the aggregation group members")
	v.Add(p.Target != "", "target is required")

	if p.PrimaryPort != "" && len(p.MemberPorts) > 0 && !containsPort(p.MemberPorts, p.PrimaryPort) {
		v.AddErrorf("member_ports must include primary_port %s", p.PrimaryPort)
	}

	v.Add(p.PollIntervalS > 0, "poll_interval_seconds must be positive")
	v.Add(p.StableRequiredS >= 0, "stable_required_seconds must not be negative")
	if p.StableRequiredS >= p.OverallTimeoutS {
		v.AddErrorf("stable_required_seconds (%d) must be less than overall_timeout_seconds (%d), otherwise success is unreachable",
			p.StableRequiredS, p.OverallTimeoutS)
	}

	for _, label := range []struct{ name, value string }{
		{"pre_change_label", p.PreLabel},
		{"post_change_label", p.PostLabel},
	} {
		if !labelSafe(label.value) {
			v.AddErrorf("%s %q must not contain '.', '/' or whitespace (these trigger confirmation prompts on the device)",
				label.name, label.value)
		}
	}

	return v.Build()
}

// labelSafe reports whether a save label avoids the characters that make the
// device ask an interactive question.
func labelSafe(label string) bool {
	return label != "" && !strings.ContainsAny(label, "./ \t")
}

func containsPort(ports []string, port string) bool {
	for _, p := range ports {
		if p == port {
			return true
		}
	}
	return false
}
