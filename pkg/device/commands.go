package device

import "strings"

// CommandSet holds the device command vocabulary as templates. Placeholders:
// {port} primary port, {members} full member list, {algorithm} hash mode,
// {name} save label, {target} reachability address.
//
// The defaults speak EXOS; every template can be overridden from the plan
// file so the tool works against other firmware with a compatible CLI shape.
type CommandSet struct {
	DisableSharing      string   `yaml:"disable_sharing,omitempty"`
	UnconfigureSharing  string   `yaml:"unconfigure_sharing,omitempty"`
	EnableSharingLACP   string   `yaml:"enable_sharing_lacp,omitempty"`
	EnableSharingStatic string   `yaml:"enable_sharing_static,omitempty"`
	ConfigureLACPActive string   `yaml:"configure_lacp_active,omitempty"`
	DisablePorts        string   `yaml:"disable_ports,omitempty"`
	EnablePorts         string   `yaml:"enable_ports,omitempty"`
	SaveNamed           string   `yaml:"save_named,omitempty"`
	Save                string   `yaml:"save,omitempty"`
	ShowSharing         string   `yaml:"show_sharing,omitempty"`
	ProbeCandidates     []string `yaml:"probe_candidates,omitempty"`
}

// DefaultCommands returns the EXOS command vocabulary.
// Probe candidates are ordered most-likely-accepted first; detection tries
// them in this order and caches the first that works.
func DefaultCommands() CommandSet {
	return CommandSet{
		DisableSharing:      "disable sharing {port}",
		UnconfigureSharing:  "unconfigure sharing {port}",
		EnableSharingLACP:   "enable sharing {port} grouping {members} algorithm {algorithm} lacp",
		EnableSharingStatic: "enable sharing {port} grouping {members} algorithm {algorithm}",
		ConfigureLACPActive: "configure sharing {port} lacp activity active",
		DisablePorts:        "disable ports {port}",
		EnablePorts:         "enable ports {port}",
		SaveNamed:           "save configuration {name}",
		Save:                "save configuration",
		ShowSharing:         "show ports sharing",
		ProbeCandidates: []string{
			"ping count 1 {target}",
			"ping {target}",
			"ping ipv4 count 1 {target}",
		},
	}
}

// FillDefaults returns a copy of c with empty templates replaced by the
// EXOS defaults, so a plan file may override only the commands it needs to.
func (c CommandSet) FillDefaults() CommandSet {
	def := DefaultCommands()
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	out := CommandSet{
		DisableSharing:      pick(c.DisableSharing, def.DisableSharing),
		UnconfigureSharing:  pick(c.UnconfigureSharing, def.UnconfigureSharing),
		EnableSharingLACP:   pick(c.EnableSharingLACP, def.EnableSharingLACP),
		EnableSharingStatic: pick(c.EnableSharingStatic, def.EnableSharingStatic),
		ConfigureLACPActive: pick(c.ConfigureLACPActive, def.ConfigureLACPActive),
		DisablePorts:        pick(c.DisablePorts, def.DisablePorts),
		EnablePorts:         pick(c.EnablePorts, def.EnablePorts),
		SaveNamed:           pick(c.SaveNamed, def.SaveNamed),
		Save:                pick(c.Save, def.Save),
		ShowSharing:         pick(c.ShowSharing, def.ShowSharing),
		ProbeCandidates:     c.ProbeCandidates,
	}
	if len(out.ProbeCandidates) == 0 {
		out.ProbeCandidates = def.ProbeCandidates
	}
	return out
}

// Render substitutes placeholder values into a command template.
// Pairs are placeholder/value, e.g. Render(tmpl, "port", "1:60").
func Render(template string, pairs ...string) string {
	oldnew := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		oldnew = append(oldnew, "{"+pairs[i]+"}", pairs[i+1])
	}
	return strings.NewReplacer(oldnew...).Replace(template)
}
