package device

import (
	"reflect"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		pairs    []string
		want     string
	}{
		{
			name:     "single placeholder",
			template: "disable sharing {port}",
			pairs:    []string{"port", "1:60"},
			want:     "disable sharing 1:60",
		},
		{
			name:     "multiple placeholders",
			template: "enable sharing {port} grouping {members} algorithm {algorithm} lacp",
			pairs:    []string{"port", "1:60", "members", "1:60,2:60", "algorithm", "address-based L2"},
			want:     "enable sharing 1:60 grouping 1:60,2:60 algorithm address-based L2 lacp",
		},
		{
			name:     "repeated placeholder",
			template: "{port} and {port}",
			pairs:    []string{"port", "1:1"},
			want:     "1:1 and 1:1",
		},
		{
			name:     "no placeholders",
			template: "save configuration",
			pairs:    []string{"name", "primary"},
			want:     "save configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.template, tt.pairs...)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFillDefaults(t *testing.T) {
	t.Run("empty set gets all defaults", func(t *testing.T) {
		got := CommandSet{}.FillDefaults()
		if !reflect.DeepEqual(got, DefaultCommands()) {
			t.Errorf("FillDefaults() on empty set = %+v, want defaults", got)
		}
	})

	t.Run("override is kept, rest defaulted", func(t *testing.T) {
		got := CommandSet{SaveNamed: "copy running-config {name}"}.FillDefaults()
		if got.SaveNamed != "copy running-config {name}" {
			t.Errorf("SaveNamed = %q, want override kept", got.SaveNamed)
		}
		if got.Save != DefaultCommands().Save {
			t.Errorf("Save = %q, want default", got.Save)
		}
	})

	t.Run("probe candidates override replaces whole list", func(t *testing.T) {
		got := CommandSet{ProbeCandidates: []string{"ping -c 1 {target}"}}.FillDefaults()
		if len(got.ProbeCandidates) != 1 || got.ProbeCandidates[0] != "ping -c 1 {target}" {
			t.Errorf("ProbeCandidates = %v, want single override", got.ProbeCandidates)
		}
	})
}
