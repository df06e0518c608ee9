package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML migration plan, applies defaults, and validates it.
func Load(path string) (*MigrationPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses plan bytes, applies defaults, and validates the result.
func Parse(data []byte) (*MigrationPlan, error) {
	var p MigrationPlan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}

	p.applyDefaults()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
