package portfolio

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultContent []byte

// Default returns the built-in portfolio. Each call parses a fresh copy,
// so callers may not mutate a shared value by accident.
func Default() *Portfolio {
	p, err := Parse(defaultContent)
	if err != nil {
		// The embedded file is covered by tests; failing here is a build defect.
		panic(fmt.Sprintf("embedded portfolio is invalid: %v", err))
	}
	return p
}

// DefaultYAML returns a copy of the embedded payload. `termfolio config init`
// writes it out as the starter content file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultContent))
	copy(out, defaultContent)
	return out
}

// Load reads and validates a YAML content file. An empty path yields Default().
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML payload. Unknown keys are rejected so
// that typos in a content file do not silently drop sections.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields the terminal relies on.
func (p *Portfolio) Validate() error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, &ValidationError{Field: field, Message: msg})
	}

	if strings.TrimSpace(p.Name) == "" {
		add("name", "is required")
	}
	if strings.TrimSpace(p.Role) == "" {
		add("role", "is required")
	}
	for i, proj := range p.Projects {
		if strings.TrimSpace(proj.Name) == "" {
			add(fmt.Sprintf("projects[%d].name", i), "is required")
		}
		if strings.TrimSpace(proj.Description) == "" {
			add(fmt.Sprintf("projects[%d].description", i), "is required")
		}
	}
	for i, g := range p.Skills {
		if strings.TrimSpace(g.Category) == "" {
			add(fmt.Sprintf("skills[%d].category", i), "is required")
		}
	}
	seen := make(map[string]bool)
	for i, s := range p.Socials {
		platform := strings.ToLower(strings.TrimSpace(s.Platform))
		if platform == "" {
			add(fmt.Sprintf("socials[%d].platform", i), "is required")
			continue
		}
		if seen[platform] {
			add(fmt.Sprintf("socials[%d].platform", i), fmt.Sprintf("duplicate platform %q", s.Platform))
		}
		seen[platform] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
