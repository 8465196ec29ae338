package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite    *TestSuite
	Registry *TemplateRegistry
	Dir      string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, err
	}
	loaded.Dir = filepath.Dir(path)
	return loaded, nil
}

// Parse decodes a suite and resolves templated cases into plain expressions.
func Parse(data []byte) (*LoadedSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	registry := NewTemplateRegistry()
	for _, t := range s.Templates {
		if err := registry.Register(t); err != nil {
			return nil, fmt.Errorf("register template: %w", err)
		}
	}

	ids := make(map[string]struct{}, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := ids[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		ids[c.ID] = struct{}{}

		if err := c.validate(); err != nil {
			return nil, err
		}
		if c.Template != "" {
			expr, err := registry.Render(c.Template, c.Params)
			if err != nil {
				return nil, fmt.Errorf("case %q: %w", c.ID, err)
			}
			c.Expression = expr
		}
	}

	return &LoadedSuite{Suite: &s, Registry: registry}, nil
}
