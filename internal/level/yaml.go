package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel is the on-disk layout of a level file.
//
//	id: meadow
//	name: Meadow
//	rows:
//	  - "1111"
//	  - "P001"
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML decodes and validates a level document.
func ParseYAML(data []byte) (Level, error) {
	var y YAMLLevel
	if err := yaml.Unmarshal(data, &y); err != nil {
		return Level{}, fmt.Errorf("level: invalid YAML: %w", err)
	}

	lvl := Level{
		ID:   y.ID,
		Name: y.Name,
		Map:  Map(y.Rows),
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// MarshalYAML encodes a level in the file format.
func MarshalYAML(l Level) ([]byte, error) {
	data, err := yaml.Marshal(YAMLLevel{
		ID:   l.ID,
		Name: l.Name,
		Rows: []string(l.Map),
	})
	if err != nil {
		return nil, fmt.Errorf("level: cannot encode %q: %w", l.ID, err)
	}
	return data, nil
}
